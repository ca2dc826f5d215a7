package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/fmhy/goggle/bookmarkgen"
)

func main() {
	localDir := flag.String("local", ".", "Directory checked for local wiki sections before downloading")
	fullOut := flag.String("out", "fmhy_in_bookmarks.html", "Output path for the full bookmark file")
	starredOut := flag.String("starred-out", "fmhy_in_bookmarks_starred_only.html", "Output path for the starred-only bookmark file")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP timeout per section fetch")
	flag.Parse()

	collector := &bookmarkgen.Collector{
		Client:   &http.Client{Timeout: *timeout},
		LocalDir: *localDir,
	}

	log.Printf("Collecting wiki content...")
	content := collector.Collect()

	writeBookmarks(*fullOut, bookmarkgen.Document(content, false))
	writeBookmarks(*starredOut, bookmarkgen.Document(content, true))

	log.Printf("Bookmark generation complete!")
}

// writeBookmarks writes one bookmark document and logs what it contains.
func writeBookmarks(path, doc string) {
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", path, err)
	}

	summary, err := bookmarkgen.Summarize(doc)
	if err != nil {
		log.Fatalf("Failed to inspect %s: %v", path, err)
	}
	log.Printf("Created bookmark file: %s (%s)", path, summary)
}
