package bookmarkgen

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Summary describes a generated bookmark document.
type Summary struct {
	// Folders is the number of folder headings, the top-level one included.
	Folders int
	// Bookmarks is the number of anchors.
	Bookmarks int
}

// Summarize inspects a generated bookmark document and counts its folders
// and bookmarks.
func Summarize(doc string) (Summary, error) {
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return Summary{}, fmt.Errorf("failed to parse bookmark document: %w", err)
	}

	return Summary{
		Folders:   parsed.Find("h3").Length(),
		Bookmarks: parsed.Find("a").Length(),
	}, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%d bookmarks in %d folders", s.Bookmarks, s.Folders)
}
