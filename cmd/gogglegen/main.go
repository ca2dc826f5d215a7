package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/fmhy/goggle"
	"github.com/fmhy/goggle/config"
)

// getEnv returns the value of an environment variable or a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configPath := flag.String("config", getEnv("GOGGLE_CONFIG", ""), "Path to configuration file (GOGGLE_CONFIG)")
	output := flag.String("output", "", "Override the configured output path")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *output != "" {
		cfg.Output = *output
	}

	client := &http.Client{Timeout: cfg.Timeout()}

	log.Printf("Fetching goggle sources...")
	src, err := goggle.FetchSources(client, goggle.SourceURLs{
		AllBookmarks:      cfg.Sources.AllBookmarks,
		StarredBookmarks:  cfg.Sources.StarredBookmarks,
		Unsafe:            cfg.Sources.Unsafe,
		PotentiallyUnsafe: cfg.Sources.PotentiallyUnsafe,
	})
	if err != nil {
		log.Fatalf("Failed to fetch sources: %v", err)
	}
	log.Printf("Parsed %d bookmarks, %d starred, %d unsafe, %d potentially unsafe",
		len(src.All), len(src.Starred), len(src.Unsafe), len(src.PotentiallyUnsafe))

	rules := goggle.Compose(cfg.Header.Lines(), src)
	if err := rules.WriteFile(cfg.Output); err != nil {
		log.Fatalf("Failed to write goggle file: %v", err)
	}

	fmt.Printf("Created goggle file: %s (%d lines)\n", cfg.Output, rules.Len())
}
