package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// SourcesConfig names the four remote inputs of the generator.
type SourcesConfig struct {
	AllBookmarks      string `yaml:"all_bookmarks"`
	StarredBookmarks  string `yaml:"starred_bookmarks"`
	Unsafe            string `yaml:"unsafe"`
	PotentiallyUnsafe string `yaml:"potentially_unsafe"`
}

// HeaderConfig holds the goggle metadata header fields.
type HeaderConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Public      bool   `yaml:"public"`
	Author      string `yaml:"author"`
	Homepage    string `yaml:"homepage"`
	Issues      string `yaml:"issues"`
}

// Config controls where goggle sources are fetched from and where the
// generated file is written.
type Config struct {
	Sources SourcesConfig `yaml:"sources"`
	Output  string        `yaml:"output"`
	// FetchTimeout is a Go duration string, e.g. "30s".
	FetchTimeout string       `yaml:"fetch_timeout"`
	Header       HeaderConfig `yaml:"header"`
}

// Timeout parses the configured fetch timeout, falling back to 30 seconds on
// an invalid value.
func (c *Config) Timeout() time.Duration {
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// Default returns the built-in configuration: the FMHY endpoints and the
// fmhy.goggle output file. Running without a config file uses exactly these
// values.
func Default() *Config {
	return &Config{
		Sources: SourcesConfig{
			AllBookmarks:      "https://raw.githubusercontent.com/fmhy/bookmarks/main/fmhy_in_bookmarks.html",
			StarredBookmarks:  "https://raw.githubusercontent.com/fmhy/bookmarks/main/fmhy_in_bookmarks_starred_only.html",
			Unsafe:            "https://raw.githubusercontent.com/fmhy/FMHYFilterlist/main/sitelist.txt",
			PotentiallyUnsafe: "https://raw.githubusercontent.com/fmhy/FMHYFilterlist/main/sitelist-plus.txt",
		},
		Output:       "fmhy.goggle",
		FetchTimeout: "30s",
		Header: HeaderConfig{
			Name:        "FMHY",
			Description: "Boosts sites from the FMHY collection and buries known unsafe sites.",
			Public:      true,
			Author:      "FMHY",
			Homepage:    "https://fmhy.net",
			Issues:      "https://github.com/fmhy/bookmarks/issues",
		},
	}
}

// Load reads a YAML config file and merges it over the defaults. An empty
// path or a file that doesn't exist returns the defaults (not an error); a
// file that exists but cannot be read or parsed is an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Lines renders the header metadata as the leading lines of a goggle file:
// six "! ..." lines followed by a blank separator line.
func (h HeaderConfig) Lines() []string {
	return []string{
		"! name: " + h.Name,
		"! description: " + h.Description,
		"! public: " + strconv.FormatBool(h.Public),
		"! author: " + h.Author,
		"! homepage " + h.Homepage,
		"! issues " + h.Issues,
		"",
	}
}
