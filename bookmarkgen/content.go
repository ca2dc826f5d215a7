package bookmarkgen

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/sync/errgroup"
)

// Collector downloads and preprocesses the wiki sections.
type Collector struct {
	Client *http.Client
	// LocalDir is checked for a local copy of each section before
	// downloading. Empty disables the local lookup.
	LocalDir string
	// BaseURL is where wiki sections are downloaded from. Empty uses the
	// FMHY wiki.
	BaseURL string
	// Base64URL is where the base64 page is downloaded from. Empty uses the
	// default rentry page.
	Base64URL string
}

// Collect gathers the processed content lines of every section, in section
// order. Sections are fetched concurrently; a section that fails to load is
// logged and skipped rather than aborting the run.
func (c *Collector) Collect() []string {
	results := make([][]string, len(Sections))

	g := new(errgroup.Group)
	for i, sec := range Sections {
		i, sec := i, sec
		g.Go(func() error {
			lines, err := c.collectSection(sec)
			if err != nil {
				log.Printf("Failed to fetch %s (%v). Skipping.", sec.Filename, err)
				return nil
			}
			results[i] = lines
			return nil
		})
	}
	g.Wait()

	var all []string
	for _, lines := range results {
		all = append(all, lines...)
	}
	return all
}

// collectSection loads one section, preferring a local file over the remote
// copy, and runs it through the section's preprocessing.
func (c *Collector) collectSection(sec Section) ([]string, error) {
	if c.LocalDir != "" {
		path := filepath.Join(c.LocalDir, sec.Filename)
		if data, err := os.ReadFile(path); err == nil {
			log.Printf("Loaded %s locally", sec.Filename)
			return processSection(sec, string(data)), nil
		}
	}

	base := c.BaseURL
	if base == "" {
		base = githubRawBase
	}
	url := base + sec.Filename
	if sec.Filename == base64Filename {
		url = c.Base64URL
		if url == "" {
			url = base64PageURL
		}
	}

	content, err := c.fetch(url)
	if err != nil {
		return nil, err
	}
	log.Printf("Downloaded %s", sec.Filename)

	if sec.Filename == base64Filename {
		content = strings.ReplaceAll(content, "\r", "")
	}
	return processSection(sec, content), nil
}

func (c *Collector) fetch(url string) (string, error) {
	client := c.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Get(url)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// processSection turns a section's raw text into hierarchy-prefixed content
// lines. The base64 page has its own format and processing.
func processSection(sec Section, content string) []string {
	if sec.Filename == base64Filename {
		return processBase64Page(content)
	}
	return addHierarchyPrefix(strings.Split(content, "\n"), sec)
}

// parseHeading extracts the subcategory or subsubcategory a heading line
// introduces. The storage section uses plain markdown heading levels instead
// of the arrow markers.
func parseHeading(line, urlKey string) (subcat, subsubcat string) {
	if urlKey != "storage" {
		if strings.HasPrefix(line, "# ►") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# ►")), "/"
		}
		if strings.HasPrefix(line, "## ▷") {
			return "", strings.TrimSpace(strings.TrimPrefix(line, "## ▷"))
		}
		return "", ""
	}
	if strings.HasPrefix(line, "### ") {
		return "", strings.TrimSpace(strings.TrimPrefix(line, "### "))
	}
	if strings.HasPrefix(line, "## ") {
		return strings.TrimSpace(strings.TrimPrefix(line, "## ")), "/"
	}
	return "", ""
}

// cleanCategoryName blanks category names that are really just links.
func cleanCategoryName(category string) string {
	if strings.Contains(category, "http") {
		return ""
	}
	return category
}

// addHierarchyPrefix tags every content line with its position in the
// section's heading hierarchy, so the bookmark builder can file it.
func addHierarchyPrefix(lines []string, sec Section) []string {
	sectionName := strings.TrimSuffix(sec.Filename, ".md")

	var out []string
	var subcat, subsubcat string
	for _, line := range lines {
		if strings.HasPrefix(line, "#") {
			s, ss := parseHeading(line, sec.URLKey)
			if s != "" {
				subcat = cleanCategoryName(s)
			}
			if ss != "" {
				subsubcat = cleanCategoryName(ss)
			}
			continue
		}
		if !hasLetter(line) {
			continue
		}

		content := line
		if strings.HasPrefix(content, "* ") {
			content = content[2:]
		}
		prefix := fmt.Sprintf("{%q, %q, %q}", sectionName, subcat, subsubcat)
		out = append(out, prefix+content)
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
