package goggle

import (
	"fmt"
	"net/url"
	"regexp"
)

// BookmarkEntry is one anchor extracted from a bookmark export, reduced to
// the parts a goggle rule needs.
type BookmarkEntry struct {
	// Site is the hostname of the bookmarked URL.
	Site string
	// PathRule is the path+query of the URL suffixed with "^" (the goggle
	// end-of-segment marker), or the empty string when the URL points at the
	// site root.
	PathRule string
}

// anchorPattern matches the exact anchor shape the bookmark exporter writes.
// This is deliberately narrower than general HTML anchor syntax: the export
// format is known, and a literal scan avoids pulling in a full HTML parser
// for it.
var anchorPattern = regexp.MustCompile(`A HREF="([^"]+)"`)

// ParseBookmarks extracts every bookmark entry from an HTML bookmark export,
// in document order. Duplicates are retained; deduplication happens later at
// the rule-line level. The first URL that fails to parse as an absolute URL
// aborts the whole parse.
func ParseBookmarks(doc string) ([]BookmarkEntry, error) {
	matches := anchorPattern.FindAllStringSubmatch(doc, -1)

	entries := make([]BookmarkEntry, 0, len(matches))
	for _, m := range matches {
		entry, err := entryFromURL(m[1])
		if err != nil {
			return nil, fmt.Errorf("malformed bookmark URL %q: %w", m[1], err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// entryFromURL derives a BookmarkEntry from a raw URL string.
func entryFromURL(raw string) (BookmarkEntry, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return BookmarkEntry{}, err
	}
	if u.Scheme == "" || u.Host == "" {
		return BookmarkEntry{}, fmt.Errorf("not an absolute URL")
	}

	pathQuery := u.EscapedPath()
	if pathQuery == "" {
		pathQuery = "/"
	}
	if u.RawQuery != "" {
		pathQuery += "?" + u.RawQuery
	}

	entry := BookmarkEntry{Site: u.Hostname()}
	if pathQuery != "/" {
		entry.PathRule = pathQuery + "^"
	}
	return entry, nil
}
