package bookmarkgen

import (
	"regexp"
	"strings"
)

// Link is one (title, url) pair matched on a content line.
type Link struct {
	Title string
	URL   string
}

// Line is one content line filed at a leaf of the bookmark hierarchy.
type Line struct {
	// Starred is set when the line carries a star marker.
	Starred bool
	// Description is the trailing text after the last link, "" when absent.
	Description string
	// Links are the markdown links found on the line, in order.
	Links []Link
}

var (
	linkPattern      = regexp.MustCompile(`\[([^\]]+)\]\((https?://[^\)]+)\)`)
	hierarchyPattern = regexp.MustCompile(`^\{"([^"]+)", "([^"]+)", "([^"]+)"\}`)
)

// parseLine splits a hierarchy-prefixed content line into its three
// hierarchy labels and its bookmark data. Lines without the prefix are
// skipped (ok is false).
func parseLine(line string) (levels [3]string, bl Line, ok bool) {
	m := hierarchyPattern.FindStringSubmatch(line)
	if m == nil {
		return levels, bl, false
	}
	levels = [3]string{m[1], m[2], m[3]}

	for _, lm := range linkPattern.FindAllStringSubmatch(line, -1) {
		bl.Links = append(bl.Links, Link{Title: lm[1], URL: lm[2]})
	}

	bl.Starred = strings.Contains(line, "⭐") || strings.Contains(line, "🌟")

	if idx := strings.LastIndex(line, ")"); idx != -1 {
		bl.Description = strings.TrimSpace(strings.ReplaceAll(line[idx+1:], "**", ""))
	}

	return levels, bl, true
}

// node is one folder in the bookmark tree. Children keep first-seen order.
type node struct {
	order    []string
	children map[string]*node
	lines    []Line
}

func newNode() *node {
	return &node{children: make(map[string]*node)}
}

func (n *node) child(name string) *node {
	if c, ok := n.children[name]; ok {
		return c
	}
	c := newNode()
	n.children[name] = c
	n.order = append(n.order, name)
	return c
}

// buildTree files every parseable content line under its three-level
// hierarchy path.
func buildTree(lines []string) *node {
	root := newNode()
	for _, line := range lines {
		levels, bl, ok := parseLine(line)
		if !ok {
			continue
		}
		leaf := root.child(levels[0]).child(levels[1]).child(levels[2])
		leaf.lines = append(leaf.lines, bl)
	}
	return root
}

// Document renders a complete Netscape bookmark document from processed
// content lines. With starredOnly set, only starred lines survive, and only
// their first link.
func Document(lines []string, starredOnly bool) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE NETSCAPE-Bookmark-file-1>\n")
	b.WriteString("<META HTTP-EQUIV=\"Content-Type\" CONTENT=\"text/html; charset=UTF-8\">\n")
	b.WriteString("<TITLE>Bookmarks</TITLE>\n")
	b.WriteString("<H1>Bookmarks</H1>\n")
	b.WriteString("<DL><p>\n")
	b.WriteString("    <DT><H3>" + folderName + "</H3>\n")
	b.WriteString("    <DL><p>\n")
	renderNode(&b, buildTree(lines), 2, starredOnly, nil)
	b.WriteString("    </DL><p>\n")
	b.WriteString("</DL><p>\n")
	return b.String()
}

// renderNode writes one folder level. Leaves render their bookmark lines;
// interior nodes recurse.
func renderNode(b *strings.Builder, n *node, indent int, starredOnly bool, path []string) {
	pad := strings.Repeat("    ", indent)

	for _, name := range n.order {
		child := n.children[name]
		childPath := append(append([]string(nil), path...), name)

		b.WriteString(pad + "<DT><H3>" + name + "</H3>\n")
		b.WriteString(pad + "<DL><p>\n")
		if len(child.children) > 0 {
			renderNode(b, child, indent+1, starredOnly, childPath)
		} else {
			renderLines(b, child.lines, indent+1, starredOnly, childPath)
		}
		b.WriteString(pad + "</DL><p>\n")
	}
}

// renderLines writes the anchors of one leaf folder.
func renderLines(b *strings.Builder, lines []Line, indent int, starredOnly bool, path []string) {
	var level1, level2, level3 string
	if len(path) >= 3 {
		level1, level2, level3 = path[0], path[1], path[2]
	}
	pad := strings.Repeat("    ", indent)

	for _, bl := range lines {
		if starredOnly && !bl.Starred {
			continue
		}

		description := bl.Description
		if description == "" {
			// Fall back to the deepest meaningful hierarchy label.
			switch {
			case level3 != "/":
				description = "- " + level3
			case level2 != "":
				description = "- " + level2
			default:
				description = "- " + level1
			}
		}

		links := bl.Links
		if starredOnly && len(links) > 1 {
			links = links[:1]
		}

		for _, link := range links {
			anchorText := strings.TrimSpace(link.Title + " " + description)
			b.WriteString(pad + "<DT><A HREF=\"" + link.URL + "\" ADD_DATE=\"0\">" + anchorText + "</A>\n")
		}
	}
}
