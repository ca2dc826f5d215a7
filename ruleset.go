package goggle

import (
	"os"
	"strings"
)

// RuleSet accumulates the output lines of a goggle file. Duplicate lines
// collapse to their first occurrence; the relative order of surviving lines
// matches the order they were added in.
type RuleSet struct {
	lines []string
	seen  map[string]struct{}
}

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{
		seen: make(map[string]struct{}),
	}
}

// Add appends a line unless an identical line was added before.
func (rs *RuleSet) Add(line string) {
	if _, ok := rs.seen[line]; ok {
		return
	}
	rs.seen[line] = struct{}{}
	rs.lines = append(rs.lines, line)
}

// Lines returns the deduplicated lines in insertion order.
func (rs *RuleSet) Lines() []string {
	return rs.lines
}

// Len returns the number of unique lines added so far.
func (rs *RuleSet) Len() int {
	return len(rs.lines)
}

// Render joins the lines into the final goggle document.
func (rs *RuleSet) Render() string {
	return strings.Join(rs.lines, "\n")
}

// WriteFile renders the rule set and overwrites the file at path.
func (rs *RuleSet) WriteFile(path string) error {
	return os.WriteFile(path, []byte(rs.Render()), 0644)
}
