package goggle

import "strings"

// ParseFilterList extracts domain tokens from a plaintext filter list. Lines
// are trimmed; blank lines and "!" comment lines are dropped. Any input,
// including empty text, yields a valid (possibly empty) result.
func ParseFilterList(text string) []string {
	var domains []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		domains = append(domains, line)
	}
	return domains
}
