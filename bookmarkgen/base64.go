package bookmarkgen

import (
	"encoding/base64"
	"regexp"
	"strings"
)

// base64Prefix is prepended to every processed base64 page section so the
// resulting bookmarks link back to the source page.
const base64Prefix = "[🔑Base64](https://rentry.co/FMHYBase64) ► "

var backtickPattern = regexp.MustCompile("`[^`]+`")

// fixBase64Padding pads an encoded string out to a multiple of four, which
// the page's hand-written payloads frequently lack.
func fixBase64Padding(encoded string) string {
	if missing := len(encoded) % 4; missing != 0 {
		encoded += strings.Repeat("=", 4-missing)
	}
	return encoded
}

// decodeBase64Content replaces every backticked base64 payload with its
// decoded text. Payloads that don't decode are left as-is.
func decodeBase64Content(input string) string {
	return backtickPattern.ReplaceAllStringFunc(input, func(match string) string {
		encoded := fixBase64Padding(match[1 : len(match)-1])
		decoded, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			return match
		}
		return string(decoded)
	})
}

// processBase64Page flattens the base64 page into one content line per
// section: sections are separated by "***", headings are stripped, and
// multi-line entries are collapsed before decoding.
func processBase64Page(page string) []string {
	sections := strings.Split(page, "***")

	formatted := make([]string, 0, len(sections))
	for _, section := range sections {
		clean := strings.TrimSpace(section)
		clean = strings.ReplaceAll(clean, "#### ", "")
		clean = strings.ReplaceAll(clean, "\n\n", " - ")
		clean = strings.ReplaceAll(clean, "\n", ", ")
		clean = decodeBase64Content(clean)

		formatted = append(formatted, base64Prefix+clean)
	}
	return formatted
}
