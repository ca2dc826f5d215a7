// Package bookmarkgen builds the FMHY bookmark HTML exports from the wiki's
// markdown sections. The generated files are the same documents the goggle
// pipeline later consumes as its bookmark sources.
package bookmarkgen

const (
	// githubRawBase is where the wiki markdown sections are downloaded from.
	githubRawBase = "https://raw.githubusercontent.com/fmhy/edit/refs/heads/main/docs/"
	// base64PageURL serves the base64 link page, which lives outside the wiki.
	base64PageURL = "https://rentry.co/FMHYBase64/raw"
	// base64Filename is the pseudo-section name for the base64 page.
	base64Filename = "base64.md"
	// folderName is the top-level bookmark folder everything is filed under.
	folderName = "FMHY"
)

// Section describes one wiki page that feeds the bookmark files.
type Section struct {
	Filename string
	Icon     string
	URLKey   string
}

// Sections lists every wiki page included in the generated bookmarks.
var Sections = []Section{
	{"video.md", "📺", "video"},
	{"ai.md", "🤖", "ai"},
	{"mobile.md", "📱", "mobile"},
	{"audio.md", "🎵", "audio"},
	{"downloading.md", "💾", "downloading"},
	{"educational.md", "🧠", "educational"},
	{"gaming.md", "🎮", "gaming"},
	{"privacy.md", "📛", "privacy"},
	{"system-tools.md", "💻", "system-tools"},
	{"file-tools.md", "🗃️", "file-tools"},
	{"internet-tools.md", "🔗", "internet-tools"},
	{"social-media-tools.md", "💬", "social-media-tools"},
	{"text-tools.md", "📝", "text-tools"},
	{"video-tools.md", "📼", "video-tools"},
	{"misc.md", "📂", "misc"},
	{"reading.md", "📗", "reading"},
	{"torrenting.md", "🌀", "torrenting"},
	{"image-tools.md", "📷", "image-tools"},
	{"gaming-tools.md", "👾", "gaming-tools"},
	{"linux-macos.md", "🐧🍏", "linux-macos"},
	{"developer-tools.md", "🖥️", "developer-tools"},
	{"non-english.md", "🌏", "non-english"},
	{"storage.md", "🗄️", "storage"},
	{base64Filename, "🔑", "base64"},
	{"unsafe.md", "🌶", "unsafe"},
}
