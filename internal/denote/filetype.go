package denote

// FileType is one of the closed set of note formats a new note can be
// created as.
type FileType string

const (
	Markdown FileType = "markdown"
	Text     FileType = "text"
	Org      FileType = "org"
	Typst    FileType = "typst"
)

// FileTypes lists every valid note filetype.
var FileTypes = []FileType{Markdown, Text, Org, Typst}

// Ext returns the filename suffix for the filetype, leading dot included.
func (t FileType) Ext() string {
	switch t {
	case Text:
		return ".txt"
	case Org:
		return ".org"
	case Typst:
		return ".typ"
	default:
		return ".md"
	}
}

// Valid reports whether t is a member of the closed filetype set.
func (t FileType) Valid() bool {
	switch t {
	case Markdown, Text, Org, Typst:
		return true
	}
	return false
}
