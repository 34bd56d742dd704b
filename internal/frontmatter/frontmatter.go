// Package frontmatter renders the metadata block written at the top of a
// newly created note. The block is written once at creation time and
// never parsed back; later edits happen in the externally-edited body.
package frontmatter

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ShilohAlleyne/decoy/internal/denote"
)

// DateLayout is the human-readable creation date written into the front
// matter, e.g. "2024-01-05 Fri 09:30".
const DateLayout = "2006-01-02 Mon 15:04"

// FrontMatter is the metadata block of a note body.
type FrontMatter struct {
	Title      string   `yaml:"title"`
	Date       string   `yaml:"date"`
	FileTags   []string `yaml:"file_tags"`
	Identifier string   `yaml:"identifier"`
}

// New builds the front matter for a note created at now.
func New(title string, tags []string, identifier string, now time.Time) FrontMatter {
	return FrontMatter{
		Title:      title,
		Date:       now.Format(DateLayout),
		FileTags:   tags,
		Identifier: identifier,
	}
}

// Render serialises the front matter for the given filetype. Org notes
// get #+KEY: lines, typst notes carry no front matter at all, and
// everything else gets a YAML block between --- delimiters.
func Render(fm FrontMatter, ft denote.FileType) ([]byte, error) {
	switch ft {
	case denote.Typst:
		return nil, nil
	case denote.Org:
		lines := []string{
			"#+TITLE: " + fm.Title,
			"#+DATE: " + fm.Date,
			"#+FILETAGS: " + strings.Join(fm.FileTags, " "),
			"#+IDENTIFIER: " + fm.Identifier,
		}
		return []byte(strings.Join(lines, "\n") + "\n"), nil
	default:
		block, err := yaml.Marshal(fm)
		if err != nil {
			return nil, fmt.Errorf("frontmatter: marshal: %w", err)
		}
		out := make([]byte, 0, len(block)+8)
		out = append(out, "---\n"...)
		out = append(out, block...)
		out = append(out, "---\n"...)
		return out, nil
	}
}
