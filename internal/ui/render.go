package ui

import (
	"strings"

	"github.com/ShilohAlleyne/decoy/internal/denote"
)

// StyledName renders a filename for listing: identifier in cyan,
// keywords in yellow, everything else plain. Names that do not follow
// the convention render as-is minus empty keyword tokens, so foreign
// files still list cleanly.
func StyledName(name string) string {
	id := denote.Decode(name)

	styled := make([]string, len(id.Keywords))
	for i, kw := range id.Keywords {
		styled[i] = styleKeyword.Render(kw)
	}
	kwPart := strings.Join(styled, "_")

	sep := ""
	if kwPart != "" {
		sep = "__"
	}
	ext := ""
	if id.Extension != "" {
		ext = "." + id.Extension
	}

	if id.Identifier == "" {
		return id.TitleSlug + sep + kwPart + ext
	}
	return styleIdentifier.Render(id.Identifier) + "--" + id.TitleSlug + sep + kwPart + ext
}

// RenamedMessage formats the confirmation printed after a rename.
func RenamedMessage(oldName, newName string) string {
	return styleAnswerPrefix.Render(">") + " Renamed file: " + oldName + " -> " + styleAnswer.Render(newName)
}
