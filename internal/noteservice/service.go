// Package noteservice coordinates the filename codec, front matter
// rendering, and archive storage.
package noteservice

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/ShilohAlleyne/decoy/internal/denote"
	"github.com/ShilohAlleyne/decoy/internal/frontmatter"
	"github.com/ShilohAlleyne/decoy/internal/storage"
)

// Service creates and renames notes in an archive.
type Service struct {
	store    storage.Provider
	filetype denote.FileType
}

// NewService creates a new note service writing notes of the given
// filetype.
func NewService(store storage.Provider, filetype denote.FileType) *Service {
	return &Service{store: store, filetype: filetype}
}

// CreateNote encodes a filename for the new note, writes the file with
// front matter rendered for the configured filetype, and returns the
// filename. The identifier comes from now; a note created in the same
// second as an existing one overwrites it.
func (s *Service) CreateNote(title, keywords string, now time.Time) (string, error) {
	identifier := denote.NewIdentifier(now)
	name := denote.Encode(identifier, title, keywords, s.filetype)

	fm := frontmatter.New(title, denote.SplitKeywords(keywords), identifier, now)
	content, err := frontmatter.Render(fm, s.filetype)
	if err != nil {
		return "", err
	}
	if err := s.store.Write(name, content); err != nil {
		return "", err
	}
	return name, nil
}

// RenameNote renames an existing file to a fresh denote name built from
// title and keywords, keeping the file's original extension. The file's
// content is untouched. Returns the new filename.
func (s *Service) RenameNote(oldName, title, keywords string, now time.Time) (string, error) {
	identifier := denote.NewIdentifier(now)
	encoded := denote.Encode(identifier, title, keywords, s.filetype)
	stem := strings.TrimSuffix(encoded, s.filetype.Ext())

	newName := stem + filepath.Ext(oldName)
	if err := s.store.Rename(oldName, newName); err != nil {
		return "", err
	}
	return newName, nil
}
