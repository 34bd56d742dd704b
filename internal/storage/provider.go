// Package storage defines the note-archive file-system abstraction.
package storage

// Provider is the interface for note archive file operations. Names are
// plain filenames relative to the archive root.
type Provider interface {
	// List returns the name of every directory entry in the archive, in
	// directory-listing order, with no filtering: hidden files, foreign
	// files, and subdirectories are all included.
	List() ([]string, error)
	// Read returns the raw bytes of the file with the given name.
	Read(name string) ([]byte, error)
	// Write writes content to name, replacing any existing file.
	Write(name string, content []byte) error
	// Rename renames oldName to newName within the archive.
	Rename(oldName, newName string) error
	// Path resolves name to an absolute path, for handing to external
	// programs.
	Path(name string) string
}
