// Package testutil provides shared test helpers for setting up note
// archives.
package testutil

import (
	"testing"

	"github.com/ShilohAlleyne/decoy/internal/storage"
)

// TestArchive creates a temporary note directory with a storage.Provider.
func TestArchive(t *testing.T) (string, storage.Provider) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFS(dir)
	if err != nil {
		t.Fatal(err)
	}
	return dir, store
}

// SeedNotes creates empty files with the given names in the archive.
func SeedNotes(t *testing.T, store storage.Provider, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := store.Write(name, nil); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
}
