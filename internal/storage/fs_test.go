package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func tempArchive(t *testing.T) *FS {
	t.Helper()
	dir := t.TempDir()
	fs, err := NewFS(dir)
	if err != nil {
		t.Fatalf("NewFS: %v", err)
	}
	return fs
}

func TestWriteAndRead(t *testing.T) {
	s := tempArchive(t)
	content := []byte("---\ntitle: Hello\n---\n")
	if err := s.Write("20240101T000000--hello.md", content); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read("20240101T000000--hello.md")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content mismatch: got %q", got)
	}
}

func TestWriteReplacesExisting(t *testing.T) {
	s := tempArchive(t)
	_ = s.Write("dup.md", []byte("first"))
	if err := s.Write("dup.md", []byte("second")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, _ := s.Read("dup.md")
	if string(got) != "second" {
		t.Errorf("content = %q, want last write to win", got)
	}

	// Confirm no leftover temp files.
	matches, _ := filepath.Glob(filepath.Join(s.root, ".decoy-tmp-*"))
	if len(matches) != 0 {
		t.Errorf("leftover temp files: %v", matches)
	}
}

func TestList_ReturnsEveryEntry(t *testing.T) {
	s := tempArchive(t)
	_ = s.Write("20240101T000000--a__x.md", []byte("a"))
	_ = s.Write(".hidden", []byte("h"))
	_ = s.Write("random.txt", []byte("r"))
	if err := os.Mkdir(filepath.Join(s.root, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}

	names, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 4 {
		t.Errorf("List returned %v, want all 4 entries", names)
	}
}

func TestRename(t *testing.T) {
	s := tempArchive(t)
	_ = s.Write("old-name.md", []byte("data"))
	if err := s.Rename("old-name.md", "20240101T000000--new__x.md"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	got, err := s.Read("20240101T000000--new__x.md")
	if err != nil {
		t.Fatalf("Read after rename: %v", err)
	}
	if string(got) != "data" {
		t.Errorf("content = %q", got)
	}
	if _, err := s.Read("old-name.md"); err == nil {
		t.Error("old name should not exist")
	}
}

func TestTraversalBlocked(t *testing.T) {
	s := tempArchive(t)

	cases := []string{
		"../../etc/passwd",
		"../outside.md",
		"/etc/shadow",
	}
	for _, p := range cases {
		if _, err := s.Read(p); err == nil {
			t.Errorf("expected error for path %q", p)
		}
		if err := s.Write(p, []byte("x")); err == nil {
			t.Errorf("expected error for write to %q", p)
		}
	}
}

func TestPath_ResolvesUnderRoot(t *testing.T) {
	s := tempArchive(t)
	p := s.Path("note.md")
	if filepath.Dir(p) != s.root {
		t.Errorf("Path = %q, want file under %q", p, s.root)
	}
}

func TestNewFS_NonExistentDir(t *testing.T) {
	_, err := NewFS("/tmp/decoy-does-not-exist-" + t.Name())
	if err == nil {
		t.Error("expected error for non-existent dir")
	}
}

func TestNewFS_FileNotDir(t *testing.T) {
	f, _ := os.CreateTemp("", "decoy-test-*")
	_ = f.Close()
	defer os.Remove(f.Name())
	_, err := NewFS(f.Name())
	if err == nil {
		t.Error("expected error when root is a file")
	}
}
