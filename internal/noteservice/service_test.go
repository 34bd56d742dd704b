package noteservice

import (
	"strings"
	"testing"
	"time"

	"github.com/ShilohAlleyne/decoy/internal/denote"
	"github.com/ShilohAlleyne/decoy/internal/testutil"
)

var created = time.Date(2024, time.March, 10, 7, 0, 0, 0, time.Local)

func TestCreateNote_Markdown(t *testing.T) {
	_, store := testutil.TestArchive(t)
	svc := NewService(store, denote.Markdown)

	name, err := svc.CreateNote("Meeting Notes", "work project", created)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if name != "20240310T070000--Meeting-Notes__work_project.md" {
		t.Errorf("name = %q", name)
	}

	content, err := store.Read(name)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	s := string(content)
	if !strings.HasPrefix(s, "---\n") {
		t.Errorf("missing YAML front matter:\n%s", s)
	}
	for _, want := range []string{"title: Meeting Notes", "20240310T070000", "- work", "- project"} {
		if !strings.Contains(s, want) {
			t.Errorf("front matter missing %q:\n%s", want, s)
		}
	}
}

func TestCreateNote_NoKeywords(t *testing.T) {
	_, store := testutil.TestArchive(t)
	svc := NewService(store, denote.Org)

	name, err := svc.CreateNote("Weekly Review", "", created)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if name != "20240310T070000--Weekly-Review.org" {
		t.Errorf("name = %q", name)
	}
	content, _ := store.Read(name)
	if !strings.HasPrefix(string(content), "#+TITLE: Weekly Review") {
		t.Errorf("org front matter:\n%s", content)
	}
}

func TestCreateNote_TypstEmptyBody(t *testing.T) {
	_, store := testutil.TestArchive(t)
	svc := NewService(store, denote.Typst)

	name, err := svc.CreateNote("Sketch", "draw", created)
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	content, err := store.Read(name)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(content) != 0 {
		t.Errorf("typst note should start empty, got %q", content)
	}
}

func TestRenameNote_KeepsOriginalExtension(t *testing.T) {
	_, store := testutil.TestArchive(t)
	testutil.SeedNotes(t, store, "scratchpad.txt")
	svc := NewService(store, denote.Markdown)

	newName, err := svc.RenameNote("scratchpad.txt", "Scratch Pad", "misc", created)
	if err != nil {
		t.Fatalf("RenameNote: %v", err)
	}
	if newName != "20240310T070000--Scratch-Pad__misc.txt" {
		t.Errorf("newName = %q", newName)
	}
	if _, err := store.Read(newName); err != nil {
		t.Errorf("renamed file unreadable: %v", err)
	}
	if _, err := store.Read("scratchpad.txt"); err == nil {
		t.Error("old name should be gone")
	}
}

func TestRenameNote_NoExtension(t *testing.T) {
	_, store := testutil.TestArchive(t)
	testutil.SeedNotes(t, store, "TODO")
	svc := NewService(store, denote.Markdown)

	newName, err := svc.RenameNote("TODO", "Task List", "", created)
	if err != nil {
		t.Fatalf("RenameNote: %v", err)
	}
	if newName != "20240310T070000--Task-List" {
		t.Errorf("newName = %q", newName)
	}
}
