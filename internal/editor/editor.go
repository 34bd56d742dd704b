// Package editor launches the configured external programs on files and
// blocks until they exit.
package editor

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Opener picks the program for a file and runs it attached to the
// terminal.
type Opener struct {
	TextEditor string
	PDFViewer  string
}

// Open runs the program for path and waits for it to exit. PDFs go to
// the viewer, everything else to the text editor. Configured programs
// may carry arguments, e.g. "code --wait".
func (o Opener) Open(ctx context.Context, path string) error {
	parts := strings.Fields(o.program(path))
	if len(parts) == 0 {
		parts = []string{"nano"}
	}
	cmd := exec.CommandContext(ctx, parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("editor: run %s: %w", parts[0], err)
	}
	return nil
}

func (o Opener) program(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return o.PDFViewer
	}
	return o.TextEditor
}
