// Package internal provides the main application initialization and the
// per-command flows.
package internal

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/ShilohAlleyne/decoy/internal/apperr"
	"github.com/ShilohAlleyne/decoy/internal/editor"
	"github.com/ShilohAlleyne/decoy/internal/noteservice"
	"github.com/ShilohAlleyne/decoy/internal/search"
	"github.com/ShilohAlleyne/decoy/internal/storage"
	"github.com/ShilohAlleyne/decoy/internal/ui"
	pkgconfig "github.com/ShilohAlleyne/decoy/pkg/config"
)

// Modes name the per-command flows.
const (
	ModeNew    = "new"
	ModeFind   = "find"
	ModeDate   = "date"
	ModeRename = "rename"
	ModeConfig = "config"
)

// Run executes one command flow with the given options. Everything is
// sequential: prompts, filters, file operations, and the editor wait all
// happen in order within this single invocation.
func Run(ctx context.Context, mode string, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	if app.configPath == "" {
		app.configPath = DefaultConfigPath()
	}

	cfg := app.config

	// Log to stderr so output never interleaves with the prompts.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.App.LogLevel,
	}))
	slog.SetDefault(logger)

	logger.Debug("configuration loaded",
		slog.String("note_dir", cfg.Notes.Dir),
		slog.String("filetype", string(cfg.Notes.Filetype)),
		slog.String("mode", mode))

	// The config flow touches only the config file, no note archive
	// needed.
	if mode == ModeConfig {
		return runConfig(ctx, app.configPath, cfg)
	}

	if err := os.MkdirAll(cfg.Notes.Dir, 0o755); err != nil {
		return fmt.Errorf("create note dir: %w", err)
	}
	store, err := storage.NewFS(cfg.Notes.Dir)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// The collection and keyword universe are rebuilt from the directory
	// listing on every run; there is no persisted index.
	names, err := store.List()
	if err != nil {
		return fmt.Errorf("list notes: %w", err)
	}
	keywords := search.Keywords(names)
	logger.Debug("note archive loaded",
		slog.Int("entries", len(names)),
		slog.Int("keywords", len(keywords)))

	svc := noteservice.NewService(store, cfg.Notes.Filetype)
	open := editor.Opener{
		TextEditor: cfg.Editor.TextEditor,
		PDFViewer:  cfg.Editor.PDFViewer,
	}

	switch mode {
	case ModeNew:
		return runNew(ctx, svc, store, open, keywords)
	case ModeFind:
		return runFind(ctx, store, open, names, keywords)
	case ModeDate:
		return runDate(ctx, store, open, names)
	case ModeRename:
		return runRename(svc, store, names, keywords)
	default:
		return fmt.Errorf("%w: %s", apperr.ErrUnknownMode, mode)
	}
}

// runNew captures a title and keywords, writes the new note with its
// front matter, and opens it in the editor.
func runNew(ctx context.Context, svc *noteservice.Service, store storage.Provider, open editor.Opener, keywords []string) error {
	title, err := ui.Title()
	if err != nil {
		return err
	}
	kws, err := ui.Keywords(keywords)
	if err != nil {
		return err
	}

	name, err := svc.CreateNote(title, kws, time.Now())
	if err != nil {
		return err
	}
	return open.Open(ctx, store.Path(name))
}

// runFind narrows the collection by selected keywords and opens the
// picked note.
func runFind(ctx context.Context, store storage.Provider, open editor.Opener, names, keywords []string) error {
	name, err := pickByKeywords(store, names, keywords)
	if err != nil {
		return err
	}
	return open.Open(ctx, store.Path(name))
}

// runDate narrows the collection to one calendar day and opens the
// picked note.
func runDate(ctx context.Context, store storage.Provider, open editor.Opener, names []string) error {
	day, err := ui.SelectDate(time.Now())
	if err != nil {
		return err
	}
	matches := search.ByDate(names, day)
	name, err := ui.SelectNote(matches, store.Read)
	if err != nil {
		return err
	}
	return open.Open(ctx, store.Path(name))
}

// runRename picks an existing file, captures a fresh identity, and
// renames the file to the naming convention keeping its extension.
func runRename(svc *noteservice.Service, store storage.Provider, names, keywords []string) error {
	oldName, err := pickByKeywords(store, names, keywords)
	if err != nil {
		return err
	}

	title, err := ui.Title()
	if err != nil {
		return err
	}
	kws, err := ui.Keywords(keywords)
	if err != nil {
		return err
	}

	newName, err := svc.RenameNote(oldName, title, kws, time.Now())
	if err != nil {
		return err
	}
	fmt.Println(ui.RenamedMessage(oldName, newName))
	return nil
}

// runConfig opens the config file in the editor, generating a default
// one first when none exists.
func runConfig(ctx context.Context, path string, cfg *Config) error {
	if err := pkgconfig.WriteDefault(path, NewDefaultConfig()); err != nil {
		return err
	}
	open := editor.Opener{
		TextEditor: cfg.Editor.TextEditor,
		PDFViewer:  cfg.Editor.PDFViewer,
	}
	return open.Open(ctx, path)
}

// pickByKeywords runs the keyword multi-select followed by the note
// picker. An empty selection lists every note.
func pickByKeywords(store storage.Provider, names, keywords []string) (string, error) {
	selected, err := ui.SelectKeywords(keywords)
	if err != nil {
		return "", err
	}
	matches := search.ByKeywords(names, selected)
	return ui.SelectNote(matches, store.Read)
}
