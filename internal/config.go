package internal

import (
	"log/slog"
	"os"
	"path/filepath"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ShilohAlleyne/decoy/internal/denote"
	pkgconfig "github.com/ShilohAlleyne/decoy/pkg/config"
)

// Config represents the application configuration.
type Config struct {
	App    ApplicationConfig `yaml:"app"`
	Notes  NotesConfig       `yaml:"notes"`
	Editor EditorConfig      `yaml:"editor"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if err := c.Notes.Validate(); err != nil {
		return err
	}
	return c.Editor.Validate()
}

// ApplicationConfig holds application-level configuration.
type ApplicationConfig struct {
	LogLevel slog.Level `yaml:"log_level"`
}

// NotesConfig holds the note archive location and the filetype new notes
// are created as.
type NotesConfig struct {
	Dir      string          `yaml:"dir"`
	Filetype denote.FileType `yaml:"filetype"`
}

// Validate validates the notes configuration.
func (c *NotesConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Dir, validation.Required),
		validation.Field(&c.Filetype, validation.Required,
			validation.In(denote.Markdown, denote.Text, denote.Org, denote.Typst)),
	)
}

// EditorConfig holds the external programs used to open notes.
type EditorConfig struct {
	TextEditor string `yaml:"text_editor"`
	PDFViewer  string `yaml:"pdf_viewer"`
}

// Validate validates the editor configuration.
func (c *EditorConfig) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.TextEditor, validation.Required),
		validation.Field(&c.PDFViewer, validation.Required),
	)
}

// NewDefaultConfig returns a new Config with sensible default values:
// notes in ~/notes as markdown, text editor from $EDITOR.
func NewDefaultConfig() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	textEditor := os.Getenv("EDITOR")
	if textEditor == "" {
		textEditor = "nano"
	}
	return &Config{
		App: ApplicationConfig{
			LogLevel: slog.LevelWarn,
		},
		Notes: NotesConfig{
			Dir:      filepath.Join(home, "notes"),
			Filetype: denote.Markdown,
		},
		Editor: EditorConfig{
			TextEditor: textEditor,
			PDFViewer:  "zathura",
		},
	}
}

// LoadConfig reads the config file at path over the built-in defaults.
// A missing file is fine; an unreadable, unparsable, or invalid file is
// logged and ignored so the defaults still apply.
func LoadConfig(path string) *Config {
	cfg := NewDefaultConfig()
	if err := pkgconfig.LoadIfPresent(path, cfg); err != nil {
		slog.Warn("ignoring invalid config file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return NewDefaultConfig()
	}
	return cfg
}

// DefaultConfigPath returns the location of the persisted configuration
// file, ~/.decoy/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".decoy", "config.yaml")
}
