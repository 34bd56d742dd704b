// Package ui implements the interactive prompts: free-text input with
// validation and autocompletion, keyword multi-select, note picking with
// preview, and a calendar date picker. Every prompt runs its own Bubble
// Tea program to completion before control returns, so the whole
// invocation stays synchronous.
package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/sahilm/fuzzy"

	"github.com/ShilohAlleyne/decoy/internal/apperr"
)

// Title prompts for the new note's title. Empty titles are rejected with
// a re-prompt.
func Title() (string, error) {
	return runText("New file TITLE:", nil, validateTitle, "")
}

// keywordsHelp names every separator validateKeywords rejects.
const keywordsHelp = "<tab> autocompletes, tags are space separated and cannot contain ';', ',', '-' or '_'"

// Keywords prompts for space-separated keywords, tab-completing the last
// word against the existing keyword universe.
func Keywords(universe []string) (string, error) {
	return runText("New file KEYWORDS:", universe, validateKeywords, keywordsHelp)
}

func runText(label string, universe []string, validate func(string) error, help string) (string, error) {
	out, err := tea.NewProgram(newTextModel(label, universe, validate, help)).Run()
	if err != nil {
		return "", fmt.Errorf("ui: prompt: %w", err)
	}
	final := out.(textModel)
	if final.aborted {
		return "", apperr.ErrAborted
	}
	return strings.TrimSpace(final.input.Value()), nil
}

type textModel struct {
	label    string
	help     string
	validate func(string) error
	complete *completer
	input    textinput.Model
	errMsg   string
	done     bool
	aborted  bool
}

func newTextModel(label string, universe []string, validate func(string) error, help string) textModel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.Focus()

	m := textModel{
		label:    label,
		help:     help,
		validate: validate,
		input:    ti,
	}
	if len(universe) > 0 {
		m.complete = &completer{universe: universe}
	}
	return m
}

func (m textModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			if err := m.validate(m.input.Value()); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.done = true
			return m, tea.Quit

		case "tab":
			if m.complete != nil {
				m.input.SetValue(m.complete.completeLast(m.input.Value()))
				m.input.CursorEnd()
				return m, nil
			}
		}
		m.errMsg = ""
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		answer := styleAnswer.Render(strings.TrimSpace(m.input.Value()))
		return styleAnswerPrefix.Render(">") + " " + m.label + " " + answer + "\n"
	}

	var b strings.Builder
	b.WriteString(stylePromptPrefix.Render("?") + " " + m.label + " " + m.input.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(styleError.Render("# "+m.errMsg) + "\n")
	}
	if m.help != "" {
		b.WriteString(styleHelp.Render(m.help) + "\n")
	}
	return b.String()
}

// completer tab-completes the last whitespace-separated word of the
// input against a fixed universe, fuzzy-ranked, keeping everything the
// user already typed before it.
type completer struct {
	universe []string
}

func (c *completer) completeLast(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 || strings.HasSuffix(input, " ") {
		return input + c.universe[0]
	}
	last := fields[len(fields)-1]
	matches := fuzzy.Find(last, c.universe)
	if len(matches) == 0 {
		return input
	}
	return strings.TrimSuffix(input, last) + matches[0].Str
}

// keywordSeparators are the characters that cannot appear inside a
// single keyword token: they all collide with the filename grammar or
// the space-separated prompt format.
const keywordSeparators = ";,-_\t"

func validateTitle(input string) error {
	return validation.Validate(strings.TrimSpace(input),
		validation.Required.Error("you must provide a title"))
}

func validateKeywords(input string) error {
	return validation.Validate(strings.Fields(input),
		validation.Each(validation.By(func(value interface{}) error {
			tok, _ := value.(string)
			if strings.ContainsAny(tok, keywordSeparators) {
				return errors.New("keywords are space separated and cannot contain ';', ',', '-' or '_'")
			}
			return nil
		})))
}
