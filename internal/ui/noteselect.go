package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/ShilohAlleyne/decoy/internal/apperr"
	"github.com/ShilohAlleyne/decoy/internal/denote"
)

const previewLines = 10

// SelectNote presents a note listing styled per the naming convention
// and returns the chosen filename. load fetches a note's content for the
// preview pane; markdown notes are rendered, everything else shows a
// plain head.
func SelectNote(names []string, load func(string) ([]byte, error)) (string, error) {
	if len(names) == 0 {
		return "", apperr.ErrNoMatches
	}

	out, err := tea.NewProgram(selectModel{
		label:    "Select note:",
		names:    names,
		load:     load,
		previews: make(map[int]string),
		width:    80,
	}).Run()
	if err != nil {
		return "", fmt.Errorf("ui: note select: %w", err)
	}
	final := out.(selectModel)
	if final.aborted {
		return "", apperr.ErrAborted
	}
	return final.names[final.cursor], nil
}

type selectModel struct {
	label    string
	names    []string
	cursor   int
	load     func(string) ([]byte, error)
	previews map[int]string
	width    int
	done     bool
	aborted  bool
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter":
			m.done = true
			return m, tea.Quit

		case "j", "down":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		return styleAnswerPrefix.Render(">") + " " + m.label + " " + StyledName(m.names[m.cursor]) + "\n"
	}

	var b strings.Builder
	b.WriteString(stylePromptPrefix.Render("?") + " " + m.label + "\n")
	for i, name := range m.names {
		if i == m.cursor {
			b.WriteString(styleCursor.Render(">") + " " + StyledName(name) + "\n")
		} else {
			b.WriteString("  " + StyledName(name) + "\n")
		}
	}

	if preview := m.preview(); preview != "" {
		b.WriteString(styleDim.Render(strings.Repeat("─", min(m.width, 60))) + "\n")
		b.WriteString(preview + "\n")
	}
	b.WriteString(styleHelp.Render("up/down to move, enter opens, esc cancels") + "\n")
	return b.String()
}

// preview lazily renders the head of the highlighted note and caches it
// for the rest of the prompt.
func (m selectModel) preview() string {
	if m.load == nil {
		return ""
	}
	if cached, ok := m.previews[m.cursor]; ok {
		return cached
	}

	name := m.names[m.cursor]
	rendered := ""
	if data, err := m.load(name); err == nil && len(data) > 0 {
		if denote.Decode(name).Extension == "md" {
			rendered = renderMarkdown(string(data), m.width)
		} else {
			rendered = head(string(data), previewLines)
		}
	}
	m.previews[m.cursor] = rendered
	return rendered
}

func renderMarkdown(body string, width int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrapWidth(width)),
	)
	if err != nil {
		return head(body, previewLines)
	}
	out, err := r.Render(body)
	if err != nil {
		return head(body, previewLines)
	}
	return head(out, previewLines)
}

// wrapWidth keeps the preview wrap inside the terminal but never lets a
// tiny terminal drive it to zero or below.
func wrapWidth(width int) int {
	return max(min(width-2, 78), 20)
}

// head returns the first n non-blank-trimmed lines of s.
func head(s string, n int) string {
	lines := strings.Split(strings.Trim(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
