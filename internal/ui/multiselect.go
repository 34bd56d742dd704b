package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShilohAlleyne/decoy/internal/apperr"
)

// SelectKeywords presents the keyword universe as a checkbox list and
// returns the chosen subset. An empty universe short-circuits to an
// empty selection, which downstream means "no filter".
func SelectKeywords(universe []string) ([]string, error) {
	if len(universe) == 0 {
		return nil, nil
	}

	out, err := tea.NewProgram(multiModel{
		label:  "Select relevant keywords:",
		items:  universe,
		picked: make(map[int]struct{}),
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("ui: keyword select: %w", err)
	}
	final := out.(multiModel)
	if final.aborted {
		return nil, apperr.ErrAborted
	}
	return final.selection(), nil
}

type multiModel struct {
	label   string
	items   []string
	cursor  int
	picked  map[int]struct{}
	done    bool
	aborted bool
}

func (m multiModel) selection() []string {
	var out []string
	for i, item := range m.items {
		if _, ok := m.picked[i]; ok {
			out = append(out, item)
		}
	}
	return out
}

func (m multiModel) Init() tea.Cmd {
	return nil
}

func (m multiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.aborted = true
		return m, tea.Quit

	case "enter":
		m.done = true
		return m, tea.Quit

	case " ":
		if _, on := m.picked[m.cursor]; on {
			delete(m.picked, m.cursor)
		} else {
			m.picked[m.cursor] = struct{}{}
		}

	case "j", "down":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	}

	return m, nil
}

func (m multiModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		answer := styleAnswer.Render("[" + strings.Join(m.selection(), " ") + "]")
		return styleAnswerPrefix.Render(">") + " " + m.label + " " + answer + "\n"
	}

	var b strings.Builder
	b.WriteString(stylePromptPrefix.Render("?") + " " + m.label + "\n")
	for i, item := range m.items {
		prefix := "  "
		if i == m.cursor {
			prefix = styleCursor.Render(">") + " "
		}
		box := "[ ]"
		if _, on := m.picked[i]; on {
			box = styleChecked.Render("[x]")
		}
		b.WriteString(prefix + box + " " + item + "\n")
	}
	b.WriteString(styleHelp.Render("space toggles, enter confirms") + "\n")
	return b.String()
}
