package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ShilohAlleyne/decoy/internal/apperr"
)

// SelectDate prompts for a calendar date with a month grid, weeks
// starting on Monday, defaulting to today.
func SelectDate(today time.Time) (time.Time, error) {
	y, mo, d := today.Date()
	start := time.Date(y, mo, d, 0, 0, 0, 0, today.Location())

	out, err := tea.NewProgram(dateModel{selected: start}).Run()
	if err != nil {
		return time.Time{}, fmt.Errorf("ui: date select: %w", err)
	}
	final := out.(dateModel)
	if final.aborted {
		return time.Time{}, apperr.ErrAborted
	}
	return final.selected, nil
}

type dateModel struct {
	selected time.Time // midnight local
	done     bool
	aborted  bool
}

func (m dateModel) Init() tea.Cmd {
	return nil
}

func (m dateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

	case "left", "h":
		m.selected = m.selected.AddDate(0, 0, -1)

	case "right", "l":
		m.selected = m.selected.AddDate(0, 0, 1)

	case "up", "k":
		m.selected = m.selected.AddDate(0, 0, -7)

	case "down", "j":
		m.selected = m.selected.AddDate(0, 0, 7)

	case "pgup", "b":
		m.selected = m.selected.AddDate(0, -1, 0)

	case "pgdown", "f":
		m.selected = m.selected.AddDate(0, 1, 0)
	}

	return m, nil
}

func (m dateModel) View() string {
	if m.aborted {
		return ""
	}
	if m.done {
		answer := styleAnswer.Render(m.selected.Format("2006-01-02"))
		return styleAnswerPrefix.Render(">") + " Selected date: " + answer + "\n"
	}

	var b strings.Builder
	b.WriteString(stylePromptPrefix.Render("?") + " Selected date\n")
	b.WriteString("  " + m.selected.Format("January 2006") + "\n")
	b.WriteString(styleDim.Render("  Mo Tu We Th Fr Sa Su") + "\n")

	for _, week := range monthGrid(m.selected) {
		b.WriteString("  ")
		for i, day := range week {
			if i > 0 {
				b.WriteString(" ")
			}
			label := fmt.Sprintf("%2d", day.Day())
			switch {
			case sameDay(day, m.selected):
				b.WriteString(styleSelectedDay.Render(label))
			case day.Month() != m.selected.Month():
				b.WriteString(styleDim.Render(label))
			default:
				b.WriteString(label)
			}
		}
		b.WriteString("\n")
	}

	b.WriteString(styleHelp.Render("use the arrow keys to select date, pgup/pgdn change month") + "\n")
	return b.String()
}

// monthGrid lays out the month containing anchor as whole weeks starting
// on Monday; leading and trailing cells belong to the neighbouring
// months.
func monthGrid(anchor time.Time) [][]time.Time {
	monthStart := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	monthEnd := monthStart.AddDate(0, 1, -1)

	offset := (int(monthStart.Weekday()) + 6) % 7
	day := monthStart.AddDate(0, 0, -offset)

	var weeks [][]time.Time
	var week []time.Time
	for {
		week = append(week, day)
		if len(week) == 7 {
			weeks = append(weeks, week)
			if !day.Before(monthEnd) {
				break
			}
			week = nil
		}
		day = day.AddDate(0, 0, 1)
	}
	return weeks
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
