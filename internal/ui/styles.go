package ui

import "github.com/charmbracelet/lipgloss"

var (
	colorMagenta      = lipgloss.Color("5")
	colorLightMagenta = lipgloss.Color("13")
	colorLightRed     = lipgloss.Color("9")
	colorCyan         = lipgloss.Color("6")
	colorYellow       = lipgloss.Color("3")

	stylePromptPrefix = lipgloss.NewStyle().
				Foreground(colorMagenta)

	styleAnswerPrefix = lipgloss.NewStyle().
				Foreground(colorMagenta)

	styleAnswer = lipgloss.NewStyle().
			Foreground(colorLightMagenta).
			Italic(true)

	styleCursor = lipgloss.NewStyle().
			Foreground(colorLightMagenta)

	styleChecked = lipgloss.NewStyle().
			Foreground(colorLightMagenta)

	styleHelp = lipgloss.NewStyle().
			Foreground(colorMagenta)

	styleError = lipgloss.NewStyle().
			Foreground(colorLightRed)

	styleIdentifier = lipgloss.NewStyle().
			Foreground(colorCyan)

	styleKeyword = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleDim = lipgloss.NewStyle().
			Faint(true)

	styleSelectedDay = lipgloss.NewStyle().
				Foreground(colorLightMagenta).
				Bold(true).
				Reverse(true)
)
