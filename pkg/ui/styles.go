package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// UI color scheme
var (
	indigo = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	yellow = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	gray   = lipgloss.AdaptiveColor{Light: "#9E9E9E", Dark: "#BDBDBD"}
	black  = lipgloss.Color("#000000")
)

// UI styles
var (
	normalModeStyle = lipgloss.NewStyle().
			Background(indigo).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)

	labelModeStyle = lipgloss.NewStyle().
			Background(yellow).
			Foreground(black).
			Bold(true).
			Padding(0, 1)

	bufferStyle = lipgloss.NewStyle().
			Foreground(yellow).
			Bold(true).
			Padding(0, 1)

	urlStyle = lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1)

	lastStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true).
			Padding(0, 1)
)
