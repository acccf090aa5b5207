package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette: indigo and vermilion, after woodblock prints
var (
	Primary   = lipgloss.Color("#E4572E") // Vermilion
	Secondary = lipgloss.Color("#3D5A98") // Indigo
	Accent    = lipgloss.Color("#F2C14E") // Gold leaf
	Success   = lipgloss.Color("#4CAF7A") // Pine
	Error     = lipgloss.Color("#D7263D") // Crimson
	Text      = lipgloss.Color("#F5F0E6") // Washi
	TextDim   = lipgloss.Color("#A39E93") // Ash
	BgCard    = lipgloss.Color("#1F2433") // Sumi
	Border    = lipgloss.Color("#3A4158") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Accent).
		Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	CardFlipped = Card.
			BorderForeground(Secondary)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Known = lipgloss.NewStyle().
		Foreground(Success)
)
