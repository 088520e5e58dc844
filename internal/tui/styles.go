package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("69")
	colorMuted  = lipgloss.Color("241")
	colorError  = lipgloss.Color("196")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")).
			Background(colorAccent).
			Padding(0, 1)

	countStyle = lipgloss.NewStyle().Foreground(colorMuted)

	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	completedStyle = lipgloss.NewStyle().Strikethrough(true).Foreground(colorMuted)

	newEntryStyle = lipgloss.NewStyle().Italic(true).Foreground(colorMuted)

	statusStyle = lipgloss.NewStyle().Foreground(colorError)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2).
			Width(40)

	modalTitleStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
)
