package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24"))
	doneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Strikethrough(true)
	activeField   = lipgloss.NewStyle().Foreground(lipgloss.Color("33"))

	priorityStyles = map[string]lipgloss.Style{
		"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
)

// PriorityStyle returns the badge style for a priority name.
func PriorityStyle(priority string) lipgloss.Style {
	if style, ok := priorityStyles[priority]; ok {
		return style
	}
	return mutedStyle
}
