package ui

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the live view.
type Theme struct {
	Title  lipgloss.Style
	Page   lipgloss.Style
	Clock  lipgloss.Style
	Frame  lipgloss.Style
	Status lipgloss.Style
	Now    lipgloss.Style
	Error  lipgloss.Style
	Help   lipgloss.Style
}

// DefaultTheme returns the built-in styles.
func DefaultTheme() Theme {
	return Theme{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Page:   lipgloss.NewStyle().Bold(true),
		Clock:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Frame:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Now:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
