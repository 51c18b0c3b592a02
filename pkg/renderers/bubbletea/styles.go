package bubbletea

import "github.com/charmbracelet/lipgloss"

// Styles groups the lipgloss styles applied by the model view.
type Styles struct {
	Label       lipgloss.Style
	Value       lipgloss.Style
	Placeholder lipgloss.Style
	ReadOnly    lipgloss.Style
	Error       lipgloss.Style
}

// DefaultStyles returns the built-in style set.
func DefaultStyles() Styles {
	return Styles{
		Label:       lipgloss.NewStyle().Bold(true),
		Value:       lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Faint(true),
		ReadOnly:    lipgloss.NewStyle().Faint(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}
