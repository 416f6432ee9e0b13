package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Label       lipgloss.Style
	Destination lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	SelectionBg lipgloss.Style
	Cursor      lipgloss.Style
	NotFound    lipgloss.Style
	Error       lipgloss.Style
	Success     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Destination: lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Dim:         lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Cursor:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		NotFound:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
	}
}
