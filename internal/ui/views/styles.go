package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title        lipgloss.Style
	Dim          lipgloss.Style
	Status       lipgloss.Style
	Help         lipgloss.Style
	Main         lipgloss.Style
	Highlight    lipgloss.Style
	SelectionBg  lipgloss.Style
	InputLabel   lipgloss.Style
	PanelBox     lipgloss.Style
	PanelTitle   lipgloss.Style
	TableHeader  lipgloss.Style
	TableCell    lipgloss.Style
	PopupBox     lipgloss.Style
	PopupError   lipgloss.Style
	StatusError  lipgloss.Style
	StatusOk     lipgloss.Style
	StatusBusy   lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		SelectionBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		InputLabel:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		PanelBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1).
			BorderForeground(lipgloss.Color("241")),
		PanelTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("78")),
		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("241")),
		TableCell:   lipgloss.NewStyle(),
		PopupBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("78")),
		PopupError: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			BorderForeground(lipgloss.Color("203")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusOk:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		StatusBusy:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
	}
}
