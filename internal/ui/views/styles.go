package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Scan          lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	Count         lipgloss.Style
	Prompt        lipgloss.Style
	Help          lipgloss.Style
	Main          lipgloss.Style
	Cell          lipgloss.Style
	BlankCell     lipgloss.Style
	CellIndex     lipgloss.Style
	CellLabel     lipgloss.Style
	CellDetail    lipgloss.Style
	CellError     lipgloss.Style
	StatusError   lipgloss.Style
	StatusMessage lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Scan:   lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		Dim:    lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Count:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true), // yellow
		Prompt: lipgloss.NewStyle().Bold(true),
		Help:   lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Cell: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")),
		BlankCell: lipgloss.NewStyle().
			Border(lipgloss.HiddenBorder()),
		CellIndex:     lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		CellLabel:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CellDetail:    lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		CellError:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusMessage: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
	}
}

// KindColor returns the color used for an entry kind tag
func KindColor(kind string) string {
	switch kind {
	case "archive":
		return "214" // yellow
	case "pdf":
		return "33" // blue
	default:
		return "241"
	}
}
