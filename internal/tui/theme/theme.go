// Package theme holds the terminal palette and styles shared by the TUI
// panes.
package theme

import "github.com/charmbracelet/lipgloss"

// Color palette.
const (
	ColorHeader   = lipgloss.Color("63")  // Purple
	ColorLabel    = lipgloss.Color("245") // Gray
	ColorValue    = lipgloss.Color("255") // White
	ColorBorder   = lipgloss.Color("240") // Dark gray
	ColorSelected = lipgloss.Color("212") // Pink
	ColorSpinner  = lipgloss.Color("205")
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader)

	// NameStyle is the heading of a party card.
	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorValue)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel)

	SubtleStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Italic(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorSelected)

	RowStyle = lipgloss.NewStyle()

	SpinnerStyle = lipgloss.NewStyle().
			Foreground(ColorSpinner)
)

// BoxStyle frames the details pane.
var BoxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(ColorBorder).
	Padding(0, 1)
