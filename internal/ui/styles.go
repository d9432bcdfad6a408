package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

// Symbols for visual feedback.
const (
	SymbolCheck = "✓"
	SymbolCross = "✗"
)

// styles are bound to one renderer so stdout and stderr can differ in
// colour support.
type styles struct {
	success lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		success: r.NewStyle().Foreground(ColorSuccess),
		err:     r.NewStyle().Foreground(ColorError),
		muted:   r.NewStyle().Foreground(ColorMuted),
	}
}
