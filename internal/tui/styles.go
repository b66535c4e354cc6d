package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Symbols for visual feedback.
const (
	SymbolCheck      = "✓"
	SymbolCross      = "✗"
	SymbolArrowRight = "→"
)

// Painter renders text with styles only when styling is enabled.
type Painter struct {
	styled bool
}

// NewPainter returns a Painter for the given writer, styled when DetectMode says so.
func NewPainter(w any) Painter {
	return Painter{styled: IsStyled(w)}
}

// Styled reports whether the painter emits styled text.
func (p Painter) Styled() bool {
	return p.styled
}

// Render applies style to s, or returns s unchanged for plain output.
func (p Painter) Render(style lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return style.Render(s)
}

// Status renders a probe outcome. ok selects the success style and check mark.
func (p Painter) Status(ok bool, s string) string {
	if !p.styled {
		return s
	}
	if ok {
		return SuccessStyle.Render(SymbolCheck + " " + s)
	}
	return WarningStyle.Render(SymbolCross + " " + s)
}
