package classset

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ansiRenderer renders with 16 ANSI colors regardless of where output goes.
// Whether to color at all is decided by the caller (TTY, FORCE_COLOR, --color).
var ansiRenderer = newANSIRenderer()

func newANSIRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI)
	return r
}

// Terminal styles for the class combination report.
var (
	// StyleClasses is used for class set headers and section titles.
	StyleClasses = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleFile is used for file paths of code locations.
	StyleFile = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	// StyleLine is used for line numbers of code locations.
	StyleLine = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	// StyleCount is used for occurrence counts and hints.
	StyleCount = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	// StyleError is used for fatal diagnostics.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
)

// RenderStyle applies a lipgloss style to text when colors are enabled.
// When useColors is false, the text is returned unmodified.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Renderer(ansiRenderer).Render(text)
}
