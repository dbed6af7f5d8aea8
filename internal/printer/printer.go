// Package printer renders styled console output with lipgloss.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// SetNoColor switches all styles to plain ASCII output when disabled is true,
// and back to the color profile detected from the environment otherwise.
// NO_COLOR in the environment always wins.
func SetNoColor(disabled bool) {
	if disabled || os.Getenv("NO_COLOR") != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Faint returns text with faint styling.
func Faint(text string) string { return faintStyle.Render(text) }

// Bold returns text with bold styling.
func Bold(text string) string { return boldStyle.Render(text) }

// Success returns text in green.
func Success(text string) string { return successStyle.Render(text) }

// Error returns text in red.
func Error(text string) string { return errorStyle.Render(text) }

// Warning returns text in yellow.
func Warning(text string) string { return warningStyle.Render(text) }

// Info returns text in cyan.
func Info(text string) string { return infoStyle.Render(text) }

// FprintError writes text with error styling to w. Diagnostics go through
// these writers so they never mix with the version printed on stdout.
func FprintError(w io.Writer, text string) {
	fmt.Fprintln(w, Error(text))
}

// FprintFaint writes text with faint styling to w.
func FprintFaint(w io.Writer, text string) {
	fmt.Fprintln(w, Faint(text))
}
