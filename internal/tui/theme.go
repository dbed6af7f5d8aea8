package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// currentTheme holds the currently configured theme for TUI components.
// When nil, currentThemeOrDefault() returns the default vextTheme.
var currentTheme *huh.Theme

// SetTheme sets the current theme by name.
// If the name is invalid or empty, the vext theme is used.
func SetTheme(name string) {
	if name == "" {
		currentTheme = nil
		return
	}
	// GetTheme returns nil for unknown names, which means the vext theme.
	currentTheme = GetTheme(name)
}

// currentThemeOrDefault returns the current theme for TUI components.
func currentThemeOrDefault() *huh.Theme {
	if currentTheme == nil {
		return vextTheme()
	}
	return currentTheme
}

// resetTheme resets the current theme to the default (vext).
// This is primarily useful for testing.
func resetTheme() {
	currentTheme = nil
}

// vext palette.
var (
	vextAccent = lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}
	vextMuted  = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// vextTheme is huh's base theme with a cyan accent and rounded focus border.
func vextTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent, muted := vextAccent, vextMuted

	t.Focused.Base = t.Focused.Base.BorderStyle(lipgloss.RoundedBorder()).BorderForeground(accent)
	t.Focused.Title = t.Focused.Title.Foreground(accent).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(accent)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Bold(true).Padding(0, 1).
		Foreground(lipgloss.Color("0")).Background(accent)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Padding(0, 1).Foreground(muted)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())

	t.Help.ShortKey = t.Help.ShortKey.Foreground(accent)
	t.Help.ShortDesc = t.Help.ShortDesc.Foreground(muted)

	return t
}
