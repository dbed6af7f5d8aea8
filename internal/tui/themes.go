package tui

import (
	"slices"

	"github.com/charmbracelet/huh"
)

// themes maps config names to huh theme constructors. "vext" is the default.
var themes = map[string]func() *huh.Theme{
	"vext":       vextTheme,
	"base":       huh.ThemeBase,
	"base16":     huh.ThemeBase16,
	"catppuccin": huh.ThemeCatppuccin,
	"charm":      huh.ThemeCharm,
	"dracula":    huh.ThemeDracula,
}

// ValidThemes lists the accepted theme names, default first.
var ValidThemes = []string{"vext", "base", "base16", "catppuccin", "charm", "dracula"}

// IsValidTheme reports whether name is an accepted theme (case sensitive).
func IsValidTheme(name string) bool {
	return slices.Contains(ValidThemes, name)
}

// GetTheme returns the theme registered under name, or nil.
func GetTheme(name string) *huh.Theme {
	if build, ok := themes[name]; ok {
		return build()
	}
	return nil
}
