package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// ErrCanceled is returned when the user aborts a prompt.
var ErrCanceled = errors.New("prompt canceled")

// Input asks for a single non-empty line of text and returns it trimmed.
func Input(title, description, placeholder string) (string, error) {
	var value string

	input := huh.NewInput().
		Title(title).
		Description(description).
		Placeholder(placeholder).
		Value(&value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("a value is required")
			}
			return nil
		})

	err := huh.NewForm(huh.NewGroup(input)).
		WithTheme(currentThemeOrDefault()).
		Run()
	if err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCanceled
		}
		return "", err
	}

	return strings.TrimSpace(value), nil
}
