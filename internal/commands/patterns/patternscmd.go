// Package patterns implements the "patterns" command, which lists the suffix
// rules vext consults when no regex is given.
package patterns

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/pattern"
	"github.com/indaco/vext/internal/printer"
	"github.com/tidwall/sjson"
	"github.com/urfave/cli/v3"
)

// Entry is one rule together with where it comes from.
type Entry struct {
	pattern.Rule
	Source pattern.Source `json:"source"`
}

// Run returns the "patterns" command.
func Run(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:    "patterns",
		Aliases: []string{"ls"},
		Usage:   "List the file types vext recognizes without a regex",
		UsageText: `vext patterns [options]

Configured patterns (from .vext.yaml or .vext.toml) are listed first because
they are consulted before the built-in defaults.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"o"},
				Usage:   "Output format: text, json",
				Value:   config.FormatText,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runPatternsCmd(cmd.Root().Writer, cfg, cmd.String("format"))
		},
	}
}

// Entries returns configured rules followed by the built-in defaults.
func Entries(cfg *config.Config) []Entry {
	var entries []Entry
	if cfg != nil {
		for _, r := range cfg.Patterns {
			entries = append(entries, Entry{Rule: r, Source: pattern.SourceConfig})
		}
	}
	for _, r := range pattern.Defaults() {
		entries = append(entries, Entry{Rule: r, Source: pattern.SourceDefault})
	}
	return entries
}

func runPatternsCmd(w io.Writer, cfg *config.Config, format string) error {
	entries := Entries(cfg)

	switch format {
	case config.FormatJSON:
		doc, err := FormatJSON(entries)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, doc)
		return err
	case config.FormatText, "":
		_, err := io.WriteString(w, FormatText(entries))
		return err
	case config.FormatActions:
		return fmt.Errorf("output format %q does not apply to patterns (use text or json)", format)
	default:
		return fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// FormatText renders entries as an aligned table.
func FormatText(entries []Entry) string {
	var sb strings.Builder

	sb.WriteString(printer.Info("Known patterns"))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "%-20s %-9s %s\n", "SUFFIX", "SOURCE", "REGEX")
	sb.WriteString(printer.Faint(strings.Repeat("-", 70)))
	sb.WriteString("\n")
	for _, e := range entries {
		fmt.Fprintf(&sb, "%-20s %-9s %s", e.Suffix, e.Source, e.Regex)
		if e.Description != "" {
			sb.WriteString(" " + printer.Faint("("+e.Description+")"))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// FormatJSON renders entries as {"patterns": [...]}.
func FormatJSON(entries []Entry) (string, error) {
	doc := `{"patterns":[]}`
	for _, e := range entries {
		var err error
		doc, err = sjson.Set(doc, "patterns.-1", e)
		if err != nil {
			return "", fmt.Errorf("failed to encode pattern %q: %w", e.Suffix, err)
		}
	}
	return doc, nil
}
