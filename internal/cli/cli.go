package cli

import (
	"context"
	"fmt"

	"github.com/indaco/vext/internal/commands/doctor"
	"github.com/indaco/vext/internal/commands/initialize"
	"github.com/indaco/vext/internal/commands/patterns"
	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/printer"
	"github.com/indaco/vext/internal/tui"
	"github.com/indaco/vext/internal/version"
	urfavecli "github.com/urfave/cli/v3"
)

var noColorFlag bool

// New builds and returns the root CLI command. Run without a subcommand it
// extracts the version from --file (or the file_path action input).
// loadErr is the error from loading the config file, if any; cfg must then
// hold the defaults.
func New(cfg *config.Config, loadErr error) *urfavecli.Command {
	patternsCmd := patterns.Run(cfg)
	patternsCmd.Before = requireConfig(loadErr)

	return &urfavecli.Command{
		Name:    "vext",
		Version: fmt.Sprintf("v%s", version.GetVersion()),
		Usage:   "Extract a version string from a file with a regular expression",
		UsageText: `vext --file <path> [--regex <pattern>] [options]
vext <command> [options]

Without --regex, .csproj files use <Version>(.*?)</Version> and package.json
files use "version":\s*"(.*?)". Under GitHub Actions the result is published
as the "version" step output.`,
		EnableShellCompletion: true,
		Flags: []urfavecli.Flag{
			&urfavecli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "File to read the version from",
				Sources: urfavecli.EnvVars("VEXT_FILE"),
			},
			&urfavecli.StringFlag{
				Name:    "regex",
				Aliases: []string{"r"},
				Usage:   "Regex with a capturing group for the version (overrides the default for the file type)",
				Sources: urfavecli.EnvVars("VEXT_REGEX"),
			},
			&urfavecli.StringFlag{
				Name:        "format",
				Aliases:     []string{"o"},
				Usage:       "Output format: text, json, actions",
				Value:       cfg.Format,
				DefaultText: "text, or actions under GitHub Actions",
				Sources:     urfavecli.EnvVars("VEXT_FORMAT"),
			},
			&urfavecli.BoolFlag{
				Name:  "no-interactive",
				Usage: "Never prompt for a missing file path",
			},
			&urfavecli.BoolFlag{
				Name:    "verbose",
				Usage:   "Print a summary of the file, pattern and source to stderr",
				Sources: urfavecli.EnvVars("VEXT_VERBOSE"),
			},
			&urfavecli.BoolFlag{
				Name:    "debug",
				Usage:   "Log each step to stderr",
				Sources: urfavecli.EnvVars("VEXT_DEBUG"),
			},
			&urfavecli.BoolFlag{
				Name:        "no-color",
				Usage:       "Disable colored output",
				Destination: &noColorFlag,
			},
		},
		Before: func(ctx context.Context, cmd *urfavecli.Command) (context.Context, error) {
			printer.SetNoColor(noColorFlag)
			tui.SetTheme(cfg.Theme)
			return ctx, nil
		},
		Action: func(ctx context.Context, cmd *urfavecli.Command) error {
			if _, err := requireConfig(loadErr)(ctx, cmd); err != nil {
				return err
			}
			return runExtract(ctx, cmd, cfg)
		},
		Commands: []*urfavecli.Command{
			patternsCmd,
			doctor.Run(cfg, loadErr),
			initialize.Run(),
		},
	}
}
