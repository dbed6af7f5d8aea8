// Package initialize implements the "init" command, which writes a starter
// .vext.yaml to the working directory.
package initialize

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/core"
	"github.com/indaco/vext/internal/printer"
	"github.com/urfave/cli/v3"
)

const configHeader = `# vext configuration file
#
# format: default output, "text", "json" or "actions"
# theme:  prompt theme (vext, base, base16, catppuccin, charm, dracula)
# patterns: extra suffix rules, tried in order before the built-in
#           .csproj and package.json defaults. Each regex needs a
#           capturing group for the version.
#
# patterns:
#   - suffix: Chart.yaml
#     regex: '(?m)^version:\s*(\S+)'
#     description: Helm chart

`

// commentedMarshaler renders YAML preceded by configHeader.
type commentedMarshaler struct{}

func (commentedMarshaler) Marshal(v any) ([]byte, error) {
	return GenerateConfigWithComments(v)
}

// GenerateConfigWithComments marshals cfg to YAML with an explanatory header.
func GenerateConfigWithComments(cfg any) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, err
	}
	return append([]byte(configHeader), data...), nil
}

// Run returns the "init" command.
func Run() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create a starter " + config.DefaultYAMLFile,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "force",
				Usage: "Overwrite an existing config file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runInitCmd(ctx, cmd, core.NewOSFileSystem(), config.DefaultYAMLFile)
		},
	}
}

func runInitCmd(ctx context.Context, cmd *cli.Command, filesystem core.FileSystem, path string) error {
	if !cmd.Bool("force") {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", path, err)
		}
	}

	saver := config.NewConfigSaver(commentedMarshaler{}, filesystem)
	if err := saver.SaveTo(ctx, config.Default(), path); err != nil {
		return err
	}

	fmt.Fprintln(cmd.Root().Writer, printer.Success("Created "+path))
	return nil
}
