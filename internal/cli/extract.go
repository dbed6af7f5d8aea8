package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/core"
	"github.com/indaco/vext/internal/inputs"
	"github.com/indaco/vext/internal/logging"
	"github.com/indaco/vext/internal/operations"
	"github.com/indaco/vext/internal/report"
	"github.com/indaco/vext/internal/tui"
	urfavecli "github.com/urfave/cli/v3"
)

// ReportedError marks an error the active reporter has already surfaced,
// so the entry point only needs to set the exit status.
type ReportedError struct {
	Err error
}

func (e *ReportedError) Error() string {
	return e.Err.Error()
}

func (e *ReportedError) Unwrap() error {
	return e.Err
}

// runExtract is the root command action.
func runExtract(ctx context.Context, cmd *urfavecli.Command, cfg *config.Config) error {
	root := cmd.Root()
	format, err := ResolveFormat(cmd.IsSet("format"), cmd.String("format"), os.Getenv)
	if err != nil {
		return err
	}

	rep := report.New(format, report.Options{
		Stdout:  root.Writer,
		Stderr:  root.ErrWriter,
		Verbose: cmd.Bool("verbose"),
	})
	logger := logging.New(root.ErrWriter, logging.Level(cmd.Bool("debug")))

	getter := inputs.Chain{flagGetter(cmd), inputs.FromActions(nil)}

	var prompt inputs.Prompter
	if !cmd.Bool("no-interactive") && format != report.FormatActions && tui.IsInteractive() {
		prompt = promptFilePath
	}

	op := operations.NewExtractOperation(
		core.NewOSFileSystem(),
		inputs.NewResolver(getter, prompt),
		cfg.Patterns,
		rep,
		logger,
	)

	if _, err := op.Execute(ctx); err != nil {
		logger.Debug("extraction failed", "kind", core.KindOf(err), "error", err)
		rep.Fail(err)
		return &ReportedError{Err: err}
	}
	return nil
}

// ResolveFormat returns the explicit format when set, the Actions reporter
// when running under GitHub Actions, and the configured format otherwise.
// An unknown value is an error even when it would not be used.
func ResolveFormat(explicit bool, value string, getenv func(string) string) (report.Format, error) {
	format, err := report.ParseFormat(value)
	if err != nil {
		return "", err
	}
	if !explicit && getenv("GITHUB_ACTIONS") == "true" {
		return report.FormatActions, nil
	}
	return format, nil
}

// requireConfig fails commands that depend on a config file that could not
// be loaded. doctor and init stay usable so the file can be repaired.
func requireConfig(loadErr error) func(context.Context, *urfavecli.Command) (context.Context, error) {
	return func(ctx context.Context, _ *urfavecli.Command) (context.Context, error) {
		if loadErr != nil {
			return ctx, fmt.Errorf("failed to load configuration: %w", loadErr)
		}
		return ctx, nil
	}
}

// flagGetter exposes the --file and --regex flags as action inputs.
func flagGetter(cmd *urfavecli.Command) inputs.Getter {
	return inputs.GetterFunc(func(name string) string {
		switch name {
		case inputs.FilePathInput:
			return cmd.String("file")
		case inputs.RegexInput:
			return cmd.String("regex")
		default:
			return ""
		}
	})
}

func promptFilePath(string) (string, error) {
	return tui.Input("File path", "File to read the version from", "package.json")
}
