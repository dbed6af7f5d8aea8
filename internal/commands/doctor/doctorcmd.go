package doctor

import (
	"context"
	"fmt"
	"io"

	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/printer"
	"github.com/urfave/cli/v3"
)

// Run returns the "doctor" command. loadErr is reported as a failed check
// instead of aborting, so a broken config file can still be diagnosed.
func Run(cfg *config.Config, loadErr error) *cli.Command {
	return &cli.Command{
		Name:    "doctor",
		Aliases: []string{"check"},
		Usage:   "Validate the vext configuration file",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runDoctorCmd(cmd.Root().Writer, cfg, loadErr)
		},
	}
}

func runDoctorCmd(w io.Writer, cfg *config.Config, loadErr error) error {
	path := ""
	if cfg != nil {
		path = cfg.LoadedFrom
	}

	results := config.NewValidator(cfg, path).WithLoadError(loadErr).Validate()
	for _, r := range results {
		var status string
		switch {
		case r.Passed:
			status = printer.Success("✓")
		case r.Warning:
			status = printer.Warning("⚠")
		default:
			status = printer.Error("✗")
		}
		fmt.Fprintf(w, "%s %s: %s\n", status, printer.Bold(r.Category), r.Message)
	}

	errs, warns := config.ErrorCount(results), config.WarningCount(results)
	fmt.Fprintln(w, printer.Faint(fmt.Sprintf("%d error(s), %d warning(s)", errs, warns)))

	if config.HasErrors(results) {
		return fmt.Errorf("configuration has %d error(s)", errs)
	}
	return nil
}
