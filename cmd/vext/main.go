package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/indaco/vext/internal/cli"
	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/printer"
	"github.com/indaco/vext/internal/report"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		var reported *cli.ReportedError
		if !errors.As(err, &reported) {
			reportFailure(err)
		}
		os.Exit(1)
	}
}

// runCLI loads the configuration and runs the root command with args.
// A config file that fails to load is handed to the CLI rather than
// returned, so doctor and init can still run against it.
func runCLI(args []string) error {
	cfg, loadErr := config.LoadConfigFn()
	if cfg == nil || loadErr != nil {
		cfg = config.Default()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return cli.New(cfg, loadErr).Run(ctx, args)
}

// reportFailure surfaces errors raised before a reporter was chosen.
func reportFailure(err error) {
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		report.NewActionsReporter(os.Stdout, nil).Fail(err)
		return
	}
	printer.FprintError(os.Stderr, "Error: "+err.Error())
}
