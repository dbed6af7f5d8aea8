// Package operations provides the end-to-end extraction run shared by the
// CLI and the GitHub Actions entry point.
package operations

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/indaco/vext/internal/core"
	"github.com/indaco/vext/internal/extract"
	"github.com/indaco/vext/internal/inputs"
	"github.com/indaco/vext/internal/logging"
	"github.com/indaco/vext/internal/pattern"
	"github.com/indaco/vext/internal/report"
)

// ExtractOperation resolves inputs, selects a pattern, extracts the version
// and publishes it.
type ExtractOperation struct {
	fs       core.FileSystem
	resolver *inputs.Resolver
	rules    []pattern.Rule
	reporter report.Reporter
	logger   *slog.Logger
}

// NewExtractOperation creates a new extract operation. rules are the
// configured suffix rules consulted before the built-in defaults.
func NewExtractOperation(fs core.FileSystem, resolver *inputs.Resolver, rules []pattern.Rule, reporter report.Reporter, logger *slog.Logger) *ExtractOperation {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ExtractOperation{
		fs:       fs,
		resolver: resolver,
		rules:    rules,
		reporter: reporter,
		logger:   logger,
	}
}

// Execute performs the run. Nothing is published unless every step succeeds.
func (op *ExtractOperation) Execute(ctx context.Context) (*extract.Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	in, err := op.resolver.Resolve()
	if err != nil {
		return nil, err
	}
	op.logger.Debug("resolved inputs", "file", in.FilePath, "regex", in.Regex)

	p, err := pattern.Select(in.FilePath, in.Regex, op.rules)
	if err != nil {
		return nil, err
	}
	op.logger.Debug("selected pattern", "pattern", p.String(), "source", p.Source, "description", p.Description)

	res, err := extract.New(op.fs).ExtractPattern(ctx, in.FilePath, p)
	if err != nil {
		return nil, err
	}
	op.logger.Debug("extracted version", "version", res.Version)

	if err := op.reporter.Report(res); err != nil {
		return nil, fmt.Errorf("failed to publish version: %w", err)
	}

	return res, nil
}
