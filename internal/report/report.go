// Package report publishes the extracted version to the host: a GitHub
// Actions step output, plain text, or a JSON document.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/indaco/vext/internal/core"
	"github.com/indaco/vext/internal/extract"
	"github.com/indaco/vext/internal/printer"
	"github.com/sethvargo/go-githubactions"
	"github.com/tidwall/sjson"
)

// OutputName is the step output the version is published under.
const OutputName = "version"

// Format selects a Reporter.
type Format string

const (
	// FormatText prints the bare version.
	FormatText Format = "text"

	// FormatJSON prints a JSON object describing the result.
	FormatJSON Format = "json"

	// FormatActions sets the GitHub Actions step output.
	FormatActions Format = "actions"
)

// Formats lists every accepted format name.
var Formats = []Format{FormatText, FormatJSON, FormatActions}

// ParseFormat converts a string to a Format. An empty string means FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatActions:
		return FormatActions, nil
	default:
		return "", fmt.Errorf("unknown output format %q (use text, json or actions)", s)
	}
}

// Reporter publishes the outcome of a run.
type Reporter interface {
	// Report publishes a successful result.
	Report(res *extract.Result) error

	// Fail surfaces a terminal error to the host.
	Fail(err error)
}

// Options configures New.
type Options struct {
	// Stdout receives results.
	Stdout io.Writer

	// Stderr receives human-readable failures in text mode.
	Stderr io.Writer

	// Verbose adds a styled summary on Stderr in text mode.
	Verbose bool

	// Getenv is used by the Actions reporter to locate GITHUB_OUTPUT.
	// Nil reads the process environment.
	Getenv func(string) string
}

// New returns the Reporter for format.
func New(format Format, opts Options) Reporter {
	switch format {
	case FormatJSON:
		return &JSONReporter{w: opts.Stdout}
	case FormatActions:
		return NewActionsReporter(opts.Stdout, opts.Getenv)
	default:
		return &TextReporter{out: opts.Stdout, err: opts.Stderr, verbose: opts.Verbose}
	}
}

// TextReporter prints the version on its own line. Stdout carries nothing
// else, so the output can be captured by a shell.
type TextReporter struct {
	out     io.Writer
	err     io.Writer
	verbose bool
}

// Report implements Reporter.
func (r *TextReporter) Report(res *extract.Result) error {
	if _, err := fmt.Fprintln(r.out, res.Version); err != nil {
		return err
	}
	if r.verbose {
		r.summary(res)
	}
	return nil
}

func (r *TextReporter) summary(res *extract.Result) {
	fmt.Fprintf(r.err, "%s %s\n", printer.Success("✓"), printer.Bold(res.Version))
	printer.FprintFaint(r.err, fmt.Sprintf("  file:    %s", res.Path))
	printer.FprintFaint(r.err, fmt.Sprintf("  pattern: %s", res.Pattern))
	printer.FprintFaint(r.err, fmt.Sprintf("  source:  %s", res.Source))
}

// Fail implements Reporter.
func (r *TextReporter) Fail(err error) {
	printer.FprintError(r.err, "Error: "+err.Error())
}

// JSONReporter writes one JSON object per call.
type JSONReporter struct {
	w io.Writer
}

// Report implements Reporter.
func (r *JSONReporter) Report(res *extract.Result) error {
	doc, err := buildJSON(map[string]string{
		"version": res.Version,
		"file":    res.Path,
		"pattern": res.Pattern,
		"source":  res.Source.String(),
	}, []string{"version", "file", "pattern", "source"})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, doc)
	return err
}

// Fail implements Reporter.
func (r *JSONReporter) Fail(err error) {
	fields := map[string]string{"error": err.Error()}
	keys := []string{"error"}
	if kind := core.KindOf(err); kind != 0 {
		fields["kind"] = kind.String()
		keys = append(keys, "kind")
	}
	doc, jerr := buildJSON(fields, keys)
	if jerr != nil {
		return
	}
	_, _ = fmt.Fprintln(r.w, doc)
}

// buildJSON sets keys in order so the output is stable.
func buildJSON(fields map[string]string, keys []string) (string, error) {
	doc := "{}"
	for _, k := range keys {
		var err error
		doc, err = sjson.Set(doc, k, fields[k])
		if err != nil {
			return "", fmt.Errorf("failed to encode %q: %w", k, err)
		}
	}
	return doc, nil
}

// ActionsReporter sets the step output and reports failures as workflow
// error annotations.
type ActionsReporter struct {
	action *githubactions.Action
}

// NewActionsReporter creates an ActionsReporter writing workflow commands to w.
func NewActionsReporter(w io.Writer, getenv func(string) string) *ActionsReporter {
	opts := []githubactions.Option{githubactions.WithWriter(w)}
	if getenv != nil {
		opts = append(opts, githubactions.WithGetenv(getenv))
	}
	return &ActionsReporter{action: githubactions.New(opts...)}
}

// Report implements Reporter.
func (r *ActionsReporter) Report(res *extract.Result) error {
	if res == nil {
		return errors.New("nothing to report")
	}
	if err := r.setOutput(OutputName, res.Version); err != nil {
		return err
	}
	r.action.Infof("Extracted version %s from %s", res.Version, res.Path)
	return nil
}

// setOutput wraps Action.SetOutput, which panics when the GITHUB_OUTPUT
// file cannot be opened or written.
func (r *ActionsReporter) setOutput(name, value string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			if perr, ok := p.(error); ok {
				err = fmt.Errorf("failed to set output %q: %w", name, perr)
				return
			}
			err = fmt.Errorf("failed to set output %q: %v", name, p)
		}
	}()
	r.action.SetOutput(name, value)
	return nil
}

// Fail implements Reporter.
func (r *ActionsReporter) Fail(err error) {
	r.action.Errorf("%s", err.Error())
}
