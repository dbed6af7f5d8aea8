package patterns

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/indaco/vext/internal/config"
	"github.com/indaco/vext/internal/pattern"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
)

func runApp(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := &cli.Command{
		Name:     "vext",
		Writer:   &out,
		Commands: []*cli.Command{Run(cfg)},
	}
	err := app.Run(context.Background(), append([]string{"vext", "patterns"}, args...))
	return out.String(), err
}

func TestEntries_ConfigFirst(t *testing.T) {
	cfg := &config.Config{Patterns: []pattern.Rule{{Suffix: "Chart.yaml", Regex: `version: (\S+)`}}}

	entries := Entries(cfg)
	if len(entries) != 1+len(pattern.Defaults()) {
		t.Fatalf("got %d entries", len(entries))
	}
	if entries[0].Suffix != "Chart.yaml" || entries[0].Source != pattern.SourceConfig {
		t.Errorf("first entry = %+v, want configured Chart.yaml", entries[0])
	}
	if entries[1].Source != pattern.SourceDefault {
		t.Errorf("second entry source = %q, want default", entries[1].Source)
	}
}

func TestEntries_NilConfig(t *testing.T) {
	if got := len(Entries(nil)); got != len(pattern.Defaults()) {
		t.Errorf("got %d entries, want %d", got, len(pattern.Defaults()))
	}
}

func TestPatternsCmd_Text(t *testing.T) {
	out, err := runApp(t, config.Default())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{".csproj", "package.json", "<Version>(.*?)</Version>", "default"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPatternsCmd_JSON(t *testing.T) {
	cfg := &config.Config{Patterns: []pattern.Rule{{Suffix: ".gemspec", Regex: `version = "(.*?)"`, Description: "Ruby gem"}}}

	out, err := runApp(t, cfg, "--format", "json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !gjson.Valid(out) {
		t.Fatalf("invalid JSON: %s", out)
	}
	if n := gjson.Get(out, "patterns.#").Int(); n != 3 {
		t.Errorf("patterns.# = %d, want 3", n)
	}
	if got := gjson.Get(out, "patterns.0.suffix").String(); got != ".gemspec" {
		t.Errorf("patterns.0.suffix = %q", got)
	}
	if got := gjson.Get(out, "patterns.0.source").String(); got != "config" {
		t.Errorf("patterns.0.source = %q", got)
	}
	if got := gjson.Get(out, "patterns.0.description").String(); got != "Ruby gem" {
		t.Errorf("patterns.0.description = %q", got)
	}
	if got := gjson.Get(out, "patterns.2.suffix").String(); got != "package.json" {
		t.Errorf("patterns.2.suffix = %q", got)
	}
}

func TestPatternsCmd_RejectedFormats(t *testing.T) {
	for _, format := range []string{"xml", "actions"} {
		t.Run(format, func(t *testing.T) {
			_, err := runApp(t, nil, "--format", format)
			if err == nil {
				t.Fatalf("expected error for format %q", format)
			}
			if !strings.Contains(err.Error(), format) {
				t.Errorf("error should name the format: %v", err)
			}
		})
	}
}
