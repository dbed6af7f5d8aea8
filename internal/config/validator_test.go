package config

import (
	"errors"
	"testing"

	"github.com/indaco/vext/internal/pattern"
)

func TestValidator_Validate(t *testing.T) {
	tests := []struct {
		name         string
		cfg          *Config
		path         string
		wantErrors   int
		wantWarnings int
	}{
		{
			name: "no config",
			cfg:  nil,
		},
		{
			name: "defaults",
			cfg:  Default(),
		},
		{
			name: "valid rules",
			cfg: &Config{
				Format: FormatJSON,
				Theme:  "charm",
				Patterns: []pattern.Rule{
					{Suffix: "Chart.yaml", Regex: `(?m)^version:\s*(\S+)`},
					{Suffix: ".gemspec", Regex: `version\s*=\s*"(.*?)"`},
				},
			},
			path: ".vext.yaml",
		},
		{
			name:       "unknown format",
			cfg:        &Config{Format: "xml"},
			wantErrors: 1,
		},
		{
			name: "actions format",
			cfg:  &Config{Format: FormatActions},
		},
		{
			name:         "unknown theme warns",
			cfg:          &Config{Theme: "neon"},
			wantWarnings: 1,
		},
		{
			name: "bad rules",
			cfg: &Config{Patterns: []pattern.Rule{
				{Suffix: "", Regex: `(x)`},
				{Suffix: ".a", Regex: ""},
				{Suffix: ".b", Regex: "[bad"},
				{Suffix: ".c", Regex: `\d+`},
			}},
			wantErrors: 4,
		},
		{
			name: "duplicate suffix warns",
			cfg: &Config{Patterns: []pattern.Rule{
				{Suffix: ".a", Regex: `(x)`},
				{Suffix: ".a", Regex: `(y)`},
			}},
			wantWarnings: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results := NewValidator(tt.cfg, tt.path).Validate()

			if got := ErrorCount(results); got != tt.wantErrors {
				t.Errorf("ErrorCount = %d, want %d (%+v)", got, tt.wantErrors, results)
			}
			if got := WarningCount(results); got != tt.wantWarnings {
				t.Errorf("WarningCount = %d, want %d (%+v)", got, tt.wantWarnings, results)
			}
			if HasErrors(results) != (tt.wantErrors > 0) {
				t.Errorf("HasErrors = %v", HasErrors(results))
			}
		})
	}
}

func TestValidator_LoadError(t *testing.T) {
	loadErr := errors.New(`failed to parse ".vext.yaml": unknown field "unknown"`)

	results := NewValidator(Default(), "").WithLoadError(loadErr).Validate()

	if got := ErrorCount(results); got != 1 {
		t.Fatalf("ErrorCount = %d, want 1 (%+v)", got, results)
	}
	if results[0].Category != "Config File" || results[0].Message != loadErr.Error() {
		t.Errorf("first result = %+v", results[0])
	}
}
