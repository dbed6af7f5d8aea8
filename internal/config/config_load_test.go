package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/indaco/vext/internal/testutils"
)

/* ------------------------------------------------------------------------- */
/* LOAD CONFIG                                                               */
/* ------------------------------------------------------------------------- */

func TestLoadConfig(t *testing.T) {
	t.Run("valid yaml file", func(t *testing.T) {
		content := `format: json
theme: dracula
patterns:
  - suffix: Chart.yaml
    regex: '(?m)^version:\s*(\S+)'
    description: Helm chart
`
		tmpPath := testutils.WriteTempConfig(t, content)
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			checkConfigNil(t, cfg, false)

			if cfg.Format != FormatJSON {
				t.Errorf("format = %q, want json", cfg.Format)
			}
			if cfg.Theme != "dracula" {
				t.Errorf("theme = %q, want dracula", cfg.Theme)
			}
			if len(cfg.Patterns) != 1 || cfg.Patterns[0].Suffix != "Chart.yaml" {
				t.Fatalf("unexpected patterns: %+v", cfg.Patterns)
			}
			if cfg.Patterns[0].Regex != `(?m)^version:\s*(\S+)` {
				t.Errorf("regex = %q", cfg.Patterns[0].Regex)
			}
			if cfg.LoadedFrom != DefaultYAMLFile {
				t.Errorf("LoadedFrom = %q, want %q", cfg.LoadedFrom, DefaultYAMLFile)
			}
		})
	})

	t.Run("valid toml file", func(t *testing.T) {
		content := `format = "text"

[[patterns]]
suffix = ".gemspec"
regex = 'version\s*=\s*"(.*?)"'
`
		tmpPath := testutils.WriteTempFile(t, DefaultTOMLFile, content)
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			checkConfigNil(t, cfg, false)

			if len(cfg.Patterns) != 1 || cfg.Patterns[0].Suffix != ".gemspec" {
				t.Fatalf("unexpected patterns: %+v", cfg.Patterns)
			}
			if cfg.LoadedFrom != DefaultTOMLFile {
				t.Errorf("LoadedFrom = %q, want %q", cfg.LoadedFrom, DefaultTOMLFile)
			}
		})
	})

	t.Run("yaml wins over toml", func(t *testing.T) {
		tmpPath := testutils.WriteTempConfig(t, "format: json\n")
		dir := filepath.Dir(tmpPath)
		if err := os.WriteFile(filepath.Join(dir, DefaultTOMLFile), []byte(`format = "text"`), 0o644); err != nil {
			t.Fatal(err)
		}
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			if cfg.Format != FormatJSON {
				t.Errorf("format = %q, want json", cfg.Format)
			}
		})
	})

	t.Run("missing file fallback", func(t *testing.T) {
		tmpDir := t.TempDir()
		runInTempDir(t, filepath.Join(tmpDir, "dummy"), func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			checkConfigNil(t, cfg, true)
		})
	})

	t.Run("empty config falls back to text format", func(t *testing.T) {
		tmpPath := testutils.WriteTempConfig(t, "{}\n")
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, false)
			checkConfigNil(t, cfg, false)
			if cfg.Format != FormatText {
				t.Errorf("format = %q, want text", cfg.Format)
			}
		})
	})

	t.Run("unknown yaml field rejected", func(t *testing.T) {
		tmpPath := testutils.WriteTempConfig(t, "path: .version\n")
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, true)
			checkConfigNil(t, cfg, true)
		})
	})

	t.Run("unknown toml field rejected", func(t *testing.T) {
		tmpPath := testutils.WriteTempFile(t, DefaultTOMLFile, "colour = \"red\"\n")
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, true)
			checkConfigNil(t, cfg, true)
		})
	})

	t.Run("invalid yaml (bad format)", func(t *testing.T) {
		tmpPath := testutils.WriteTempConfig(t, "not_yaml::: true")
		runInTempDir(t, tmpPath, func() {
			cfg, err := LoadConfigFn()
			checkError(t, err, true)
			checkConfigNil(t, cfg, true)
		})
	})

	t.Run("read file error (directory instead of file)", func(t *testing.T) {
		tmpDir := t.TempDir()
		runInTempDir(t, filepath.Join(tmpDir, "dummy"), func() {
			if err := os.Mkdir(DefaultYAMLFile, 0o755); err != nil {
				t.Fatal(err)
			}
			cfg, err := LoadConfigFn()
			checkError(t, err, true)
			checkConfigNil(t, cfg, true)
		})
	})
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Run("absolute path", func(t *testing.T) {
		path := testutils.WriteTempFile(t, "custom.toml", "format = \"json\"\n")
		t.Setenv("VEXT_CONFIG", path)

		cfg, err := LoadConfigFn()
		checkError(t, err, false)
		checkConfigNil(t, cfg, false)
		if cfg.Format != FormatJSON {
			t.Errorf("format = %q, want json", cfg.Format)
		}
		if cfg.LoadedFrom != path {
			t.Errorf("LoadedFrom = %q, want %q", cfg.LoadedFrom, path)
		}
	})

	t.Run("path traversal rejected", func(t *testing.T) {
		t.Setenv("VEXT_CONFIG", "../../../etc/.vext.yaml")

		cfg, err := LoadConfigFn()
		checkError(t, err, true)
		checkConfigNil(t, cfg, true)
		if err.Error() != "invalid VEXT_CONFIG: path traversal not allowed, use absolute path instead" {
			t.Errorf("unexpected error message: %v", err)
		}
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		t.Setenv("VEXT_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

		_, err := LoadConfigFn()
		checkError(t, err, true)
	})
}
