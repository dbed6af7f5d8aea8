package config

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/vext/internal/core"
	"github.com/indaco/vext/internal/pattern"
	"github.com/pelletier/go-toml/v2"
)

// Default config file names, in lookup order.
const (
	DefaultYAMLFile = ".vext.yaml"
	DefaultTOMLFile = ".vext.toml"
)

// Output formats accepted by the format setting.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatActions = "actions"
)

// Config is the main configuration structure for vext.
type Config struct {
	// Format is the default output format ("text", "json" or "actions").
	Format string `yaml:"format,omitempty" toml:"format,omitempty"`

	// Theme names the huh theme used by interactive prompts.
	Theme string `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Patterns are extra suffix rules consulted before the built-in defaults.
	Patterns []pattern.Rule `yaml:"patterns,omitempty" toml:"patterns,omitempty"`

	// LoadedFrom is the file the config was read from, empty for defaults.
	LoadedFrom string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{Format: FormatText}
}

// ConfigSaver handles configuration saving with injected dependencies.
type ConfigSaver struct {
	marshaler core.Marshaler
	fs        core.FileSystem
}

// yamlMarshaler is the production implementation of core.Marshaler using YAML.
type yamlMarshaler struct{}

func (m *yamlMarshaler) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// NewConfigSaver creates a ConfigSaver with the given dependencies.
// If any dependency is nil, the production default is used.
func NewConfigSaver(marshaler core.Marshaler, fs core.FileSystem) *ConfigSaver {
	if marshaler == nil {
		marshaler = &yamlMarshaler{}
	}
	if fs == nil {
		fs = core.NewOSFileSystem()
	}
	return &ConfigSaver{marshaler: marshaler, fs: fs}
}

// SaveTo saves the configuration to the given path.
func (s *ConfigSaver) SaveTo(ctx context.Context, cfg *Config, configFile string) error {
	data, err := s.marshaler.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to %q: %w", configFile, err)
	}

	if err := s.fs.WriteFile(ctx, configFile, data, ConfigFilePerm); err != nil {
		return fmt.Errorf("failed to write config to %q: %w", configFile, err)
	}

	return nil
}

// LoadConfigFn is the config loader used by the CLI. Tests may replace it.
var LoadConfigFn = loadConfig

func loadConfig() (*Config, error) {
	// Highest priority: ENV variable
	if envPath := os.Getenv("VEXT_CONFIG"); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		// Reject relative paths with traversal (use absolute paths instead)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid VEXT_CONFIG: path traversal not allowed, use absolute path instead")
		}
		return LoadFile(cleanPath)
	}

	for _, name := range []string{DefaultYAMLFile, DefaultTOMLFile} {
		cfg, err := LoadFile(name)
		if err == nil {
			return cfg, nil
		}
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	return nil, nil // fallback to default
}

// LoadFile reads the config at path, choosing the decoder by extension.
// Files ending in .toml are decoded as TOML, everything else as YAML.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", path, err)
		}
	} else {
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %q: %w", path, err)
		}
	}

	if cfg.Format == "" {
		cfg.Format = FormatText
	}
	cfg.LoadedFrom = path

	return &cfg, nil
}

// ConfigFilePerm defines secure file permissions for config files (owner read/write only).
const ConfigFilePerm = core.PermOwnerRW
