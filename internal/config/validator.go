package config

import (
	"fmt"
	"regexp"

	"github.com/indaco/vext/internal/pattern"
	"github.com/indaco/vext/internal/report"
	"github.com/indaco/vext/internal/tui"
)

// ValidationResult represents the result of a validation check.
type ValidationResult struct {
	// Category is the validation category (e.g., "Config File", "Pattern").
	Category string

	// Passed indicates if the check passed.
	Passed bool

	// Message provides details about the validation result.
	Message string

	// Warning indicates if this is a warning rather than an error.
	Warning bool
}

// Validator validates configuration files and settings.
type Validator struct {
	cfg         *Config
	configPath  string
	loadErr     error
	validations []ValidationResult
}

// NewValidator creates a new configuration validator.
// configPath is the file the config was loaded from, empty when defaults are in use.
func NewValidator(cfg *Config, configPath string) *Validator {
	return &Validator{
		cfg:         cfg,
		configPath:  configPath,
		validations: make([]ValidationResult, 0),
	}
}

// WithLoadError records that the config file could not be loaded. The
// failure is reported as a Config File error and the remaining checks run
// against cfg, which then holds the defaults.
func (v *Validator) WithLoadError(err error) *Validator {
	v.loadErr = err
	return v
}

// Validate runs all validation checks and returns the results.
func (v *Validator) Validate() []ValidationResult {
	v.validations = make([]ValidationResult, 0)

	v.validateSource()
	if v.cfg == nil {
		return v.validations
	}

	v.validateFormat()
	v.validateTheme()
	v.validatePatterns()

	return v.validations
}

func (v *Validator) validateSource() {
	if v.loadErr != nil {
		v.addValidation("Config File", false, v.loadErr.Error(), false)
		return
	}
	if v.configPath == "" || v.cfg == nil {
		v.addValidation("Config File", true, "No config file found, using defaults", false)
		return
	}
	v.addValidation("Config File", true, fmt.Sprintf("Loaded %s", v.configPath), false)
}

func (v *Validator) validateFormat() {
	format, err := report.ParseFormat(v.cfg.Format)
	if err != nil {
		v.addValidation("Format", false, err.Error(), false)
		return
	}
	v.addValidation("Format", true, fmt.Sprintf("Output format %q is valid", format), false)
}

func (v *Validator) validateTheme() {
	if v.cfg.Theme == "" {
		return
	}
	if !tui.IsValidTheme(v.cfg.Theme) {
		v.addValidation("Theme", false,
			fmt.Sprintf("Unknown theme %q, falling back to the default", v.cfg.Theme), true)
		return
	}
	v.addValidation("Theme", true, fmt.Sprintf("Theme %q is valid", v.cfg.Theme), false)
}

// validatePatterns checks every configured rule has a suffix and a regex
// that compiles with at least one capturing group.
func (v *Validator) validatePatterns() {
	if len(v.cfg.Patterns) == 0 {
		v.addValidation("Patterns", true, "No custom patterns, using built-in defaults", false)
		return
	}

	seen := make(map[string]bool, len(v.cfg.Patterns))
	for i, r := range v.cfg.Patterns {
		category := fmt.Sprintf("Pattern #%d", i+1)

		if r.Suffix == "" {
			v.addValidation(category, false, "Missing suffix", false)
			continue
		}
		if seen[r.Suffix] {
			v.addValidation(category, false,
				fmt.Sprintf("Duplicate suffix %q: only the first rule is used", r.Suffix), true)
			continue
		}
		seen[r.Suffix] = true

		v.validateRule(category, r)
	}
}

func (v *Validator) validateRule(category string, r pattern.Rule) {
	if r.Regex == "" {
		v.addValidation(category, false, fmt.Sprintf("Missing regex for suffix %q", r.Suffix), false)
		return
	}

	re, err := regexp.Compile(r.Regex)
	if err != nil {
		v.addValidation(category, false, fmt.Sprintf("Invalid regex for suffix %q: %v", r.Suffix, err), false)
		return
	}
	if re.NumSubexp() < 1 {
		v.addValidation(category, false,
			fmt.Sprintf("Regex for suffix %q must have a capturing group", r.Suffix), false)
		return
	}

	v.addValidation(category, true, fmt.Sprintf("Suffix %q uses %s", r.Suffix, r.Regex), false)
}

// addValidation adds a validation result to the list.
func (v *Validator) addValidation(category string, passed bool, message string, warning bool) {
	v.validations = append(v.validations, ValidationResult{
		Category: category,
		Passed:   passed,
		Message:  message,
		Warning:  warning,
	})
}

// HasErrors returns true if any validation failed.
func HasErrors(results []ValidationResult) bool {
	for _, r := range results {
		if !r.Passed && !r.Warning {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of failed validations.
func ErrorCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if !r.Passed && !r.Warning {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warnings.
func WarningCount(results []ValidationResult) int {
	count := 0
	for _, r := range results {
		if r.Warning {
			count++
		}
	}
	return count
}
