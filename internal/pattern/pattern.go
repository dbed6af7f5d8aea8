package pattern

import (
	"regexp"
	"strings"

	"github.com/indaco/vext/internal/core"
)

// Source tells where the active pattern came from.
type Source string

const (
	// SourceOverride is a pattern supplied explicitly by the caller.
	SourceOverride Source = "override"

	// SourceConfig is a suffix rule from the configuration file.
	SourceConfig Source = "config"

	// SourceDefault is one of the built-in suffix rules.
	SourceDefault Source = "default"
)

// String returns the string representation of the source.
func (s Source) String() string {
	return string(s)
}

// Rule maps a file name suffix to the regex used for files ending with it.
type Rule struct {
	// Suffix is matched against the end of the file path (e.g. ".csproj").
	Suffix string `yaml:"suffix" toml:"suffix" json:"suffix"`

	// Regex must contain a capturing group for the version.
	Regex string `yaml:"regex" toml:"regex" json:"regex"`

	// Description is a human-readable description of the file type.
	Description string `yaml:"description,omitempty" toml:"description,omitempty" json:"description,omitempty"`
}

// Matches reports whether path ends with the rule's suffix.
func (r Rule) Matches(path string) bool {
	return r.Suffix != "" && strings.HasSuffix(path, r.Suffix)
}

// Pattern is the compiled regex chosen for a file.
type Pattern struct {
	Regexp      *regexp.Regexp
	Source      Source
	Description string
}

// String returns the regex source text.
func (p *Pattern) String() string {
	if p == nil || p.Regexp == nil {
		return ""
	}
	return p.Regexp.String()
}

// Defaults returns the built-in suffix rules in lookup order.
func Defaults() []Rule {
	return []Rule{
		{
			Suffix:      ".csproj",
			Regex:       `<Version>(.*?)</Version>`,
			Description: ".NET project (.csproj)",
		},
		{
			Suffix:      "package.json",
			Regex:       `"version":\s*"(.*?)"`,
			Description: "Node.js (package.json)",
		},
	}
}

// Select returns the pattern to use for filePath. A non-empty override is
// compiled and returned as is. Otherwise the extra rules are tried in order,
// then the built-in defaults.
func Select(filePath, override string, extra []Rule) (*Pattern, error) {
	if override != "" {
		re, err := Compile(override)
		if err != nil {
			return nil, err
		}
		return &Pattern{Regexp: re, Source: SourceOverride, Description: "custom regex"}, nil
	}

	if p, err := lookup(filePath, extra, SourceConfig); p != nil || err != nil {
		return p, err
	}
	if p, err := lookup(filePath, Defaults(), SourceDefault); p != nil || err != nil {
		return p, err
	}

	return nil, &core.Error{Kind: core.KindUnsupportedFileType, Path: filePath}
}

// Compile compiles expr, reporting failures as core.KindPatternCompile.
func Compile(expr string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &core.Error{Kind: core.KindPatternCompile, Pattern: expr, Err: err}
	}
	return re, nil
}

func lookup(filePath string, rules []Rule, source Source) (*Pattern, error) {
	for _, r := range rules {
		if !r.Matches(filePath) {
			continue
		}
		re, err := Compile(r.Regex)
		if err != nil {
			return nil, err
		}
		return &Pattern{Regexp: re, Source: source, Description: r.Description}, nil
	}
	return nil, nil
}
