// Package extract reads a file and pulls the version string out of it with a
// regular expression.
package extract

import (
	"context"
	"regexp"

	"github.com/indaco/vext/internal/core"
	"github.com/indaco/vext/internal/pattern"
)

// Result represents the result of reading a version from a file.
type Result struct {
	// Version is the extracted version string.
	Version string

	// Path is the file path that was read.
	Path string

	// Pattern is the regex source that matched.
	Pattern string

	// Source tells whether the regex was an override, a config rule or a default.
	Source pattern.Source
}

// Extractor reads versions through a core.FileSystem.
type Extractor struct {
	fs core.FileSystem
}

// New creates a new Extractor with the given filesystem.
func New(fs core.FileSystem) *Extractor {
	return &Extractor{fs: fs}
}

// Extract reads path in full and returns the first capture group of the
// first match of re.
func (e *Extractor) Extract(ctx context.Context, path string, re *regexp.Regexp) (string, error) {
	data, err := e.fs.ReadFile(ctx, path)
	if err != nil {
		return "", &core.Error{Kind: core.KindFileRead, Path: path, Err: err}
	}

	matches := re.FindSubmatch(data)
	if len(matches) < 2 {
		return "", &core.Error{Kind: core.KindNoVersionFound, Path: path, Pattern: re.String()}
	}

	return string(matches[1]), nil
}

// ExtractPattern is like Extract but takes a selected pattern and reports
// where it came from.
func (e *Extractor) ExtractPattern(ctx context.Context, path string, p *pattern.Pattern) (*Result, error) {
	version, err := e.Extract(ctx, path, p.Regexp)
	if err != nil {
		return nil, err
	}

	return &Result{
		Version: version,
		Path:    path,
		Pattern: p.String(),
		Source:  p.Source,
	}, nil
}
