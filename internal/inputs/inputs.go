// Package inputs resolves the file path and optional regex an extraction run
// works on. Values come from a chain of sources (CLI flags, GitHub Actions
// inputs) and, in an interactive terminal, from a prompt as a last resort.
package inputs

import (
	"strings"

	"github.com/indaco/vext/internal/core"
	"github.com/sethvargo/go-githubactions"
)

// Input names as declared in action.yml. GitHub exposes them to the
// container as INPUT_FILE_PATH and INPUT_REGEX.
const (
	FilePathInput = "file_path"
	RegexInput    = "regex"
)

// Inputs is the resolved configuration of a single run.
type Inputs struct {
	// FilePath is the file to read the version from.
	FilePath string

	// Regex overrides the default pattern when non-empty.
	Regex string
}

// Getter returns the raw value of a named input, or "" when unset.
type Getter interface {
	GetInput(name string) string
}

// GetterFunc adapts a function to the Getter interface.
type GetterFunc func(name string) string

// GetInput calls f(name).
func (f GetterFunc) GetInput(name string) string {
	return f(name)
}

// Chain consults each getter in order and returns the first non-empty value.
type Chain []Getter

// GetInput implements Getter.
func (c Chain) GetInput(name string) string {
	for _, g := range c {
		if g == nil {
			continue
		}
		if v := strings.TrimSpace(g.GetInput(name)); v != "" {
			return v
		}
	}
	return ""
}

// FromActions returns a Getter reading GitHub Actions inputs (INPUT_<NAME>)
// through getenv. A nil getenv reads the process environment.
func FromActions(getenv func(string) string) Getter {
	if getenv == nil {
		return githubactions.New()
	}
	return githubactions.New(githubactions.WithGetenv(getenv))
}

// Prompter asks the user for a missing required input.
type Prompter func(name string) (string, error)

// Resolver turns a Getter into Inputs.
type Resolver struct {
	getter Getter
	prompt Prompter
}

// NewResolver creates a Resolver. prompt may be nil to disable prompting.
func NewResolver(getter Getter, prompt Prompter) *Resolver {
	return &Resolver{getter: getter, prompt: prompt}
}

// Resolve reads both inputs. A missing file path is requested from the
// prompter when one is set, and reported as core.KindMissingInput otherwise.
func (r *Resolver) Resolve() (Inputs, error) {
	in := Inputs{
		FilePath: strings.TrimSpace(r.getter.GetInput(FilePathInput)),
		Regex:    strings.TrimSpace(r.getter.GetInput(RegexInput)),
	}

	if in.FilePath == "" && r.prompt != nil {
		v, err := r.prompt(FilePathInput)
		if err != nil {
			return Inputs{}, &core.Error{Kind: core.KindMissingInput, Input: FilePathInput, Err: err}
		}
		in.FilePath = strings.TrimSpace(v)
	}

	if in.FilePath == "" {
		return Inputs{}, &core.Error{Kind: core.KindMissingInput, Input: FilePathInput}
	}

	return in, nil
}
