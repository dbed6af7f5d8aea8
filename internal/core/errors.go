package core

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the failures a single extraction run can end with.
type ErrorKind int

const (
	// KindMissingInput means a required input was not supplied.
	KindMissingInput ErrorKind = iota + 1

	// KindUnsupportedFileType means no override regex was given and no
	// default pattern matches the file name.
	KindUnsupportedFileType

	// KindPatternCompile means a regex failed to compile.
	KindPatternCompile

	// KindFileRead means the version file could not be read.
	KindFileRead

	// KindNoVersionFound means the pattern did not match or had no capture group.
	KindNoVersionFound
)

// String returns a human-readable representation of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindMissingInput:
		return "MissingInput"
	case KindUnsupportedFileType:
		return "UnsupportedFileType"
	case KindPatternCompile:
		return "PatternCompile"
	case KindFileRead:
		return "FileRead"
	case KindNoVersionFound:
		return "NoVersionFound"
	default:
		return "Unknown"
	}
}

// Sentinels for errors.Is matching against an *Error of the same kind.
var (
	ErrMissingInput        = &Error{Kind: KindMissingInput}
	ErrUnsupportedFileType = &Error{Kind: KindUnsupportedFileType}
	ErrPatternCompile      = &Error{Kind: KindPatternCompile}
	ErrFileRead            = &Error{Kind: KindFileRead}
	ErrNoVersionFound      = &Error{Kind: KindNoVersionFound}
)

// Error is the error type returned by every stage of an extraction run.
type Error struct {
	Kind ErrorKind

	// Path is the version file, when the error concerns one.
	Path string

	// Input is the name of the missing input for KindMissingInput.
	Input string

	// Pattern is the offending regex for KindPatternCompile.
	Pattern string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingInput:
		return fmt.Sprintf("input required and not supplied: %s", e.Input)
	case KindUnsupportedFileType:
		return fmt.Sprintf("no regex provided, and no default regex available for file: %s", e.Path)
	case KindPatternCompile:
		return fmt.Sprintf("invalid regex pattern %q: %v", e.Pattern, e.Err)
	case KindFileRead:
		return fmt.Sprintf("failed to extract version from file: %s: %v", e.Path, e.Err)
	case KindNoVersionFound:
		return fmt.Sprintf("no version found in file: %s", e.Path)
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
