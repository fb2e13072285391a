package manifest

import (
	"errors"

	"github.com/Quincunx271/meta-dds/internal/deps"
	"github.com/Quincunx271/meta-dds/internal/json5"
	"github.com/Quincunx271/meta-dds/internal/version"
	"github.com/Quincunx271/meta-dds/internal/walk"
)

// Kind classifies a manifest loading failure.
type Kind int

const (
	// SchemaViolation: the document has the wrong shape or type somewhere.
	SchemaViolation Kind = iota
	// MissingRequiredKey: a required key (notably meta_dds) is absent.
	MissingRequiredKey
	// InvalidDependencySpecifier: a combined `name@range` string is malformed.
	InvalidDependencySpecifier
	// InvalidVersionRange: the range grammar rejected a version expression.
	InvalidVersionRange
	// InvalidSyntax: the document is not well-formed JSON5 text at all.
	InvalidSyntax
)

func (k Kind) String() string {
	switch k {
	case SchemaViolation:
		return "schema violation"
	case MissingRequiredKey:
		return "missing required key"
	case InvalidDependencySpecifier:
		return "invalid dependency specifier"
	case InvalidVersionRange:
		return "invalid version range"
	case InvalidSyntax:
		return "invalid manifest syntax"
	default:
		return "unknown"
	}
}

// Error is the single error value a failed load surfaces. The message is
// user-facing; callers may display it directly.
type Error struct {
	Kind    Kind
	File    string // source file path, empty when loading from memory
	KeyPath string // document path of the failure, when known
	err     error
}

func (e *Error) Error() string {
	if e.File != "" {
		return e.File + ": " + e.err.Error()
	}
	return e.err.Error()
}

func (e *Error) Unwrap() error { return e.err }

// wrapError classifies a walk failure and attaches source context. The kind
// is derived once here, from the wrapped chain, rather than re-decided by
// every caller.
func wrapError(err error, file string) *Error {
	e := &Error{Kind: classify(err), File: file, err: err}

	var we *walk.Error
	var mk *walk.MissingKeyError
	switch {
	case errors.As(err, &mk):
		e.KeyPath = mk.Path
	case errors.As(err, &we):
		e.KeyPath = we.Path
	}
	return e
}

func classify(err error) Kind {
	var syntaxErr *json5.SyntaxError
	var rangeErr *version.InvalidRangeError
	var specErr *deps.InvalidSpecifierError
	var missingErr *walk.MissingKeyError

	switch {
	case errors.As(err, &syntaxErr):
		return InvalidSyntax
	case errors.As(err, &rangeErr):
		return InvalidVersionRange
	case errors.As(err, &specErr):
		return InvalidDependencySpecifier
	case errors.As(err, &missingErr):
		return MissingRequiredKey
	default:
		return SchemaViolation
	}
}
