package walk

import "fmt"

// Error is a path-qualified rejection raised during a walk.
type Error struct {
	Path    string // document path, e.g. "meta_dds.depends[1]"
	Message string
	err     error // original sink error, if any
}

func (e *Error) Error() string {
	if e.Path == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (at %s)", e.Message, e.Path)
}

func (e *Error) Unwrap() error { return e.err }

// MissingKeyError reports an absent required key.
type MissingKeyError struct {
	Key     string
	Path    string // path of the missing key itself
	Message string
}

func (e *MissingKeyError) Error() string {
	s := fmt.Sprintf("missing required key `%s'", e.Key)
	if e.Message != "" {
		s += ": " + e.Message
	}
	return s
}
