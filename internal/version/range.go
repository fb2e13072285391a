package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Range is a half-open version interval [low, high). A nil high bound means
// the range is unbounded above.
type Range struct {
	low  *semver.Version
	high *semver.Version
}

// InvalidRangeError reports a range expression the grammar rejected.
type InvalidRangeError struct {
	Input string
	err   error
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid version range string %q", e.Input)
}

func (e *InvalidRangeError) Unwrap() error { return e.err }

// New builds a range from explicit bounds. high may be nil for an unbounded
// range; otherwise low must not exceed high.
func New(low, high *semver.Version) (Range, error) {
	if low == nil {
		return Range{}, fmt.Errorf("range low bound must not be nil")
	}
	if high != nil && low.GreaterThan(high) {
		return Range{}, fmt.Errorf("range low bound %s exceeds high bound %s", low, high)
	}
	return Range{low: low, high: high}, nil
}

// ParseRestricted parses a restricted range expression:
//
//	1.2.3     exactly 1.2.3
//	=1.2.3    exactly 1.2.3
//	^1.2.3    at least 1.2.3, below the next breaking version
//	~1.2.3    at least 1.2.3, below 1.3.0
//	+1.2.3    at least 1.2.3, unbounded
func ParseRestricted(s string) (Range, error) {
	if s == "" {
		return Range{}, &InvalidRangeError{Input: s}
	}

	op := byte('=')
	rest := s
	switch s[0] {
	case '^', '~', '+', '=':
		op = s[0]
		rest = s[1:]
	}

	v, err := semver.StrictNewVersion(rest)
	if err != nil {
		return Range{}, &InvalidRangeError{Input: s, err: err}
	}

	switch op {
	case '+':
		return Range{low: v}, nil
	case '^':
		return Range{low: v, high: nextBreaking(v)}, nil
	case '~':
		return Range{low: v, high: newVersion(v.Major(), v.Minor()+1, 0)}, nil
	default:
		return Range{low: v, high: nextAfter(v)}, nil
	}
}

// Low returns the inclusive lower bound.
func (r Range) Low() *semver.Version { return r.low }

// High returns the exclusive upper bound, or nil when unbounded.
func (r Range) High() *semver.Version { return r.high }

// Contains reports whether v falls within [low, high).
func (r Range) Contains(v *semver.Version) bool {
	if r.low == nil || v.LessThan(r.low) {
		return false
	}
	return r.high == nil || v.LessThan(r.high)
}

// String renders the range back in operator form when one matches, and as an
// interval otherwise.
func (r Range) String() string {
	if r.low == nil {
		return "[invalid]"
	}
	switch {
	case r.high == nil:
		return "+" + r.low.String()
	case r.high.Equal(nextAfter(r.low)):
		return r.low.String()
	case r.high.Equal(nextBreaking(r.low)):
		return "^" + r.low.String()
	case r.high.Equal(newVersion(r.low.Major(), r.low.Minor()+1, 0)):
		return "~" + r.low.String()
	default:
		return fmt.Sprintf("[%s, %s)", r.low, r.high)
	}
}

// MarshalJSON renders the range as its expression string.
func (r Range) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// MarshalYAML renders the range as its expression string.
func (r Range) MarshalYAML() (any, error) {
	return r.String(), nil
}

func newVersion(major, minor, patch uint64) *semver.Version {
	return semver.New(major, minor, patch, "", "")
}

// nextAfter returns the smallest version ordered after v, so that
// [v, nextAfter(v)) admits exactly v.
func nextAfter(v *semver.Version) *semver.Version {
	if v.Prerelease() != "" {
		return semver.New(v.Major(), v.Minor(), v.Patch(), v.Prerelease()+".0", "")
	}
	return semver.New(v.Major(), v.Minor(), v.Patch()+1, "0", "")
}

// nextBreaking returns the first version not backwards-compatible with v
// under caret semantics: the next major, or for 0.x versions the next minor,
// or for 0.0.x the next patch.
func nextBreaking(v *semver.Version) *semver.Version {
	switch {
	case v.Major() > 0:
		return newVersion(v.Major()+1, 0, 0)
	case v.Minor() > 0:
		return newVersion(0, v.Minor()+1, 0)
	default:
		return newVersion(0, 0, v.Patch()+1)
	}
}
