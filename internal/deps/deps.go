package deps

import (
	"fmt"
	"strings"

	"github.com/Quincunx271/meta-dds/internal/version"
)

// Dependency is a single package requirement: a name and the version range
// it must satisfy.
type Dependency struct {
	Name  string        `json:"name" yaml:"name"`
	Range version.Range `json:"range" yaml:"range"`
}

// String renders the dependency back in combined specifier form.
func (d Dependency) String() string {
	r := d.Range.String()
	if strings.IndexAny(r, "=^~+") == 0 {
		return d.Name + r
	}
	return d.Name + "@" + r
}

// InvalidSpecifierError reports a malformed combined dependency specifier.
type InvalidSpecifierError struct {
	Input  string
	Reason string
}

func (e *InvalidSpecifierError) Error() string {
	return fmt.Sprintf("invalid dependency specifier %q: %s", e.Input, e.Reason)
}

// Parse splits a combined specifier like "foo@1.2.3" or "foo^1.2.3" into a
// dependency. The name ends at the first of `@ = ^ ~ +`; an `@` is dropped,
// while a range operator stays part of the range expression.
func Parse(s string) (Dependency, error) {
	i := strings.IndexAny(s, "@=^~+")
	if i < 0 {
		return Dependency{}, &InvalidSpecifierError{
			Input:  s,
			Reason: "expected `<name>@<version-range>'",
		}
	}

	name := s[:i]
	rangeStr := s[i:]
	if s[i] == '@' {
		rangeStr = s[i+1:]
	}

	if err := CheckName(name); err != nil {
		return Dependency{}, &InvalidSpecifierError{Input: s, Reason: err.Error()}
	}

	r, err := version.ParseRestricted(rangeStr)
	if err != nil {
		return Dependency{}, fmt.Errorf("%w in dependency declaration for %q", err, name)
	}
	return Dependency{Name: name, Range: r}, nil
}

// CheckName validates a package name: a lowercase letter followed by
// lowercase letters, digits, `.`, `_`, or `-`.
func CheckName(name string) error {
	if name == "" {
		return fmt.Errorf("package name is empty")
	}
	if name[0] < 'a' || name[0] > 'z' {
		return fmt.Errorf("package name %q must start with a lowercase letter", name)
	}
	for _, c := range name[1:] {
		switch {
		case c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '_' || c == '-':
		default:
			return fmt.Errorf("package name %q contains invalid character %q", name, c)
		}
	}
	return nil
}
