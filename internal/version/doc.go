// Package version implements the restricted version-range grammar used in
// dependency declarations. A range expression is a semver version with an
// optional leading operator: `^` (compatible), `~` (same minor line), `+`
// (at least), `=` or none (exactly). Every expression parses to a half-open
// interval [low, high).
package version
