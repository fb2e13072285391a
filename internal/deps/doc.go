// Package deps defines package dependencies and the combined specifier
// grammar `<name>@<range>` (the range operator may also stand in for the
// `@`, as in `fmt^7.0.3`).
package deps
