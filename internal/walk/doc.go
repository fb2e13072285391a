// Package walk is a small interpreter for declarative schemas over json5
// data trees. A schema is an ordered list of operations (require a type,
// descend into a key, iterate an array, map over object entries); the
// interpreter applies them depth-first and stops at the first rejection,
// reporting the document path where it happened. Destination structures are
// populated through sink closures, so a schema declares shape and routing in
// one place instead of spreading type checks across imperative code.
package walk
