// Package json5 parses relaxed JSON documents (comments and trailing commas
// allowed) into a generic, order-preserving data tree. Unlike encoding/json
// maps, object members keep their document order and duplicate keys survive,
// both of which the manifest walker relies on.
package json5
