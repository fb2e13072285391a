package json5

import (
	"bytes"
	"encoding/json"
)

// Kind identifies which variant a Node holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "invalid"
	}
}

// Member is a single key/value entry of an object node.
type Member struct {
	Key   string
	Value Node
}

// Node is one value in a parsed document. The zero value is null.
// Nodes are immutable once built.
type Node struct {
	kind    Kind
	boolVal bool
	numVal  json.Number
	strVal  string
	elems   []Node
	members []Member
}

// NewNull returns the null node.
func NewNull() Node { return Node{} }

// NewBool returns a bool node.
func NewBool(b bool) Node { return Node{kind: Bool, boolVal: b} }

// NewNumber returns a number node from its literal text, e.g. "3.14".
func NewNumber(literal string) Node { return Node{kind: Number, numVal: json.Number(literal)} }

// NewString returns a string node.
func NewString(s string) Node { return Node{kind: String, strVal: s} }

// NewArray returns an array node holding elems in order.
func NewArray(elems ...Node) Node { return Node{kind: Array, elems: elems} }

// NewObject returns an object node holding members in order. Duplicate keys
// are kept as-is.
func NewObject(members ...Member) Node { return Node{kind: Object, members: members} }

// Kind reports the node's variant.
func (n Node) Kind() Kind { return n.kind }

func (n Node) IsNull() bool   { return n.kind == Null }
func (n Node) IsBool() bool   { return n.kind == Bool }
func (n Node) IsNumber() bool { return n.kind == Number }
func (n Node) IsString() bool { return n.kind == String }
func (n Node) IsArray() bool  { return n.kind == Array }
func (n Node) IsObject() bool { return n.kind == Object }

// AsBool returns the bool value, or false for non-bool nodes.
func (n Node) AsBool() bool { return n.boolVal }

// AsNumber returns the number literal, or "" for non-number nodes.
func (n Node) AsNumber() json.Number { return n.numVal }

// AsString returns the string value, or "" for non-string nodes.
func (n Node) AsString() string { return n.strVal }

// Elems returns the elements of an array node, nil otherwise.
func (n Node) Elems() []Node { return n.elems }

// Members returns the entries of an object node in document order,
// nil otherwise.
func (n Node) Members() []Member { return n.members }

// Lookup returns the value of the first member with the given key.
func (n Node) Lookup(key string) (Node, bool) {
	for _, m := range n.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Node{}, false
}

// MarshalJSON renders the node as plain JSON. Object member order is
// preserved; duplicate keys are written out verbatim.
func (n Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := n.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (n Node) encode(buf *bytes.Buffer) error {
	switch n.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if n.boolVal {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(n.numVal.String())
	case String:
		b, err := json.Marshal(n.strVal)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, el := range n.elems {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := el.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range n.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}
