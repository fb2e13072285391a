package walk

import (
	"fmt"

	"github.com/Quincunx271/meta-dds/internal/json5"
)

// Op is one schema operation. Ops are built once and may be reused across
// walks; all per-walk state lives in the walker.
type Op interface {
	apply(w *walker, n json5.Node) error
}

// Sink consumes one matched value. Returning a non-nil error aborts the walk;
// the engine annotates the error with the document path.
type Sink func(n json5.Node) error

// EntrySink consumes one object entry, in stored order.
type EntrySink func(key string, n json5.Node) error

// Walk applies ops to n in order and returns the first rejection, or nil if
// every operation accepted. Walks are independent: concurrent calls over
// shared schemas and nodes are safe as long as sinks write to distinct
// destinations.
func Walk(n json5.Node, ops ...Op) error {
	w := &walker{}
	return w.walk(n, ops)
}

// RequireType rejects with message unless the current node has the given kind.
func RequireType(kind json5.Kind, message string) Op {
	return requireType{kind: kind, message: message}
}

// RequiredKey descends into the named object member, applying ops to its
// value. A missing key fails the walk with a MissingKeyError carrying
// missingMessage.
func RequiredKey(name, missingMessage string, ops ...Op) Op {
	return keyOp{name: name, required: true, missing: missingMessage, ops: ops}
}

// OptionalKey descends into the named object member if present, and is a
// no-op otherwise.
func OptionalKey(name string, ops ...Op) Op {
	return keyOp{name: name, ops: ops}
}

// ForEach requires the current node to be an array and feeds each element to
// sink in order. The first element that rejects aborts the walk.
func ForEach(sink Sink) Op {
	return forEach{sink: sink}
}

// MapEntries requires the current node to be an object and feeds every entry
// to sink in stored order, duplicate keys included.
func MapEntries(sink EntrySink) Op {
	return mapEntries{sink: sink}
}

// Reject builds a rejection a sink can return. The engine fills in the path.
func Reject(message string) error {
	return &Error{Message: message}
}

// Rejectf is Reject with formatting.
func Rejectf(format string, args ...any) error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

type walker struct {
	path []pathSeg
}

// pathSeg is one step of the traversal: a key, or an array index when the
// key is empty.
type pathSeg struct {
	key   string
	index int
}

func (w *walker) walk(n json5.Node, ops []Op) error {
	for _, op := range ops {
		if err := op.apply(w, n); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) push(s pathSeg) { w.path = append(w.path, s) }

func (w *walker) pop() { w.path = w.path[:len(w.path)-1] }

func (w *walker) reject(msg string) error {
	return &Error{Path: w.pathString(), Message: msg}
}

func (w *walker) pathString() string {
	var out []byte
	for _, s := range w.path {
		if s.key != "" {
			if len(out) > 0 {
				out = append(out, '.')
			}
			out = append(out, s.key...)
		} else {
			out = fmt.Appendf(out, "[%d]", s.index)
		}
	}
	return string(out)
}

// annotate attaches the current path to a sink error. Errors that already
// carry a path pass through untouched; anything else is wrapped so callers
// can still reach the original with errors.As.
func (w *walker) annotate(err error) error {
	switch e := err.(type) {
	case *Error:
		if e.Path == "" {
			e.Path = w.pathString()
		}
		return e
	case *MissingKeyError:
		return e
	}
	return &Error{Path: w.pathString(), Message: err.Error(), err: err}
}

type requireType struct {
	kind    json5.Kind
	message string
}

func (op requireType) apply(w *walker, n json5.Node) error {
	if n.Kind() != op.kind {
		return w.reject(op.message)
	}
	return nil
}

type keyOp struct {
	name     string
	required bool
	missing  string
	ops      []Op
}

func (op keyOp) apply(w *walker, n json5.Node) error {
	v, ok := n.Lookup(op.name)
	if !ok {
		if !op.required {
			return nil
		}
		w.push(pathSeg{key: op.name})
		p := w.pathString()
		w.pop()
		return &MissingKeyError{Key: op.name, Path: p, Message: op.missing}
	}
	w.push(pathSeg{key: op.name})
	defer w.pop()
	return w.walk(v, op.ops)
}

type forEach struct {
	sink Sink
}

func (op forEach) apply(w *walker, n json5.Node) error {
	if !n.IsArray() {
		return w.reject("expected an array")
	}
	for i, el := range n.Elems() {
		w.push(pathSeg{index: i})
		err := op.sink(el)
		if err != nil {
			err = w.annotate(err)
		}
		w.pop()
		if err != nil {
			return err
		}
	}
	return nil
}

type mapEntries struct {
	sink EntrySink
}

func (op mapEntries) apply(w *walker, n json5.Node) error {
	if !n.IsObject() {
		return w.reject("expected an object")
	}
	for _, m := range n.Members() {
		w.push(pathSeg{key: m.Key})
		err := op.sink(m.Key, m.Value)
		if err != nil {
			err = w.annotate(err)
		}
		w.pop()
		if err != nil {
			return err
		}
	}
	return nil
}
