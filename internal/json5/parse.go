package json5

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/tailscale/hujson"
)

// SyntaxError reports a text-level failure: the input is not a well-formed
// relaxed JSON document.
type SyntaxError struct {
	err error
}

func (e *SyntaxError) Error() string { return e.err.Error() }

func (e *SyntaxError) Unwrap() error { return e.err }

// Parse reads a relaxed JSON document and returns its data tree. The input
// may contain // and /* */ comments and trailing commas; hujson strips those
// down to strict JSON before the tree is built.
func Parse(data []byte) (Node, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return Node{}, &SyntaxError{err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(std))
	dec.UseNumber()

	n, err := parseValue(dec)
	if err != nil {
		return Node{}, &SyntaxError{err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Node{}, &SyntaxError{err: fmt.Errorf("unexpected content after top-level value")}
	}
	return n, nil
}

func parseValue(dec *json.Decoder) (Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return Node{}, err
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (Node, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return parseObject(dec)
		case '[':
			return parseArray(dec)
		default:
			return Node{}, fmt.Errorf("unexpected delimiter %q", t.String())
		}
	case string:
		return NewString(t), nil
	case bool:
		return NewBool(t), nil
	case json.Number:
		return NewNumber(t.String()), nil
	case nil:
		return NewNull(), nil
	default:
		return Node{}, fmt.Errorf("unexpected token %v", tok)
	}
}

func parseObject(dec *json.Decoder) (Node, error) {
	var members []Member
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Node{}, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return Node{}, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := parseValue(dec)
		if err != nil {
			return Node{}, err
		}
		members = append(members, Member{Key: key, Value: val})
	}
	if _, err := dec.Token(); err != nil { // closing '}'
		return Node{}, err
	}
	return NewObject(members...), nil
}

func parseArray(dec *json.Decoder) (Node, error) {
	var elems []Node
	for dec.More() {
		el, err := parseValue(dec)
		if err != nil {
			return Node{}, err
		}
		elems = append(elems, el)
	}
	if _, err := dec.Token(); err != nil { // closing ']'
		return Node{}, err
	}
	return NewArray(elems...), nil
}
