package json

import (
	"bytes"

	"github.com/go-json-experiment/json/jsontext"
)

// Parse decodes text into a Value tree, preserving object member order
// and the lexical source form of numbers. It is the sole entry point
// for turning JSON text into the immutable value model consumed by the
// jtd and jsonpath cores.
func Parse(text []byte) (Value, error) {
	dec := jsontext.NewDecoder(bytes.NewReader(text))
	v, err := parseValue(dec)
	if err != nil {
		return Value{}, wrapDecodeErr(err, dec.InputOffset())
	}
	// Reject trailing garbage after the single top-level value.
	if _, err := dec.ReadToken(); err == nil {
		return Value{}, &ParseError{Offset: dec.InputOffset(), Reason: "unexpected trailing data"}
	}
	return v, nil
}

func parseValue(dec *jsontext.Decoder) (Value, error) {
	kind := dec.PeekKind()
	switch kind {
	case 'n':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Null(), nil
	case 't', 'f':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		return Bool(tok.Bool()), nil
	case '"':
		tok, err := dec.ReadToken()
		if err != nil {
			return Value{}, err
		}
		return Str(tok.String()), nil
	case '0':
		raw, err := dec.ReadValue()
		if err != nil {
			return Value{}, err
		}
		return Num(string(raw)), nil
	case '{':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		obj := NewObject()
		for dec.PeekKind() != '}' {
			keyTok, err := dec.ReadToken()
			if err != nil {
				return Value{}, err
			}
			val, err := parseValue(dec)
			if err != nil {
				return Value{}, err
			}
			obj.Set(keyTok.String(), val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Obj(obj), nil
	case '[':
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		var items []Value
		for dec.PeekKind() != ']' {
			val, err := parseValue(dec)
			if err != nil {
				return Value{}, err
			}
			items = append(items, val)
		}
		if _, err := dec.ReadToken(); err != nil {
			return Value{}, err
		}
		return Arr(items), nil
	default:
		return Value{}, &ParseError{Offset: dec.InputOffset(), Reason: "unexpected token"}
	}
}

func wrapDecodeErr(err error, offset int64) error {
	if pe, ok := err.(*ParseError); ok {
		return pe
	}
	return &ParseError{Offset: offset, Reason: err.Error()}
}
