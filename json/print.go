package json

import (
	"bytes"

	"github.com/go-json-experiment/json/jsontext"
)

// ToText renders v back to JSON text, preserving member order and the
// lexical form of numbers exactly as they were parsed.
func ToText(v Value) ([]byte, error) {
	var buf bytes.Buffer
	enc := jsontext.NewEncoder(&buf)
	if err := writeValue(enc, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(enc *jsontext.Encoder, v Value) error {
	switch v.kind {
	case KindNull:
		return enc.WriteToken(jsontext.Null)
	case KindBool:
		return enc.WriteToken(jsontext.Bool(v.b))
	case KindNum:
		return enc.WriteValue(jsontext.Value(v.num))
	case KindStr:
		return enc.WriteToken(jsontext.String(v.str))
	case KindArr:
		if err := enc.WriteToken(jsontext.ArrayStart); err != nil {
			return err
		}
		for _, item := range v.arr {
			if err := writeValue(enc, item); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ArrayEnd)
	case KindObj:
		if err := enc.WriteToken(jsontext.ObjectStart); err != nil {
			return err
		}
		for _, k := range v.obj.Keys() {
			if err := enc.WriteToken(jsontext.String(k)); err != nil {
				return err
			}
			val, _ := v.obj.Get(k)
			if err := writeValue(enc, val); err != nil {
				return err
			}
		}
		return enc.WriteToken(jsontext.ObjectEnd)
	}
	return nil
}
