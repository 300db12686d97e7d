package jtd

import (
	"math/big"

	jsonv "github.com/kaptinlin/jtdpath/json"

	"github.com/kaptinlin/jtdpath/internal/fastnum"
)

// validateType reports whether instance satisfies the named JTD
// primitive type, per the stepping rules in spec.md §4.2. Integer
// checks route through the numeric adapter to avoid floating-point
// truncation.
func validateType(t TypeName, instance jsonv.Value) bool {
	switch t {
	case TypeBoolean:
		_, ok := instance.AsBool()
		return ok
	case TypeString:
		_, ok := instance.AsStr()
		return ok
	case TypeTimestamp:
		s, ok := instance.AsStr()
		if !ok {
			return false
		}
		return isValidTimestamp(s)
	case TypeFloat32, TypeFloat64:
		_, ok := instance.Lexical()
		return ok
	case TypeInt8:
		return intInRange(instance, fastnum.Int8Min, fastnum.Int8Max)
	case TypeUint8:
		return intInRange(instance, fastnum.Uint8Min, fastnum.Uint8Max)
	case TypeInt16:
		return intInRange(instance, fastnum.Int16Min, fastnum.Int16Max)
	case TypeUint16:
		return intInRange(instance, fastnum.Uint16Min, fastnum.Uint16Max)
	case TypeInt32:
		return intInRange(instance, fastnum.Int32Min, fastnum.Int32Max)
	case TypeUint32:
		return intInRange(instance, fastnum.Uint32Min, fastnum.Uint32Max)
	}
	return false
}

func intInRange(instance jsonv.Value, min, max *big.Int) bool {
	lex, ok := instance.Lexical()
	if !ok {
		return false
	}
	dec, err := fastnum.ParseLexical(lex)
	if err != nil {
		return false
	}
	_, err = dec.IntegerInRange(min, max)
	return err == nil
}
