// Package fastnum is the numeric adapter shared by the jtd and
// jsonpath cores: lossless conversion from a JSON number's lexical
// source form to big-decimal, integer-range, and IEEE-754
// representations, isolating floating-point concerns from correctness
// (spec.md, Design Notes "Numeric policy across cores"). It is grounded
// on the teacher's Rat wrapper (rat.go) over math/big.Rat, extended
// with the range and IEEE-754 checks the teacher didn't need.
package fastnum

import (
	"errors"
	"math"
	"math/big"
)

var (
	// ErrInvalidLexical is returned when the source text is not a
	// syntactically valid number.
	ErrInvalidLexical = errors.New("fastnum: invalid lexical number")
	// ErrNonIntegral is returned by IntegerInRange when the value has a
	// non-zero fractional part.
	ErrNonIntegral = errors.New("fastnum: value is not an integer")
	// ErrOutOfRange is returned by IntegerInRange when the integer value
	// falls outside the requested bounds.
	ErrOutOfRange = errors.New("fastnum: integer value out of range")
	// ErrOverflow is returned by Float64 when the value cannot be
	// represented as a finite IEEE-754 double.
	ErrOverflow = errors.New("fastnum: value overflows IEEE-754 double")
)

// Decimal is a lossless decimal number parsed from lexical JSON text.
type Decimal struct {
	r *big.Rat
}

// ParseLexical parses a JSON number's source text into a Decimal.
func ParseLexical(lexical string) (Decimal, error) {
	r := new(big.Rat)
	if _, ok := r.SetString(lexical); !ok {
		return Decimal{}, ErrInvalidLexical
	}
	return Decimal{r: r}, nil
}

// Cmp compares two decimals: -1, 0, or 1.
func (d Decimal) Cmp(o Decimal) int { return d.r.Cmp(o.r) }

// IsInt reports whether the decimal has zero fractional part.
func (d Decimal) IsInt() bool { return d.r.IsInt() }

// IntegerInRange returns the exact integer value of d if it is integral
// and within [min, max], else ErrNonIntegral or ErrOutOfRange.
func (d Decimal) IntegerInRange(min, max *big.Int) (*big.Int, error) {
	if !d.r.IsInt() {
		return nil, ErrNonIntegral
	}
	n := new(big.Int).Set(d.r.Num())
	if n.Cmp(min) < 0 || n.Cmp(max) > 0 {
		return nil, ErrOutOfRange
	}
	return n, nil
}

// Float64 converts d to the nearest representable IEEE-754 double,
// rejecting values that overflow to +/-Inf.
func (d Decimal) Float64() (float64, error) {
	f, _ := d.r.Float64()
	if math.IsInf(f, 0) {
		return 0, ErrOverflow
	}
	return f, nil
}

// Integer bit-width bounds used by the JTD int/uint types.
var (
	Int8Min  = big.NewInt(-128)
	Int8Max  = big.NewInt(127)
	Uint8Min = big.NewInt(0)
	Uint8Max = big.NewInt(255)

	Int16Min = big.NewInt(-32768)
	Int16Max = big.NewInt(32767)

	Uint16Min = big.NewInt(0)
	Uint16Max = big.NewInt(65535)

	Int32Min = big.NewInt(-2147483648)
	Int32Max = big.NewInt(2147483647)

	Uint32Min = big.NewInt(0)
	Uint32Max = big.NewInt(4294967295)
)
