// Package json implements the immutable JSON value model shared by the
// jtd and jsonpath packages: a tagged union over null/boolean/number/
// string/array/object with order-preserving object members and lexical
// number preservation.
package json

// Kind identifies which alternative of Value is populated.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNum
	KindStr
	KindArr
	KindObj
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNum:
		return "number"
	case KindStr:
		return "string"
	case KindArr:
		return "array"
	case KindObj:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON value. The zero Value is KindNull.
type Value struct {
	kind Kind
	b    bool
	num  string // lexical form, e.g. "1e2" preserved verbatim
	str  string
	arr  []Value
	obj  *Object
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Num wraps a number given its lexical (source) form. The caller is
// responsible for passing a syntactically valid JSON number; Parse
// validates this for parsed input.
func Num(lexical string) Value { return Value{kind: KindNum, num: lexical} }

// Str wraps a string.
func Str(s string) Value { return Value{kind: KindStr, str: s} }

// Arr wraps an array of values. The slice is retained, not copied;
// callers must not mutate it after passing ownership.
func Arr(items []Value) Value { return Value{kind: KindArr, arr: items} }

// Obj wraps an ordered object.
func Obj(o *Object) Value { return Value{kind: KindObj, obj: o} }

// Kind reports which alternative is populated.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean value and true if v is a boolean.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	return v.b, true
}

// Lexical returns the source-form number text and true if v is a number.
func (v Value) Lexical() (string, bool) {
	if v.kind != KindNum {
		return "", false
	}
	return v.num, true
}

// AsStr returns the string value and true if v is a string.
func (v Value) AsStr() (string, bool) {
	if v.kind != KindStr {
		return "", false
	}
	return v.str, true
}

// AsArr returns the element slice and true if v is an array.
func (v Value) AsArr() ([]Value, bool) {
	if v.kind != KindArr {
		return nil, false
	}
	return v.arr, true
}

// AsObj returns the object and true if v is an object.
func (v Value) AsObj() (*Object, bool) {
	if v.kind != KindObj {
		return nil, false
	}
	return v.obj, true
}

// Object is an order-preserving string-keyed map of Values. Keys are
// unique; re-setting a key keeps its original position but updates its
// value ("last wins"), matching upstream JSON parser semantics.
type Object struct {
	keys   []string
	values map[string]Value
}

// NewObject returns an empty Object ready for Set.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set inserts or updates key. First-seen position is retained.
func (o *Object) Set(key string, v Value) {
	if _, exists := o.values[key]; !exists {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value for key and whether it is present.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.values[key]
	return ok
}

// Keys returns the object's keys in insertion order. The returned slice
// must not be mutated by callers.
func (o *Object) Keys() []string { return o.keys }

// Len returns the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Equal reports deep structural equality. Number comparison is lexical
// equality here; callers needing numeric equality should compare via
// the numeric adapter instead (see internal/fastnum).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNum:
		return a.num == b.num
	case KindStr:
		return a.str == b.str
	case KindArr:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObj:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		for _, k := range a.obj.Keys() {
			av, _ := a.obj.Get(k)
			bv, ok := b.obj.Get(k)
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}
