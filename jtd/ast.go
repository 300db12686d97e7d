package jtd

// Form identifies which of the eight disjoint JTD schema shapes a node
// takes (spec.md §3.2).
type Form int

const (
	FormEmpty Form = iota
	FormRef
	FormType
	FormEnum
	FormElements
	FormProperties
	FormValues
	FormDiscriminator
)

// TypeName is one of the eleven JTD primitive type keywords.
type TypeName string

const (
	TypeBoolean   TypeName = "boolean"
	TypeString    TypeName = "string"
	TypeTimestamp TypeName = "timestamp"
	TypeFloat32   TypeName = "float32"
	TypeFloat64   TypeName = "float64"
	TypeInt8      TypeName = "int8"
	TypeUint8     TypeName = "uint8"
	TypeInt16     TypeName = "int16"
	TypeUint16    TypeName = "uint16"
	TypeInt32     TypeName = "int32"
	TypeUint32    TypeName = "uint32"
)

var validTypeNames = map[string]bool{
	string(TypeBoolean): true, string(TypeString): true, string(TypeTimestamp): true,
	string(TypeFloat32): true, string(TypeFloat64): true,
	string(TypeInt8): true, string(TypeUint8): true,
	string(TypeInt16): true, string(TypeUint16): true,
	string(TypeInt32): true, string(TypeUint32): true,
}

// node is one arena-resident schema node. Only the fields relevant to
// n.form are populated. Ref carries an index rather than a pointer so
// that recursive/cyclic schemas never require reference counting or
// weak links (spec.md §9, "Cyclic schema AST").
type node struct {
	form     Form
	nullable bool

	// FormRef
	refName   string
	refTarget int

	// FormType
	typeName TypeName

	// FormEnum (order preserved for deterministic error messages, but
	// membership is what matters for validation)
	enumValues []string

	// FormElements
	elementsOf int

	// FormProperties
	requiredKeys         []string
	requiredIdx          []int
	optionalKeys         []string
	optionalIdx          []int
	additionalProperties bool

	// FormValues
	valuesOf int

	// FormDiscriminator
	tag         string
	mappingKeys []string
	mappingIdx  []int
}

// Schema is a fully compiled, immutable JTD schema. It is safe to share
// across goroutines and to validate concurrently without locking.
type Schema struct {
	nodes       []node
	root        int
	definitions map[string]int
}

func newSchemaAst() *Schema {
	return &Schema{definitions: make(map[string]int)}
}

func (a *Schema) newPlaceholder() int {
	a.nodes = append(a.nodes, node{})
	return len(a.nodes) - 1
}
