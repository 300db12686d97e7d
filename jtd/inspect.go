package jtd

// NodeRef is an opaque handle to one node inside a compiled Schema. It
// lets callers outside this package (notably cmd/jtdpath's struct
// generator) walk a schema's structure without reaching into its
// private arena. Children are exposed lazily as further NodeRefs
// rather than eagerly expanded, since a schema may be cyclic through
// Ref (spec.md §3.2 rule 7) and eager expansion would never terminate.
type NodeRef struct {
	schema *Schema
	idx    int
}

// Root returns a NodeRef for the schema's root node.
func (a *Schema) Root() NodeRef { return NodeRef{schema: a, idx: a.root} }

// View resolves the node this ref points to into an inspectable
// snapshot. Only the fields relevant to the returned Form are
// populated.
func (r NodeRef) View() NodeView {
	n := &r.schema.nodes[r.idx]
	v := NodeView{Form: n.form, Nullable: n.nullable}
	switch n.form {
	case FormRef:
		v.RefName = n.refName
		v.RefTarget = NodeRef{schema: r.schema, idx: n.refTarget}
	case FormType:
		v.TypeName = n.typeName
	case FormEnum:
		v.EnumValues = n.enumValues
	case FormElements:
		v.ElementsOf = NodeRef{schema: r.schema, idx: n.elementsOf}
	case FormProperties:
		v.RequiredKeys = n.requiredKeys
		v.Required = refsOf(r.schema, n.requiredIdx)
		v.OptionalKeys = n.optionalKeys
		v.Optional = refsOf(r.schema, n.optionalIdx)
		v.AdditionalProperty = n.additionalProperties
	case FormValues:
		v.ValuesOf = NodeRef{schema: r.schema, idx: n.valuesOf}
	case FormDiscriminator:
		v.Tag = n.tag
		v.MappingKeys = n.mappingKeys
		v.MappingNodes = refsOf(r.schema, n.mappingIdx)
	}
	return v
}

func refsOf(a *Schema, idxs []int) []NodeRef {
	refs := make([]NodeRef, len(idxs))
	for i, idx := range idxs {
		refs[i] = NodeRef{schema: a, idx: idx}
	}
	return refs
}

// NodeView is a read-only snapshot of one compiled schema node.
type NodeView struct {
	Form     Form
	Nullable bool

	RefName   string // FormRef
	RefTarget NodeRef

	TypeName TypeName // FormType

	EnumValues []string // FormEnum

	ElementsOf NodeRef // FormElements

	RequiredKeys       []string // FormProperties
	Required           []NodeRef
	OptionalKeys       []string
	Optional           []NodeRef
	AdditionalProperty bool

	ValuesOf NodeRef // FormValues

	Tag          string // FormDiscriminator
	MappingKeys  []string
	MappingNodes []NodeRef
}
