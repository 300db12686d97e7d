package jtd

import (
	jsonv "github.com/kaptinlin/jtdpath/json"
)

// Compile parses a JsonValue schema into an AST, enforcing every RFC
// 8927 well-formedness rule in spec.md §3.2 and resolving refs into
// direct arena indices (allowing recursive cycles via indirection, but
// rejecting pure-ref loops per rule 7). Compile is idempotent: the
// compiler never returns a partial AST, and a CompileError is terminal.
func Compile(schema jsonv.Value) (*Schema, error) {
	obj, ok := schema.AsObj()
	if !ok {
		return nil, compileErr(ErrRootNotObject, "")
	}

	a := newSchemaAst()

	var defsObj *jsonv.Object
	if defsVal, present := obj.Get("definitions"); present {
		defsObj, ok = defsVal.AsObj()
		if !ok {
			return nil, compileErr(ErrRootNotObject, "definitions")
		}
	}

	// Pass 1: register a placeholder index for every definition so that
	// forward and cyclic refs can resolve to a stable index before any
	// definition body has been parsed.
	if defsObj != nil {
		for _, name := range defsObj.Keys() {
			a.definitions[name] = a.newPlaceholder()
		}
	}

	// Pass 2: fill in each definition's body.
	if defsObj != nil {
		for _, name := range defsObj.Keys() {
			defVal, _ := defsObj.Get(name)
			idx := a.definitions[name]
			if err := a.fillSchema(idx, defVal, false); err != nil {
				return nil, err
			}
		}
	}

	rootIdx := a.newPlaceholder()
	if err := a.fillSchema(rootIdx, schema, true); err != nil {
		return nil, err
	}
	a.root = rootIdx

	if err := a.checkRefCycles(); err != nil {
		return nil, err
	}

	return a, nil
}

// fillSchema parses v (a schema node) into the arena slot idx. isRoot
// permits the "definitions" keyword (already consumed by Compile) and
// forbids it everywhere else (rule 3).
func (a *Schema) fillSchema(idx int, v jsonv.Value, isRoot bool) error {
	obj, ok := v.AsObj()
	if !ok {
		return compileErr(ErrRootNotObject, "")
	}

	n := &a.nodes[idx]

	const (
		groupRef           = "ref"
		groupType          = "type"
		groupEnum          = "enum"
		groupElements      = "elements"
		groupProperties    = "properties-group"
		groupValues        = "values"
		groupDiscriminator = "discriminator-group"
	)
	groups := map[string]bool{}

	for _, key := range obj.Keys() {
		switch key {
		case "nullable", "definitions", "metadata":
			// modifier keys, handled below / elsewhere
		case "ref":
			groups[groupRef] = true
		case "type":
			groups[groupType] = true
		case "enum":
			groups[groupEnum] = true
		case "elements":
			groups[groupElements] = true
		case "properties", "optionalProperties", "additionalProperties":
			groups[groupProperties] = true
		case "values":
			groups[groupValues] = true
		case "discriminator", "mapping":
			groups[groupDiscriminator] = true
		default:
			return compileErr(ErrUnknownKey, key)
		}
	}

	if !isRoot {
		if _, present := obj.Get("definitions"); present {
			return compileErr(ErrDefinitionsRootOnly, "definitions")
		}
	}

	if len(groups) > 1 {
		return compileErr(ErrMultipleForms, "")
	}

	n.nullable = false
	if nv, present := obj.Get("nullable"); present {
		b, ok := nv.AsBool()
		if !ok {
			return compileErr(ErrNullableType, "nullable")
		}
		n.nullable = b
	}

	switch {
	case groups[groupRef]:
		return a.fillRef(n, obj)
	case groups[groupType]:
		return a.fillType(n, obj)
	case groups[groupEnum]:
		return a.fillEnum(n, obj)
	case groups[groupElements]:
		return a.fillElements(n, obj)
	case groups[groupProperties]:
		return a.fillProperties(n, obj)
	case groups[groupValues]:
		return a.fillValues(n, obj)
	case groups[groupDiscriminator]:
		return a.fillDiscriminator(n, obj)
	default:
		n.form = FormEmpty
		return nil
	}
}

func (a *Schema) fillRef(n *node, obj *jsonv.Object) error {
	refVal, _ := obj.Get("ref")
	name, ok := refVal.AsStr()
	if !ok {
		return compileErr(ErrRefType, "ref")
	}
	target, ok := a.definitions[name]
	if !ok {
		return compileErr(ErrRefUnresolved, name)
	}
	n.form = FormRef
	n.refName = name
	n.refTarget = target
	return nil
}

func (a *Schema) fillType(n *node, obj *jsonv.Object) error {
	typeVal, _ := obj.Get("type")
	s, ok := typeVal.AsStr()
	if !ok || !validTypeNames[s] {
		key := s
		return compileErr(ErrInvalidType, key)
	}
	n.form = FormType
	n.typeName = TypeName(s)
	return nil
}

func (a *Schema) fillEnum(n *node, obj *jsonv.Object) error {
	enumVal, _ := obj.Get("enum")
	arr, ok := enumVal.AsArr()
	if !ok || len(arr) == 0 {
		return compileErr(ErrEnumEmpty, "enum")
	}
	seen := make(map[string]bool, len(arr))
	values := make([]string, 0, len(arr))
	for _, ev := range arr {
		s, ok := ev.AsStr()
		if !ok {
			return compileErr(ErrEnumElementType, "enum")
		}
		if seen[s] {
			return compileErr(ErrEnumDuplicate, s)
		}
		seen[s] = true
		values = append(values, s)
	}
	n.form = FormEnum
	n.enumValues = values
	return nil
}

func (a *Schema) fillElements(n *node, obj *jsonv.Object) error {
	elVal, _ := obj.Get("elements")
	childIdx, err := a.parseSchema(elVal)
	if err != nil {
		return err
	}
	n.form = FormElements
	n.elementsOf = childIdx
	return nil
}

func (a *Schema) fillValues(n *node, obj *jsonv.Object) error {
	valVal, _ := obj.Get("values")
	childIdx, err := a.parseSchema(valVal)
	if err != nil {
		return err
	}
	n.form = FormValues
	n.valuesOf = childIdx
	return nil
}

func (a *Schema) fillProperties(n *node, obj *jsonv.Object) error {
	n.form = FormProperties
	n.additionalProperties = false
	if apVal, present := obj.Get("additionalProperties"); present {
		b, ok := apVal.AsBool()
		if !ok {
			return compileErr(ErrAdditionalPropertiesType, "additionalProperties")
		}
		n.additionalProperties = b
	}

	requiredSeen := map[string]bool{}
	if reqVal, present := obj.Get("properties"); present {
		reqObj, ok := reqVal.AsObj()
		if !ok {
			return compileErr(ErrPropertiesNotObject, "properties")
		}
		for _, key := range reqObj.Keys() {
			childVal, _ := reqObj.Get(key)
			childIdx, err := a.parseSchema(childVal)
			if err != nil {
				return err
			}
			n.requiredKeys = append(n.requiredKeys, key)
			n.requiredIdx = append(n.requiredIdx, childIdx)
			requiredSeen[key] = true
		}
	}

	if optVal, present := obj.Get("optionalProperties"); present {
		optObj, ok := optVal.AsObj()
		if !ok {
			return compileErr(ErrPropertiesNotObject, "optionalProperties")
		}
		for _, key := range optObj.Keys() {
			if requiredSeen[key] {
				return compileErr(ErrPropertiesOverlap, key)
			}
			childVal, _ := optObj.Get(key)
			childIdx, err := a.parseSchema(childVal)
			if err != nil {
				return err
			}
			n.optionalKeys = append(n.optionalKeys, key)
			n.optionalIdx = append(n.optionalIdx, childIdx)
		}
	}
	return nil
}

func (a *Schema) fillDiscriminator(n *node, obj *jsonv.Object) error {
	tagVal, present := obj.Get("discriminator")
	if !present {
		return compileErr(ErrDiscriminatorTagType, "discriminator")
	}
	tag, ok := tagVal.AsStr()
	if !ok {
		return compileErr(ErrDiscriminatorTagType, "discriminator")
	}

	mapVal, present := obj.Get("mapping")
	if !present {
		return compileErr(ErrDiscriminatorMappingMissing, "mapping")
	}
	mapObj, ok := mapVal.AsObj()
	if !ok {
		return compileErr(ErrDiscriminatorMappingType, "mapping")
	}

	n.form = FormDiscriminator
	n.tag = tag

	for _, name := range mapObj.Keys() {
		variantVal, _ := mapObj.Get(name)
		childIdx, err := a.parseSchema(variantVal)
		if err != nil {
			return err
		}
		child := &a.nodes[childIdx]
		if child.nullable {
			return compileErr(ErrDiscriminatorVariantNullable, name)
		}
		if child.form != FormProperties {
			return compileErr(ErrDiscriminatorVariantForm, name)
		}
		for _, k := range child.requiredKeys {
			if k == tag {
				return compileErr(ErrDiscriminatorTagConflict, tag)
			}
		}
		for _, k := range child.optionalKeys {
			if k == tag {
				return compileErr(ErrDiscriminatorTagConflict, tag)
			}
		}
		n.mappingKeys = append(n.mappingKeys, name)
		n.mappingIdx = append(n.mappingIdx, childIdx)
	}
	return nil
}

// parseSchema allocates a fresh arena slot for a non-definition nested
// schema (an elements/values/properties child, a discriminator
// variant) and fills it immediately.
func (a *Schema) parseSchema(v jsonv.Value) (int, error) {
	idx := a.newPlaceholder()
	if err := a.fillSchema(idx, v, false); err != nil {
		return 0, err
	}
	return idx, nil
}

// checkRefCycles enforces rule 7: a chain of pure Ref forms must
// eventually reach a non-Ref form. Cycles that pass through a concrete
// form (Properties, Elements, ...) are permitted and are in fact the
// intended mechanism for recursive schemas.
func (a *Schema) checkRefCycles() error {
	for i := range a.nodes {
		if a.nodes[i].form != FormRef {
			continue
		}
		visited := map[int]bool{i: true}
		cur := a.nodes[i].refTarget
		for {
			cn := &a.nodes[cur]
			if cn.form != FormRef {
				break
			}
			if visited[cur] {
				return compileErr(ErrPureRefCycle, cn.refName)
			}
			visited[cur] = true
			cur = cn.refTarget
		}
	}
	return nil
}
