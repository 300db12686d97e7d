package jtd

import (
	"strconv"

	jsonv "github.com/kaptinlin/jtdpath/json"
)

// frame is one unit of work on the validator's explicit LIFO stack
// (spec.md §4.2, §9 "Explicit work stack"). Using an explicit stack
// rather than native recursion lets deeply nested/cyclic schemas
// validate without a call-stack limit and makes error ordering an
// explicit choice: children are pushed in reverse so they pop, and are
// therefore visited, left-to-right.
type frame struct {
	nodeIdx          int
	instance         jsonv.Value
	instancePath     []string
	schemaPath       []string
	discriminatorTag string // inherited tag key, exempted from required/additional checks

	// apBasePath is the schemaPath an additionalProperties violation is
	// reported against when this frame's Properties form was entered via
	// discriminator inheritance, per spec.md §8.2 scenario 5: the error
	// is anchored to the discriminator's own location, not the variant's
	// "/mapping/<tag>" path. Set only by stepDiscriminator; every other
	// frame leaves it nil and reports additionalProperties violations
	// against its own schemaPath instead. It does not propagate past the
	// single Properties step it was produced for — children built by
	// stepProperties reset both discriminatorTag and apBasePath, since
	// the exemption/redirection is scoped to the variant's own
	// properties check, not to schemas nested inside it.
	apBasePath []string
}

// Validate walks instance against the compiled schema using the stack
// interpreter described in spec.md §4.2, returning every
// (instancePath, schemaPath) violation. It never throws on
// valid-shaped input and never short-circuits: all violations are
// accumulated.
func (a *Schema) Validate(instance jsonv.Value) *Result {
	res := &Result{}
	stack := []frame{{nodeIdx: a.root, instance: instance}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = a.step(f, stack, res)
	}
	return res
}

// ValidateSchema is the package-level convenience form: Compile then
// Validate (spec.md §6.1).
func ValidateSchema(schema, instance jsonv.Value) (*Result, error) {
	s, err := Compile(schema)
	if err != nil {
		return nil, err
	}
	return s.Validate(instance), nil
}

func (a *Schema) step(f frame, stack []frame, res *Result) []frame {
	n := &a.nodes[f.nodeIdx]

	if n.nullable {
		if f.instance.Kind() == jsonv.KindNull {
			return stack
		}
	}

	switch n.form {
	case FormEmpty:
		return stack
	case FormRef:
		nf := f
		nf.nodeIdx = n.refTarget
		nf.schemaPath = appendTok(f.schemaPath, "definitions", n.refName)
		return append(stack, nf)
	case FormType:
		if !validateType(n.typeName, f.instance) {
			res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "type")))
		}
		return stack
	case FormEnum:
		str, ok := f.instance.AsStr()
		if !ok || !stringInSet(n.enumValues, str) {
			res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "enum")))
		}
		return stack
	case FormElements:
		return a.stepElements(n, f, stack, res)
	case FormValues:
		return a.stepValues(n, f, stack, res)
	case FormProperties:
		return a.stepProperties(n, f, stack, res)
	case FormDiscriminator:
		return a.stepDiscriminator(n, f, stack, res)
	}
	return stack
}

func stringInSet(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}

func (a *Schema) stepElements(n *node, f frame, stack []frame, res *Result) []frame {
	arr, ok := f.instance.AsArr()
	if !ok {
		res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "elements")))
		return stack
	}
	children := make([]frame, len(arr))
	for i, elem := range arr {
		children[i] = frame{
			nodeIdx:      n.elementsOf,
			instance:     elem,
			instancePath: appendTok(f.instancePath, strconv.Itoa(i)),
			schemaPath:   appendTok(f.schemaPath, "elements"),
		}
	}
	return pushReversed(stack, children)
}

func (a *Schema) stepValues(n *node, f frame, stack []frame, res *Result) []frame {
	obj, ok := f.instance.AsObj()
	if !ok {
		res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "values")))
		return stack
	}
	keys := obj.Keys()
	children := make([]frame, len(keys))
	for i, k := range keys {
		v, _ := obj.Get(k)
		children[i] = frame{
			nodeIdx:      n.valuesOf,
			instance:     v,
			instancePath: appendTok(f.instancePath, k),
			schemaPath:   appendTok(f.schemaPath, "values"),
		}
	}
	return pushReversed(stack, children)
}

func (a *Schema) stepProperties(n *node, f frame, stack []frame, res *Result) []frame {
	obj, ok := f.instance.AsObj()
	if !ok {
		schemaKey := "properties"
		if len(n.requiredKeys) == 0 {
			schemaKey = "optionalProperties"
		}
		res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, schemaKey)))
		return stack
	}

	// 1. required-missing, declared order.
	for _, k := range n.requiredKeys {
		if !obj.Has(k) {
			res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "properties", k)))
		}
	}

	// 2. unknown additional properties. When this Properties form was
	// reached via discriminator inheritance, the violation is reported
	// against the discriminator's own schemaPath (f.apBasePath), not the
	// variant's "/mapping/<tag>" path (spec.md §8.2 scenario 5).
	if !n.additionalProperties {
		apSchemaPath := f.schemaPath
		if f.discriminatorTag != "" {
			apSchemaPath = f.apBasePath
		}
		reqSet := stringSet(n.requiredKeys)
		optSet := stringSet(n.optionalKeys)
		for _, k := range obj.Keys() {
			if reqSet[k] || optSet[k] || (f.discriminatorTag != "" && k == f.discriminatorTag) {
				continue
			}
			res.Errors = append(res.Errors, pair(appendTok(f.instancePath, k), apSchemaPath))
		}
	}

	// 3. descend into known, present keys: required then optional. The
	// discriminator exemption is scoped to this properties check alone,
	// so children do not inherit discriminatorTag/apBasePath: a nested
	// schema that happens to declare a property named after the tag
	// still gets the ordinary required/additional checks for it.
	var children []frame
	for i, k := range n.requiredKeys {
		if k == f.discriminatorTag {
			continue
		}
		v, present := obj.Get(k)
		if !present {
			continue
		}
		children = append(children, frame{
			nodeIdx:      n.requiredIdx[i],
			instance:     v,
			instancePath: appendTok(f.instancePath, k),
			schemaPath:   appendTok(f.schemaPath, "properties", k),
		})
	}
	for i, k := range n.optionalKeys {
		if k == f.discriminatorTag {
			continue
		}
		v, present := obj.Get(k)
		if !present {
			continue
		}
		children = append(children, frame{
			nodeIdx:      n.optionalIdx[i],
			instance:     v,
			instancePath: appendTok(f.instancePath, k),
			schemaPath:   appendTok(f.schemaPath, "optionalProperties", k),
		})
	}
	return pushReversed(stack, children)
}

func (a *Schema) stepDiscriminator(n *node, f frame, stack []frame, res *Result) []frame {
	obj, ok := f.instance.AsObj()
	if !ok {
		res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "discriminator")))
		return stack
	}
	tagVal, present := obj.Get(n.tag)
	if !present {
		res.Errors = append(res.Errors, pair(f.instancePath, appendTok(f.schemaPath, "discriminator")))
		return stack
	}
	tagStr, ok := tagVal.AsStr()
	if !ok {
		res.Errors = append(res.Errors, pair(appendTok(f.instancePath, n.tag), appendTok(f.schemaPath, "discriminator")))
		return stack
	}

	variantIdx := -1
	for i, name := range n.mappingKeys {
		if name == tagStr {
			variantIdx = n.mappingIdx[i]
			break
		}
	}
	if variantIdx == -1 {
		res.Errors = append(res.Errors, pair(appendTok(f.instancePath, n.tag), appendTok(f.schemaPath, "mapping")))
		return stack
	}

	nf := frame{
		nodeIdx:          variantIdx,
		instance:         f.instance,
		instancePath:     f.instancePath,
		schemaPath:       appendTok(f.schemaPath, "mapping", tagStr),
		discriminatorTag: n.tag,
		apBasePath:       f.schemaPath,
	}
	return append(stack, nf)
}

func stringSet(keys []string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// pushReversed appends children in reverse order so that popping from
// the back of the stack visits them left-to-right.
func pushReversed(stack []frame, children []frame) []frame {
	for i := len(children) - 1; i >= 0; i-- {
		stack = append(stack, children[i])
	}
	return stack
}
