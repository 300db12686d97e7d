package main

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"

	jsonv "github.com/kaptinlin/jtdpath/json"
	"github.com/kaptinlin/jtdpath/jtd"
)

const jsonvImportPath = "github.com/kaptinlin/jtdpath/json"

// generateStruct renders a best-effort Go declaration for a JTD schema
// whose root is a Properties, Discriminator, Enum or Type form. Nested
// Type and Enum schemas map to Go primitives and nested Elements and
// Values schemas to slices and maps of their element type; every other
// nested form (Properties, Discriminator, Ref, Empty) falls back to
// jsonv.Value, since a schema may be cyclic through Ref and a full
// nested-struct expansion has no natural termination point.
func generateStruct(schema jsonv.Value, pkgName, typeName string) (string, error) {
	s, err := jtd.Compile(schema)
	if err != nil {
		return "", err
	}

	f := jen.NewFile(pkgName)
	f.HeaderComment("Code generated by jtdpath gen. DO NOT EDIT.")

	root := s.Root().View()
	switch root.Form {
	case jtd.FormProperties:
		f.Add(structDecl(typeName, root))
	case jtd.FormDiscriminator:
		f.Add(discriminatorDecl(typeName, root))
	case jtd.FormEnum:
		addEnumDecl(f, typeName, root)
	case jtd.FormType:
		f.Type().Id(typeName).Add(primitiveGoType(root.TypeName))
	default:
		return "", fmt.Errorf("gen: root form %v has no natural Go struct shape", root.Form)
	}

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return "", fmt.Errorf("rendering generated code: %w", err)
	}
	return buf.String(), nil
}

func structDecl(typeName string, view jtd.NodeView) *jen.Statement {
	var fields []jen.Code
	for i, key := range view.RequiredKeys {
		fields = append(fields, fieldStmt(key, view.Required[i].View(), true))
	}
	for i, key := range view.OptionalKeys {
		fields = append(fields, fieldStmt(key, view.Optional[i].View(), false))
	}
	return jen.Type().Id(typeName).Struct(fields...)
}

func discriminatorDecl(typeName string, view jtd.NodeView) *jen.Statement {
	return jen.Comment("variants: "+strings.Join(view.MappingKeys, ", ")).Line().
		Type().Id(typeName).Struct(
		jen.Id(exportName(view.Tag)).String().Tag(map[string]string{"json": view.Tag}),
		jen.Id("Variant").Qual(jsonvImportPath, "Value").Tag(map[string]string{"json": "-"}),
	)
}

func addEnumDecl(f *jen.File, typeName string, view jtd.NodeView) {
	f.Type().Id(typeName).String()
	var values []jen.Code
	for _, v := range view.EnumValues {
		values = append(values, jen.Id(typeName+exportName(v)).Id(typeName).Op("=").Lit(v))
	}
	f.Const().Defs(values...)
}

func fieldStmt(key string, view jtd.NodeView, required bool) jen.Code {
	tag := key
	if !required {
		tag += ",omitempty"
	}
	return jen.Id(exportName(key)).Add(goType(view)).Tag(map[string]string{"json": tag})
}

func goType(view jtd.NodeView) *jen.Statement {
	if view.Nullable {
		return jen.Op("*").Add(goTypeNonNullable(view))
	}
	return goTypeNonNullable(view)
}

func goTypeNonNullable(view jtd.NodeView) *jen.Statement {
	switch view.Form {
	case jtd.FormType:
		return primitiveGoType(view.TypeName)
	case jtd.FormEnum:
		return jen.String()
	case jtd.FormElements:
		return jen.Index().Add(goType(view.ElementsOf.View()))
	case jtd.FormValues:
		return jen.Map(jen.String()).Add(goType(view.ValuesOf.View()))
	default:
		return jen.Qual(jsonvImportPath, "Value")
	}
}

func primitiveGoType(t jtd.TypeName) *jen.Statement {
	switch t {
	case jtd.TypeBoolean:
		return jen.Bool()
	case jtd.TypeString, jtd.TypeTimestamp:
		return jen.String()
	case jtd.TypeFloat32:
		return jen.Float32()
	case jtd.TypeFloat64:
		return jen.Float64()
	case jtd.TypeInt8:
		return jen.Int8()
	case jtd.TypeUint8:
		return jen.Uint8()
	case jtd.TypeInt16:
		return jen.Int16()
	case jtd.TypeUint16:
		return jen.Uint16()
	case jtd.TypeInt32:
		return jen.Int32()
	case jtd.TypeUint32:
		return jen.Uint32()
	}
	return jen.Qual(jsonvImportPath, "Value")
}

// exportName turns a JTD property/enum name into an exported Go
// identifier (e.g. "first-name" -> "FirstName").
func exportName(s string) string {
	out := make([]rune, 0, len(s))
	upperNext := true
	for _, r := range s {
		if r == '-' || r == '_' {
			upperNext = true
			continue
		}
		if upperNext {
			r = toUpperRune(r)
			upperNext = false
		}
		out = append(out, r)
	}
	return string(out)
}

func toUpperRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
