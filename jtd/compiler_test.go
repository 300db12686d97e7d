package jtd

import (
	"errors"
	"testing"

	jsonv "github.com/kaptinlin/jtdpath/json"
)

func mustParse(t *testing.T, text string) jsonv.Value {
	t.Helper()
	v, err := jsonv.Parse([]byte(text))
	if err != nil {
		t.Fatalf("failed to parse fixture %s: %v", text, err)
	}
	return v
}

func TestCompileEmptySchema(t *testing.T) {
	s, err := Compile(mustParse(t, `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.nodes[s.root].form != FormEmpty {
		t.Fatal("expected empty form")
	}
}

func TestCompileRejectsMultipleForms(t *testing.T) {
	_, err := Compile(mustParse(t, `{"type":"string","enum":["a"]}`))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrMultipleForms) {
		t.Fatalf("expected ErrMultipleForms, got %v", err)
	}
}

func TestCompileRejectsUnknownKey(t *testing.T) {
	_, err := Compile(mustParse(t, `{"bogus":true}`))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestCompileRejectsPropertiesOverlap(t *testing.T) {
	_, err := Compile(mustParse(t, `{"properties":{"a":{}},"optionalProperties":{"a":{}}}`))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrPropertiesOverlap) {
		t.Fatalf("expected ErrPropertiesOverlap, got %v", err)
	}
}

func TestCompileRejectsDefinitionsNotAtRoot(t *testing.T) {
	_, err := Compile(mustParse(t, `{"elements":{"definitions":{}}}`))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrDefinitionsRootOnly) {
		t.Fatalf("expected ErrDefinitionsRootOnly, got %v", err)
	}
}

func TestCompileResolvesRecursiveRef(t *testing.T) {
	schema := `{
		"definitions": {
			"node": {
				"properties": {
					"value": {"type":"string"},
					"next": {"nullable": true, "ref": "node"}
				}
			}
		},
		"ref": "node"
	}`
	s, err := Compile(mustParse(t, schema))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := &s.nodes[s.root]
	if root.form != FormRef {
		t.Fatal("expected root ref form")
	}
}

func TestCompileRejectsPureRefCycle(t *testing.T) {
	schema := `{"definitions":{"a":{"ref":"b"},"b":{"ref":"a"}},"ref":"a"}`
	_, err := Compile(mustParse(t, schema))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrPureRefCycle) {
		t.Fatalf("expected ErrPureRefCycle, got %v", err)
	}
}

func TestCompileRejectsUnresolvedRef(t *testing.T) {
	_, err := Compile(mustParse(t, `{"ref":"missing"}`))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrRefUnresolved) {
		t.Fatalf("expected ErrRefUnresolved, got %v", err)
	}
}

func TestCompileDiscriminatorRejectsNonPropertiesVariant(t *testing.T) {
	schema := `{"discriminator":"type","mapping":{"a":{"type":"string"}}}`
	_, err := Compile(mustParse(t, schema))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrDiscriminatorVariantForm) {
		t.Fatalf("expected ErrDiscriminatorVariantForm, got %v", err)
	}
}

func TestCompileDiscriminatorRejectsTagConflict(t *testing.T) {
	schema := `{"discriminator":"type","mapping":{"a":{"properties":{"type":{"type":"string"}}}}}`
	_, err := Compile(mustParse(t, schema))
	var ce *CompileError
	if !errors.As(err, &ce) || !errors.Is(ce.Rule, ErrDiscriminatorTagConflict) {
		t.Fatalf("expected ErrDiscriminatorTagConflict, got %v", err)
	}
}
