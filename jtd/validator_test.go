package jtd

import "testing"

func TestValidateEmptySchemaUniversal(t *testing.T) {
	s, err := Compile(mustParse(t, `{}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, instance := range []string{`null`, `42`, `"x"`, `[1,2]`, `{"a":1}`, `true`} {
		res := s.Validate(mustParse(t, instance))
		if !res.Valid() {
			t.Fatalf("expected empty schema to accept %s, got errors %+v", instance, res.Errors)
		}
	}
}

func TestValidateUint8Overflow(t *testing.T) {
	s, err := Compile(mustParse(t, `{"properties":{"age":{"type":"uint8"}}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := s.Validate(mustParse(t, `{"age":1000}`))
	if res.Valid() {
		t.Fatal("expected invalid")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %+v", res.Errors)
	}
	if res.Errors[0].InstancePath != "/age" || res.Errors[0].SchemaPath != "/properties/age/type" {
		t.Fatalf("unexpected error pair: %+v", res.Errors[0])
	}
}

func TestValidateElementsReportsEachBadIndex(t *testing.T) {
	s, err := Compile(mustParse(t, `{"elements":{"type":"string"}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := s.Validate(mustParse(t, `["a",42,"b",true]`))
	if len(res.Errors) != 2 {
		t.Fatalf("expected 2 errors, got %+v", res.Errors)
	}
	if res.Errors[0].InstancePath != "/1" || res.Errors[1].InstancePath != "/3" {
		t.Fatalf("unexpected error order: %+v", res.Errors)
	}
	for _, e := range res.Errors {
		if e.SchemaPath != "/elements/type" {
			t.Fatalf("unexpected schema path: %+v", e)
		}
	}
}

func TestValidateDiscriminatorExemptsTagAndExtraFails(t *testing.T) {
	schema := `{"discriminator":"type","mapping":{"person":{"properties":{"name":{"type":"string"}}}}}`
	s, err := Compile(mustParse(t, schema))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := s.Validate(mustParse(t, `{"type":"person","name":"John","extra":"x"}`))
	if len(res.Errors) != 1 {
		t.Fatalf("expected exactly one error, got %+v", res.Errors)
	}
	if res.Errors[0].InstancePath != "/extra" || res.Errors[0].SchemaPath != "" {
		t.Fatalf("unexpected error pair: %+v", res.Errors[0])
	}
}

func TestValidateDiscriminatorUnknownTagValue(t *testing.T) {
	schema := `{"discriminator":"type","mapping":{"person":{"properties":{}}}}`
	s, err := Compile(mustParse(t, schema))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	res := s.Validate(mustParse(t, `{"type":"robot"}`))
	if res.Valid() {
		t.Fatal("expected invalid")
	}
	if res.Errors[0].InstancePath != "/type" || res.Errors[0].SchemaPath != "/mapping" {
		t.Fatalf("unexpected error pair: %+v", res.Errors[0])
	}
}

func TestValidateNullableAcceptsNull(t *testing.T) {
	s, err := Compile(mustParse(t, `{"nullable":true,"type":"string"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := s.Validate(mustParse(t, `null`)); !res.Valid() {
		t.Fatal("expected null to be accepted")
	}
	if res := s.Validate(mustParse(t, `42`)); res.Valid() {
		t.Fatal("expected non-string non-null to be rejected")
	}
}

func TestValidateRefTransparency(t *testing.T) {
	direct, _ := Compile(mustParse(t, `{"properties":{"a":{"type":"string"}}}`))
	viaRef, _ := Compile(mustParse(t, `{"definitions":{"n":{"properties":{"a":{"type":"string"}}}},"ref":"n"}`))

	instance := mustParse(t, `{"a":42}`)
	directRes := direct.Validate(instance)
	refRes := viaRef.Validate(instance)

	if len(directRes.Errors) != len(refRes.Errors) {
		t.Fatalf("expected same error count, got %d vs %d", len(directRes.Errors), len(refRes.Errors))
	}
	for i := range directRes.Errors {
		if directRes.Errors[i].InstancePath != refRes.Errors[i].InstancePath {
			t.Fatalf("instancePath mismatch: %+v vs %+v", directRes.Errors[i], refRes.Errors[i])
		}
		if "/definitions/n"+directRes.Errors[i].SchemaPath != refRes.Errors[i].SchemaPath {
			t.Fatalf("schemaPath not prefixed as expected: %+v vs %+v", directRes.Errors[i], refRes.Errors[i])
		}
	}
}

func TestValidateTimestampLeapSecondAndOffsets(t *testing.T) {
	s, err := Compile(mustParse(t, `{"type":"timestamp"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	good := []string{
		`"1985-04-12T23:20:50.52Z"`,
		`"1990-12-31T23:59:60Z"`,
		`"1990-12-31T15:59:60-08:00"`,
		`"1937-01-01t12:00:27.87+00:20"`,
	}
	for _, g := range good {
		if res := s.Validate(mustParse(t, g)); !res.Valid() {
			t.Fatalf("expected %s to be a valid timestamp, errors: %+v", g, res.Errors)
		}
	}
	bad := []string{`"not-a-timestamp"`, `"1990-13-01T00:00:00Z"`}
	for _, b := range bad {
		if res := s.Validate(mustParse(t, b)); res.Valid() {
			t.Fatalf("expected %s to be rejected", b)
		}
	}
}
