package json

import "testing"

func TestParseRoundTripsLexicalNumbers(t *testing.T) {
	v, err := Parse([]byte(`{"a": 1e2, "b": 100, "c": [1, 2, 3]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, ok := v.AsObj()
	if !ok {
		t.Fatal("expected object")
	}
	a, _ := obj.Get("a")
	b, _ := obj.Get("b")
	lexA, _ := a.Lexical()
	lexB, _ := b.Lexical()
	if lexA != "1e2" {
		t.Fatalf("expected lexical 1e2, got %s", lexA)
	}
	if lexB != "100" {
		t.Fatalf("expected lexical 100, got %s", lexB)
	}
	if lexA == lexB {
		t.Fatal("1e2 and 100 must not compare lexically equal")
	}
}

func TestParseObjectOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z": 1, "a": 2, "m": 3}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	obj, _ := v.AsObj()
	keys := obj.Keys()
	want := []string{"z", "a", "m"}
	for i, k := range want {
		if keys[i] != k {
			t.Fatalf("expected order %v, got %v", want, keys)
		}
	}
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	if _, err := Parse([]byte(`1 2`)); err == nil {
		t.Fatal("expected error for trailing data")
	}
}

func TestToTextRoundTrip(t *testing.T) {
	v, err := Parse([]byte(`{"x":[1,"y",null,true]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := ToText(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v2, err := Parse(out)
	if err != nil {
		t.Fatalf("unexpected re-parse error: %v", err)
	}
	if !Equal(v, v2) {
		t.Fatal("expected round trip to preserve structure")
	}
}
