package fastnum

import "testing"

func TestIntegerInRange(t *testing.T) {
	d, err := ParseLexical("1000")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d.IntegerInRange(Uint8Min, Uint8Max); err != ErrOutOfRange {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}

	d2, err := ParseLexical("12.5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := d2.IntegerInRange(Int32Min, Int32Max); err != ErrNonIntegral {
		t.Fatalf("expected ErrNonIntegral, got %v", err)
	}

	d3, err := ParseLexical("127")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	n, err := d3.IntegerInRange(Int8Min, Int8Max)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Int64() != 127 {
		t.Fatalf("expected 127, got %v", n)
	}
}

func TestDistinctLexicalEqualValue(t *testing.T) {
	a, _ := ParseLexical("1e2")
	b, _ := ParseLexical("100")
	if a.Cmp(b) != 0 {
		t.Fatal("expected 1e2 == 100 under decimal comparison")
	}
}

func TestInvalidLexical(t *testing.T) {
	if _, err := ParseLexical("not-a-number"); err != ErrInvalidLexical {
		t.Fatalf("expected ErrInvalidLexical, got %v", err)
	}
}
