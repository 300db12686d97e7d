package jsonpath

import "testing"

func TestCompileRejectsMissingRoot(t *testing.T) {
	if _, err := Compile("store.book"); err == nil {
		t.Fatal("expected error for path missing '$'")
	}
}

func TestCompileSimpleDotPath(t *testing.T) {
	cp, err := Compile("$.store.book")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cp.path.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(cp.path.Segments))
	}
	if cp.path.Segments[0].Kind != SegProperty || cp.path.Segments[0].Name != "store" {
		t.Fatalf("unexpected first segment: %+v", cp.path.Segments[0])
	}
}

func TestCompileRecursiveWildcard(t *testing.T) {
	cp, err := Compile("$..*")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := cp.path.Segments[0]
	if seg.Kind != SegRecursive || seg.RecursiveTarget.Kind != SegWildcard {
		t.Fatalf("unexpected segment: %+v", seg)
	}
}

func TestCompileSlice(t *testing.T) {
	cp, err := Compile("$.book[1:3]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := cp.path.Segments[1]
	if seg.Kind != SegSlice || seg.Start == nil || *seg.Start != 1 || seg.End == nil || *seg.End != 3 {
		t.Fatalf("unexpected slice segment: %+v", seg)
	}
}

func TestCompileUnionIndices(t *testing.T) {
	cp, err := Compile("$.book[0,2]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := cp.path.Segments[1]
	if seg.Kind != SegUnion || len(seg.Union) != 2 {
		t.Fatalf("unexpected union segment: %+v", seg)
	}
}

func TestCompileMixedUnionIsRejected(t *testing.T) {
	if _, err := Compile(`$.book[0,"a"]`); err == nil {
		t.Fatal("expected bracket selector mix to be rejected")
	}
}

func TestCompileFilterExpr(t *testing.T) {
	cp, err := Compile(`$.book[?(@.price<10)]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := cp.path.Segments[1]
	if seg.Kind != SegFilter || seg.Filter.Kind != ExprComparison || seg.Filter.Op != OpLT {
		t.Fatalf("unexpected filter segment: %+v", seg)
	}
}

func TestCompileScriptIndexAcceptsVerbatim(t *testing.T) {
	cp, err := Compile(`$.book[(@.length-1)]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := cp.path.Segments[1]
	if seg.Kind != SegScriptIndex || seg.Script != "@.length-1" {
		t.Fatalf("unexpected script segment: %+v", seg)
	}
}

func TestCompileFilterPrecedence(t *testing.T) {
	cp, err := Compile(`$.book[?(@.a<1 && @.b>2 || !(@.c==3))]`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	top := cp.path.Segments[1].Filter
	if top.Kind != ExprOr {
		t.Fatalf("expected top-level Or, got %+v", top)
	}
	if top.Left.Kind != ExprAnd {
		t.Fatalf("expected left side of Or to be And, got %+v", top.Left)
	}
	if top.Right.Kind != ExprNot {
		t.Fatalf("expected right side of Or to be Not, got %+v", top.Right)
	}
}
