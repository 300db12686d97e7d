package jsonpath

import (
	"testing"

	jsonv "github.com/kaptinlin/jtdpath/json"
)

// the canonical Goessner bookstore document, used throughout spec.md §8.2.
const bookstoreDoc = `{
	"store": {
		"book": [
			{"category":"reference","author":"Nigel Rees","title":"Sayings of the Century","price":8.95},
			{"category":"fiction","author":"Evelyn Waugh","title":"Sword of Honour","price":12.99},
			{"category":"fiction","author":"Herman Melville","title":"Moby Dick","isbn":"0-553-21311-3","price":8.99},
			{"category":"fiction","author":"J. R. R. Tolkien","title":"The Lord of the Rings","isbn":"0-395-19395-8","price":22.99}
		],
		"bicycle": {"color":"red","price":19.95}
	}
}`

func mustCompile(t *testing.T, expr string) *CompiledPath {
	t.Helper()
	cp, err := Compile(expr)
	if err != nil {
		t.Fatalf("failed to compile %s: %v", expr, err)
	}
	return cp
}

func mustParseDoc(t *testing.T, text string) jsonv.Value {
	t.Helper()
	v, err := jsonv.Parse([]byte(text))
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return v
}

func strValues(t *testing.T, matches []jsonv.Value) []string {
	t.Helper()
	out := make([]string, len(matches))
	for i, v := range matches {
		s, ok := v.AsStr()
		if !ok {
			t.Fatalf("expected string value, got %+v", v)
		}
		out[i] = s
	}
	return out
}

func assertStrings(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestQueryAllAuthors(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store.book[*].author")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"Nigel Rees", "Evelyn Waugh", "Herman Melville", "J. R. R. Tolkien"})
}

func TestQueryRecursiveDescentAllPrices(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store..price")
	matches := cp.Query(doc)
	if len(matches) != 5 {
		t.Fatalf("expected 5 prices, got %d: %+v", len(matches), matches)
	}
}

func TestQueryFilterCheapBooks(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$..book[?(@.price<10)].title")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"Sayings of the Century", "Moby Dick"})
}

func TestQueryScriptIndexLastBook(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$..book[(@.length-1)].title")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"The Lord of the Rings"})
}

func TestQuerySliceFirstTwoBooks(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store.book[0:2].title")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"Sayings of the Century", "Sword of Honour"})
}

func TestQueryFilterExistsIsbn(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store.book[?(@.isbn)].title")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"Moby Dick", "The Lord of the Rings"})
}

func TestQueryUnionIndices(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store.book[0,2].title")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"Sayings of the Century", "Moby Dick"})
}

func TestQueryWildcardObjectMembers(t *testing.T) {
	doc := mustParseDoc(t, `{"a":{"x":1,"y":2},"b":[3,4]}`)
	cp := mustCompile(t, "$.a.*")
	matches := cp.Query(doc)
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
}

func TestQueryMatchesPointer(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store.book[0].author")
	matches := cp.QueryMatches(doc)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Pointer() != "/store/book/0/author" {
		t.Fatalf("unexpected pointer: %s", matches[0].Pointer())
	}
}

func TestQueryNegativeIndex(t *testing.T) {
	doc := mustParseDoc(t, bookstoreDoc)
	cp := mustCompile(t, "$.store.book[-1].title")
	got := strValues(t, cp.Query(doc))
	assertStrings(t, got, []string{"The Lord of the Rings"})
}
