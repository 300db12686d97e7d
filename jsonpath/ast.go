package jsonpath

// Path is the parsed representation of a JSONPath expression: the
// ordered list of segments that follow the root token "$" (spec.md
// §3.3). The root token itself is implicit and not stored.
type Path struct {
	Segments []Segment
}

// SegmentKind identifies which alternative of Segment is populated.
type SegmentKind int

const (
	SegProperty SegmentKind = iota
	SegIndex
	SegSlice
	SegWildcard
	SegRecursive
	SegUnion
	SegFilter
	SegScriptIndex
)

// Selector is one element of a bracketed union; exactly one of Name
// (property access) or Index (array index) applies, per IsIndex.
type Selector struct {
	IsIndex bool
	Name    string
	Index   int
}

// Segment is one step of a compiled path.
type Segment struct {
	Kind SegmentKind

	Name string // SegProperty

	Index int // SegIndex

	Start, End, Step *int // SegSlice; nil means unspecified

	RecursiveTarget *Segment // SegRecursive: PropertyAccess or Wildcard

	Union []Selector // SegUnion

	Filter *FilterExpr // SegFilter

	Script string // SegScriptIndex, accepted verbatim
}
