package jsonpath

import (
	"strconv"

	"github.com/kaptinlin/jsonpointer"
	jsonv "github.com/kaptinlin/jtdpath/json"
)

// CompiledPath is a parsed JSONPath expression ready for evaluation
// against any number of documents (spec.md §6.2).
type CompiledPath struct {
	path   Path
	source string
}

// Expression returns the original text the path was compiled from.
func (cp *CompiledPath) Expression() string { return cp.source }

// String renders the canonical reconstruction of the compiled path,
// which may differ lexically from Expression() while remaining
// semantically equivalent (spec.md §4.6).
func (cp *CompiledPath) String() string { return printPath(cp.path) }

// Match pairs a matched value with the RFC 6901 pointer tokens of the
// location it was found at, so callers can report where a result came
// from without re-deriving it.
type Match struct {
	Value jsonv.Value
	path  []string
}

// Pointer formats the match's location as an RFC 6901 JSON Pointer.
func (m Match) Pointer() string { return jsonpointer.Format(m.path...) }

// Query evaluates the path against root, returning the matched node
// sequence in traversal order (spec.md §4.5).
func (cp *CompiledPath) Query(root jsonv.Value) []jsonv.Value {
	matches := cp.QueryMatches(root)
	out := make([]jsonv.Value, len(matches))
	for i, m := range matches {
		out[i] = m.Value
	}
	return out
}

// QueryMatches is like Query but also carries each result's pointer
// path, letting callers locate a match inside the source document.
func (cp *CompiledPath) QueryMatches(root jsonv.Value) []Match {
	focus := []Match{{Value: root}}
	for _, seg := range cp.path.Segments {
		focus = applySegment(seg, focus)
	}
	return focus
}

func applySegment(seg Segment, focus []Match) []Match {
	var out []Match
	for _, m := range focus {
		out = append(out, applyToOne(seg, m)...)
	}
	return out
}

func applyToOne(seg Segment, m Match) []Match {
	switch seg.Kind {
	case SegProperty:
		return matchProperty(m, seg.Name)
	case SegIndex:
		return matchIndex(m, seg.Index)
	case SegSlice:
		return matchSlice(m, seg)
	case SegWildcard:
		return matchWildcard(m)
	case SegRecursive:
		var res []Match
		for _, d := range collectDescendants(m) {
			res = append(res, applyToOne(*seg.RecursiveTarget, d)...)
		}
		return res
	case SegUnion:
		var res []Match
		for _, sel := range seg.Union {
			if sel.IsIndex {
				res = append(res, matchIndex(m, sel.Index)...)
			} else {
				res = append(res, matchProperty(m, sel.Name)...)
			}
		}
		return res
	case SegFilter:
		arr, ok := m.Value.AsArr()
		if !ok {
			return nil
		}
		var res []Match
		for i, el := range arr {
			if evalFilter(seg.Filter, el) {
				res = append(res, Match{Value: el, path: appendPath(m.path, strconv.Itoa(i))})
			}
		}
		return res
	case SegScriptIndex:
		arr, ok := m.Value.AsArr()
		if !ok {
			return nil
		}
		n := len(arr)
		j, ok := evalScriptIndex(seg.Script, n)
		if !ok {
			return nil
		}
		idx := j
		if idx < 0 {
			idx = n + idx
		}
		if idx < 0 || idx >= n {
			return nil
		}
		return []Match{{Value: arr[idx], path: appendPath(m.path, strconv.Itoa(idx))}}
	}
	return nil
}

func matchProperty(m Match, name string) []Match {
	obj, ok := m.Value.AsObj()
	if !ok {
		return nil
	}
	v, present := obj.Get(name)
	if !present {
		return nil
	}
	return []Match{{Value: v, path: appendPath(m.path, name)}}
}

func matchIndex(m Match, index int) []Match {
	arr, ok := m.Value.AsArr()
	if !ok {
		return nil
	}
	n := len(arr)
	j := index
	if j < 0 {
		j = n + j
	}
	if j < 0 || j >= n {
		return nil
	}
	return []Match{{Value: arr[j], path: appendPath(m.path, strconv.Itoa(j))}}
}

func matchWildcard(m Match) []Match {
	if obj, ok := m.Value.AsObj(); ok {
		var res []Match
		for _, k := range obj.Keys() {
			v, _ := obj.Get(k)
			res = append(res, Match{Value: v, path: appendPath(m.path, k)})
		}
		return res
	}
	if arr, ok := m.Value.AsArr(); ok {
		res := make([]Match, len(arr))
		for i, v := range arr {
			res[i] = Match{Value: v, path: appendPath(m.path, strconv.Itoa(i))}
		}
		return res
	}
	return nil
}

func matchSlice(m Match, seg Segment) []Match {
	arr, ok := m.Value.AsArr()
	if !ok {
		return nil
	}
	n := len(arr)
	step := 1
	if seg.Step != nil {
		step = *seg.Step
	}
	if step == 0 {
		return nil
	}
	var start, end int
	if step > 0 {
		start, end = 0, n
	} else {
		start, end = n-1, -1
	}
	if seg.Start != nil {
		start = normalizeSliceIndex(*seg.Start, n, step)
	}
	if seg.End != nil {
		end = normalizeSliceIndex(*seg.End, n, step)
	}
	var res []Match
	if step > 0 {
		for i := start; i < end && i < n; i += step {
			if i >= 0 {
				res = append(res, Match{Value: arr[i], path: appendPath(m.path, strconv.Itoa(i))})
			}
		}
	} else {
		for i := start; i > end; i += step {
			if i >= 0 && i < n {
				res = append(res, Match{Value: arr[i], path: appendPath(m.path, strconv.Itoa(i))})
			}
		}
	}
	return res
}

func normalizeSliceIndex(i, n, step int) int {
	if i < 0 {
		i += n
	}
	if step > 0 {
		if i < 0 {
			i = 0
		}
		if i > n {
			i = n
		}
		return i
	}
	if i < -1 {
		i = -1
	}
	if i >= n {
		i = n - 1
	}
	return i
}

// collectDescendants returns m and every node reachable from it, in
// pre-order: a node's own object members (in insertion order) or array
// elements (in index order) are visited before their own descendants.
func collectDescendants(m Match) []Match {
	var out []Match
	var walk func(Match)
	walk = func(cur Match) {
		out = append(out, cur)
		if obj, ok := cur.Value.AsObj(); ok {
			for _, k := range obj.Keys() {
				v, _ := obj.Get(k)
				walk(Match{Value: v, path: appendPath(cur.path, k)})
			}
			return
		}
		if arr, ok := cur.Value.AsArr(); ok {
			for i, v := range arr {
				walk(Match{Value: v, path: appendPath(cur.path, strconv.Itoa(i))})
			}
		}
	}
	walk(m)
	return out
}

func appendPath(path []string, tok string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = tok
	return out
}
