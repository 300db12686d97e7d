package jsonpath

import (
	"strconv"
	"strings"
)

// printPath renders a canonical textual form of a compiled Path. The
// output need not match the original source byte-for-byte, only mean
// the same thing (spec.md §4.6).
func printPath(p Path) string {
	var b strings.Builder
	b.WriteString("$")
	for _, seg := range p.Segments {
		writeSegment(&b, seg)
	}
	return b.String()
}

func writeSegment(b *strings.Builder, seg Segment) {
	switch seg.Kind {
	case SegProperty:
		b.WriteString(".")
		b.WriteString(seg.Name)
	case SegWildcard:
		b.WriteString(".*")
	case SegRecursive:
		b.WriteString("..")
		switch seg.RecursiveTarget.Kind {
		case SegWildcard:
			b.WriteString("*")
		default:
			b.WriteString(seg.RecursiveTarget.Name)
		}
	case SegIndex:
		b.WriteString("[")
		b.WriteString(strconv.Itoa(seg.Index))
		b.WriteString("]")
	case SegSlice:
		b.WriteString("[")
		if seg.Start != nil {
			b.WriteString(strconv.Itoa(*seg.Start))
		}
		b.WriteString(":")
		if seg.End != nil {
			b.WriteString(strconv.Itoa(*seg.End))
		}
		if seg.Step != nil {
			b.WriteString(":")
			b.WriteString(strconv.Itoa(*seg.Step))
		}
		b.WriteString("]")
	case SegUnion:
		b.WriteString("[")
		for i, sel := range seg.Union {
			if i > 0 {
				b.WriteString(",")
			}
			if sel.IsIndex {
				b.WriteString(strconv.Itoa(sel.Index))
			} else {
				b.WriteString(strconv.Quote(sel.Name))
			}
		}
		b.WriteString("]")
	case SegFilter:
		b.WriteString("[?(")
		writeFilterExpr(b, seg.Filter)
		b.WriteString(")]")
	case SegScriptIndex:
		b.WriteString("[(")
		b.WriteString(seg.Script)
		b.WriteString(")]")
	}
}

func writeFilterExpr(b *strings.Builder, e *FilterExpr) {
	switch e.Kind {
	case ExprCurrent:
		b.WriteString("@")
	case ExprExists:
		b.WriteString("@")
		writePathSteps(b, e.Exists)
	case ExprNot:
		b.WriteString("!(")
		writeFilterExpr(b, e.Left)
		b.WriteString(")")
	case ExprAnd:
		b.WriteString("(")
		writeFilterExpr(b, e.Left)
		b.WriteString(" && ")
		writeFilterExpr(b, e.Right)
		b.WriteString(")")
	case ExprOr:
		b.WriteString("(")
		writeFilterExpr(b, e.Left)
		b.WriteString(" || ")
		writeFilterExpr(b, e.Right)
		b.WriteString(")")
	case ExprComparison:
		writeAtom(b, e.LHS)
		b.WriteString(compareOpText(e.Op))
		writeAtom(b, e.RHS)
	}
}

func writePathSteps(b *strings.Builder, steps []PathStep) {
	for _, s := range steps {
		b.WriteString(".")
		if s.IsLength {
			b.WriteString("length")
			continue
		}
		b.WriteString(s.Name)
	}
}

func writeAtom(b *strings.Builder, a *Atom) {
	switch a.Kind {
	case AtomPath:
		b.WriteString("@")
		writePathSteps(b, a.Path)
	case AtomString:
		b.WriteString(strconv.Quote(a.Str))
	case AtomNumber:
		b.WriteString(a.Number)
	}
}

func compareOpText(op CompareOp) string {
	switch op {
	case OpEQ:
		return "=="
	case OpNE:
		return "!="
	case OpLT:
		return "<"
	case OpLE:
		return "<="
	case OpGT:
		return ">"
	case OpGE:
		return ">="
	}
	return "?"
}
