package jsonpath

import (
	"strconv"
	"strings"

	"github.com/kaptinlin/jtdpath/internal/fastnum"
	jsonv "github.com/kaptinlin/jtdpath/json"
)

// evalFilter decides whether el, the candidate array element, passes
// the filter script (spec.md §4.3's filter sub-language), with @
// bound to el itself.
func evalFilter(expr *FilterExpr, el jsonv.Value) bool {
	switch expr.Kind {
	case ExprCurrent:
		return !el.IsNull()
	case ExprExists:
		v, ok := resolvePath(expr.Exists, el)
		return ok && !v.IsNull()
	case ExprNot:
		return !evalFilter(expr.Left, el)
	case ExprAnd:
		return evalFilter(expr.Left, el) && evalFilter(expr.Right, el)
	case ExprOr:
		return evalFilter(expr.Left, el) || evalFilter(expr.Right, el)
	case ExprComparison:
		return evalComparison(expr, el)
	}
	return false
}

func resolvePath(steps []PathStep, v jsonv.Value) (jsonv.Value, bool) {
	cur := v
	for _, s := range steps {
		if s.IsLength {
			arr, ok := cur.AsArr()
			if !ok {
				return jsonv.Value{}, false
			}
			return jsonv.Num(strconv.Itoa(len(arr))), true
		}
		obj, ok := cur.AsObj()
		if !ok {
			return jsonv.Value{}, false
		}
		val, present := obj.Get(s.Name)
		if !present {
			return jsonv.Value{}, false
		}
		cur = val
	}
	return cur, true
}

func resolveAtom(a *Atom, el jsonv.Value) jsonv.Value {
	switch a.Kind {
	case AtomNumber:
		return jsonv.Num(a.Number)
	case AtomString:
		return jsonv.Str(a.Str)
	case AtomPath:
		if len(a.Path) == 0 {
			return el
		}
		v, ok := resolvePath(a.Path, el)
		if !ok {
			return jsonv.Null()
		}
		return v
	}
	return jsonv.Null()
}

func evalComparison(expr *FilterExpr, el jsonv.Value) bool {
	lv := resolveAtom(expr.LHS, el)
	rv := resolveAtom(expr.RHS, el)

	if lv.IsNull() && rv.IsNull() {
		switch expr.Op {
		case OpEQ:
			return true
		case OpNE:
			return false
		default:
			return false
		}
	}

	if lnum, lok := lv.Lexical(); lok {
		if rnum, rok := rv.Lexical(); rok {
			ld, err1 := fastnum.ParseLexical(lnum)
			rd, err2 := fastnum.ParseLexical(rnum)
			if err1 != nil || err2 != nil {
				return false
			}
			return compareResult(expr.Op, ld.Cmp(rd))
		}
	}

	if lstr, lok := lv.AsStr(); lok {
		if rstr, rok := rv.AsStr(); rok {
			return compareResult(expr.Op, strings.Compare(lstr, rstr))
		}
	}

	switch expr.Op {
	case OpEQ:
		return false
	case OpNE:
		return true
	default:
		return false
	}
}

func compareResult(op CompareOp, cmp int) bool {
	switch op {
	case OpLT:
		return cmp < 0
	case OpLE:
		return cmp <= 0
	case OpGT:
		return cmp > 0
	case OpGE:
		return cmp >= 0
	case OpEQ:
		return cmp == 0
	case OpNE:
		return cmp != 0
	}
	return false
}
