package jsonpath

import (
	"strconv"
	"strings"
)

// parser is a recursive-descent parser over the token stream produced
// by lexer, implementing spec.md §4.4's grammar. Most productions
// consume tokens one at a time; the ScriptIndex alternative of Bracket
// is the one exception, reading its body verbatim from the source
// bytes instead of through the token stream.
type parser struct {
	lx  *lexer
	cur token
}

func newParser(src []byte) (*parser, error) {
	p := &parser{lx: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *parser) advance() error {
	tok, err := p.lx.next()
	if err != nil {
		return err
	}
	p.cur = tok
	return nil
}

func (p *parser) peek() token { return p.cur }

func (p *parser) expect(k tokKind, what string) (token, error) {
	if p.cur.kind != k {
		return token{}, &ParseError{Offset: int64(p.cur.pos), Reason: "expected " + what}
	}
	tok := p.cur
	if err := p.advance(); err != nil {
		return token{}, err
	}
	return tok, nil
}

// Compile parses a JSONPath expression, returning a CompiledPath ready
// for evaluation. The source must begin with the root token "$".
func Compile(expr string) (*CompiledPath, error) {
	p, err := newParser([]byte(expr))
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tDollar {
		return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "path must start with '$'"}
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	var segs []Segment
	for p.peek().kind != tEOF {
		seg, err := p.parseSegment()
		if err != nil {
			return nil, err
		}
		segs = append(segs, *seg)
	}
	return &CompiledPath{path: Path{Segments: segs}, source: expr}, nil
}

func (p *parser) parseSegment() (*Segment, error) {
	switch p.peek().kind {
	case tDot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.peek().kind == tStar {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &Segment{Kind: SegWildcard}, nil
		}
		if p.peek().kind != tIdent {
			return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected a property name after '.'"}
		}
		name := p.peek().str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Segment{Kind: SegProperty, Name: name}, nil

	case tDotDot:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.peek().kind == tStar {
			if err := p.advance(); err != nil {
				return nil, err
			}
			return &Segment{Kind: SegRecursive, RecursiveTarget: &Segment{Kind: SegWildcard}}, nil
		}
		if p.peek().kind != tIdent {
			return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "'..' must be followed by a name or '*'"}
		}
		name := p.peek().str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Segment{Kind: SegRecursive, RecursiveTarget: &Segment{Kind: SegProperty, Name: name}}, nil

	case tLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		seg, err := p.parseBracket()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tRBracket, "']'"); err != nil {
			return nil, err
		}
		return seg, nil

	default:
		return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected a path segment"}
	}
}

func (p *parser) parseBracket() (*Segment, error) {
	switch p.peek().kind {
	case tQLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.parseFilterExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tRParen, "')'"); err != nil {
			return nil, err
		}
		return &Segment{Kind: SegFilter, Filter: expr}, nil

	case tLParen:
		openPos := p.peek().pos
		body, endPos, err := scanScriptBody(p.lx.src, openPos)
		if err != nil {
			return nil, err
		}
		p.lx.seek(endPos)
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Segment{Kind: SegScriptIndex, Script: strings.TrimSpace(body)}, nil

	case tStar:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Segment{Kind: SegWildcard}, nil

	case tString:
		return p.parseQuotedUnion()

	default:
		return p.parseIntOrSlice()
	}
}

func (p *parser) parseQuotedUnion() (*Segment, error) {
	var names []string
	for {
		tok, err := p.expect(tString, "quoted property name")
		if err != nil {
			return nil, err
		}
		names = append(names, tok.str)
		if p.peek().kind != tComma {
			break
		}
		if err := p.advance(); err != nil {
			return nil, err
		}
	}
	if len(names) == 1 {
		return &Segment{Kind: SegProperty, Name: names[0]}, nil
	}
	sels := make([]Selector, len(names))
	for i, n := range names {
		sels[i] = Selector{Name: n}
	}
	return &Segment{Kind: SegUnion, Union: sels}, nil
}

func (p *parser) tryParseSignedInt() (int, bool, error) {
	neg := false
	if p.peek().kind == tMinus {
		neg = true
		if err := p.advance(); err != nil {
			return 0, false, err
		}
	}
	if p.peek().kind != tInt {
		if neg {
			return 0, false, &ParseError{Offset: int64(p.peek().pos), Reason: "expected an integer after '-'"}
		}
		return 0, false, nil
	}
	text := p.peek().str
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false, &ParseError{Offset: int64(p.peek().pos), Reason: "invalid integer"}
	}
	if err := p.advance(); err != nil {
		return 0, false, err
	}
	if neg {
		n = -n
	}
	return n, true, nil
}

func (p *parser) parseIntOrSlice() (*Segment, error) {
	first, hasFirst, err := p.tryParseSignedInt()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tColon {
		return p.parseSliceFrom(first, hasFirst)
	}
	if !hasFirst {
		return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected an index, slice, or selector list"}
	}
	ints := []int{first}
	for p.peek().kind == tComma {
		if err := p.advance(); err != nil {
			return nil, err
		}
		n, ok, err := p.tryParseSignedInt()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "bracket selector list mixes incompatible kinds"}
		}
		ints = append(ints, n)
	}
	if len(ints) == 1 {
		return &Segment{Kind: SegIndex, Index: ints[0]}, nil
	}
	sels := make([]Selector, len(ints))
	for i, n := range ints {
		sels[i] = Selector{IsIndex: true, Index: n}
	}
	return &Segment{Kind: SegUnion, Union: sels}, nil
}

func (p *parser) parseSliceFrom(first int, hasFirst bool) (*Segment, error) {
	seg := &Segment{Kind: SegSlice}
	if hasFirst {
		v := first
		seg.Start = &v
	}
	if _, err := p.expect(tColon, "':'"); err != nil {
		return nil, err
	}
	if p.peek().kind != tColon && p.peek().kind != tRBracket {
		end, ok, err := p.tryParseSignedInt()
		if err != nil {
			return nil, err
		}
		if ok {
			seg.End = &end
		}
	}
	if p.peek().kind == tColon {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.peek().kind != tRBracket {
			step, ok, err := p.tryParseSignedInt()
			if err != nil {
				return nil, err
			}
			if ok {
				seg.Step = &step
			}
		}
	}
	return seg, nil
}

// Filter expression grammar: parens > unary ! > comparison > && > ||.

func (p *parser) parseFilterExpr() (*FilterExpr, error) { return p.parseOr() }

func (p *parser) parseOr() (*FilterExpr, error) {
	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tOr {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left = &FilterExpr{Kind: ExprOr, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseAnd() (*FilterExpr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tAnd {
		if err := p.advance(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &FilterExpr{Kind: ExprAnd, Left: left, Right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (*FilterExpr, error) {
	if p.peek().kind == tNot {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &FilterExpr{Kind: ExprNot, Left: inner}, nil
	}
	return p.parsePrimary()
}

func (p *parser) parsePrimary() (*FilterExpr, error) {
	if p.peek().kind == tLParen {
		if err := p.advance(); err != nil {
			return nil, err
		}
		inner, err := p.parseFilterExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tRParen, "')'"); err != nil {
			return nil, err
		}
		return inner, nil
	}
	return p.parseComparisonOrExists()
}

func (p *parser) parseComparisonOrExists() (*FilterExpr, error) {
	lhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	op, ok := compareOpOf(p.peek().kind)
	if !ok {
		if lhs.Kind != AtomPath {
			return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected a comparison operator"}
		}
		if len(lhs.Path) == 0 {
			return &FilterExpr{Kind: ExprCurrent}, nil
		}
		return &FilterExpr{Kind: ExprExists, Exists: lhs.Path}, nil
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	rhs, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	return &FilterExpr{Kind: ExprComparison, Op: op, LHS: lhs, RHS: rhs}, nil
}

func compareOpOf(k tokKind) (CompareOp, bool) {
	switch k {
	case tEq:
		return OpEQ, true
	case tNe:
		return OpNE, true
	case tLt:
		return OpLT, true
	case tLe:
		return OpLE, true
	case tGt:
		return OpGT, true
	case tGe:
		return OpGE, true
	}
	return 0, false
}

func (p *parser) parseAtom() (*Atom, error) {
	switch p.peek().kind {
	case tAt:
		if err := p.advance(); err != nil {
			return nil, err
		}
		steps, err := p.parsePropertyPathTail()
		if err != nil {
			return nil, err
		}
		return &Atom{Kind: AtomPath, Path: steps}, nil
	case tString:
		s := p.peek().str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Atom{Kind: AtomString, Str: s}, nil
	case tInt:
		s := p.peek().str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Atom{Kind: AtomNumber, Number: s}, nil
	case tMinus:
		if err := p.advance(); err != nil {
			return nil, err
		}
		if p.peek().kind != tInt {
			return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected a number after '-'"}
		}
		s := "-" + p.peek().str
		if err := p.advance(); err != nil {
			return nil, err
		}
		return &Atom{Kind: AtomNumber, Number: s}, nil
	default:
		return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected '@' or a literal"}
	}
}

func (p *parser) parsePropertyPathTail() ([]PathStep, error) {
	var steps []PathStep
	for {
		switch p.peek().kind {
		case tDot:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if p.peek().kind != tIdent {
				return nil, &ParseError{Offset: int64(p.peek().pos), Reason: "expected a property name after '.'"}
			}
			name := p.peek().str
			if err := p.advance(); err != nil {
				return nil, err
			}
			if name == "length" {
				steps = append(steps, PathStep{IsLength: true})
			} else {
				steps = append(steps, PathStep{Name: name})
			}
		case tLBracket:
			if err := p.advance(); err != nil {
				return nil, err
			}
			tok, err := p.expect(tString, "a quoted property name")
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(tRBracket, "']'"); err != nil {
				return nil, err
			}
			steps = append(steps, PathStep{Name: tok.str})
		default:
			return steps, nil
		}
	}
}
