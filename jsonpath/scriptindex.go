package jsonpath

import (
	"regexp"
	"strconv"
)

// scriptLengthRE matches the one script form this implementation
// accepts (Open Question 3, bound in spec.md §9): "@.length" optionally
// followed by "+" or "-" and an integer literal.
var scriptLengthRE = regexp.MustCompile(`^@\.length\s*(?:([+-])\s*(\d+))?$`)

// evalScriptIndex evaluates a ScriptIndex body against an array of
// length n, yielding the integer the script denotes. The caller then
// applies it exactly as an ArrayIndex, including negative-from-end
// wraparound.
func evalScriptIndex(src string, n int) (int, bool) {
	m := scriptLengthRE.FindStringSubmatch(src)
	if m == nil {
		return 0, false
	}
	if m[1] == "" {
		return n, true
	}
	delta, err := strconv.Atoi(m[2])
	if err != nil {
		return 0, false
	}
	if m[1] == "-" {
		delta = -delta
	}
	return n + delta, true
}
