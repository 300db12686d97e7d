// Package jsonpath implements a Goessner-style JSONPath compiler and
// evaluator: a hand-rolled lexer and recursive-descent parser produce a
// Path AST, which an evaluator steps against an immutable json.Value
// tree to yield the matching node sequence.
package jsonpath
