package jsonpath

import "fmt"

// ParseError reports a malformed JSONPath expression at a byte offset
// into the source text, mirroring json.ParseError's shape.
type ParseError struct {
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jsonpath: %s (at byte %d)", e.Reason, e.Offset)
}
