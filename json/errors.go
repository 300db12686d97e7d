package json

import (
	"errors"
	"fmt"
)

// ErrSyntax is the sentinel wrapped by every ParseError.
var ErrSyntax = errors.New("json: syntax error")

// ParseError reports a malformed JSON document. Offset is the byte
// offset into the source text where the decoder detected the problem.
type ParseError struct {
	Offset int64
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("json: %s (offset %d)", e.Reason, e.Offset)
}

func (e *ParseError) Unwrap() error { return ErrSyntax }
