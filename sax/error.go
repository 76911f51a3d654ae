package sax

import (
	"fmt"

	"github.com/pkg/errors"
)

// ParseError reports a well-formedness failure at a byte offset from
// the start of the stream, per spec.md §4.5.
type ParseError struct {
	Message string
	Offset  int64
}

func (e *ParseError) Error() string {
	return e.Message
}

func newParseError(offset int64, format string, args ...any) error {
	return errors.WithStack(&ParseError{Message: fmt.Sprintf(format, args...), Offset: offset})
}
