package parse

import (
	"errors"
	"fmt"
)

var ErrParse = errors.New("parse error")

// Error reports malformed input at a byte offset.  It wraps ErrParse.
type Error struct {
	Offset int
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at offset %d: %s", ErrParse, e.Offset, e.Msg)
}

func (e *Error) Unwrap() error {
	return ErrParse
}
