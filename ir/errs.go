package ir

import (
	"errors"
)

var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrDivideByZero = errors.New("divide by zero")
	ErrBadPath      = errors.New("bad path")
)
