package trace

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrParse         = errors.New("parse failed")
	ErrMissingColumn = errors.New("missing required column")
	ErrBadNumber     = errors.New("invalid numeric value")
	ErrEmptyTrace    = errors.New("no data rows")
	ErrTooManyRows   = errors.New("too many data rows")
)
