package stats

import (
	"errors"
)

// Sentinel error kinds for this package. These allow errors.Is/As from callers.
var (
	ErrEmptyTrace    = errors.New("trace has no samples")
	ErrZeroTimeDelta = errors.New("zero elapsed-time delta between samples")
)
