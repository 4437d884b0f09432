package rounding

import (
	"errors"
)

var (
	// ErrRounding is returned when the rounding register refuses a mode change.
	ErrRounding = errors.New("rounding mode could not be set")
	// ErrUnknownMode is returned when a rounding code matches no Mode.
	ErrUnknownMode = errors.New("unknown rounding mode")
)
