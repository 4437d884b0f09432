package interval

import (
	"errors"
)

var (
	// ErrInvalidRange is returned when an interval would have start > end.
	ErrInvalidRange = errors.New("invalid range")
	// ErrDivisionByZero is returned when dividing by an interval containing zero.
	ErrDivisionByZero = errors.New("division by an interval containing zero")
)
