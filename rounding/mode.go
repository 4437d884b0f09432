package rounding

import (
	"fmt"
	"math/big"
)

// Mode is a floating-point rounding direction.
// Its value is the platform code of the direction, as reported by the
// rounding register (x87 control word layout).
type Mode int

const (
	ToNearest  = Mode(0x0000) // round to nearest, ties to even
	Downward   = Mode(0x0400) // round toward -inf
	Upward     = Mode(0x0800) // round toward +inf
	TowardZero = Mode(0x0C00) // truncate
)

// Modes lists the supported rounding modes.
var Modes = []Mode{ToNearest, Downward, Upward, TowardZero}

// ModeFromCode maps a platform code back to its Mode.
func ModeFromCode(code int) (Mode, error) {
	switch m := Mode(code); m {
	case ToNearest, Downward, Upward, TowardZero:
		return m, nil
	default:
		return 0, fmt.Errorf("cannot ModeFromCode: %w: %#04x", ErrUnknownMode, code)
	}
}

// Code returns the platform code of the mode.
func (m Mode) Code() int {
	return int(m)
}

// BigMode returns the big.RoundingMode rounding in the same direction.
func (m Mode) BigMode() big.RoundingMode {
	switch m {
	case Downward:
		return big.ToNegativeInf
	case Upward:
		return big.ToPositiveInf
	case TowardZero:
		return big.ToZero
	default:
		return big.ToNearestEven
	}
}

func (m Mode) String() string {
	switch m {
	case ToNearest:
		return "nearest"
	case Downward:
		return "downward"
	case Upward:
		return "upward"
	case TowardZero:
		return "toward zero"
	default:
		return fmt.Sprintf("Mode(%#04x)", int(m))
	}
}

// ParseMode parses the textual form returned by String.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("cannot ParseMode: %w: %q", ErrUnknownMode, s)
}
