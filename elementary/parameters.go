package elementary

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"

	"github.com/inter-go/inter/utils"
)

// DefaultSineIterations is the default bound of the sine recurrence.
const DefaultSineIterations = 500000

// ErrInvalidParameters is returned when a parameter literal is rejected.
var ErrInvalidParameters = errors.New("invalid parameters")

// SineParametersLiteral is a literal representation of the parameters of
// the sine recurrence. It is consumed by NewSineParametersFromLiteral.
//
// Iterations: the recurrence runs for i = 1, ..., Iterations-1. A nil value
// selects DefaultSineIterations. Every odd step flips the sign of the
// accumulator, so Iterations/2 must be even; Iterations must be positive.
type SineParametersLiteral struct {
	Iterations *int `json:",omitempty"`
}

// MarshalBinary returns a JSON representation of the target SineParametersLiteral struct on a slice of bytes.
// See `Marshal` from the `encoding/json` package.
func (p SineParametersLiteral) MarshalBinary() (data []byte, err error) {
	return json.Marshal(p)
}

// UnmarshalBinary reads a JSON representation on the target SineParametersLiteral struct.
// See `Unmarshal` from the `encoding/json` package.
func (p *SineParametersLiteral) UnmarshalBinary(data []byte) (err error) {
	return json.Unmarshal(data, p)
}

// SineParameters is a validated set of parameters of the sine recurrence.
type SineParameters struct {
	iterations int
}

// NewSineParametersFromLiteral validates the literal and instantiates the
// corresponding SineParameters.
func NewSineParametersFromLiteral(lit SineParametersLiteral) (SineParameters, error) {

	iterations := DefaultSineIterations
	if lit.Iterations != nil {
		iterations = *lit.Iterations
	}

	if iterations < 1 {
		return SineParameters{}, fmt.Errorf("cannot NewSineParametersFromLiteral: %w: Iterations=%d must be positive", ErrInvalidParameters, iterations)
	}

	if (iterations/2)&1 != 0 {
		return SineParameters{}, fmt.Errorf("cannot NewSineParametersFromLiteral: %w: Iterations=%d would flip the sign of the result", ErrInvalidParameters, iterations)
	}

	return SineParameters{iterations: iterations}, nil
}

// DefaultSineParameters returns the parameters with DefaultSineIterations.
func DefaultSineParameters() SineParameters {
	return SineParameters{iterations: DefaultSineIterations}
}

// Iterations returns the bound of the recurrence.
func (p SineParameters) Iterations() int {
	return p.iterations
}

// ParametersLiteral returns the SineParametersLiteral of the target SineParameters.
func (p SineParameters) ParametersLiteral() SineParametersLiteral {
	return SineParametersLiteral{Iterations: utils.Pointy(p.iterations)}
}

// Equal returns true if the two parameters are equal.
func (p SineParameters) Equal(other SineParameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalJSON returns a JSON representation of the parameters. See `Marshal` from the `encoding/json` package.
func (p SineParameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of parameters into the receiver. See `Unmarshal` from the `encoding/json` package.
func (p *SineParameters) UnmarshalJSON(data []byte) (err error) {
	var lit SineParametersLiteral
	if err = json.Unmarshal(data, &lit); err != nil {
		return
	}
	*p, err = NewSineParametersFromLiteral(lit)
	return
}
