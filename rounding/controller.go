package rounding

import (
	"errors"
	"fmt"
	"math/big"
)

// Controller gives scoped, reversible control over a rounding Register,
// and evaluates the primitive operations Add, Sub, Mul, Quo and FromInt
// in the direction currently held by that register.
//
// A Controller is not safe for concurrent use: its register and its
// scratch space belong to a single goroutine. Use ShallowCopy to obtain
// a Controller for another goroutine.
type Controller struct {
	reg     Register
	x, y, z big.Float
}

// NewController creates a new Controller over reg.
// A nil reg selects a new SoftRegister set to ToNearest.
func NewController(reg Register) *Controller {
	if reg == nil {
		reg = NewSoftRegister(ToNearest)
	}
	return &Controller{reg: reg}
}

// ShallowCopy creates a Controller with its own SoftRegister, set to the
// mode currently active on c, and its own scratch space.
// The returned Controller can be used concurrently with the original one.
func (c *Controller) ShallowCopy() *Controller {
	mode, err := c.Current()
	if err != nil {
		mode = ToNearest
	}
	return NewController(NewSoftRegister(mode))
}

// Register returns the underlying rounding register.
func (c *Controller) Register() Register {
	return c.reg
}

// Current returns the active rounding mode.
func (c *Controller) Current() (Mode, error) {
	mode, err := ModeFromCode(c.reg.Get())
	if err != nil {
		return 0, fmt.Errorf("cannot Current: %w", err)
	}
	return mode, nil
}

// Set makes mode the active rounding mode.
func (c *Controller) Set(mode Mode) error {
	if status := c.reg.Set(mode.Code()); status != 0 {
		return fmt.Errorf("cannot Set %s: %w (status %d)", mode, ErrRounding, status)
	}
	return nil
}

// Do runs body with mode active and restores the previous mode afterwards.
// The returned error joins the error of body and the rounding errors, if any.
func (c *Controller) Do(mode Mode, body func() error) error {
	var errBody error
	_, err := Execute(c, mode, func() struct{} {
		errBody = body()
		return struct{}{}
	})
	return errors.Join(errBody, err)
}

// Execute runs body with mode active on c and returns its result.
// The mode which was active before the call is restored on every exit
// path, including a panic unwinding out of body. Changes of mode made by
// body itself are discarded by the restoration.
func Execute[R any](c *Controller, mode Mode, body func() R) (res R, err error) {

	prev, err := c.Current()
	if err != nil {
		return res, fmt.Errorf("cannot Execute: %w", err)
	}

	if err = c.Set(mode); err != nil {
		return res, fmt.Errorf("cannot Execute: %w", err)
	}

	defer func() {
		if errRestore := c.Set(prev); errRestore != nil {
			err = fmt.Errorf("cannot Execute: restore: %w", errRestore)
		}
	}()

	return body(), nil
}

// active returns the big.Float rounding mode of the register.
// The register is only ever written through Set, so an undecodable code
// means the Register implementation broke its contract.
func (c *Controller) active() big.RoundingMode {
	mode, err := ModeFromCode(c.reg.Get())
	if err != nil {
		panic(fmt.Errorf("cannot round: %w", err))
	}
	return mode.BigMode()
}
