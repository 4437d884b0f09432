package rounding

// Register is the platform rounding-mode register.
// Get returns the raw code of the active mode and Set applies a raw code,
// returning 0 on success and a non-zero status otherwise.
type Register interface {
	Get() int
	Set(code int) int
}

// SoftRegister is an in-memory Register.
// It only accepts the codes of the four Modes.
type SoftRegister struct {
	code int
}

// NewSoftRegister returns a SoftRegister set to mode.
func NewSoftRegister(mode Mode) *SoftRegister {
	return &SoftRegister{code: mode.Code()}
}

// Get returns the stored code.
func (r *SoftRegister) Get() int {
	return r.code
}

// Set stores code if it is a known rounding code and returns 0,
// otherwise it leaves the register untouched and returns -1.
func (r *SoftRegister) Set(code int) int {
	if _, err := ModeFromCode(code); err != nil {
		return -1
	}
	r.code = code
	return 0
}
