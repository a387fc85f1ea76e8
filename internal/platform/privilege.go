package platform

import "errors"

// ErrNotElevated is returned when the process lacks administrative rights.
var ErrNotElevated = errors.New("administrative privileges required")

// Privilege reports whether the current process may change machine-wide
// settings.
type Privilege interface {
	IsElevated() (bool, error)
}

// CurrentProcess checks the running process.
type CurrentProcess struct{}

func (CurrentProcess) IsElevated() (bool, error) {
	return isElevated()
}

// Fixed is a Privilege with a preset answer.
type Fixed bool

func (f Fixed) IsElevated() (bool, error) { return bool(f), nil }

// RequireElevated returns ErrNotElevated unless p reports an elevated process.
func RequireElevated(p Privilege) error {
	ok, err := p.IsElevated()
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotElevated
	}
	return nil
}
