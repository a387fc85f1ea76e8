package platform

import (
	"errors"
	"testing"
)

type failingPrivilege struct{}

func (failingPrivilege) IsElevated() (bool, error) { return false, errors.New("token unavailable") }

func TestRequireElevated(t *testing.T) {
	if err := RequireElevated(Fixed(true)); err != nil {
		t.Errorf("elevated: unexpected error %v", err)
	}
	if err := RequireElevated(Fixed(false)); !errors.Is(err, ErrNotElevated) {
		t.Errorf("not elevated: err = %v, want ErrNotElevated", err)
	}
	err := RequireElevated(failingPrivilege{})
	if err == nil || errors.Is(err, ErrNotElevated) {
		t.Errorf("check failure: err = %v, want the underlying error", err)
	}
}

func TestCurrentProcess(t *testing.T) {
	// The answer depends on who runs the tests; only the call must succeed.
	if _, err := (CurrentProcess{}).IsElevated(); err != nil {
		t.Fatalf("IsElevated: %v", err)
	}
}
