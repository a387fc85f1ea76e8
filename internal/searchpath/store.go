package searchpath

import (
	"fmt"
	"strings"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
)

// Store is a persisted, delimiter-separated list of directories.
type Store interface {
	// Read returns the raw persisted value. A store that has never been
	// written reads as the empty string.
	Read() (string, error)
	// Write replaces the persisted value.
	Write(value string) error
	// Delimiter separates entries in the value.
	Delimiter() string
	// Location describes where the value lives, for messages.
	Location() string
}

// Register appends dir to the store unless it is already present. It
// reports whether the store was modified. A dir that already appears
// anywhere in the value counts as present, and the store is left untouched.
func Register(s Store, dir string, r console.Reporter) (bool, error) {
	current, err := s.Read()
	if err != nil {
		return false, fmt.Errorf("reading search path from %s: %w", s.Location(), err)
	}

	if covers(current, dir) {
		r.Warn("The provided path is already in the system search path.")
		return false, nil
	}

	next := dir
	if current != "" {
		next = current + s.Delimiter() + dir
	}
	if err := s.Write(next); err != nil {
		return false, fmt.Errorf("writing search path to %s: %w", s.Location(), err)
	}

	r.Success("Successfully modified system search path.")
	return true, nil
}

// IsRegistered reports whether Register would treat dir as already present:
// dir appears anywhere in the value, not necessarily as a whole entry.
func IsRegistered(s Store, dir string) (bool, error) {
	current, err := s.Read()
	if err != nil {
		return false, fmt.Errorf("reading search path from %s: %w", s.Location(), err)
	}
	return covers(current, dir), nil
}

// HasEntry reports whether dir is one of the entries of value.
func HasEntry(value, delim, dir string) bool {
	for _, entry := range Entries(value, delim) {
		if entry == dir {
			return true
		}
	}
	return false
}

func covers(value, dir string) bool {
	return strings.Contains(value, dir)
}

// Entries splits a persisted value into its non-empty entries.
func Entries(value, delim string) []string {
	var out []string
	for _, part := range strings.Split(value, delim) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
