// Package storage turns the manifest's driver identifier into the root
// directory that holds packaged scripts.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrRootNotFound is returned when the resolved root does not exist.
var ErrRootNotFound = errors.New("storage root not found")

// Strategy maps a driver identifier onto a root path for one platform.
type Strategy interface {
	// Root returns the effective root for driver. Decorated reports whether
	// punctuation had to be stripped from a drive letter; mount points never
	// report it.
	Root(driver string) (root string, decorated bool)
	Name() string
}

// decorations are the characters a user may wrap a drive letter in.
const decorations = `:\/`

// DriveLetter resolves Windows-style drive identifiers: "C", "C:", `C:\`
// and "C:/" all resolve to `C:\`.
type DriveLetter struct{}

func (DriveLetter) Name() string { return "drive-letter" }

func (DriveLetter) Root(driver string) (string, bool) {
	if !strings.ContainsAny(driver, decorations) {
		return driver + `:\`, false
	}
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(decorations, r) {
			return -1
		}
		return r
	}, driver)
	return stripped + `:\`, true
}

// MountPoint resolves Unix-style identifiers, where the driver is the mount
// point directory itself. An empty identifier means the filesystem root.
type MountPoint struct{}

func (MountPoint) Name() string { return "mount-point" }

func (MountPoint) Root(driver string) (string, bool) {
	if driver == "" {
		return string(filepath.Separator), false
	}
	// Cleaning a path is normalization, not stripped punctuation.
	return filepath.Clean(driver), false
}

// ForPlatform returns the strategy for goos.
func ForPlatform(goos string) Strategy {
	if goos == "windows" {
		return DriveLetter{}
	}
	return MountPoint{}
}

// Default returns the strategy for the running platform.
func Default() Strategy {
	return ForPlatform(runtime.GOOS)
}

// Resolve applies s to driver and confirms the root exists as a file or
// directory.
func Resolve(s Strategy, driver string) (string, error) {
	root, _ := s.Root(driver)
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRootNotFound, root)
		}
		return "", fmt.Errorf("checking storage root %s: %w", root, err)
	}
	return root, nil
}
