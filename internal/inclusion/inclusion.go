// Package inclusion verifies the entry point and the additional files a
// manifest asks to package, relative to the entry point's directory.
package inclusion

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
)

// ErrEntryPointNotFound is returned when the entry point does not exist.
var ErrEntryPointNotFound = errors.New("entry point not found")

// Set is the ordered list of verified inclusions. The entry point is always
// first. A Set only grows while it is being resolved.
type Set struct {
	entryPoint  string
	projectRoot string
	paths       []string
	requested   int
}

// EntryPoint returns the absolute path of the entry point as the manifest
// names it. Symlinks are not resolved, so its base name is the one the
// launcher command refers to.
func (s *Set) EntryPoint() string { return s.entryPoint }

// EntryName returns the entry point's base name.
func (s *Set) EntryName() string { return filepath.Base(s.entryPoint) }

// ProjectRoot returns the directory every inclusion is relative to: the
// parent of the entry point's resolved real path.
func (s *Set) ProjectRoot() string { return s.projectRoot }

// Paths returns a copy of the verified absolute paths, entry point first.
func (s *Set) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// Found returns the number of optional inclusions that exist.
func (s *Set) Found() int { return len(s.paths) - 1 }

// Requested returns the number of optional inclusions the manifest listed.
func (s *Set) Requested() int { return s.requested }

func (s *Set) add(path string) {
	s.paths = append(s.paths, path)
}

// Exists reports whether path names an existing file or directory.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Resolve verifies entryPoint and each of includes. baseDir anchors a
// relative entryPoint; includes are relative to the entry point's resolved
// parent directory. A missing entry point is an error; a missing include is
// reported as a warning and skipped.
func Resolve(baseDir, entryPoint string, includes []string, r console.Reporter) (*Set, error) {
	if !filepath.IsAbs(entryPoint) {
		entryPoint = filepath.Join(baseDir, entryPoint)
	}
	abs, err := filepath.Abs(entryPoint)
	if err != nil {
		return nil, fmt.Errorf("resolving entry point %s: %w", entryPoint, err)
	}
	entryPoint = abs

	r.Info("Checking main script...")
	if !Exists(entryPoint) {
		return nil, fmt.Errorf("%w: %s", ErrEntryPointNotFound, entryPoint)
	}
	r.Success("Found main script: %s", entryPoint)

	resolved, err := filepath.EvalSymlinks(entryPoint)
	if err != nil {
		return nil, fmt.Errorf("resolving entry point %s: %w", entryPoint, err)
	}
	resolved, err = filepath.Abs(resolved)
	if err != nil {
		return nil, fmt.Errorf("resolving entry point %s: %w", entryPoint, err)
	}

	set := &Set{
		entryPoint:  entryPoint,
		projectRoot: filepath.Dir(resolved),
		requested:   len(includes),
	}
	set.add(entryPoint)

	r.Info("Finding other included files...")
	if len(includes) == 0 {
		r.Warn("No included files found.")
		return set, nil
	}

	for _, inc := range includes {
		path := filepath.Join(set.projectRoot, inc)
		if !Exists(path) {
			r.Warn("Could not find included file: %s", inc)
			continue
		}
		r.Success("Found included file: %s", inc)
		set.add(path)
	}

	r.Info("Found %d out of %d included files.", set.Found(), set.Requested())
	return set, nil
}
