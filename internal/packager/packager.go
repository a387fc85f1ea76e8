package packager

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/inclusion"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/platform"
)

// ErrEntryPointMissing is returned when the entry point is not present in
// the destination after copying, so it cannot be renamed.
var ErrEntryPointMissing = errors.New("entry point missing from destination")

// Request is everything the packager needs for one build.
type Request struct {
	// Root is the effective storage root, e.g. `C:\` or /srv.
	Root string
	// StorageDir is the storage subdirectory under Root.
	StorageDir string
	// Inclusions is the verified inclusion set.
	Inclusions *inclusion.Set
	// Command is the launcher template.
	Command string
	// Version is the optional script version recorded in the receipt.
	Version string
}

// Artifact describes a finished package.
type Artifact struct {
	StorageRoot string
	Destination string
	ID          string
	Renamed     string
	Launcher    string
	Copied      int
	Failed      int
	Receipt     *Receipt
}

// Packager builds packages. The zero value is not usable; use New.
type Packager struct {
	reporter console.Reporter
	newID    func() string
	launcher LauncherFormat
}

// Option configures a Packager.
type Option func(*Packager)

// WithIDGenerator replaces RandomID.
func WithIDGenerator(fn func() string) Option {
	return func(p *Packager) { p.newID = fn }
}

// WithLauncher replaces the platform launcher format.
func WithLauncher(f LauncherFormat) Option {
	return func(p *Packager) { p.launcher = f }
}

// New returns a Packager reporting to r.
func New(r console.Reporter, opts ...Option) *Packager {
	p := &Packager{
		reporter: r,
		newID:    RandomID,
		launcher: LauncherForPlatform(runtime.GOOS),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Destination returns the directory a request packages into without
// touching the filesystem.
func Destination(root, storageDir string, set *inclusion.Set) (storageRoot, dest string) {
	storageRoot = filepath.Join(root, storageDir)
	ext := filepath.Ext(set.EntryName())
	dest = filepath.Join(storageRoot, SanitizeName(filepath.Base(set.ProjectRoot()), ext))
	return storageRoot, dest
}

// Package runs every packaging step. Copy failures are reported and
// skipped; any other failure stops the build and is returned.
func (p *Packager) Package(req Request) (*Artifact, error) {
	r := p.reporter
	set := req.Inclusions
	entryName := set.EntryName()
	ext := filepath.Ext(entryName)

	storageRoot, dest := Destination(req.Root, req.StorageDir, set)
	art := &Artifact{StorageRoot: storageRoot, Destination: dest}

	r.Info("Creating script storage...")
	created, err := ensureDir(storageRoot)
	if err != nil {
		return nil, fmt.Errorf("creating script storage %s: %w", storageRoot, err)
	}
	if created {
		r.Success("Created script storage: %s", storageRoot)
	} else {
		r.Warn("Script storage already exists.")
	}

	created, err = ensureDir(dest)
	if err != nil {
		return nil, fmt.Errorf("creating destination %s: %w", dest, err)
	}
	if !created {
		r.Warn("Destination %s already exists, files may be overwritten.", dest)
	}

	prev, err := ReadReceipt(dest)
	if err != nil {
		r.Warn("Ignoring previous build receipt: %v", err)
		prev = nil
	}
	if prev != nil && IsDowngrade(prev.Version, req.Version) {
		r.Warn("Downgrading from version %s to %s.", prev.Version, req.Version)
	}

	r.Info("Copying contents to script storage...")
	for i, src := range set.Paths() {
		// The entry point lands under the name the manifest gave it, even
		// when that name is a symlink into the project.
		target := filepath.Join(dest, entryName)
		if i > 0 {
			rel, err := filepath.Rel(set.ProjectRoot(), src)
			if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
				r.Warn("Skipping %s: outside of the project directory.", src)
				art.Failed++
				continue
			}
			target = filepath.Join(dest, rel)
		}

		r.Info("Copying %s to %s...", src, dest)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			r.Warn("Could not copy %s to %s: %v", src, dest, err)
			art.Failed++
			continue
		}
		if err := copyPath(src, target); err != nil {
			r.Warn("Could not copy %s to %s: %v", src, dest, err)
			art.Failed++
			continue
		}
		art.Copied++
	}
	r.Success("Finished copying files.")

	if stale := prev.staleEntry(); stale != "" && stale != entryName {
		if err := os.Remove(filepath.Join(dest, stale)); err != nil && !os.IsNotExist(err) {
			r.Warn("Could not remove previous script %s: %v", stale, err)
		}
	}

	original := filepath.Join(dest, entryName)
	if _, err := os.Stat(original); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEntryPointMissing, original)
	}

	art.ID = p.newID()
	art.Renamed = art.ID + ext
	if err := os.Rename(original, filepath.Join(dest, art.Renamed)); err != nil {
		return nil, fmt.Errorf("renaming %s: %w", entryName, err)
	}
	r.Success("Renamed %s to %s.", entryName, art.Renamed)

	launcherName := p.launcher.Name(entryName, ext)
	art.Launcher = filepath.Join(dest, launcherName)
	content := p.launcher.Render(req.Command, entryName, art.Renamed)
	if err := os.WriteFile(art.Launcher, []byte(content), p.launcher.Mode); err != nil {
		return nil, fmt.Errorf("writing launcher %s: %w", art.Launcher, err)
	}
	if err := platform.SetMode(art.Launcher, p.launcher.Mode); err != nil {
		return nil, fmt.Errorf("setting launcher permissions: %w", err)
	}
	r.Success("Created launcher %s.", launcherName)

	art.Receipt = newReceipt(entryName, art.Renamed, launcherName, req.Version)
	if err := WriteReceipt(dest, art.Receipt); err != nil {
		r.Warn("Could not write build receipt: %v", err)
	}

	return art, nil
}

// ensureDir creates dir if it is missing. It reports whether the directory
// was created.
func ensureDir(dir string) (bool, error) {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("%s exists and is not a directory", dir)
		}
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return false, err
	}
	return true, nil
}
