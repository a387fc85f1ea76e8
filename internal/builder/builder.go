package builder

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/branding"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/inclusion"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/manifest"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/packager"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/platform"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/searchpath"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/storage"
)

// Builder holds the collaborators of one build.
type Builder struct {
	Strategy  storage.Strategy
	Store     searchpath.Store
	Privilege platform.Privilege
	Reporter  console.Reporter

	// PackagerOptions are passed to packager.New.
	PackagerOptions []packager.Option
}

// Result describes what a run resolved and produced. Artifact is nil for a
// plan.
type Result struct {
	Manifest    *manifest.Manifest
	Root        string
	Inclusions  *inclusion.Set
	StorageRoot string
	Destination string
	Artifact    *packager.Artifact
	Registered  bool
}

// Plan resolves the manifest, storage root, and inclusions without touching
// anything, and reports where the package would be placed.
func (b *Builder) Plan(manifestPath string) (*Result, error) {
	r := b.Reporter

	m, err := b.loadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	root, err := b.resolveRoot(m.Storage.Driver)
	if err != nil {
		return nil, err
	}

	baseDir, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return nil, fail(StepInclusions, "resolving manifest directory: %w", err)
	}
	set, err := inclusion.Resolve(baseDir, m.Script.MainScript, m.Script.Include, r)
	if err != nil {
		if errors.Is(err, inclusion.ErrEntryPointNotFound) {
			return nil, &StepError{Step: StepInclusions, Err: fmt.Errorf("could not find main script: %w", err)}
		}
		return nil, &StepError{Step: StepInclusions, Err: err}
	}

	r.Info("Getting commands...")
	storageRoot, dest := packager.Destination(root, m.Storage.ScriptStorage, set)

	return &Result{
		Manifest:    m,
		Root:        root,
		Inclusions:  set,
		StorageRoot: storageRoot,
		Destination: dest,
	}, nil
}

// Run performs a full build from the manifest at manifestPath.
func (b *Builder) Run(manifestPath string) (*Result, error) {
	r := b.Reporter

	if b.Privilege != nil {
		if err := platform.RequireElevated(b.Privilege); err != nil {
			if errors.Is(err, platform.ErrNotElevated) {
				return nil, fail(StepPrivilege, "please run %s as an administrator: %w", branding.CLIName(), err)
			}
			return nil, fail(StepPrivilege, "checking privileges: %w", err)
		}
	}

	res, err := b.Plan(manifestPath)
	if err != nil {
		return nil, err
	}

	r.Info("Building script...")
	art, err := packager.New(r, b.PackagerOptions...).Package(packager.Request{
		Root:       res.Root,
		StorageDir: res.Manifest.Storage.ScriptStorage,
		Inclusions: res.Inclusions,
		Command:    res.Manifest.Command,
		Version:    res.Manifest.Script.Version,
	})
	if err != nil {
		return nil, &StepError{Step: StepPackage, Err: err}
	}
	res.Artifact = art

	r.Info("Editing environment variables...")
	registered, err := searchpath.Register(b.Store, art.Destination, r)
	if err != nil {
		return nil, fail(StepRegister, "could not modify system search path: %w", err)
	}
	res.Registered = registered

	r.Success("Finished editing environment variables.")
	r.Success("Finished building script.")
	return res, nil
}

func (b *Builder) loadManifest(path string) (*manifest.Manifest, error) {
	r := b.Reporter

	if !manifest.Exists(path) {
		return nil, fail(StepManifest, "could not find manifest file: %s", path)
	}
	r.Success("Found manifest file: %s", path)

	r.Info("Loading manifest...")
	m, err := manifest.Load(path)
	if err != nil {
		r.Warn("Could not load manifest file: %s", path)
		return nil, &StepError{Step: StepManifest, Err: err}
	}
	r.Success("Loaded manifest file: %s", path)
	return m, nil
}

func (b *Builder) resolveRoot(driver string) (string, error) {
	r := b.Reporter

	if root, decorated := b.Strategy.Root(driver); decorated {
		r.Warn("Found special characters in drive name %q, using %s", driver, root)
	}

	r.Info("Checking drive...")
	root, err := storage.Resolve(b.Strategy, driver)
	if err != nil {
		return "", fail(StepStorage, "could not find drive: %w", err)
	}
	r.Success("Found drive: %s", root)
	return root, nil
}
