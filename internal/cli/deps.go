package cli

import (
	"io"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/config"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/platform"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/searchpath"
	"github.com/scriptbuilder-labs/scriptbuilder/internal/storage"
)

// Platform collaborators. Tests swap these out.
var (
	newStrategy  = storage.Default
	newPrivilege = func() platform.Privilege { return platform.CurrentProcess{} }
	newStore     = func() searchpath.Store { return searchpath.Default(config.Get(config.KeyProfilePath)) }
)

func newConsole(w io.Writer) *console.Console {
	return console.New(w, console.Options{NoColor: noColor || !config.GetBool(config.KeyColor)})
}

// manifestPath returns the --manifest flag, falling back to the configured
// default.
func manifestPath() string {
	if manifestFlag != "" {
		return manifestFlag
	}
	if p := config.Get(config.KeyManifest); p != "" {
		return p
	}
	return config.DefaultManifest
}
