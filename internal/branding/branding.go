// Package branding provides compile-time identity values for the CLI.
//
// branding.yaml is baked into the binary with //go:embed so a fork can rename
// the tool, its home directory, and its environment prefix in one place.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	ReceiptFile string `yaml:"receipt_file"`
	ProfileFile string `yaml:"profile_file"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "scriptbuilder",
			DisplayName: "ScriptBuilder",
			Description: "Package scripts into managed storage and expose them as commands",
			HomeDir:     ".scriptbuilder",
			EnvPrefix:   "SCRIPTBUILDER",
			GoModule:    "github.com/scriptbuilder-labs/scriptbuilder",
			ReceiptFile: ".scriptbuilder.yaml",
			ProfileFile: "scriptbuilder.sh",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "scriptbuilder").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".scriptbuilder").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SCRIPTBUILDER").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// ReceiptFile returns the name of the build receipt written into every
// destination directory.
func ReceiptFile() string { load(); return defaults.ReceiptFile }

// ProfileFile returns the file name of the system-wide shell profile used as
// the search-path store on Unix-like systems.
func ProfileFile() string { load(); return defaults.ProfileFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("MANIFEST") → "SCRIPTBUILDER_MANIFEST".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
