package manifest

// Manifest describes what to package and how to launch it.
type Manifest struct {
	Storage Storage `json:"storage" yaml:"storage" toml:"storage"`
	Script  Script  `json:"script" yaml:"script" toml:"script"`
	Command string  `json:"command" yaml:"command" toml:"command"`
}

// Storage locates the managed storage directory.
type Storage struct {
	// Driver identifies the storage volume, e.g. "C" or "C:\" on Windows or
	// a mount point on Unix-like systems.
	Driver string `json:"driver" yaml:"driver" toml:"driver"`
	// ScriptStorage is the directory under the driver root that holds every
	// packaged script.
	ScriptStorage string `json:"scriptStorage" yaml:"scriptStorage" toml:"scriptStorage"`
}

// Script names the entry point and the files packaged alongside it.
type Script struct {
	MainScript string   `json:"mainScript" yaml:"mainScript" toml:"mainScript"`
	Include    []string `json:"include" yaml:"include" toml:"include"`
	Version    string   `json:"version,omitempty" yaml:"version,omitempty" toml:"version,omitempty"`
}

// Format is a manifest encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)
