package manifest

import (
	"errors"
	"path/filepath"
	"testing"
)

const testdataDir = "testdata"

func testPath(name string) string {
	return filepath.Join(testdataDir, name)
}

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"intents.json", FormatJSON},
		{"intents.yaml", FormatYAML},
		{"intents.YML", FormatYAML},
		{"intents.toml", FormatTOML},
		{"intents", FormatJSON},
	}
	for _, tt := range tests {
		if got := DetectFormat(tt.path); got != tt.want {
			t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestLoad_JSON(t *testing.T) {
	m, err := Load(testPath("valid.json"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Storage.Driver != "C" {
		t.Errorf("Driver = %q, want %q", m.Storage.Driver, "C")
	}
	if m.Storage.ScriptStorage != "Scripts" {
		t.Errorf("ScriptStorage = %q, want %q", m.Storage.ScriptStorage, "Scripts")
	}
	if m.Script.MainScript != "main.py" {
		t.Errorf("MainScript = %q, want %q", m.Script.MainScript, "main.py")
	}
	if len(m.Script.Include) != 2 || m.Script.Include[0] != "lib/util.py" {
		t.Errorf("Include = %v, want [lib/util.py config.ini]", m.Script.Include)
	}
	if m.Script.Version != "1.2.0" {
		t.Errorf("Version = %q, want %q", m.Script.Version, "1.2.0")
	}
	if m.Command != "@echo off\npython %~dp0main.py %*" {
		t.Errorf("Command = %q", m.Command)
	}
}

func TestLoad_YAML(t *testing.T) {
	m, err := Load(testPath("valid.yaml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Storage.Driver != "/" {
		t.Errorf("Driver = %q, want %q", m.Storage.Driver, "/")
	}
	if m.Script.MainScript != "tool.sh" {
		t.Errorf("MainScript = %q, want %q", m.Script.MainScript, "tool.sh")
	}
	if len(m.Script.Include) != 1 {
		t.Errorf("Include len = %d, want 1", len(m.Script.Include))
	}
}

func TestLoad_TOML(t *testing.T) {
	m, err := Load(testPath("valid.toml"))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if m.Storage.Driver != "D:" {
		t.Errorf("Driver = %q, want %q", m.Storage.Driver, "D:")
	}
	if m.Command != "node index.js" {
		t.Errorf("Command = %q, want %q", m.Command, "node index.js")
	}
	if len(m.Script.Include) != 0 {
		t.Errorf("Include = %v, want empty", m.Script.Include)
	}
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(testPath("nonexistent.json"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestLoad_Malformed(t *testing.T) {
	_, err := Load(testPath("invalid-not-json.json"))
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v, want ErrMalformed", err)
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		t.Error("a decode failure should not be reported as a schema failure")
	}
}

func TestLoad_MissingFields(t *testing.T) {
	files := []string{
		"invalid-missing-command.json",
		"invalid-missing-driver.json",
		"invalid-include-type.json",
	}
	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			_, err := Load(testPath(file))
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("err = %v, want ErrMalformed", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("err = %T, want *ValidationError", err)
			}
			if len(ve.Issues) == 0 {
				t.Error("expected at least one issue")
			}
		})
	}
}
