//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// testEnv holds paths to isolated test directories.
type testEnv struct {
	ProjectDir  string // project holding the manifest and scripts
	DriveDir    string // stands in for the storage drive
	ProfilePath string // shell profile the search path is persisted to
}

// setupTestEnv creates isolated temp directories so a build never touches
// the real search path or storage.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		ProjectDir: filepath.Join(t.TempDir(), "Nightly Backup"),
		DriveDir:   t.TempDir(),
	}
	env.ProfilePath = filepath.Join(t.TempDir(), "profile.d", "scriptbuilder.sh")
	t.Setenv("HOME", t.TempDir())

	if err := os.MkdirAll(env.ProjectDir, 0755); err != nil {
		t.Fatalf("creating project dir: %v", err)
	}
	return env
}

// setupProject writes a small shell project and its manifest. Returns the
// manifest path.
func setupProject(t *testing.T, env *testEnv, version string) string {
	t.Helper()

	writeFile(t, filepath.Join(env.ProjectDir, "backup.sh"), `#!/bin/sh
. ./lib/common.sh
greet "$1"
`)
	writeFile(t, filepath.Join(env.ProjectDir, "lib", "common.sh"), `greet() {
  echo "backing up ${1:-everything}"
}
`)
	writeFile(t, filepath.Join(env.ProjectDir, "exclude.txt"), "*.tmp\n")

	manifestPath := filepath.Join(env.ProjectDir, "intents.yaml")
	writeFile(t, manifestPath, `storage:
  driver: `+env.DriveDir+`
  scriptStorage: tools
script:
  mainScript: backup.sh
  version: "`+version+`"
  include:
    - lib
    - exclude.txt
    - missing.conf
command: sh backup.sh "$@"
`)
	return manifestPath
}

// writeFile creates parent directories and writes content.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("creating dir %s: %v", dir, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileNotExists fails the test if the file exists.
func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file NOT to exist: %s", path)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
