package inclusion

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func realDir(t *testing.T, dir string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		t.Fatal(err)
	}
	return resolved
}

func TestResolveCountsFoundInclusions(t *testing.T) {
	project := t.TempDir()
	writeFile(t, filepath.Join(project, "main.py"), "print('hi')")
	writeFile(t, filepath.Join(project, "lib", "util.py"), "")
	writeFile(t, filepath.Join(project, "config.ini"), "")
	if err := os.MkdirAll(filepath.Join(project, "assets"), 0755); err != nil {
		t.Fatal(err)
	}

	var rec console.Recorder
	set, err := Resolve(project, "main.py", []string{"lib/util.py", "missing.py", "config.ini", "assets", "gone/x"}, &rec)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if set.Found() != 3 || set.Requested() != 5 {
		t.Errorf("found %d of %d, want 3 of 5", set.Found(), set.Requested())
	}
	if !rec.Contains(console.SeverityInfo, "Found 3 out of 5 included files.") {
		t.Errorf("missing summary line; got %+v", rec.Entries())
	}
	if got := rec.Count(console.SeverityWarning); got != 2 {
		t.Errorf("warnings = %d, want 2", got)
	}

	root := realDir(t, project)
	paths := set.Paths()
	if paths[0] != filepath.Join(project, "main.py") {
		t.Errorf("first path = %q, want entry point", paths[0])
	}
	if len(paths) != 4 {
		t.Fatalf("len(paths) = %d, want 4", len(paths))
	}
	if paths[1] != filepath.Join(root, "lib", "util.py") {
		t.Errorf("paths[1] = %q", paths[1])
	}
	if set.ProjectRoot() != root {
		t.Errorf("ProjectRoot = %q, want %q", set.ProjectRoot(), root)
	}
	if set.EntryName() != "main.py" {
		t.Errorf("EntryName = %q", set.EntryName())
	}
}

func TestResolveMissingEntryPoint(t *testing.T) {
	var rec console.Recorder
	_, err := Resolve(t.TempDir(), "main.py", nil, &rec)
	if !errors.Is(err, ErrEntryPointNotFound) {
		t.Fatalf("err = %v, want ErrEntryPointNotFound", err)
	}
}

func TestResolveNoInclusions(t *testing.T) {
	project := t.TempDir()
	writeFile(t, filepath.Join(project, "run.sh"), "echo")

	var rec console.Recorder
	set, err := Resolve(project, "run.sh", []string{}, &rec)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(set.Paths()) != 1 {
		t.Errorf("len(paths) = %d, want 1", len(set.Paths()))
	}
	if !rec.Contains(console.SeverityWarning, "No included files found.") {
		t.Error("expected a no-inclusions warning")
	}
}

func TestResolveAbsoluteEntryPoint(t *testing.T) {
	project := t.TempDir()
	entry := filepath.Join(project, "app.js")
	writeFile(t, entry, "")

	set, err := Resolve("/nonexistent-base", entry, nil, console.Discard{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if set.EntryPoint() != entry {
		t.Errorf("EntryPoint = %q", set.EntryPoint())
	}
}

func TestPathsIsACopy(t *testing.T) {
	project := t.TempDir()
	writeFile(t, filepath.Join(project, "main.py"), "")

	set, err := Resolve(project, "main.py", nil, console.Discard{})
	if err != nil {
		t.Fatal(err)
	}
	p := set.Paths()
	p[0] = "changed"
	if set.Paths()[0] == "changed" {
		t.Error("Paths() must not expose internal state")
	}
}

func TestResolveSymlinkedEntryPoint(t *testing.T) {
	project := t.TempDir()
	impl := filepath.Join(project, "src", "impl.py")
	writeFile(t, impl, "print('impl')")
	writeFile(t, filepath.Join(project, "src", "helpers.py"), "")

	bin := t.TempDir()
	link := filepath.Join(bin, "run.py")
	if err := os.Symlink(impl, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}

	set, err := Resolve(bin, "run.py", []string{"helpers.py"}, console.Discard{})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if set.EntryName() != "run.py" {
		t.Errorf("EntryName = %q, want run.py", set.EntryName())
	}
	if set.EntryPoint() != link {
		t.Errorf("EntryPoint = %q, want %q", set.EntryPoint(), link)
	}
	if want := realDir(t, filepath.Join(project, "src")); set.ProjectRoot() != want {
		t.Errorf("ProjectRoot = %q, want %q", set.ProjectRoot(), want)
	}
	if set.Found() != 1 {
		t.Errorf("found %d inclusions relative to the real directory, want 1", set.Found())
	}
}
