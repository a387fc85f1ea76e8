package searchpath

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scriptbuilder-labs/scriptbuilder/internal/console"
)

func TestProfileStoreMissingFileReadsEmpty(t *testing.T) {
	s := &ProfileStore{Path: filepath.Join(t.TempDir(), "profile.d", "sb.sh")}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "" {
		t.Errorf("Read = %q, want empty", got)
	}
}

func TestProfileStoreRoundTrip(t *testing.T) {
	s := &ProfileStore{Path: filepath.Join(t.TempDir(), "profile.d", "sb.sh")}
	value := `/opt/scripts/a:/opt/my scripts/b:/opt/$weird"dir`

	if err := s.Write(value); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != value {
		t.Errorf("Read = %q, want %q", got, value)
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `export PATH="$PATH:/opt/scripts/a`) {
		t.Errorf("unexpected profile contents:\n%s", data)
	}
}

func TestProfileStoreReadsHandWrittenProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sb.sh")
	content := "# local edits\nPATH=\"$PATH:/old\"\nexport PATH=\"$PATH\":/usr/local/tools:'/srv/x y'\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	got, err := (&ProfileStore{Path: path}).Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got != "/usr/local/tools:/srv/x y" {
		t.Errorf("Read = %q", got)
	}
}

func TestProfileStoreParseError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sb.sh")
	if err := os.WriteFile(path, []byte("export PATH=\"$PATH:/a\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := (&ProfileStore{Path: path}).Read(); err == nil {
		t.Fatal("expected a parse error for an unterminated quote")
	}
}

func TestRegisterWithProfileStore(t *testing.T) {
	s := &ProfileStore{Path: filepath.Join(t.TempDir(), "sb.sh")}

	for _, dir := range []string{"/opt/scripts/a", "/opt/scripts/b", "/opt/scripts/a"} {
		if _, err := Register(s, dir, console.Discard{}); err != nil {
			t.Fatalf("Register(%s): %v", dir, err)
		}
	}

	before, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	got, err := s.Read()
	if err != nil {
		t.Fatal(err)
	}
	if got != "/opt/scripts/a:/opt/scripts/b" {
		t.Errorf("Read = %q", got)
	}

	if _, err := Register(s, "/opt/scripts/b", console.Discard{}); err != nil {
		t.Fatal(err)
	}
	after, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("registering a present directory must leave the profile byte-identical")
	}
}
