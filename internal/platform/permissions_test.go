package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestSetModeIgnoresUmask(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no permission bits on windows")
	}

	path := filepath.Join(t.TempDir(), "deploy")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if err := SetMode(path, 0755); err != nil {
		t.Fatalf("SetMode: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0755 {
		t.Errorf("permissions = %o, want %o", perm, 0755)
	}
	if !Executable(info.Mode()) {
		t.Error("0755 should be executable")
	}
}

func TestExecutable(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("every file is executable on windows")
	}

	tests := []struct {
		mode os.FileMode
		want bool
	}{
		{0755, true},
		{0700, true},
		{0644, false},
		{0655, false},
	}
	for _, tt := range tests {
		if got := Executable(tt.mode); got != tt.want {
			t.Errorf("Executable(%o) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}
