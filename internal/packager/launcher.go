package packager

import (
	"os"
	"strings"
)

// LauncherFormat describes the launcher file for one platform.
type LauncherFormat struct {
	Ext    string
	Header string
	Mode   os.FileMode
}

var (
	// BatchLauncher is a Windows batch file.
	BatchLauncher = LauncherFormat{Ext: ".bat", Mode: 0644}
	// ShellLauncher is an executable POSIX shell script.
	ShellLauncher = LauncherFormat{Header: "#!/bin/sh\n", Mode: 0755}
)

// LauncherForPlatform returns the launcher format for goos.
func LauncherForPlatform(goos string) LauncherFormat {
	if goos == "windows" {
		return BatchLauncher
	}
	return ShellLauncher
}

// Name returns the launcher file name for an entry point: the entry name
// without its extension plus the launcher extension.
func (f LauncherFormat) Name(entryName, ext string) string {
	return strings.TrimSuffix(entryName, ext) + f.Ext
}

// Render substitutes renamed for every literal occurrence of entryName in
// command.
func (f LauncherFormat) Render(command, entryName, renamed string) string {
	return f.Header + strings.ReplaceAll(command, entryName, renamed)
}
