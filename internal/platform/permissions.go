package platform

import (
	"os"
	"runtime"
)

// SetMode applies mode to path exactly, regardless of the umask that was in
// effect when the file was created. Windows has no permission bits, so it is a
// no-op there.
func SetMode(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode.Perm())
}

// Executable reports whether mode lets the owner run the file. Every file
// counts as executable on Windows.
func Executable(mode os.FileMode) bool {
	if runtime.GOOS == "windows" {
		return true
	}
	return mode.Perm()&0100 != 0
}
