//go:build unix

package platform

import "golang.org/x/sys/unix"

// isElevated reports whether the effective user is root.
func isElevated() (bool, error) {
	return unix.Geteuid() == 0, nil
}
