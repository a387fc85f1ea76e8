//go:build !unix && !windows

package platform

import (
	"fmt"
	"runtime"
)

func isElevated() (bool, error) {
	return false, fmt.Errorf("privilege check not supported on %s", runtime.GOOS)
}
