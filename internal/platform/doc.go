// Package platform wraps the few operating-system capabilities the build
// needs: Unix permission bits (a no-op on Windows) and the check for an
// elevated process. Each capability is an interface so the build pipeline can
// be exercised with fakes.
package platform
