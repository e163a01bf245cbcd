//go:build linux

package selfpath

import (
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Executable returns the absolute path of the running binary by reading
// the /proc/self/exe symlink. readlink(2) silently truncates instead of
// reporting the required length, so the shared retry loop widens the
// buffer until the result fits.
func Executable() (string, error) {
	path, err := readGrowing(func(buf []byte) (int, error) {
		return unix.Readlink("/proc/self/exe", buf)
	})
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	return filepath.Clean(path), nil
}
