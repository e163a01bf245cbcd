//go:build !linux && !windows

package selfpath

import (
	"os"
	"path/filepath"
)

// Executable falls back to the runtime's own resolution on platforms
// without a dedicated backend. Symlinks are resolved where the OS
// supports it; a failed EvalSymlinks keeps the unresolved path.
func Executable() (string, error) {
	path, err := os.Executable()
	if err != nil {
		return "", &ResolutionError{Err: err}
	}
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	return path, nil
}
