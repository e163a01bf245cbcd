//go:build windows

package selfpath

import "golang.org/x/sys/windows"

// Executable returns the absolute path of the running binary via
// GetModuleFileName. The call reports truncation either through
// ERROR_INSUFFICIENT_BUFFER or by filling the buffer completely, so the
// buffer grows by half until the path fits.
func Executable() (string, error) {
	size := initialBufSize
	for {
		buf := make([]uint16, size)
		n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
		if err != nil && err != windows.ERROR_INSUFFICIENT_BUFFER {
			return "", &ResolutionError{Err: err}
		}
		if err == nil && int(n) < len(buf) {
			return windows.UTF16ToString(buf[:n]), nil
		}
		size = size * 3 / 2
	}
}
