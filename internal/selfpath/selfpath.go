// Package selfpath resolves the filesystem location of the currently
// running binary. The binexport front end anchors subcommand lookup to
// this directory instead of the working directory or PATH, so tool
// resolution cannot be hijacked by the environment.
//
// Platform backends live in the build-tagged files. The Linux and Windows
// variants share the grow-and-retry buffer loop below because their OS
// queries give no way to probe the required length up front.
package selfpath

import "fmt"

// ResolutionError reports a failed self-path query and carries the
// underlying OS error.
type ResolutionError struct {
	Err error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("failed to get module path: %v", e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// initialBufSize is deliberately small so deep install paths actually
// exercise the retry loop.
const initialBufSize = 256

// fillFunc copies the path into buf and returns the number of bytes
// written. A count equal to len(buf) means the result may be truncated.
type fillFunc func(buf []byte) (int, error)

// readGrowing calls fill with a growing buffer until the result fits
// strictly inside it. The capacity grows by half each round; any error
// from fill is terminal.
func readGrowing(fill fillFunc) (string, error) {
	size := initialBufSize
	for {
		buf := make([]byte, size)
		n, err := fill(buf)
		if err != nil {
			return "", err
		}
		if n < len(buf) {
			return string(buf[:n]), nil
		}
		size = size * 3 / 2
	}
}
