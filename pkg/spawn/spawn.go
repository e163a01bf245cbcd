// Package spawn starts a child process with the parent's standard streams
// attached and waits for it to finish. The binexport front end uses it to
// hand control to a tool binary; interactive tools work transparently
// because stdin, stdout and stderr are inherited rather than piped.
package spawn

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// Run executes argv[0] with the remaining elements as its arguments and
// blocks until the child exits. The child's exit code is returned as the
// first value; a non-zero code is a normal outcome, not an error. The
// error is non-nil only when the child could not be started or did not
// run to completion (missing binary, permission denied, exec format).
func Run(argv []string) (int, error) {
	return RunContext(context.Background(), argv)
}

// RunContext is Run with a context. Cancelling the context kills the
// child; the baseline dispatcher passes context.Background and simply
// waits.
func RunContext(ctx context.Context, argv []string) (int, error) {
	if len(argv) == 0 {
		return 0, errors.New("spawn: empty argument vector")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("start %s: %w", argv[0], err)
	}
	return 0, nil
}
