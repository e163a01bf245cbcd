package dispatch

import (
	"errors"
	"fmt"
)

// ErrMissingCommand is returned when the argument vector carries no
// subcommand token.
var ErrMissingCommand = errors.New("no command given. Try '--help'")

// UnknownCommandError reports a subcommand name with no matching tool
// binary next to the front end.
type UnknownCommandError struct {
	Command string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("'%s' is not a binexport command. See 'binexport --help'.", e.Command)
}

// SpawnError reports that a resolved tool binary could not be started.
// It never wraps a non-zero child exit, which is a normal outcome.
type SpawnError struct {
	Command string
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("command '%s': %v", e.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
