// Package dispatch routes binexport invocations to sibling tool binaries.
//
// The front end accepts `binexport [flags] <command> [args...]` and hands
// everything after <command> to the binary named binexport-<command> in
// its own install directory. Global flags are only parsed up to the
// command token, so tool-private arguments are never consumed or
// misinterpreted here. Lookup is anchored to the front end's install
// directory; neither PATH nor the working directory take part, which
// keeps tool resolution deterministic.
package dispatch

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"binexport/internal/selfpath"
	"binexport/pkg/spawn"
)

// ToolPrefix is the filename prefix shared by all tool binaries.
const ToolPrefix = "binexport-"

// Config carries the collaborators a Dispatcher needs. Construct it once
// in main before the first parse; there is no mutable global state.
type Config struct {
	// Prefix for sibling tool filenames. Defaults to ToolPrefix.
	Prefix string

	// SelfPath locates the running binary. Defaults to
	// selfpath.Executable.
	SelfPath func() (string, error)

	// Spawner runs a child argument vector and reports its exit code.
	// Defaults to spawn.Run.
	Spawner func(argv []string) (int, error)

	// Flags is the generic flag parser for the global flag region. It
	// owns --help and --version handling, including terminating the
	// process for them. May be nil.
	Flags *flag.FlagSet

	Logger *logrus.Logger
}

// Dispatcher resolves and runs tool binaries.
type Dispatcher struct {
	prefix   string
	selfPath func() (string, error)
	spawner  func(argv []string) (int, error)
	flags    *flag.FlagSet
	log      *logrus.Logger
}

// New creates a Dispatcher, filling unset collaborators with the real
// OS-backed implementations.
func New(cfg Config) *Dispatcher {
	d := &Dispatcher{
		prefix:   cfg.Prefix,
		selfPath: cfg.SelfPath,
		spawner:  cfg.Spawner,
		flags:    cfg.Flags,
		log:      cfg.Logger,
	}
	if d.prefix == "" {
		d.prefix = ToolPrefix
	}
	if d.selfPath == nil {
		d.selfPath = selfpath.Executable
	}
	if d.spawner == nil {
		d.spawner = spawn.Run
	}
	if d.log == nil {
		d.log = logrus.New()
		d.log.SetLevel(logrus.WarnLevel)
	}
	return d
}

// FindBoundary returns the index of the first argument in args[1:] that
// is not flag-shaped, or len(args) when every argument is a flag. A
// -help or --help prefix stops the scan early so a bare help request
// reaches the generic flag parser instead of being taken for a command
// name. Command names starting with '-' are therefore unreachable.
func FindBoundary(args []string) int {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-help") || strings.HasPrefix(arg, "--help") {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			return i
		}
	}
	return len(args)
}

// InstallDir returns the directory holding the running binary. When
// self-location fails the lookup degrades to a relative path instead of
// aborting the dispatch.
func (d *Dispatcher) InstallDir() string {
	path, err := d.selfPath()
	if err != nil {
		d.log.WithError(err).Debug("self-location failed, falling back to relative lookup")
		return ""
	}
	return filepath.Dir(path)
}

// Resolve maps a command name to the sibling binary implementing it. The
// candidate must exist as a regular file.
func (d *Dispatcher) Resolve(command string) (string, error) {
	candidate := filepath.Join(d.InstallDir(), d.prefix+command)
	info, err := os.Stat(candidate)
	if err != nil || !info.Mode().IsRegular() {
		return "", &UnknownCommandError{Command: command}
	}
	return candidate, nil
}

// Dispatch runs the subcommand named in args and returns its exit code.
// args is the raw argument vector including the program name at index 0.
//
// Global flags are parsed before the presence check so that a bare
// --help or --version reaches the flag set (which may terminate the
// process) instead of dying as "no command given".
func (d *Dispatcher) Dispatch(args []string) (int, error) {
	if len(args) == 0 {
		return 0, ErrMissingCommand
	}
	boundary := FindBoundary(args)

	if d.flags != nil {
		if err := d.flags.Parse(args[1:boundary]); err != nil {
			return 0, err
		}
	}

	if boundary == len(args) {
		return 0, ErrMissingCommand
	}

	command := args[boundary]
	toolPath, err := d.Resolve(command)
	if err != nil {
		return 0, err
	}
	d.log.WithFields(logrus.Fields{"command": command, "tool": toolPath}).
		Debug("resolved command")

	argv := make([]string, 0, len(args)-boundary)
	argv = append(argv, toolPath)
	argv = append(argv, args[boundary+1:]...)

	code, err := d.spawner(argv)
	if err != nil {
		return 0, &SpawnError{Command: command, Err: err}
	}
	return code, nil
}
