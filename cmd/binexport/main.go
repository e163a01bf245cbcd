// Command binexport is the front end for the BinExport tool family.
// It forwards `binexport <command> [args...]` to the sibling binary
// binexport-<command> and exits with the child's status.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"binexport/internal/dispatch"
	"binexport/internal/selfpath"
	"binexport/internal/toolinfo"
	"binexport/internal/version"
	"binexport/pkg/spawn"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(logrus.WarnLevel)

	fs := flag.NewFlagSet("binexport", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() { printUsage(fs) }
	fs.BoolFunc("v", "enable verbose diagnostics", func(string) error {
		logger.SetLevel(logrus.DebugLevel)
		return nil
	})
	fs.BoolFunc("version", "print version information and exit", func(string) error {
		fmt.Println(version.Detailed())
		os.Exit(0)
		return nil
	})

	d := dispatch.New(dispatch.Config{
		Prefix:   dispatch.ToolPrefix,
		SelfPath: selfpath.Executable,
		Spawner:  spawn.Run,
		Flags:    fs,
		Logger:   logger,
	})

	code, err := d.Dispatch(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err)
		return 1
	}
	return code
}

func printUsage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "%s\n", version.Detailed())
	fmt.Fprintf(w, "Create/work with exported disassembly files.\n\n")
	fmt.Fprintf(w, "Usage: binexport [flags] <command> [args...]\n\n")

	if tools := availableTools(); len(tools) > 0 {
		fmt.Fprintf(w, "Commands:\n")
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		for _, tool := range tools {
			desc := ""
			if tool.Manifest != nil {
				desc = tool.Manifest.Description
			}
			fmt.Fprintf(tw, "  %s\t%s\n", tool.Command, desc)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}

// availableTools enumerates the sibling tool binaries for the usage
// text. Display only; command resolution goes through dispatch.Resolve.
func availableTools() []toolinfo.Tool {
	dir := ""
	if path, err := selfpath.Executable(); err == nil {
		dir = filepath.Dir(path)
	}
	tools, err := toolinfo.Discover(dir, dispatch.ToolPrefix)
	if err != nil {
		return nil
	}
	return toolinfo.Query(context.Background(), tools)
}
