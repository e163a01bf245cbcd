// Package toolinfo discovers the tool binaries installed next to the
// binexport front end and asks them to describe themselves.
//
// Discovery is purely by filename convention: every regular file named
// <prefix><command> in the install directory is a command. There is no
// registry file and no PATH search; a tool that does not sit next to the
// front end does not exist. The descriptions are used for display only,
// dispatch never consults this package to resolve a command.
package toolinfo

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// QueryFlag requests a tool's manifest instead of a normal run. Tools
// that predate the query protocol simply fail on it, which costs them
// their description but nothing else.
const QueryFlag = "--subcommand_query=info"

// queryTimeout bounds how long a single tool may take to describe
// itself.
const queryTimeout = 2 * time.Second

// Manifest is the YAML self-description a tool prints for QueryFlag.
type Manifest struct {
	Name        string   `yaml:"name"`
	Aliases     []string `yaml:"aliases,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// Tool pairs a command name with its on-disk location and, after Query,
// its manifest. Manifest stays nil for tools that did not answer.
type Tool struct {
	Command  string
	Path     string
	Manifest *Manifest
}

// Discover lists the commands available in dir, sorted by name. An empty
// dir means the working directory, matching the dispatcher's relative
// fallback.
func Discover(dir, prefix string) ([]Tool, error) {
	if dir == "" {
		dir = "."
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read install dir: %w", err)
	}

	var tools []Tool
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) || name == prefix {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		tools = append(tools, Tool{
			Command: strings.TrimPrefix(name, prefix),
			Path:    filepath.Join(dir, name),
		})
	}
	sort.Slice(tools, func(i, j int) bool { return tools[i].Command < tools[j].Command })
	return tools, nil
}

// Query asks every tool for its manifest, a few at a time. A tool that
// fails to answer, answers garbage, or hangs past the per-tool timeout
// only loses its own description; the scan itself never fails.
func Query(ctx context.Context, tools []Tool) []Tool {
	out := make([]Tool, len(tools))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, tool := range tools {
		i, tool := i, tool
		g.Go(func() error {
			out[i] = tool
			out[i].Manifest = queryOne(ctx, tool.Path)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func queryOne(ctx context.Context, path string) *Manifest {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, path, QueryFlag)
	var buf bytes.Buffer
	cmd.Stdout = &buf
	if err := cmd.Run(); err != nil {
		return nil
	}

	var m Manifest
	if err := yaml.Unmarshal(buf.Bytes(), &m); err != nil || m.Name == "" {
		return nil
	}
	return &m
}
