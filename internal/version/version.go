// Package version holds the build metadata stamped into binexport
// binaries.
package version

import "fmt"

const (
	// Name is the canonical product name shown in banners.
	Name = "BinExport"

	// Release tracks the upstream release numbering.
	Release = "12"
)

// Build is overridden at link time:
//
//	go build -ldflags "-X binexport/internal/version.Build=<id>"
var Build = "development"

// Detailed returns the full version banner used by --version and the
// top of the usage text.
func Detailed() string {
	return fmt.Sprintf("%s %s (@%s)", Name, Release, Build)
}
