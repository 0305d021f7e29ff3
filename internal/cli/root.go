package cli

import (
	"context"
	"os"

	"github.com/matzehuels/antennas/pkg/buildinfo"
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags at build time. Empty
// values keep the defaults.
func SetVersion(v, c, d string) {
	if v != "" {
		buildinfo.Version = v
	}
	if c != "" {
		buildinfo.Commit = c
	}
	if d != "" {
		buildinfo.Date = d
	}
}

// Execute runs the antennas CLI with logs on stderr and returns an error if
// any command fails. Errors are returned, not printed.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2025-12-20")
//	    if err := cli.Execute(context.Background()); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context) error {
	return New(os.Stderr, LogInfo).RootCommand().ExecuteContext(ctx)
}
