// Command dockyard lays out dockable tabbed panels and lets you drag them
// around in the terminal.
package main

import (
	"runtime"

	"github.com/bnema/dockyard/internal/cli/cmd"
	"github.com/bnema/dockyard/internal/domain/build"
)

// Build-time variables (set via ldflags).
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	enableCrashForensics()

	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})

	// Shows help if no subcommand
	cmd.Execute()
}
