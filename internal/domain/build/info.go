// Package build provides domain entities for build information.
package build

import "fmt"

// Info holds build-time information injected via ldflags.
type Info struct {
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
}

// String formats the info as a one-line version banner.
func (i Info) String() string {
	version := i.Version
	if version == "" {
		version = "dev"
	}
	if i.Commit == "" || i.Commit == "unknown" {
		return "dockyard " + version
	}
	return fmt.Sprintf("dockyard %s (%s, built %s)", version, i.Commit, i.BuildDate)
}

// Contributors returns the list of project contributors.
func Contributors() []string {
	return []string{"bnema"}
}

// RepoURL returns the GitHub repository URL.
func RepoURL() string {
	return "https://github.com/bnema/dockyard"
}
