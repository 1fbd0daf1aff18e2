// Package version reports build metadata stamped in by the linker.
package version

import "fmt"

// Set at build time, e.g.
//
//	go build -ldflags "-X github.com/example/plantops/internal/version.Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// String returns the human readable build description.
func String() string {
	return fmt.Sprintf("plantops %s (commit: %s, built: %s)", Version, shortCommit(), BuildTime)
}

func shortCommit() string {
	if len(Commit) > 7 {
		return Commit[:7]
	}
	return Commit
}
