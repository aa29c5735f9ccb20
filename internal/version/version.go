package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the build. It can be overridden via ldflags.
	Version = "0.5.0"
	// Commit is the short git SHA embedded at build time (or "none").
	Commit = "none"
	// BuildTime is the UTC build timestamp embedded at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version string.
func Short() string {
	return Version
}

// Full returns version, commit, build time and the Go toolchain used.
func Full() string {
	return fmt.Sprintf("advent %s (commit %s, built %s, %s)", Version, Commit, BuildTime, runtime.Version())
}
