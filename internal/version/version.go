// Package version holds build metadata injected at link time.
package version

// Build metadata defaults. Overridden via -ldflags by the release build.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
