// Package version holds build metadata stamped in at release time.
package version

// Overridden via -ldflags on release builds.
var (
	Version = "0.1.0"
	Commit  = "none"
	Date    = "unknown"
)
