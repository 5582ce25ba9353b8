// Package buildinfo carries version metadata stamped in at build time.
package buildinfo

// Set via -ldflags "-X github.com/centavo-dev/centavo/internal/buildinfo.Version=..." at build.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
