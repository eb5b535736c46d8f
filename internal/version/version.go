package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/arthur-debert/carp/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/arthur-debert/carp/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/arthur-debert/carp/internal/version.Date={{.Date}}
)

// String is the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
