package version

import "fmt"

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/fluffis/invoicehandler/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/fluffis/invoicehandler/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/fluffis/invoicehandler/internal/version.Date={{.Date}}
)

// String renders the build information on a single line.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
