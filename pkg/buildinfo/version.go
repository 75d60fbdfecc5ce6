// Package buildinfo provides build-time version information.
//
// Variables are set via ldflags during build:
//
//	go build -ldflags "-X github.com/matzehuels/wingetreport/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/wingetreport/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/wingetreport/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/wingetreport
package buildinfo

import "fmt"

// Product is the name reported in version output, HTTP requests and reports.
const Product = "wingetreport"

// homepage is advertised in the User-Agent so vendors can identify probes.
const homepage = "https://github.com/matzehuels/wingetreport"

var (
	// Version is the semantic version (e.g., "v1.2.3").
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// Generator identifies the build in rendered reports, e.g. "wingetreport v1.2.3".
func Generator() string {
	return Product + " " + Version
}

// UserAgent returns the User-Agent header for outgoing requests.
func UserAgent() string {
	return fmt.Sprintf("%s/%s (+%s)", Product, Version, homepage)
}
