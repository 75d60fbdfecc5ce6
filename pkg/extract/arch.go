package extract

import (
	"regexp"

	"github.com/matzehuels/wingetreport/pkg/record"
)

// archPatterns are tried in order; the first match wins.
var archPatterns = []struct {
	re    *regexp.Regexp
	token string
}{
	{regexp.MustCompile(`(?i)x64|amd64|win64`), "x64"},
	{regexp.MustCompile(`(?i)x86|win32|i386`), "x86"},
	{regexp.MustCompile(`(?i)arm64|aarch64`), "arm64"},
}

// ResolveArchitecture fills an empty architecture from the download URL.
// Records that already carry an architecture, or have no URL, are returned unchanged.
func ResolveArchitecture(r record.PackageRecord) record.PackageRecord {
	if r.Architecture != "" || r.DownloadURL == "" {
		return r
	}
	if tok := ArchitectureFromURL(r.DownloadURL); tok != "" {
		r.Architecture = tok
	}
	return r
}

// ArchitectureFromURL returns the first architecture token matched in u, or "".
func ArchitectureFromURL(u string) string {
	for _, p := range archPatterns {
		if p.re.MatchString(u) {
			return p.token
		}
	}
	return ""
}
