package extract

import (
	"strings"

	"github.com/matzehuels/wingetreport/pkg/record"
)

// noisePrefixes mark banner lines that can surround the versions table.
var noisePrefixes = []string{"Found", "Name", "Available"}

// ParseVersions returns the version column of a "winget show --versions"
// table in the order winget printed it (most recent first). Lines before
// the dashed separator are ignored.
func ParseVersions(out []string) []string {
	var (
		versions []string
		header   bool
	)
	for _, raw := range out {
		s := cleanLine(raw)
		if s == "" {
			continue
		}
		if isSeparator(s) {
			header = true
			continue
		}
		if s == "Version" || hasAnyPrefix(s, noisePrefixes) {
			continue
		}
		if header {
			versions = append(versions, s)
		}
	}
	return versions
}

// PreviousVersion returns the second entry of the versions table, or
// record.Unknown when fewer than two versions were listed.
func PreviousVersion(out []string) string {
	versions := ParseVersions(out)
	if len(versions) < 2 {
		return record.Unknown
	}
	return versions[1]
}

func isSeparator(s string) bool {
	return strings.HasPrefix(s, "-") && strings.TrimLeft(s, "-") == ""
}

func hasAnyPrefix(s string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
