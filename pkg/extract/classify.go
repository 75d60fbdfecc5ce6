package extract

import (
	"regexp"
	"strings"
)

// Field identifies a recognized key in winget show output.
type Field int

// Recognized fields.
const (
	FieldNone Field = iota
	FieldName
	FieldVersion
	FieldPublisher
	FieldReleaseDate
	FieldReleaseNotesURL
	FieldDescription
	FieldHomepage
	FieldInstallerURL
	FieldInstallerType
	FieldSHA256
	FieldArchitecture
)

var fieldNames = [...]string{
	FieldNone:            "none",
	FieldName:            "name",
	FieldVersion:         "version",
	FieldPublisher:       "publisher",
	FieldReleaseDate:     "release_date",
	FieldReleaseNotesURL: "release_notes_url",
	FieldDescription:     "description",
	FieldHomepage:        "homepage",
	FieldInstallerURL:    "installer_url",
	FieldInstallerType:   "installer_type",
	FieldSHA256:          "sha256",
	FieldArchitecture:    "architecture",
}

func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}
	return fieldNames[f]
}

// Line is one classified line of show output.
type Line struct {
	Field Field
	Value string
}

// prefixes are matched in order with strings.HasPrefix after trimming.
var prefixes = []struct {
	prefix string
	field  Field
}{
	{"Version:", FieldVersion},
	{"Publisher:", FieldPublisher},
	{"Release Date:", FieldReleaseDate},
	{"Release Notes Url:", FieldReleaseNotesURL},
	{"Description:", FieldDescription},
	{"Homepage:", FieldHomepage},
	{"Installer Url:", FieldInstallerURL},
	{"Installer Type:", FieldInstallerType},
	{"Installer SHA256:", FieldSHA256},
	{"SHA256:", FieldSHA256},
	{"Installer Architecture:", FieldArchitecture},
	{"Architecture:", FieldArchitecture},
}

var foundPattern = regexp.MustCompile(`^Found (.+?) \[`)

// ClassifyLine maps a single output line to a field and its trimmed value.
// Blank and unrecognized lines return ok=false.
func ClassifyLine(raw string) (line Line, ok bool) {
	s := cleanLine(raw)
	if s == "" {
		return Line{}, false
	}
	if m := foundPattern.FindStringSubmatch(s); m != nil {
		return Line{Field: FieldName, Value: strings.TrimSpace(m[1])}, true
	}
	for _, p := range prefixes {
		if strings.HasPrefix(s, p.prefix) {
			return Line{Field: p.field, Value: strings.TrimSpace(s[len(p.prefix):])}, true
		}
	}
	return Line{}, false
}

// Classify returns the recognized lines of out in order.
func Classify(out []string) []Line {
	lines := make([]Line, 0, len(out))
	for _, raw := range out {
		if l, ok := ClassifyLine(raw); ok {
			lines = append(lines, l)
		}
	}
	return lines
}

// cleanLine drops progress-spinner residue that winget writes before a
// carriage return, then trims surrounding whitespace.
func cleanLine(raw string) string {
	if i := strings.LastIndexByte(raw, '\r'); i >= 0 {
		if rest := raw[i+1:]; strings.TrimSpace(rest) != "" {
			raw = rest
		} else {
			raw = raw[:i]
		}
	}
	return strings.TrimSpace(raw)
}
