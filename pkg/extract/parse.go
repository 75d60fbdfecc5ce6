package extract

import (
	"errors"
	"net/url"
	"path"
	"strings"

	"github.com/matzehuels/wingetreport/pkg/record"
)

// ErrNoMetadata is returned by ParseShow when no line of the output was
// recognized, which is how winget reports an unknown package.
var ErrNoMetadata = errors.New("no package metadata in query output")

// rank orders download URL categories. A URL replaces the chosen one only
// when its rank is strictly higher.
type rank int

const (
	rankNone rank = iota
	rankOther
	rankMSI
	rankMSIX
)

// state is the accumulator of the show-output fold.
type state struct {
	rec     record.PackageRecord
	urlRank rank
	matched int
}

// ParseShow folds the lines of a "winget show" query into a record for id.
// It returns ErrNoMetadata alongside the untouched default record when
// nothing in out was recognized.
func ParseShow(id string, out []string) (record.PackageRecord, error) {
	s := state{rec: record.New(id)}
	for _, l := range Classify(out) {
		s = step(s, l)
	}
	if s.matched == 0 {
		return s.rec, ErrNoMetadata
	}
	return s.rec, nil
}

func step(s state, l Line) state {
	s.matched++
	r := &s.rec
	switch l.Field {
	case FieldName:
		if l.Value != "" {
			r.Name = l.Value
		}
	case FieldVersion:
		r.Version = l.Value
	case FieldPublisher:
		r.Publisher = l.Value
	case FieldReleaseDate:
		r.ReleaseDate = l.Value
	case FieldReleaseNotesURL:
		r.ReleaseNotesURL = l.Value
	case FieldDescription:
		r.Description = l.Value
	case FieldHomepage:
		r.Homepage = l.Value
	case FieldInstallerURL:
		s = selectURL(s, l.Value)
	case FieldInstallerType:
		r.InstallerKind = declaredKind(r.InstallerKind, l.Value)
	case FieldSHA256:
		if r.SHA256 == "" {
			r.SHA256 = l.Value
		}
	case FieldArchitecture:
		for _, tok := range splitTokens(l.Value) {
			r.AddArchitecture(tok)
		}
	}
	return s
}

// selectURL applies installer URL precedence: MSIX > MSI > first other.
func selectURL(s state, u string) state {
	if u == "" {
		return s
	}
	kind, rk := classifyURL(u)
	if rk <= s.urlRank {
		return s
	}
	s.urlRank = rk
	s.rec.DownloadURL = u
	if s.rec.InstallerKind != record.KindMSIX {
		s.rec.InstallerKind = kind
	}
	return s
}

// classifyURL derives the installer kind and rank from a URL's file extension.
func classifyURL(raw string) (record.InstallerKind, rank) {
	p := raw
	if u, err := url.Parse(raw); err == nil && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".msix", ".msixbundle", ".appx", ".appxbundle":
		return record.KindMSIX, rankMSIX
	case ".msi":
		return record.KindMSI, rankMSI
	case ".exe":
		return record.KindEXE, rankOther
	case ".zip":
		return record.KindZIP, rankOther
	default:
		return record.KindOther, rankOther
	}
}

// declaredKind applies an "Installer Type" line to the current kind.
// MSIX and APPX declarations are authoritative; anything else only fills
// an empty or OTHER kind.
func declaredKind(current record.InstallerKind, declared string) record.InstallerKind {
	d := strings.ToLower(strings.TrimSpace(declared))
	if d == "msix" || d == "appx" {
		return record.KindMSIX
	}
	if current != record.KindNone && current != record.KindOther {
		return current
	}
	switch d {
	case "":
		return current
	case "msi", "wix":
		return record.KindMSI
	case "exe", "inno", "nullsoft", "burn", "portable":
		return record.KindEXE
	case "zip":
		return record.KindZIP
	default:
		return record.KindOther
	}
}

func splitTokens(v string) []string {
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}
