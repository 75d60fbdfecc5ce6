package adobe

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/matzehuels/wingetreport/pkg/httputil"
	"github.com/matzehuels/wingetreport/pkg/integrations"
	"github.com/matzehuels/wingetreport/pkg/observability"
	"github.com/matzehuels/wingetreport/pkg/record"
)

// DefaultBaseURL is Adobe's download host.
const DefaultBaseURL = "https://ardownload2.adobe.com"

const (
	mspPathFormat = "/pub/adobe/acrobat/win/AcrobatDC/%[1]s/AcroRdrDCUpd%[1]s_MUI.msp"
	exePathFormat = "/pub/adobe/reader/win/AcrobatDC/%[1]s/AcroRdrDC%[1]s_MUI.exe"
)

var idPattern = regexp.MustCompile(`(?i)^Adobe\.Acrobat\.Reader`)

// Candidate is a download URL to verify and the kind adopted if it exists.
type Candidate struct {
	URL  string
	Kind record.InstallerKind
}

// Resolver replaces the winget download of Acrobat Reader with a verified
// direct MSP or EXE link.
type Resolver struct {
	prober  httputil.Prober
	baseURL string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the download host (scheme and host, no trailing slash).
func WithBaseURL(u string) Option {
	return func(r *Resolver) { r.baseURL = strings.TrimSuffix(u, "/") }
}

// NewResolver creates a Resolver that verifies candidates with p.
func NewResolver(p httputil.Prober, opts ...Option) *Resolver {
	r := &Resolver{prober: p, baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name implements integrations.Resolver.
func (r *Resolver) Name() string { return "adobe" }

// Matches reports whether id names an Acrobat Reader package.
func Matches(id string) bool { return idPattern.MatchString(id) }

// Applies implements integrations.Resolver. The version must be known.
func (r *Resolver) Applies(rec record.PackageRecord) bool {
	return Matches(rec.ID) && rec.HasVersion()
}

// FlattenVersion removes every "." from version.
func FlattenVersion(version string) string {
	return strings.ReplaceAll(version, ".", "")
}

// Candidates returns the MSP and EXE URLs for version, in probe order.
func (r *Resolver) Candidates(version string) []Candidate {
	tok := FlattenVersion(version)
	return []Candidate{
		{URL: r.baseURL + fmt.Sprintf(mspPathFormat, tok), Kind: record.KindMSP},
		{URL: r.baseURL + fmt.Sprintf(exePathFormat, tok), Kind: record.KindEXE},
	}
}

// Enrich implements integrations.Resolver. The first candidate whose probe
// succeeds replaces DownloadURL and InstallerKind and is reported as adopted;
// otherwise rec is returned as is.
func (r *Resolver) Enrich(ctx context.Context, rec record.PackageRecord) (record.PackageRecord, bool) {
	hooks := observability.Enrich()
	for _, c := range r.Candidates(rec.Version) {
		found := r.prober.Probe(ctx, c.URL)
		hooks.OnProbe(ctx, r.Name(), c.URL, found)
		if found {
			rec.DownloadURL = c.URL
			rec.InstallerKind = c.Kind
			hooks.OnEnriched(ctx, r.Name(), rec.ID, c.URL)
			return rec, true
		}
	}
	return rec, false
}

// Ensure Resolver implements integrations.Resolver.
var _ integrations.Resolver = (*Resolver)(nil)
