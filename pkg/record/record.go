package record

import (
	"strings"
)

// Sentinels for absent or failed fields.
const (
	Unknown = "unknown"
	Failure = "ERROR"
)

// InstallerKind is the classified packaging format of a download.
type InstallerKind string

// Installer kinds. The zero value means no installer was observed.
const (
	KindNone  InstallerKind = ""
	KindMSI   InstallerKind = "MSI"
	KindMSP   InstallerKind = "MSP"
	KindEXE   InstallerKind = "EXE"
	KindZIP   InstallerKind = "ZIP"
	KindMSIX  InstallerKind = "MSIX"
	KindOther InstallerKind = "OTHER"
)

// PackageRecord holds the metadata resolved for one package identifier.
type PackageRecord struct {
	ID              string        `json:"id"`
	Name            string        `json:"name"`
	Version         string        `json:"version"`
	PreviousVersion string        `json:"previous_version"`
	Publisher       string        `json:"publisher"`
	ReleaseDate     string        `json:"release_date"`
	ReleaseNotesURL string        `json:"release_notes_url,omitempty"`
	Description     string        `json:"description,omitempty"`
	Homepage        string        `json:"homepage,omitempty"`
	DownloadURL     string        `json:"download_url,omitempty"`
	InstallerKind   InstallerKind `json:"installer_kind,omitempty"`
	SHA256          string        `json:"sha256,omitempty"`
	Architecture    string        `json:"architecture,omitempty"`
	Failed          bool          `json:"failed"`
	Error           string        `json:"error,omitempty"`
}

// New returns the empty record for id with sentinel defaults.
func New(id string) PackageRecord {
	return PackageRecord{
		ID:              id,
		Name:            id,
		Version:         Unknown,
		PreviousVersion: Unknown,
		Publisher:       Unknown,
		ReleaseDate:     Unknown,
	}
}

// NewFailed returns the record for an identifier whose query failed.
// Version-bearing fields carry the Failure sentinel.
func NewFailed(id string, err error) PackageRecord {
	r := New(id)
	r.Version = Failure
	r.PreviousVersion = Failure
	r.Failed = true
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// HasVersion reports whether Version holds a real value rather than a sentinel.
func (r PackageRecord) HasVersion() bool {
	return r.Version != "" && r.Version != Unknown && r.Version != Failure
}

// ArchitectureList returns the architecture tokens in first-seen order.
func (r PackageRecord) ArchitectureList() []string {
	if r.Architecture == "" {
		return nil
	}
	return strings.Split(r.Architecture, ",")
}

// AddArchitecture appends token unless it is already present.
func (r *PackageRecord) AddArchitecture(token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	for _, t := range r.ArchitectureList() {
		if t == token {
			return
		}
	}
	if r.Architecture == "" {
		r.Architecture = token
		return
	}
	r.Architecture += "," + token
}
