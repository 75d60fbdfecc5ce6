package adobe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/wingetreport/pkg/httputil"
	"github.com/matzehuels/wingetreport/pkg/record"
)

const (
	testVersion = "25.001.20997"
	wingetURL   = "https://ardownload3.adobe.com/pub/adobe/reader/win/AcrobatDC/setup.exe"
)

func TestFlattenVersion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25.001.20997", "2500120997"},
		{"24.002.21005", "2400221005"},
		{"1", "1"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := FlattenVersion(tt.in); got != tt.want {
				t.Errorf("FlattenVersion(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"Adobe.Acrobat.Reader.64-bit", true},
		{"Adobe.Acrobat.Reader.32-bit", true},
		{"adobe.acrobat.reader.64-bit", true},
		{"Adobe.Acrobat.Pro", false},
		{"Vendor.Adobe.Acrobat.Reader", false},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := Matches(tt.id); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestApplies(t *testing.T) {
	r := NewResolver(httputil.NewProber(time.Second))

	rec := record.New("Adobe.Acrobat.Reader.64-bit")
	if r.Applies(rec) {
		t.Error("should not apply with unknown version")
	}
	rec.Version = testVersion
	if !r.Applies(rec) {
		t.Error("should apply with known version")
	}
	rec.Version = record.Failure
	if r.Applies(rec) {
		t.Error("should not apply to failed record")
	}
}

func TestCandidates(t *testing.T) {
	r := NewResolver(nil)
	got := r.Candidates(testVersion)
	if len(got) != 2 {
		t.Fatalf("len(Candidates) = %d, want 2", len(got))
	}
	if got[0].Kind != record.KindMSP || !strings.HasSuffix(got[0].URL, "AcroRdrDCUpd2500120997_MUI.msp") {
		t.Errorf("first candidate = %+v", got[0])
	}
	if got[1].Kind != record.KindEXE || !strings.HasSuffix(got[1].URL, "AcroRdrDC2500120997_MUI.exe") {
		t.Errorf("second candidate = %+v", got[1])
	}
	if !strings.HasPrefix(got[0].URL, DefaultBaseURL+"/") {
		t.Errorf("candidate host = %q", got[0].URL)
	}
}

func TestEnrich(t *testing.T) {
	tests := []struct {
		name       string
		available  map[string]bool
		wantSuffix string
		wantKind   record.InstallerKind
		wantProbes int
		wantAdopt  bool
	}{
		{
			name:       "msp found",
			available:  map[string]bool{".msp": true, ".exe": true},
			wantSuffix: "AcroRdrDCUpd2500120997_MUI.msp",
			wantKind:   record.KindMSP,
			wantProbes: 1,
			wantAdopt:  true,
		},
		{
			name:       "exe fallback",
			available:  map[string]bool{".exe": true},
			wantSuffix: "AcroRdrDC2500120997_MUI.exe",
			wantKind:   record.KindEXE,
			wantProbes: 2,
			wantAdopt:  true,
		},
		{
			name:       "both missing",
			available:  map[string]bool{},
			wantSuffix: wingetURL,
			wantKind:   record.KindEXE,
			wantProbes: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var (
				mu     sync.Mutex
				probes int
			)
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				mu.Lock()
				probes++
				mu.Unlock()
				for ext, ok := range tt.available {
					if ok && strings.HasSuffix(r.URL.Path, ext) {
						w.WriteHeader(http.StatusOK)
						return
					}
				}
				http.NotFound(w, r)
			}))
			defer server.Close()

			res := NewResolver(httputil.NewProberWithClient(server.Client(), time.Second), WithBaseURL(server.URL+"/"))

			rec := record.New("Adobe.Acrobat.Reader.64-bit")
			rec.Version = testVersion
			rec.DownloadURL = wingetURL
			rec.InstallerKind = record.KindEXE

			got, adopted := res.Enrich(context.Background(), rec)
			if adopted != tt.wantAdopt {
				t.Errorf("adopted = %v, want %v", adopted, tt.wantAdopt)
			}
			if !strings.HasSuffix(got.DownloadURL, tt.wantSuffix) {
				t.Errorf("DownloadURL = %q, want suffix %q", got.DownloadURL, tt.wantSuffix)
			}
			if got.InstallerKind != tt.wantKind {
				t.Errorf("InstallerKind = %q, want %q", got.InstallerKind, tt.wantKind)
			}
			mu.Lock()
			defer mu.Unlock()
			if probes != tt.wantProbes {
				t.Errorf("probes = %d, want %d", probes, tt.wantProbes)
			}
		})
	}
}

func TestEnrich_UnreachableHost(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	base := server.URL
	server.Close()

	res := NewResolver(httputil.NewProber(200*time.Millisecond), WithBaseURL(base))
	rec := record.New("Adobe.Acrobat.Reader.64-bit")
	rec.Version = testVersion

	got, adopted := res.Enrich(context.Background(), rec)
	if got != rec || adopted {
		t.Errorf("record changed on unreachable host: %+v (adopted=%v)", got, adopted)
	}
}

func TestEnrich_AdoptsCandidateEqualToCurrentURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	res := NewResolver(httputil.NewProberWithClient(server.Client(), time.Second), WithBaseURL(server.URL))
	rec := record.New("Adobe.Acrobat.Reader.64-bit")
	rec.Version = testVersion
	rec.DownloadURL = res.Candidates(testVersion)[0].URL
	rec.InstallerKind = record.KindMSP

	got, adopted := res.Enrich(context.Background(), rec)
	if !adopted {
		t.Error("adopted = false for a verified candidate equal to the current URL")
	}
	if got != rec {
		t.Errorf("record = %+v, want unchanged %+v", got, rec)
	}
}
