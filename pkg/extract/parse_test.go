package extract

import (
	"errors"
	"testing"

	"github.com/matzehuels/wingetreport/pkg/record"
)

func TestParseShow_Fields(t *testing.T) {
	out := []string{
		"Found Notepad++ [Notepad++.Notepad++]",
		"Version: 8.6.9",
		"Publisher: Notepad++ Team",
		"Publisher Url: https://notepad-plus-plus.org/",
		"Description: Free source code editor",
		"Homepage: https://notepad-plus-plus.org/",
		"Release Date: 2024-07-03",
		"Release Notes Url: https://notepad-plus-plus.org/news/v869",
		"Installer:",
		"  Installer Type: nullsoft",
		"  Installer Url: https://github.com/notepad-plus-plus/releases/npp.8.6.9.Installer.x64.exe",
		"  Installer SHA256: 0123abcd",
	}

	r, err := ParseShow("Notepad++.Notepad++", out)
	if err != nil {
		t.Fatalf("ParseShow failed: %v", err)
	}

	want := record.PackageRecord{
		ID:              "Notepad++.Notepad++",
		Name:            "Notepad++",
		Version:         "8.6.9",
		PreviousVersion: record.Unknown,
		Publisher:       "Notepad++ Team",
		ReleaseDate:     "2024-07-03",
		ReleaseNotesURL: "https://notepad-plus-plus.org/news/v869",
		Description:     "Free source code editor",
		Homepage:        "https://notepad-plus-plus.org/",
		DownloadURL:     "https://github.com/notepad-plus-plus/releases/npp.8.6.9.Installer.x64.exe",
		InstallerKind:   record.KindEXE,
		SHA256:          "0123abcd",
	}
	if r != want {
		t.Errorf("ParseShow =\n%+v\nwant\n%+v", r, want)
	}
}

func TestParseShow_LastSeenWins(t *testing.T) {
	r, err := ParseShow("x", []string{
		"Found First [x]",
		"Version: 1.0",
		"Publisher: A",
		"Found Second [x]",
		"Version: 2.0",
		"Publisher: B",
	})
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Second" || r.Version != "2.0" || r.Publisher != "B" {
		t.Errorf("got name=%q version=%q publisher=%q", r.Name, r.Version, r.Publisher)
	}
}

func TestParseShow_NameDefaultsToID(t *testing.T) {
	r, err := ParseShow("Vendor.App", []string{"Version: 1.0"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Name != "Vendor.App" {
		t.Errorf("Name = %q, want identifier", r.Name)
	}
}

func TestParseShow_SHA256FirstSeenWins(t *testing.T) {
	r, _ := ParseShow("x", []string{
		"Installer SHA256: first",
		"SHA256: second",
		"Installer SHA256: third",
	})
	if r.SHA256 != "first" {
		t.Errorf("SHA256 = %q, want first", r.SHA256)
	}
}

func TestParseShow_ArchitectureAccumulates(t *testing.T) {
	r, _ := ParseShow("x", []string{
		"Architecture: x64",
		"Installer Architecture: ARM64",
		"Architecture: x64",
		"Installer Architecture: x86, x64",
	})
	if r.Architecture != "x64,arm64,x86" {
		t.Errorf("Architecture = %q, want x64,arm64,x86", r.Architecture)
	}
}

func TestParseShow_InstallerPrecedence(t *testing.T) {
	const (
		exe  = "https://example.com/setup.exe"
		zip  = "https://example.com/portable.zip"
		msi  = "https://example.com/setup.msi"
		msix = "https://example.com/app.msix"
	)

	tests := []struct {
		name     string
		lines    []string
		wantURL  string
		wantKind record.InstallerKind
	}{
		{
			name:     "msix after exe",
			lines:    []string{"Installer Url: " + exe, "Installer Url: " + msix},
			wantURL:  msix,
			wantKind: record.KindMSIX,
		},
		{
			name:     "msix before exe",
			lines:    []string{"Installer Url: " + msix, "Installer Url: " + exe},
			wantURL:  msix,
			wantKind: record.KindMSIX,
		},
		{
			name:     "msi replaces other",
			lines:    []string{"Installer Url: " + exe, "Installer Url: " + msi},
			wantURL:  msi,
			wantKind: record.KindMSI,
		},
		{
			name:     "msi never replaces msix",
			lines:    []string{"Installer Url: " + msix, "Installer Url: " + msi},
			wantURL:  msix,
			wantKind: record.KindMSIX,
		},
		{
			name:     "first other url wins",
			lines:    []string{"Installer Url: " + zip, "Installer Url: " + exe},
			wantURL:  zip,
			wantKind: record.KindZIP,
		},
		{
			name:     "first msi wins",
			lines:    []string{"Installer Url: " + msi, "Installer Url: https://example.com/other.msi"},
			wantURL:  msi,
			wantKind: record.KindMSI,
		},
		{
			name:     "bundle and appx count as msix",
			lines:    []string{"Installer Url: " + msi, "Installer Url: https://example.com/App.AppxBundle"},
			wantURL:  "https://example.com/App.AppxBundle",
			wantKind: record.KindMSIX,
		},
		{
			name:     "query string ignored",
			lines:    []string{"Installer Url: https://example.com/dl.msi?token=1.exe"},
			wantURL:  "https://example.com/dl.msi?token=1.exe",
			wantKind: record.KindMSI,
		},
		{
			name:     "unknown extension is other",
			lines:    []string{"Installer Url: https://example.com/download"},
			wantURL:  "https://example.com/download",
			wantKind: record.KindOther,
		},
		{
			name:     "declared msi then msix url",
			lines:    []string{"Installer Type: msi", "Installer Url: " + msix},
			wantURL:  msix,
			wantKind: record.KindMSIX,
		},
		{
			name:     "declared msix overrides msi url",
			lines:    []string{"Installer Url: " + msi, "Installer Type: msix"},
			wantURL:  msi,
			wantKind: record.KindMSIX,
		},
		{
			name:     "declared appx before msi url",
			lines:    []string{"Installer Type: appx", "Installer Url: " + msi},
			wantURL:  msi,
			wantKind: record.KindMSIX,
		},
		{
			name:     "declared msi does not downgrade msix",
			lines:    []string{"Installer Url: " + msix, "Installer Type: msi"},
			wantURL:  msix,
			wantKind: record.KindMSIX,
		},
		{
			name:     "declared type fills other",
			lines:    []string{"Installer Url: https://example.com/download", "Installer Type: inno"},
			wantURL:  "https://example.com/download",
			wantKind: record.KindEXE,
		},
		{
			name:     "declared type keeps url kind",
			lines:    []string{"Installer Url: " + exe, "Installer Type: wix"},
			wantURL:  exe,
			wantKind: record.KindEXE,
		},
		{
			name:     "declared type only",
			lines:    []string{"Installer Type: wix"},
			wantURL:  "",
			wantKind: record.KindMSI,
		},
		{
			name:     "declared unknown type",
			lines:    []string{"Installer Type: pwa"},
			wantURL:  "",
			wantKind: record.KindOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseShow("x", tt.lines)
			if err != nil {
				t.Fatalf("ParseShow failed: %v", err)
			}
			if r.DownloadURL != tt.wantURL {
				t.Errorf("DownloadURL = %q, want %q", r.DownloadURL, tt.wantURL)
			}
			if r.InstallerKind != tt.wantKind {
				t.Errorf("InstallerKind = %q, want %q", r.InstallerKind, tt.wantKind)
			}
		})
	}
}

func TestParseShow_NoMetadata(t *testing.T) {
	tests := []struct {
		name string
		out  []string
	}{
		{"nil", nil},
		{"empty", []string{}},
		{"noise only", []string{"No package found matching input criteria.", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseShow("Missing.App", tt.out)
			if !errors.Is(err, ErrNoMetadata) {
				t.Fatalf("err = %v, want ErrNoMetadata", err)
			}
			if r.ID != "Missing.App" {
				t.Errorf("ID = %q", r.ID)
			}
		})
	}
}
