package extract

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		line      string
		wantField Field
		wantValue string
		wantOK    bool
	}{
		{"Version: 120.0.6099.130", FieldVersion, "120.0.6099.130", true},
		{"Publisher: Google LLC", FieldPublisher, "Google LLC", true},
		{"Release Date: 2024-01-02", FieldReleaseDate, "2024-01-02", true},
		{"Release Notes Url: https://example.com/notes", FieldReleaseNotesURL, "https://example.com/notes", true},
		{"Description: A browser", FieldDescription, "A browser", true},
		{"Homepage: https://example.com", FieldHomepage, "https://example.com", true},
		{"  Installer Url: https://example.com/a.msi", FieldInstallerURL, "https://example.com/a.msi", true},
		{"  Installer Type: wix", FieldInstallerType, "wix", true},
		{"  Installer SHA256: ABCDEF", FieldSHA256, "ABCDEF", true},
		{"SHA256: abcdef", FieldSHA256, "abcdef", true},
		{"Architecture: x64", FieldArchitecture, "x64", true},
		{"Installer Architecture: arm64", FieldArchitecture, "arm64", true},
		{"Found Google Chrome [Google.Chrome]", FieldName, "Google Chrome", true},
		{"Found Mozilla Firefox (x64 en-US) [Mozilla.Firefox]", FieldName, "Mozilla Firefox (x64 en-US)", true},
		{"-\r\\\r|\rVersion: 1.0", FieldVersion, "1.0", true},
		{"Version: 2.0\r", FieldVersion, "2.0", true},
		{"version: 1.0", FieldNone, "", false},
		{"Publisher Url: https://example.com", FieldNone, "", false},
		{"Release Notes: text", FieldNone, "", false},
		{"Installer:", FieldNone, "", false},
		{"No package found matching input criteria.", FieldNone, "", false},
		{"Package Found [x]", FieldNone, "", false},
		{"", FieldNone, "", false},
		{"   ", FieldNone, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, ok := ClassifyLine(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ClassifyLine(%q) ok = %v, want %v", tt.line, ok, tt.wantOK)
			}
			if got.Field != tt.wantField || got.Value != tt.wantValue {
				t.Errorf("ClassifyLine(%q) = (%s, %q), want (%s, %q)",
					tt.line, got.Field, got.Value, tt.wantField, tt.wantValue)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	out := []string{
		"Found 7-Zip [7zip.7zip]",
		"",
		"Version: 24.08",
		"Tags:",
		"  archive",
		"Installer:",
		"  Installer Type: exe",
	}
	lines := Classify(out)
	if len(lines) != 3 {
		t.Fatalf("Classify returned %d lines, want 3: %v", len(lines), lines)
	}
	if lines[0].Field != FieldName || lines[2].Field != FieldInstallerType {
		t.Errorf("unexpected order: %v", lines)
	}
}

func TestFieldString(t *testing.T) {
	if FieldInstallerURL.String() != "installer_url" {
		t.Errorf("FieldInstallerURL.String() = %q", FieldInstallerURL.String())
	}
	if Field(99).String() != "unknown" {
		t.Errorf("Field(99).String() = %q", Field(99).String())
	}
}
