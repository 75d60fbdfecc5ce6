package winget

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestSplitLines(t *testing.T) {
	got := SplitLines("Found X [X]\r\nVersion: 1.0\r\n\r\n-\r|\rPublisher: Y\n")
	want := []string{"Found X [X]", "Version: 1.0", "", "-\r|\rPublisher: Y"}
	if !slices.Equal(got, want) {
		t.Errorf("SplitLines = %q, want %q", got, want)
	}
	if got := SplitLines(""); len(got) != 0 {
		t.Errorf("SplitLines(\"\") = %q, want empty", got)
	}
}

func TestShowArgs(t *testing.T) {
	c := NewClient(WithSource("winget"))
	args := c.showArgs("Google.Chrome")
	want := []string{"show", "--id", "Google.Chrome", "--exact", "--accept-source-agreements", "--disable-interactivity", "--source", "winget"}
	if !slices.Equal(args, want) {
		t.Errorf("showArgs = %v, want %v", args, want)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(WithTimeout(0))
	if c.path != "winget" {
		t.Errorf("path = %q, want winget", c.path)
	}
	if c.timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", c.timeout, DefaultTimeout)
	}
}

func TestClient_NotInstalled(t *testing.T) {
	c := NewClient(WithPath("definitely-not-a-real-winget-binary"))
	_, err := c.Show(context.Background(), "Google.Chrome")
	if !errors.Is(err, ErrNotInstalled) {
		t.Errorf("err = %v, want ErrNotInstalled", err)
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()
	s := Static{
		"A": {Show: []string{"Version: 1"}, Versions: []string{"---", "1"}},
		"B": {ShowErr: errors.New("boom")},
	}

	lines, err := s.Show(ctx, "A")
	if err != nil || len(lines) != 1 {
		t.Errorf("Show(A) = %v, %v", lines, err)
	}
	if _, err := s.Show(ctx, "B"); err == nil {
		t.Error("Show(B) should fail")
	}
	if _, err := s.Versions(ctx, "missing"); !errors.Is(err, ErrQuery) {
		t.Errorf("Versions(missing) err = %v, want ErrQuery", err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := s.Show(cancelled, "A"); !errors.Is(err, context.Canceled) {
		t.Errorf("Show with cancelled ctx err = %v", err)
	}
}

func TestLoadStatic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fixtures.yaml")
	content := `Google.Chrome:
  show:
    - "Found Google Chrome [Google.Chrome]"
    - "Version: 120.0"
  versions: ["Version", "---", "120.0", "119.0"]
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadStatic(path)
	if err != nil {
		t.Fatalf("LoadStatic failed: %v", err)
	}
	lines, err := s.Versions(context.Background(), "Google.Chrome")
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) != 4 || lines[3] != "119.0" {
		t.Errorf("Versions = %v", lines)
	}
}

func TestLoadStatic_Missing(t *testing.T) {
	if _, err := LoadStatic(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
