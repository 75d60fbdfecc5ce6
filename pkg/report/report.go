package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/matzehuels/wingetreport/pkg/errors"
	"github.com/matzehuels/wingetreport/pkg/record"
)

// Output formats.
const (
	FormatHTML = "html"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatHTML: true,
	FormatCSV:  true,
	FormatJSON: true,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: html, csv, json)", format)
	}
	return nil
}

// Document is the renderer input for one run.
type Document struct {
	RunID       string                 `json:"run_id"`
	GeneratedAt time.Time              `json:"generated_at"`
	Records     []record.PackageRecord `json:"records"`
}

// Summary counts the outcomes in d.
type Summary struct {
	Total  int
	Failed int
	MSIX   int
}

// Summary returns outcome counts for d.
func (d Document) Summary() Summary {
	s := Summary{Total: len(d.Records)}
	for _, r := range d.Records {
		if r.Failed {
			s.Failed++
		}
		if r.InstallerKind == record.KindMSIX {
			s.MSIX++
		}
	}
	return s
}

// Columns is the column order shared by CSV and console output.
var Columns = []string{
	"Name", "ID", "Version", "Previous", "Publisher", "Release Date",
	"Kind", "Arch", "SHA256", "Download URL",
}

// Row returns r's values in Columns order.
func Row(r record.PackageRecord) []string {
	return []string{
		r.Name,
		r.ID,
		r.Version,
		r.PreviousVersion,
		r.Publisher,
		r.ReleaseDate,
		string(r.InstallerKind),
		r.Architecture,
		r.SHA256,
		r.DownloadURL,
	}
}

// Write renders d in format to w.
func Write(w io.Writer, format string, d Document) error {
	switch strings.ToLower(format) {
	case FormatHTML:
		return WriteHTML(w, d)
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatJSON:
		return WriteJSON(w, d)
	default:
		return ValidateFormat(format)
	}
}

// WriteJSON writes d as indented JSON.
func WriteJSON(w io.Writer, d Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
