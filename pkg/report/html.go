package report

import (
	"embed"
	"html/template"
	"io"
	"strings"

	"github.com/matzehuels/wingetreport/pkg/buildinfo"
	"github.com/matzehuels/wingetreport/pkg/record"
)

//go:embed templates/report.html.tmpl
var templateFS embed.FS

var reportTemplate = template.Must(
	template.New("report.html.tmpl").
		Funcs(template.FuncMap{
			"kindClass":  kindClass,
			"isSentinel": isSentinel,
			"shortHash":  shortHash,
			"generator":  buildinfo.Generator,
		}).
		ParseFS(templateFS, "templates/report.html.tmpl"),
)

type htmlData struct {
	Document
	Summary Summary
}

// WriteHTML writes d as a standalone HTML page.
func WriteHTML(w io.Writer, d Document) error {
	return reportTemplate.Execute(w, htmlData{Document: d, Summary: d.Summary()})
}

func kindClass(k record.InstallerKind) string {
	if k == record.KindNone {
		return "kind-none"
	}
	return "kind-" + strings.ToLower(string(k))
}

func isSentinel(v string) bool {
	return v == record.Unknown || v == record.Failure
}

func shortHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:12] + "…"
}
