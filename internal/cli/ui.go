package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wingetreport/pkg/pipeline"
	"github.com/matzehuels/wingetreport/pkg/record"
	"github.com/matzehuels/wingetreport/pkg/report"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - links
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleLink for URLs.
	StyleLink = lipgloss.NewStyle().Foreground(colorBlue).Underline(true)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleSuccess for success messages.
	StyleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleEnriched = lipgloss.NewStyle().Foreground(colorGreen)
	styleFailed   = lipgloss.NewStyle().Foreground(colorRed)
	styleHeader   = lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}

// =============================================================================
// File Output
// =============================================================================

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// =============================================================================
// Key-Value Output
// =============================================================================

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	fmt.Println(keyStyle.Render(key) + " " + StyleValue.Render(value))
}

// =============================================================================
// Stats Display
// =============================================================================

// printStats prints run statistics on a single line.
func printStats(stats pipeline.Stats) {
	parts := []string{StyleDim.Render(fmt.Sprintf("%d packages", stats.Packages))}
	if stats.Enriched > 0 {
		parts = append(parts, styleEnriched.Render(fmt.Sprintf("%d enriched", stats.Enriched)))
	}
	if stats.Failed > 0 {
		parts = append(parts, styleFailed.Render(fmt.Sprintf("%d failed", stats.Failed)))
	}
	fmt.Println("  " + strings.Join(parts, StyleDim.Render(" · ")))
}

// =============================================================================
// Record Display
// =============================================================================

// consoleColumns are the report columns shown in the terminal; hashes and
// URLs are too wide for a table and stay in the file reports.
var consoleColumns = []int{0, 1, 2, 3, 6, 7}

// recordTable renders records as a rounded lipgloss table.
func recordTable(records []record.PackageRecord) string {
	headers := pick(report.Columns, consoleColumns)
	rows := make([][]string, len(records))
	for i, r := range records {
		rows[i] = pick(report.Row(r), consoleColumns)
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return base.Inherit(styleHeader)
			}
			if row < 0 || row >= len(records) {
				return base
			}
			r := records[row]
			switch {
			case r.Failed:
				return base.Foreground(colorRed)
			case col == 1:
				return base.Foreground(colorGray)
			case col == 4:
				return base.Inherit(kindStyle(r.InstallerKind))
			}
			return base
		}).
		Render()
}

// kindStyle colors installer kinds by how well they suit unattended deployment.
func kindStyle(k record.InstallerKind) lipgloss.Style {
	switch k {
	case record.KindMSIX, record.KindMSI, record.KindMSP:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case record.KindEXE:
		return lipgloss.NewStyle().Foreground(colorYellow)
	case record.KindNone:
		return StyleDim
	default:
		return lipgloss.NewStyle().Foreground(colorGray)
	}
}

func pick(values []string, idx []int) []string {
	out := make([]string, len(idx))
	for i, j := range idx {
		out[i] = values[j]
	}
	return out
}

// printRecord prints every field of one record as key/value lines.
func printRecord(r record.PackageRecord) {
	printKeyValue("ID", r.ID)
	printKeyValue("Name", r.Name)
	printKeyValue("Version", r.Version)
	printKeyValue("Previous", r.PreviousVersion)
	printKeyValue("Publisher", r.Publisher)
	printKeyValue("Released", r.ReleaseDate)
	printKeyValue("Installer", orDash(string(r.InstallerKind)))
	printKeyValue("Arch", orDash(r.Architecture))
	printKeyValue("SHA256", orDash(r.SHA256))
	if r.DownloadURL != "" {
		printKeyValue("Download", StyleLink.Render(r.DownloadURL))
	}
	if r.Homepage != "" {
		printKeyValue("Homepage", StyleLink.Render(r.Homepage))
	}
	if r.ReleaseNotesURL != "" {
		printKeyValue("Notes", StyleLink.Render(r.ReleaseNotesURL))
	}
	if r.Failed {
		printKeyValue("Error", styleFailed.Render(r.Error))
	}
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

// =============================================================================
// Commands & Next Steps
// =============================================================================

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

// =============================================================================
// Utilities
// =============================================================================

// printNewline prints an empty line.
func printNewline() {
	fmt.Println()
}
