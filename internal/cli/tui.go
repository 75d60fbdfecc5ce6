package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/wingetreport/pkg/record"
	"github.com/matzehuels/wingetreport/pkg/report"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	detailBoxStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	detailKeyStyle  = lipgloss.NewStyle().Foreground(colorGray).Width(10)
	detailLinkStyle = lipgloss.NewStyle().Foreground(colorBlue)
)

// =============================================================================
// RecordListModel - Interactive report browser
// =============================================================================

// RecordListModel is the bubbletea model for browsing report records.
type RecordListModel struct {
	Doc        report.Document
	Cursor     int
	Height     int
	Offset     int
	ShowDetail bool
	OnlyFailed bool

	visible []int // indexes into Doc.Records
}

// NewRecordListModel creates a new record list model.
func NewRecordListModel(doc report.Document) RecordListModel {
	m := RecordListModel{Doc: doc, Height: 15, ShowDetail: true}
	m.filter()
	return m
}

// filter rebuilds the visible index list and clamps the cursor.
func (m *RecordListModel) filter() {
	m.visible = nil
	for i, r := range m.Doc.Records {
		if !m.OnlyFailed || r.Failed {
			m.visible = append(m.visible, i)
		}
	}
	if m.Cursor >= len(m.visible) {
		m.Cursor = max(len(m.visible)-1, 0)
	}
	if m.Offset > m.Cursor {
		m.Offset = m.Cursor
	}
}

// Current returns the record under the cursor.
func (m RecordListModel) Current() (record.PackageRecord, bool) {
	if len(m.visible) == 0 {
		return record.PackageRecord{}, false
	}
	return m.Doc.Records[m.visible[m.Cursor]], true
}

func (m RecordListModel) Init() tea.Cmd {
	return nil
}

func (m RecordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.visible)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "enter", "d":
			m.ShowDetail = !m.ShowDetail
		case "f":
			m.OnlyFailed = !m.OnlyFailed
			m.filter()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 20
		if m.Height < 5 {
			m.Height = 5
		}
	}
	return m, nil
}

func (m RecordListModel) View() string {
	var b strings.Builder

	summary := m.Doc.Summary()
	b.WriteString(StyleTitle.Render("Package Report"))
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  %d packages · %d failed · %s",
		summary.Total, summary.Failed, formatRelativeTime(m.Doc.GeneratedAt))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  f failed only  q quit"))
	b.WriteString("\n\n")

	if len(m.visible) == 0 {
		b.WriteString(StyleSuccess.Render("  No failed packages"))
		b.WriteString("\n")
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.visible))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Doc.Records[m.visible[i]]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, r.Name, r.Version, string(r.InstallerKind), r.Architecture})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Package", "Version", "Kind", "Arch").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx >= len(m.visible) {
				return lipgloss.NewStyle()
			}
			r := m.Doc.Records[m.visible[idx]]
			base := lipgloss.NewStyle()
			if idx == m.Cursor {
				base = base.Bold(true)
			}
			switch {
			case r.Failed:
				return base.Foreground(colorRed)
			case col == 3:
				return base.Inherit(kindStyle(r.InstallerKind))
			case idx == m.Cursor:
				return base.Foreground(colorCyan)
			}
			return base
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.visible))))
	b.WriteString("\n")

	if rec, ok := m.Current(); ok && m.ShowDetail {
		b.WriteString(detailBoxStyle.Render(recordDetail(rec)))
		b.WriteString("\n")
	}
	return b.String()
}

// recordDetail renders the fields not shown in the list.
func recordDetail(r record.PackageRecord) string {
	var lines []string
	add := func(key, value string, style lipgloss.Style) {
		if value == "" {
			return
		}
		lines = append(lines, detailKeyStyle.Render(key)+" "+style.Render(value))
	}
	plain := lipgloss.NewStyle()

	add("ID", r.ID, plain)
	add("Publisher", r.Publisher, plain)
	add("Previous", r.PreviousVersion, plain)
	add("Released", r.ReleaseDate, plain)
	add("SHA256", r.SHA256, plain)
	add("Download", r.DownloadURL, detailLinkStyle)
	add("Homepage", r.Homepage, detailLinkStyle)
	add("Notes", r.ReleaseNotesURL, detailLinkStyle)
	if r.Failed {
		add("Error", r.Error, styleFailed)
	}
	return strings.Join(lines, "\n")
}

// =============================================================================
// Helpers
// =============================================================================

func formatRelativeTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	case diff < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(diff.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
