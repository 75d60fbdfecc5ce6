package cli

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/matzehuels/wingetreport/pkg/record"
	"github.com/matzehuels/wingetreport/pkg/report"
)

func browseDocument(n int, failed ...int) report.Document {
	doc := report.Document{RunID: "run", GeneratedAt: time.Now()}
	isFailed := map[int]bool{}
	for _, i := range failed {
		isFailed[i] = true
	}
	for i := range n {
		id := fmt.Sprintf("Vendor.Package%d", i)
		if isFailed[i] {
			doc.Records = append(doc.Records, record.NewFailed(id, fmt.Errorf("boom")))
			continue
		}
		r := record.New(id)
		r.Version = "1.0"
		r.InstallerKind = record.KindMSI
		doc.Records = append(doc.Records, r)
	}
	return doc
}

func press(m RecordListModel, keys ...string) RecordListModel {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(RecordListModel)
	}
	return m
}

func TestRecordListNavigation(t *testing.T) {
	m := NewRecordListModel(browseDocument(3))

	m = press(m, "down", "down", "down")
	if m.Cursor != 2 {
		t.Errorf("cursor = %d, want clamped at 2", m.Cursor)
	}
	m = press(m, "k")
	if m.Cursor != 1 {
		t.Errorf("cursor = %d, want 1", m.Cursor)
	}
	rec, ok := m.Current()
	if !ok || rec.ID != "Vendor.Package1" {
		t.Errorf("current = %q", rec.ID)
	}
	m = press(m, "g")
	if m.Cursor != 0 {
		t.Errorf("cursor = %d after home, want 0", m.Cursor)
	}
}

func TestRecordListScrolls(t *testing.T) {
	m := NewRecordListModel(browseDocument(10))
	m.Height = 3

	m = press(m, "down", "down", "down", "down")
	if m.Offset != 2 {
		t.Errorf("offset = %d, want 2", m.Offset)
	}
	m = press(m, "up", "up", "up", "up")
	if m.Offset != 0 {
		t.Errorf("offset = %d, want 0", m.Offset)
	}
}

func TestRecordListFailedFilter(t *testing.T) {
	m := NewRecordListModel(browseDocument(5, 3))
	m = press(m, "down", "down", "down", "down")

	m = press(m, "f")
	if !m.OnlyFailed || len(m.visible) != 1 {
		t.Fatalf("filter: only=%v visible=%d", m.OnlyFailed, len(m.visible))
	}
	rec, _ := m.Current()
	if rec.ID != "Vendor.Package3" {
		t.Errorf("current = %q after filter", rec.ID)
	}

	m = press(m, "f")
	if len(m.visible) != 5 {
		t.Errorf("visible = %d after clearing filter", len(m.visible))
	}
}

func TestRecordListView(t *testing.T) {
	m := NewRecordListModel(browseDocument(2, 1))
	view := m.View()

	for _, want := range []string{"Package Report", "Vendor.Package0", "[1/2]", "2 packages · 1 failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(m, "enter")
	if m.ShowDetail {
		t.Error("enter should toggle details off")
	}
}

func TestRecordListViewNoFailures(t *testing.T) {
	m := press(NewRecordListModel(browseDocument(2)), "f")
	if !strings.Contains(m.View(), "No failed packages") {
		t.Error("empty filter should say so")
	}
	if _, ok := m.Current(); ok {
		t.Error("Current should be empty")
	}
}

func TestRecordListQuit(t *testing.T) {
	m := NewRecordListModel(browseDocument(1))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Error("q should return a quit command")
	}
}

func TestFormatRelativeTime(t *testing.T) {
	tests := []struct {
		t    time.Time
		want string
	}{
		{time.Time{}, "never"},
		{time.Now(), "just now"},
		{time.Now().Add(-5 * time.Minute), "5m ago"},
		{time.Now().Add(-3 * time.Hour), "3h ago"},
		{time.Now().Add(-50 * time.Hour), "2d ago"},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), "Jan 2, 2024"},
	}
	for _, tt := range tests {
		if got := formatRelativeTime(tt.t); got != tt.want {
			t.Errorf("formatRelativeTime(%v) = %q, want %q", tt.t, got, tt.want)
		}
	}
}
