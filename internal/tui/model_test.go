package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/git-heatmap/internal/calendar"
)

func testGrid(t *testing.T) calendar.RenderGrid {
	t.Helper()
	days := []calendar.Date{
		{Year: 2021, Month: time.January, Day: 1},
		{Year: 2021, Month: time.January, Day: 1},
	}
	return calendar.BuildYear(days, 2021, calendar.DefaultScale())
}

func TestNewModel_CursorStartsOnJanFirst(t *testing.T) {
	t.Parallel()

	m := NewModel("repo", testGrid(t))
	// 2021-01-01 is a Friday in week 0.
	if m.week != 0 || m.day != 5 {
		t.Fatalf("cursor at (%d, %d), want (0, 5)", m.week, m.day)
	}
}

func TestUpdate_MoveSkipsPadding(t *testing.T) {
	t.Parallel()

	m := NewModel("repo", testGrid(t))

	// Up from Friday in week 0 lands on padding; the cursor snaps back to
	// the nearest in-year day of the column.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = next.(*Model)
	if !m.rg.Weeks[m.week][m.day].InYear {
		t.Fatalf("cursor on padding at (%d, %d)", m.week, m.day)
	}

	// Right into week 1, where every day is in-year.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(*Model)
	if m.week != 1 {
		t.Fatalf("week = %d, want 1", m.week)
	}
}

func TestUpdate_CursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := NewModel("repo", testGrid(t))
	for i := 0; i < 100; i++ {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
		m = next.(*Model)
	}
	if m.week != len(m.rg.Weeks)-1 {
		t.Fatalf("week = %d, want last week %d", m.week, len(m.rg.Weeks)-1)
	}
	if !m.rg.Weeks[m.week][m.day].InYear {
		t.Fatalf("cursor on padding at (%d, %d)", m.week, m.day)
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	t.Parallel()

	m := NewModel("repo", testGrid(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
}

func TestView_ShowsSelectedDayCount(t *testing.T) {
	t.Parallel()

	m := NewModel("myrepo", testGrid(t))
	view := m.View()
	if !strings.Contains(view, "2021-01-01") {
		t.Fatalf("view should show the selected date")
	}
	if !strings.Contains(view, "2 commits") {
		t.Fatalf("view should show the selected day's count")
	}
	if !strings.Contains(view, "myrepo") {
		t.Fatalf("view should show the repo title")
	}
}
