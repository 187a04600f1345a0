package tui

import (
	"bytes"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/git-heatmap/internal/calendar"
)

// Model is an interactive viewer over a year heatmap: a cursor walks the
// week/weekday grid and the HUD shows the selected day's commit count.
type Model struct {
	title string
	rg    calendar.RenderGrid

	// Cursor position: week column and weekday row.
	week int
	day  int

	w int
	h int

	viewBuf bytes.Buffer
}

func NewModel(title string, rg calendar.RenderGrid) *Model {
	m := &Model{title: title, rg: rg}
	// Start on the first in-year day (Jan 1's slot).
	for wi, week := range rg.Weeks {
		for di, cell := range week {
			if cell.InYear {
				m.week = wi
				m.day = di
				return m
			}
		}
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.w = msg.Width
		m.h = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "left", "h":
			m.moveWeek(-1)
		case "right", "l":
			m.moveWeek(1)
		case "up", "k":
			m.moveDay(-1)
		case "down", "j":
			m.moveDay(1)
		case "home", "g":
			m.week = 0
			m.snapIntoYear()
		case "end", "G":
			m.week = len(m.rg.Weeks) - 1
			m.snapIntoYear()
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m *Model) moveWeek(delta int) {
	next := m.week + delta
	if next < 0 || next >= len(m.rg.Weeks) {
		return
	}
	m.week = next
	m.snapIntoYear()
}

func (m *Model) moveDay(delta int) {
	next := m.day + delta
	if next < 0 || next > 6 {
		return
	}
	m.day = next
	m.snapIntoYear()
}

// snapIntoYear nudges the cursor off padding cells at the year's edges so
// it always sits on a real day.
func (m *Model) snapIntoYear() {
	if len(m.rg.Weeks) == 0 {
		return
	}
	if m.rg.Weeks[m.week][m.day].InYear {
		return
	}
	week := m.rg.Weeks[m.week]
	best := -1
	for di := range week {
		if !week[di].InYear {
			continue
		}
		if best == -1 || abs(di-m.day) < abs(best-m.day) {
			best = di
		}
	}
	if best >= 0 {
		m.day = best
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

var (
	styleHudLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	styleHudValue = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d0d7de"))
	styleHudCount = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd33d"))
	styleHelp     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))

	// GitHub-like greens (light -> dark):
	// low: #9be9a8, medium: #40c463, high: #30a14e, max: #216e39
	levelStyles = [...]lipgloss.Style{
		calendar.LevelZero:   lipgloss.NewStyle().Background(lipgloss.Color("#161b22")),
		calendar.LevelLow:    lipgloss.NewStyle().Background(lipgloss.Color("#9be9a8")).Foreground(lipgloss.Color("#0d1117")),
		calendar.LevelMedium: lipgloss.NewStyle().Background(lipgloss.Color("#40c463")).Foreground(lipgloss.Color("#0d1117")),
		calendar.LevelHigh:   lipgloss.NewStyle().Background(lipgloss.Color("#30a14e")).Foreground(lipgloss.Color("#0d1117")),
		calendar.LevelMax:    lipgloss.NewStyle().Background(lipgloss.Color("#216e39")).Foreground(lipgloss.Color("#d0d7de")),
	}

	cursorColor = lipgloss.Color("#ffd33d")
)

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func (m *Model) View() string {
	m.viewBuf.Reset()
	b := &m.viewBuf

	b.WriteString(m.renderHUD())
	b.WriteString("\n\n")

	// Month header.
	b.WriteString("    ")
	for i, month := range m.rg.Labels {
		if month == 0 {
			b.WriteString("  ")
		} else {
			fmt.Fprintf(b, "%-2d", int(month))
		}
		m.writeGap(b, i)
	}
	b.WriteString("\n")

	for day := 0; day < 7; day++ {
		fmt.Fprintf(b, "%-4s", weekdayNames[day])
		for wi, week := range m.rg.Weeks {
			cell := week[day]
			switch {
			case !cell.InYear:
				b.WriteString("  ")
			case wi == m.week && day == m.day:
				b.WriteString(levelStyles[cell.Level].Bold(true).Foreground(cursorColor).Render("[]"))
			default:
				b.WriteString(levelStyles[cell.Level].Render("  "))
			}
			m.writeGap(b, wi)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleHelp.Render("arrows/hjkl move · g/G first/last week · q quit"))
	b.WriteString("\n")
	return b.String()
}

func (m *Model) writeGap(b *bytes.Buffer, i int) {
	if i >= len(m.rg.Separators) {
		return
	}
	if m.rg.Separators[i] {
		b.WriteString("|")
	} else {
		b.WriteString(" ")
	}
}

func (m *Model) renderHUD() string {
	var parts []string
	parts = append(parts,
		styleHudLabel.Render("repo ")+styleHudValue.Render(m.title),
		styleHudLabel.Render("year ")+styleHudValue.Render(fmt.Sprintf("%d", m.rg.Year)),
	)

	if len(m.rg.Weeks) > 0 {
		cell := m.rg.Weeks[m.week][m.day]
		if cell.InYear {
			noun := "commits"
			if cell.Count == 1 {
				noun = "commit"
			}
			parts = append(parts,
				styleHudLabel.Render("day ")+styleHudValue.Render(cell.Date.String()),
				styleHudCount.Render(fmt.Sprintf("%d %s", cell.Count, noun)),
			)
		}
	}
	return strings.Join(parts, styleHudLabel.Render("  ·  "))
}
