package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fchimpan/git-heatmap/internal/calendar"
)

// GitHub-like greens (light -> dark):
// low: #9be9a8, medium: #40c463, high: #30a14e, max: #216e39
var levelCells = [...]string{
	calendar.LevelZero:   lipgloss.NewStyle().Background(lipgloss.Color("#161b22")).Render("  "),
	calendar.LevelLow:    lipgloss.NewStyle().Background(lipgloss.Color("#9be9a8")).Render("  "),
	calendar.LevelMedium: lipgloss.NewStyle().Background(lipgloss.Color("#40c463")).Render("  "),
	calendar.LevelHigh:   lipgloss.NewStyle().Background(lipgloss.Color("#30a14e")).Render("  "),
	calendar.LevelMax:    lipgloss.NewStyle().Background(lipgloss.Color("#216e39")).Render("  "),
}

// Padding cells get no background at all, distinct from a zero-commit day.
const blankCell = "  "

var weekdayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Heatmap writes the year grid: a month-number header, then one line per
// weekday (Sun..Sat) of 2-wide cells, a `|` where a month boundary falls
// between weeks and a blank line between weekday rows.
func Heatmap(w io.Writer, rg calendar.RenderGrid) error {
	var b strings.Builder

	// Month header, aligned past the weekday label column.
	b.WriteString("    ")
	for i, m := range rg.Labels {
		if m == 0 {
			b.WriteString("  ")
		} else {
			fmt.Fprintf(&b, "%-2d", int(m))
		}
		writeGap(&b, rg.Separators, i)
	}
	b.WriteString("\n")

	for weekday := 0; weekday < 7; weekday++ {
		fmt.Fprintf(&b, "%-4s", weekdayNames[weekday])
		for i, week := range rg.Weeks {
			cell := week[weekday]
			if cell.InYear {
				b.WriteString(levelCells[cell.Level])
			} else {
				b.WriteString(blankCell)
			}
			writeGap(&b, rg.Separators, i)
		}
		b.WriteString("\n")
		// Gap line keeps the cells roughly square.
		b.WriteString("\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeGap writes the inter-week character after column i: a month
// separator or a plain space, nothing after the last column.
func writeGap(b *strings.Builder, separators []bool, i int) {
	if i >= len(separators) {
		return
	}
	if separators[i] {
		b.WriteString("|")
	} else {
		b.WriteString(" ")
	}
}
