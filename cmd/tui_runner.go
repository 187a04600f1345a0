package cmd

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fchimpan/git-heatmap/internal/calendar"
	"github.com/fchimpan/git-heatmap/internal/tui"
)

func defaultRunTUI(title string, rg calendar.RenderGrid) error {
	p := tea.NewProgram(
		tui.NewModel(title, rg),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
