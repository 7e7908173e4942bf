package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/progress"
)

// Progress table layout constants
const (
	progressTableHeight = 12
	progressHeaderRows  = 8
)

// newProgressTable builds the per-level progress table of a player.
func newProgressTable(store *progress.Store, height int) table.Model {
	columns := []table.Column{
		{Title: "Difficulty", Width: 11},
		{Title: "Game", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Stars", Width: 6},
		{Title: "Best", Width: 6},
		{Title: "", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(progressRows(store)),
		table.WithFocused(true),
		table.WithHeight(min(progressTableHeight, max(height-progressHeaderRows, 3))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// progressRows lists every (difficulty, mode) in catalog order.
func progressRows(store *progress.Store) []table.Row {
	rows := make([]table.Row, 0, len(catalog.Difficulties)*len(catalog.Modes))
	for _, d := range catalog.Difficulties {
		for _, m := range catalog.Modes {
			p := store.LevelProgress(d, m)
			lock := ""
			if !store.IsDifficultyUnlocked(d) || !store.IsModeUnlocked(m) {
				lock = "locked"
			}
			rows = append(rows, table.Row{
				d.Title(),
				m.Title(),
				fmt.Sprintf("%d", p.Level),
				fmt.Sprintf("%d", p.Stars),
				fmt.Sprintf("%d", p.BestScore),
				lock,
			})
		}
	}
	return rows
}

// statsLine summarizes the play statistics.
func statsLine(store *progress.Store) string {
	stats := store.Stats()
	parts := make([]string, 0, len(progress.StatNames))
	for _, name := range progress.StatNames {
		parts = append(parts, fmt.Sprintf("%s %d", name, stats[name]))
	}
	return strings.Join(parts, "  ")
}

// progressView renders the progress screen around the table.
func progressView(store *progress.Store, t table.Model, profile string, width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	title := "PROGRESS"
	if profile != "" {
		title += " - " + profile
	}
	b.WriteString(centerText(titleStyle.Render(title), width))
	b.WriteString("\n\n")
	b.WriteString(centerText(fmt.Sprintf("Coins %d   Stars %d   Theme %s", store.Coins(), store.Stars(), store.Theme()), width))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, boxStyle.Render(t.View())))
	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render(statsLine(store)), width))
	b.WriteString("\n")
	return b.String()
}
