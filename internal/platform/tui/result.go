package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kidsquids/internal/session"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

// starLine renders earned and missing stars.
func starLine(stars int) string {
	return strings.Repeat("★", stars) + strings.Repeat("☆", 3-stars)
}

// resultView renders the end-of-level screen.
func resultView(res session.Result, accent string, width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	starStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#F7DC6F"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	title := "Great job!"
	if !res.Success {
		title = "Time's up!"
	}
	b.WriteString("\n\n")
	b.WriteString(centerText(titleStyle.Render(title), width))
	b.WriteString("\n\n")

	if res.Success {
		b.WriteString(centerText(starStyle.Render(starLine(res.Stars)), width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(fmt.Sprintf("Score %d / %d", res.Score, res.MaxScore), width))
	b.WriteString("\n")
	if res.Coins > 0 {
		b.WriteString(centerText(fmt.Sprintf("+%d coins", res.Coins), width))
		b.WriteString("\n")
	}
	if res.NewRecord {
		b.WriteString(centerText(titleStyle.Render("New record!"), width))
		b.WriteString("\n")
	}

	if len(res.Unlocks) > 0 {
		b.WriteString("\n")
		b.WriteString(centerText(titleStyle.Render("Unlocked"), width))
		b.WriteString("\n")
		for _, u := range res.Unlocks {
			b.WriteString(centerText(unlockLabel(u), width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	next := "enter: next level"
	if !res.Success {
		next = "enter: try again"
	}
	b.WriteString(centerText(dimStyle.Render(next+"   esc: menu   q: quit"), width))
	b.WriteString("\n")
	return b.String()
}

func unlockLabel(u unlock.Unlock) string {
	switch u.Category {
	case unlock.CategoryDifficulty:
		return "New difficulty: " + u.Name
	case unlock.CategoryMode:
		return "New game: " + u.Name
	case unlock.CategoryTheme:
		return "New theme: " + u.Name
	}
	return u.String()
}
