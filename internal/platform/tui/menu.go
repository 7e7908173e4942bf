package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

// MenuItem is one selectable entry.
type MenuItem struct {
	ID     string
	Title  string
	Detail string
	Color  string
	Locked bool
	Hint   string // How to unlock a locked item
}

// MenuModel is a vertical list with a cursor. Locked items can be focused
// but not selected.
type MenuModel struct {
	Title    string
	Subtitle string
	items    []MenuItem
	cursor   int
}

// NewMenuModel creates a menu over items.
func NewMenuModel(title, subtitle string, items []MenuItem) MenuModel {
	return MenuModel{Title: title, Subtitle: subtitle, items: items}
}

// Move shifts the cursor by delta, clamped to the list.
func (m *MenuModel) Move(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor > len(m.items)-1 {
		m.cursor = len(m.items) - 1
	}
}

// Current returns the focused item.
func (m MenuModel) Current() (MenuItem, bool) {
	if len(m.items) == 0 {
		return MenuItem{}, false
	}
	return m.items[m.cursor], true
}

// Items returns the menu entries.
func (m MenuModel) Items() []MenuItem {
	return m.items
}

// View renders the menu centered in width.
func (m MenuModel) View(width int) string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render(m.Title), width))
	b.WriteString("\n\n")
	if m.Subtitle != "" {
		b.WriteString(centerText(dimStyle.Render(m.Subtitle), width))
		b.WriteString("\n\n")
	}

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}

		style := lipgloss.NewStyle()
		if item.Color != "" {
			style = style.Foreground(lipgloss.Color(item.Color))
		}
		if i == m.cursor {
			style = style.Bold(true)
		}

		line := cursor + item.Title
		if item.Locked {
			line += "  [locked]"
			style = dimStyle
		}
		if item.Detail != "" {
			line += "  " + item.Detail
		}
		b.WriteString(centerText(style.Render(line), width))
		b.WriteString("\n")
	}

	if cur, ok := m.Current(); ok && cur.Locked && cur.Hint != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render("To unlock: "+cur.Hint), width))
		b.WriteString("\n")
	}
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// difficultyMenu lists the difficulties with their lock state.
func difficultyMenu(store *progress.Store) MenuModel {
	items := make([]MenuItem, 0, len(catalog.Difficulties))
	for _, d := range catalog.Difficulties {
		info := catalog.InfoForDifficulty(d)
		items = append(items, MenuItem{
			ID:     string(d),
			Title:  d.Title(),
			Detail: fmt.Sprintf("ages %d-%d", info.MinAge, info.MaxAge),
			Color:  info.Color,
			Locked: !store.IsDifficultyUnlocked(d),
			Hint:   unlock.Requirement(unlock.Unlock{Category: unlock.CategoryDifficulty, Name: string(d)}),
		})
	}
	subtitle := fmt.Sprintf("Coins %d   Stars %d", store.Coins(), store.Stars())
	return NewMenuModel("K I D S Q U I D S", subtitle, items)
}

// modeMenu lists the modes of a difficulty with the player's standing.
func modeMenu(store *progress.Store, d catalog.Difficulty) MenuModel {
	items := make([]MenuItem, 0, len(catalog.Modes))
	for _, m := range catalog.Modes {
		info := catalog.InfoForMode(m)
		p := store.LevelProgress(d, m)
		items = append(items, MenuItem{
			ID:     string(m),
			Title:  m.Title(),
			Detail: fmt.Sprintf("level %d  stars %d  best %d", p.Level, p.Stars, p.BestScore),
			Color:  info.Color,
			Locked: !store.IsModeUnlocked(m),
			Hint:   unlock.Requirement(unlock.Unlock{Category: unlock.CategoryMode, Name: string(m)}),
		})
	}
	return NewMenuModel(d.Title(), "Pick a game", items)
}

// themeMenu lists the themes; the current one is marked.
func themeMenu(store *progress.Store) MenuModel {
	current := store.Theme()
	items := make([]MenuItem, 0, len(catalog.Themes))
	for _, t := range catalog.Themes {
		pal := catalog.PaletteFor(t)
		detail := ""
		if t == current {
			detail = "(current)"
		}
		items = append(items, MenuItem{
			ID:     string(t),
			Title:  t.String(),
			Detail: detail,
			Color:  pal.Accent,
			Locked: !store.IsThemeUnlocked(t),
			Hint:   unlock.Requirement(unlock.Unlock{Category: unlock.CategoryTheme, Name: string(t)}),
		})
	}
	return NewMenuModel("Themes", fmt.Sprintf("Coins %d", store.Coins()), items)
}
