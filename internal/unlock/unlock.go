// Package unlock decides which content a player's progress opens up.
package unlock

import "github.com/vovakirdan/kidsquids/internal/catalog"

// Category groups unlockable content.
type Category string

const (
	CategoryDifficulty Category = "difficulty"
	CategoryMode       Category = "mode"
	CategoryTheme      Category = "theme"
)

// Unlock is one newly opened piece of content.
type Unlock struct {
	Category Category
	Name     string
}

// String returns "category:name".
func (u Unlock) String() string {
	return string(u.Category) + ":" + u.Name
}

// State is the view of a player's progress the resolver reads.
type State struct {
	Coins  int
	Stars  map[catalog.Difficulty]int                  // Stars summed over all modes
	Levels map[catalog.Difficulty]map[catalog.Mode]int // Highest reached level

	Difficulties map[catalog.Difficulty]bool
	Modes        map[catalog.Mode]bool
	Themes       map[catalog.Theme]bool
}

func (s State) unlocked(u Unlock) bool {
	switch u.Category {
	case CategoryDifficulty:
		return s.Difficulties[catalog.Difficulty(u.Name)]
	case CategoryMode:
		return s.Modes[catalog.Mode(u.Name)]
	case CategoryTheme:
		return s.Themes[catalog.Theme(u.Name)]
	}
	return false
}

type rule struct {
	unlock Unlock
	met    func(State) bool
	hint   string
}

func starsIn(d catalog.Difficulty, n int) func(State) bool {
	return func(s State) bool { return s.Stars[d] >= n }
}

func starterLevel(m catalog.Mode, n int) func(State) bool {
	return func(s State) bool { return s.Levels[catalog.DifficultyStarter][m] >= n }
}

func coins(n int) func(State) bool {
	return func(s State) bool { return s.Coins >= n }
}

// Thresholds, in the order unlocks are reported.
var rules = []rule{
	{Unlock{CategoryDifficulty, string(catalog.DifficultyExplorer)}, starsIn(catalog.DifficultyStarter, 10), "earn 10 stars in Starter"},
	{Unlock{CategoryDifficulty, string(catalog.DifficultyChampion)}, starsIn(catalog.DifficultyExplorer, 20), "earn 20 stars in Explorer"},
	{Unlock{CategoryMode, string(catalog.ModeCatch)}, starterLevel(catalog.ModeClick, 3), "reach Starter level 3 in Click"},
	{Unlock{CategoryMode, string(catalog.ModeDrag)}, starterLevel(catalog.ModeCatch, 3), "reach Starter level 3 in Catch"},
	{Unlock{CategoryMode, string(catalog.ModeDouble)}, starterLevel(catalog.ModeDrag, 3), "reach Starter level 3 in Drag"},
	{Unlock{CategoryTheme, string(catalog.ThemePastel)}, coins(50), "collect 50 coins"},
	{Unlock{CategoryTheme, string(catalog.ThemeNeon)}, coins(150), "collect 150 coins"},
	{Unlock{CategoryTheme, string(catalog.ThemeRainbow)}, coins(300), "collect 300 coins"},
}

// Resolve returns the content whose threshold s meets but which s does not
// have unlocked yet. It never mutates s; applying the result is the
// caller's job, which keeps repeated calls from re-reporting an unlock.
func Resolve(s State) []Unlock {
	var out []Unlock
	for _, r := range rules {
		if !s.unlocked(r.unlock) && r.met(s) {
			out = append(out, r.unlock)
		}
	}
	return out
}

// Requirement describes what opens u, or returns "" for content that is
// always available.
func Requirement(u Unlock) string {
	for _, r := range rules {
		if r.unlock == u {
			return r.hint
		}
	}
	return ""
}
