// Package catalog holds the static game content: modes, difficulties,
// themes and the per-level parameter table.
package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// ErrNotFound is returned when a (mode, difficulty) pair has no levels.
	ErrNotFound = errors.New("catalog: level table entry not found")

	ErrUnknownMode       = errors.New("catalog: unknown mode")
	ErrUnknownDifficulty = errors.New("catalog: unknown difficulty")
	ErrUnknownTheme      = errors.New("catalog: unknown theme")
)

var titler = cases.Title(language.English)

// Mode defines the input gesture and win condition of a level.
type Mode string

const (
	ModeClick  Mode = "click"
	ModeCatch  Mode = "catch"
	ModeDrag   Mode = "drag"
	ModeDouble Mode = "double"
)

// Modes lists all modes in unlock order.
var Modes = []Mode{ModeClick, ModeCatch, ModeDrag, ModeDouble}

// ParseMode converts a string into a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// String returns the mode identifier.
func (m Mode) String() string {
	return string(m)
}

// Title returns the display name.
func (m Mode) Title() string {
	return titler.String(string(m))
}

// TimeLimited reports whether the mode runs against a countdown.
func (m Mode) TimeLimited() bool {
	return m == ModeCatch || m == ModeDrag
}

// Difficulty gates level parameter curves and unlock progression.
type Difficulty string

const (
	DifficultyStarter  Difficulty = "starter"
	DifficultyExplorer Difficulty = "explorer"
	DifficultyChampion Difficulty = "champion"
)

// Difficulties lists all difficulties from easiest to hardest.
var Difficulties = []Difficulty{DifficultyStarter, DifficultyExplorer, DifficultyChampion}

// ParseDifficulty converts a string into a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if string(d) == s {
			return d, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDifficulty, s)
}

// String returns the difficulty identifier.
func (d Difficulty) String() string {
	return string(d)
}

// Title returns the display name.
func (d Difficulty) Title() string {
	return titler.String(string(d))
}
