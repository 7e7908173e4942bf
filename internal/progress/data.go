package progress

import (
	"encoding/json"
	"fmt"

	"github.com/vovakirdan/kidsquids/internal/catalog"
)

// Version of the persisted record.
const Version = "1.0.0"

// Stat names.
const (
	StatTotalClicks      = "totalClicks"
	StatTotalGamesPlayed = "totalGamesPlayed"
	StatTotalTimePlayed  = "totalTimePlayed" // seconds
	StatShapesClicked    = "shapesClicked"
	StatShapesCaught     = "shapesCaught"
	StatShapesDropped    = "shapesDropped"
	StatDoubleClicks     = "doubleClicks"
)

// StatNames lists the known stats in display order.
var StatNames = []string{
	StatTotalClicks,
	StatTotalGamesPlayed,
	StatTotalTimePlayed,
	StatShapesClicked,
	StatShapesCaught,
	StatShapesDropped,
	StatDoubleClicks,
}

// LevelProgress is a player's standing in one (difficulty, mode).
type LevelProgress struct {
	Level     int `json:"level"`     // Highest reached level
	Stars     int `json:"stars"`     // Stars earned in total
	BestScore int `json:"bestScore"` // Highest single-attempt score
}

// Data is the persisted progress record.
type Data struct {
	Version      string                                                `json:"version"`
	TotalCoins   int                                                   `json:"totalCoins"`
	TotalStars   int                                                   `json:"totalStars"`
	Difficulties map[catalog.Difficulty]bool                           `json:"difficulties"`
	Modes        map[catalog.Mode]bool                                 `json:"modes"`
	Themes       map[catalog.Theme]bool                                `json:"themes"`
	CurrentTheme catalog.Theme                                         `json:"currentTheme"`
	Progress     map[catalog.Difficulty]map[catalog.Mode]LevelProgress `json:"progress"`
	Stats        map[string]int                                        `json:"stats"`
}

// DefaultData returns the record of a new player.
func DefaultData() Data {
	d := Data{
		Version:      Version,
		Difficulties: make(map[catalog.Difficulty]bool),
		Modes:        make(map[catalog.Mode]bool),
		Themes:       make(map[catalog.Theme]bool),
		CurrentTheme: catalog.ThemeDefault,
		Progress:     make(map[catalog.Difficulty]map[catalog.Mode]LevelProgress),
		Stats:        make(map[string]int),
	}
	for _, diff := range catalog.Difficulties {
		d.Difficulties[diff] = diff == catalog.DifficultyStarter
		d.Progress[diff] = make(map[catalog.Mode]LevelProgress)
		for _, m := range catalog.Modes {
			d.Progress[diff][m] = LevelProgress{Level: 1}
		}
	}
	for _, m := range catalog.Modes {
		d.Modes[m] = m == catalog.ModeClick
	}
	for _, t := range catalog.Themes {
		d.Themes[t] = t == catalog.ThemeDefault
	}
	for _, name := range StatNames {
		d.Stats[name] = 0
	}
	return d
}

// Clone returns a deep copy.
func (d Data) Clone() Data {
	c := d
	c.Difficulties = make(map[catalog.Difficulty]bool, len(d.Difficulties))
	for k, v := range d.Difficulties {
		c.Difficulties[k] = v
	}
	c.Modes = make(map[catalog.Mode]bool, len(d.Modes))
	for k, v := range d.Modes {
		c.Modes[k] = v
	}
	c.Themes = make(map[catalog.Theme]bool, len(d.Themes))
	for k, v := range d.Themes {
		c.Themes[k] = v
	}
	c.Progress = make(map[catalog.Difficulty]map[catalog.Mode]LevelProgress, len(d.Progress))
	for diff, byMode := range d.Progress {
		c.Progress[diff] = make(map[catalog.Mode]LevelProgress, len(byMode))
		for m, p := range byMode {
			c.Progress[diff][m] = p
		}
	}
	c.Stats = make(map[string]int, len(d.Stats))
	for k, v := range d.Stats {
		c.Stats[k] = v
	}
	return c
}

// savedRecord mirrors Data with optional fields so missing keys can be told
// apart from zero values while merging.
type savedRecord struct {
	Version      *string                          `json:"version"`
	TotalCoins   *int                             `json:"totalCoins"`
	TotalStars   *int                             `json:"totalStars"`
	Difficulties map[string]bool                  `json:"difficulties"`
	Modes        map[string]bool                  `json:"modes"`
	Themes       map[string]bool                  `json:"themes"`
	CurrentTheme *string                          `json:"currentTheme"`
	Progress     map[string]map[string]savedLevel `json:"progress"`
	Stats        map[string]int                   `json:"stats"`
}

type savedLevel struct {
	Level     *int `json:"level"`
	Stars     *int `json:"stars"`
	BestScore *int `json:"bestScore"`
}

// Decode parses a saved record and merges it over the defaults, so fields
// added since the record was written are backfilled. Unknown modes,
// difficulties and themes are dropped.
func Decode(raw []byte) (Data, error) {
	var saved savedRecord
	if err := json.Unmarshal(raw, &saved); err != nil {
		return DefaultData(), fmt.Errorf("progress: decode record: %w", err)
	}

	d := DefaultData()
	if saved.Version != nil {
		d.Version = *saved.Version
	}
	if saved.TotalCoins != nil {
		d.TotalCoins = *saved.TotalCoins
	}
	if saved.TotalStars != nil {
		d.TotalStars = *saved.TotalStars
	}
	for name, v := range saved.Difficulties {
		if diff, err := catalog.ParseDifficulty(name); err == nil {
			d.Difficulties[diff] = v
		}
	}
	for name, v := range saved.Modes {
		if m, err := catalog.ParseMode(name); err == nil {
			d.Modes[m] = v
		}
	}
	for name, v := range saved.Themes {
		if t, err := catalog.ParseTheme(name); err == nil {
			d.Themes[t] = v
		}
	}
	if saved.CurrentTheme != nil {
		d.CurrentTheme = catalog.Theme(*saved.CurrentTheme)
	}
	for diffName, byMode := range saved.Progress {
		diff, err := catalog.ParseDifficulty(diffName)
		if err != nil {
			continue
		}
		for modeName, lvl := range byMode {
			m, err := catalog.ParseMode(modeName)
			if err != nil {
				continue
			}
			p := d.Progress[diff][m]
			if lvl.Level != nil {
				p.Level = *lvl.Level
			}
			if lvl.Stars != nil {
				p.Stars = *lvl.Stars
			}
			if lvl.BestScore != nil {
				p.BestScore = *lvl.BestScore
			}
			d.Progress[diff][m] = p
		}
	}
	for name, v := range saved.Stats {
		if _, known := d.Stats[name]; known {
			d.Stats[name] = v
		}
	}

	d.normalize()
	return d, nil
}

// Encode serializes the record.
func (d Data) Encode() ([]byte, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("progress: encode record: %w", err)
	}
	return raw, nil
}

// normalize repairs values a hand-edited or corrupted record may carry.
func (d *Data) normalize() {
	if d.TotalCoins < 0 {
		d.TotalCoins = 0
	}
	if d.TotalStars < 0 {
		d.TotalStars = 0
	}

	d.Difficulties[catalog.DifficultyStarter] = true
	d.Modes[catalog.ModeClick] = true
	d.Themes[catalog.ThemeDefault] = true

	for diff, byMode := range d.Progress {
		for m, p := range byMode {
			if p.Level < 1 {
				p.Level = 1
			}
			if p.Stars < 0 {
				p.Stars = 0
			}
			if p.BestScore < 0 {
				p.BestScore = 0
			}
			d.Progress[diff][m] = p
		}
	}

	if !d.Themes[d.CurrentTheme] {
		d.CurrentTheme = catalog.ThemeDefault
	}
}
