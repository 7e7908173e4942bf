package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var defaultLevelsYAML []byte

// ErrInvalidTable is returned when a level table fails validation.
var ErrInvalidTable = errors.New("catalog: invalid level table")

// LevelConfig holds the parameters of one level. Values are immutable once
// looked up.
type LevelConfig struct {
	Mode       Mode
	Difficulty Difficulty
	Level      int // Requested level number (may exceed the table length)

	Shapes       int           // Shapes on screen (catch) or per level (click/double)
	Pairs        int           // Shape/target pairs (drag)
	Size         float64       // Shape radius in canvas pixels
	TargetSize   float64       // Target radius (drag)
	TimePerShape time.Duration // Auto-expire delay for an unclicked shape (click/double)
	Speed        float64       // Movement speed in pixels per reference frame (catch)
	Goal         int           // Successful interactions needed to finish
	TimeLimit    int           // Countdown in seconds (catch/drag)
	Coins        int           // Reward on success
}

// MaxScore is the score a perfect run of this level reaches.
func (c LevelConfig) MaxScore() int {
	return c.Goal * PointsFor(c.Mode)
}

// levelEntry is the YAML form of a level.
type levelEntry struct {
	Shapes         int     `yaml:"shapes"`
	Pairs          int     `yaml:"pairs"`
	Size           float64 `yaml:"size"`
	TargetSize     float64 `yaml:"target_size"`
	TimePerShapeMS int     `yaml:"time_per_shape_ms"`
	Speed          float64 `yaml:"speed"`
	Goal           int     `yaml:"goal"`
	TimeLimit      int     `yaml:"time_limit"`
	Coins          int     `yaml:"coins"`
}

// Table is the full level catalog keyed by mode and difficulty.
type Table struct {
	levels map[Mode]map[Difficulty][]LevelConfig
}

var defaultTable = mustParseDefault()

func mustParseDefault() *Table {
	t, err := ParseTable(defaultLevelsYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded level table: %v", err))
	}
	return t
}

// Default returns the embedded level table.
func Default() *Table {
	return defaultTable
}

// ParseTable parses and validates a YAML level table.
func ParseTable(data []byte) (*Table, error) {
	var raw map[string]map[string][]levelEntry
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("catalog: parse level table: %w", err)
	}

	t := &Table{levels: make(map[Mode]map[Difficulty][]LevelConfig)}
	for modeName, byDiff := range raw {
		mode, err := ParseMode(modeName)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
		}
		t.levels[mode] = make(map[Difficulty][]LevelConfig)

		for diffName, entries := range byDiff {
			diff, err := ParseDifficulty(diffName)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidTable, err)
			}
			configs := make([]LevelConfig, len(entries))
			for i, e := range entries {
				cfg := e.toConfig(mode, diff, i+1)
				if err := validateLevel(cfg); err != nil {
					return nil, fmt.Errorf("%w: %s/%s level %d: %v", ErrInvalidTable, mode, diff, i+1, err)
				}
				configs[i] = cfg
			}
			t.levels[mode][diff] = configs
		}
	}

	if err := t.checkComplete(); err != nil {
		return nil, err
	}
	return t, nil
}

func (e levelEntry) toConfig(mode Mode, diff Difficulty, level int) LevelConfig {
	cfg := LevelConfig{
		Mode:         mode,
		Difficulty:   diff,
		Level:        level,
		Shapes:       e.Shapes,
		Pairs:        e.Pairs,
		Size:         e.Size,
		TargetSize:   e.TargetSize,
		TimePerShape: time.Duration(e.TimePerShapeMS) * time.Millisecond,
		Speed:        e.Speed,
		Goal:         e.Goal,
		TimeLimit:    e.TimeLimit,
		Coins:        e.Coins,
	}
	// Drag levels are won by matching every pair
	if mode == ModeDrag && cfg.Goal == 0 {
		cfg.Goal = cfg.Pairs
	}
	return cfg
}

func validateLevel(c LevelConfig) error {
	if c.Size <= 0 {
		return fmt.Errorf("size must be positive")
	}
	if c.Goal < 1 {
		return fmt.Errorf("goal must be at least 1")
	}
	if c.Coins < 0 {
		return fmt.Errorf("coins must not be negative")
	}

	switch c.Mode {
	case ModeClick, ModeDouble:
		if c.TimePerShape <= 0 {
			return fmt.Errorf("time_per_shape_ms must be positive")
		}
	case ModeCatch:
		if c.Shapes < 1 || c.Speed <= 0 || c.TimeLimit <= 0 {
			return fmt.Errorf("catch levels need shapes, speed and time_limit")
		}
	case ModeDrag:
		if c.Pairs < 1 || c.TargetSize <= 0 || c.TimeLimit <= 0 {
			return fmt.Errorf("drag levels need pairs, target_size and time_limit")
		}
	}
	return nil
}

// checkComplete verifies every mode has every difficulty.
func (t *Table) checkComplete() error {
	for _, m := range Modes {
		for _, d := range Difficulties {
			if len(t.levels[m][d]) == 0 {
				return fmt.Errorf("%w: missing %s/%s", ErrInvalidTable, m, d)
			}
		}
	}
	return nil
}

// Lookup returns the configuration for a level. Levels beyond the table
// reuse the last entry; levels below 1 use the first. The returned config
// carries the requested level number.
func (t *Table) Lookup(mode Mode, difficulty Difficulty, level int) (LevelConfig, error) {
	levels := t.levels[mode][difficulty]
	if len(levels) == 0 {
		return LevelConfig{}, fmt.Errorf("%w: %s/%s", ErrNotFound, mode, difficulty)
	}

	index := level - 1
	if index >= len(levels) {
		index = len(levels) - 1
	}
	if index < 0 {
		index = 0
	}

	cfg := levels[index]
	cfg.Level = level
	return cfg, nil
}

// MustLookup is Lookup for validated inputs; a missing entry is a
// configuration defect and panics.
func (t *Table) MustLookup(mode Mode, difficulty Difficulty, level int) LevelConfig {
	cfg, err := t.Lookup(mode, difficulty, level)
	if err != nil {
		panic(err)
	}
	return cfg
}

// MaxLevel returns the number of defined levels for a mode and difficulty.
func (t *Table) MaxLevel(mode Mode, difficulty Difficulty) int {
	if n := len(t.levels[mode][difficulty]); n > 0 {
		return n
	}
	return 5
}

// Levels returns a copy of the defined levels for a mode and difficulty.
func (t *Table) Levels(mode Mode, difficulty Difficulty) []LevelConfig {
	levels := t.levels[mode][difficulty]
	out := make([]LevelConfig, len(levels))
	copy(out, levels)
	return out
}

// LoadTable loads a level table.
// Search order: customPath -> ~/.kidsquids/levels.yaml -> ./configs/levels.yaml -> embedded default
func LoadTable(customPath string) (*Table, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("catalog: read level table %s: %w", customPath, err)
		}
		return ParseTable(data)
	}

	if home, err := os.UserHomeDir(); err == nil {
		if data, err := os.ReadFile(filepath.Join(home, ".kidsquids", "levels.yaml")); err == nil {
			if t, err := ParseTable(data); err == nil {
				return t, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", "levels.yaml")); err == nil {
		if t, err := ParseTable(data); err == nil {
			return t, nil
		}
	}

	return defaultTable, nil
}
