// Package progress keeps a player's coins, stars, level progress, unlocks
// and statistics, persisted as one JSON record in a key/value backend.
package progress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

// ProgressKey is the key the record is stored under.
const ProgressKey = "kidsquids_progress"

// ErrThemeLocked is returned when selecting a theme that is not unlocked.
var ErrThemeLocked = errors.New("progress: theme is locked")

// Store is the progress of one player. Every mutation is saved right away;
// save failures are logged and otherwise ignored.
type Store struct {
	mu      sync.Mutex
	kv      KV
	logger  *log.Logger
	data    Data
	pending []unlock.Unlock
}

// Open loads the record from kv. A missing or unreadable record yields the
// defaults.
func Open(kv KV, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{kv: kv, logger: logger, data: DefaultData()}

	raw, ok, err := kv.Get(ProgressKey)
	switch {
	case err != nil:
		logger.Warn("failed to load progress, using defaults", "error", err)
	case ok:
		data, err := Decode([]byte(raw))
		if err != nil {
			logger.Warn("failed to parse progress, using defaults", "error", err)
		}
		s.data = data
	}
	return s
}

func (s *Store) save() {
	raw, err := s.data.Encode()
	if err == nil {
		err = s.kv.Set(ProgressKey, string(raw))
	}
	if err != nil {
		s.logger.Warn("failed to save progress", "error", err)
	}
}

// checkUnlocks applies newly crossed thresholds and queues them.
func (s *Store) checkUnlocks() {
	found := unlock.Resolve(s.unlockState())
	if len(found) == 0 {
		return
	}
	for _, u := range found {
		switch u.Category {
		case unlock.CategoryDifficulty:
			s.data.Difficulties[catalog.Difficulty(u.Name)] = true
		case unlock.CategoryMode:
			s.data.Modes[catalog.Mode(u.Name)] = true
		case unlock.CategoryTheme:
			s.data.Themes[catalog.Theme(u.Name)] = true
		}
		s.logger.Info("unlocked", "category", u.Category, "name", u.Name)
	}
	s.pending = append(s.pending, found...)
	s.save()
}

func (s *Store) unlockState() unlock.State {
	st := unlock.State{
		Coins:        s.data.TotalCoins,
		Stars:        make(map[catalog.Difficulty]int),
		Levels:       make(map[catalog.Difficulty]map[catalog.Mode]int),
		Difficulties: s.data.Difficulties,
		Modes:        s.data.Modes,
		Themes:       s.data.Themes,
	}
	for diff, byMode := range s.data.Progress {
		st.Levels[diff] = make(map[catalog.Mode]int, len(byMode))
		for m, p := range byMode {
			st.Stars[diff] += p.Stars
			st.Levels[diff][m] = p.Level
		}
	}
	return st
}

// Coins returns the coin total.
func (s *Store) Coins() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.TotalCoins
}

// AddCoins adds n coins and returns the new total.
func (s *Store) AddCoins(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.TotalCoins += n
	s.save()
	s.checkUnlocks()
	return s.data.TotalCoins
}

// Stars returns the star total.
func (s *Store) Stars() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.TotalStars
}

// AddStars adds n stars and returns the new total.
func (s *Store) AddStars(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.TotalStars += n
	s.save()
	s.checkUnlocks()
	return s.data.TotalStars
}

// LevelProgress returns the standing in one difficulty and mode.
func (s *Store) LevelProgress(d catalog.Difficulty, m catalog.Mode) LevelProgress {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p, ok := s.data.Progress[d][m]; ok {
		return p
	}
	return LevelProgress{Level: 1}
}

// UpdateLevelProgress records a finished level. The level and best score
// only ever rise; stars accumulate.
func (s *Store) UpdateLevelProgress(d catalog.Difficulty, m catalog.Mode, level, stars, score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	byMode, ok := s.data.Progress[d]
	if !ok {
		byMode = make(map[catalog.Mode]LevelProgress)
		s.data.Progress[d] = byMode
	}
	p, ok := byMode[m]
	if !ok {
		p = LevelProgress{Level: 1}
	}
	if level > p.Level {
		p.Level = level
	}
	if stars > 0 {
		p.Stars += stars
	}
	if score > p.BestScore {
		p.BestScore = score
	}
	byMode[m] = p

	s.save()
	s.checkUnlocks()
}

// IncrementStat adds amount to a stat. Unknown names are ignored.
func (s *Store) IncrementStat(name string, amount int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.Stats[name]; !ok {
		return
	}
	s.data.Stats[name] += amount
	s.save()
}

// Stats returns a copy of the statistics.
func (s *Store) Stats() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int, len(s.data.Stats))
	for k, v := range s.data.Stats {
		out[k] = v
	}
	return out
}

// IsDifficultyUnlocked reports whether a difficulty can be played.
func (s *Store) IsDifficultyUnlocked(d catalog.Difficulty) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Difficulties[d]
}

// IsModeUnlocked reports whether a mode can be played.
func (s *Store) IsModeUnlocked(m catalog.Mode) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Modes[m]
}

// IsThemeUnlocked reports whether a theme can be selected.
func (s *Store) IsThemeUnlocked(t catalog.Theme) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Themes[t]
}

// Theme returns the selected theme.
func (s *Store) Theme() catalog.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.CurrentTheme
}

// SetTheme selects an unlocked theme.
func (s *Store) SetTheme(t catalog.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.data.Themes[t] {
		return fmt.Errorf("%w: %s", ErrThemeLocked, t)
	}
	s.data.CurrentTheme = t
	s.save()
	return nil
}

// DrainUnlocks returns the unlocks queued since the last call and clears
// the queue.
func (s *Store) DrainUnlocks() []unlock.Unlock {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.pending
	s.pending = nil
	return out
}

// Data returns a copy of the whole record.
func (s *Store) Data() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Reset replaces the record with the defaults.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = DefaultData()
	s.pending = nil
	s.save()
}
