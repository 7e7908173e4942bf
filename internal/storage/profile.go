package storage

import (
	"github.com/vovakirdan/kidsquids/internal/progress"
	"github.com/vovakirdan/kidsquids/internal/session"
)

// Profile is one player's namespace in the store. It backs the progress
// store and records the player's attempts.
type Profile struct {
	store *Store
	name  string
}

// Profile returns the namespace for a player.
func (s *Store) Profile(name string) *Profile {
	return &Profile{store: s, name: name}
}

// Name returns the profile name.
func (p *Profile) Name() string {
	return p.name
}

// Get implements progress.KV.
func (p *Profile) Get(key string) (string, bool, error) {
	return p.store.GetValue(p.name, key)
}

// Set implements progress.KV.
func (p *Profile) Set(key, value string) error {
	return p.store.SetValue(p.name, key, value)
}

// RecordAttempt implements session.AttemptRecorder.
// This adapter lets the session record attempts without a storage dependency.
func (p *Profile) RecordAttempt(data session.AttemptData) error {
	_, err := p.store.SaveAttempt(Attempt{
		Profile:    p.name,
		SessionID:  data.SessionID,
		Mode:       data.Mode,
		Difficulty: data.Difficulty,
		Level:      data.Level,
		Score:      data.Score,
		Stars:      data.Stars,
		Coins:      data.Coins,
		Success:    data.Success,
		Duration:   data.Duration,
	})
	return err
}

var (
	_ progress.KV             = (*Profile)(nil)
	_ session.AttemptRecorder = (*Profile)(nil)
)
