package session

import (
	"time"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

// Result describes a finished level attempt.
type Result struct {
	SessionID  string
	Mode       catalog.Mode
	Difficulty catalog.Difficulty
	Level      int
	Success    bool
	Score      int
	MaxScore   int
	Stars      int
	Coins      int
	NewRecord  bool
	Unlocks    []unlock.Unlock
	Duration   time.Duration
}

// AttemptData is what the controller hands to an AttemptRecorder.
type AttemptData struct {
	SessionID  string
	Mode       catalog.Mode
	Difficulty catalog.Difficulty
	Level      int
	Score      int
	Stars      int
	Coins      int
	Success    bool
	Duration   time.Duration
}

// AttemptRecorder persists finished attempts.
// Implemented by storage.Profile; defined here to avoid an import cycle.
type AttemptRecorder interface {
	RecordAttempt(data AttemptData) error
}
