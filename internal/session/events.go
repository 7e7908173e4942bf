package session

import (
	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/entity"
	"github.com/vovakirdan/kidsquids/internal/unlock"
)

// EventKind identifies presentation feedback emitted by the controller.
type EventKind int

const (
	EventLevelStart    EventKind = iota // A level began
	EventSpawn                          // A shape appeared
	EventPop                            // A shape was hit and scored
	EventExpire                         // A shape timed out
	EventBounce                         // First click of a double click
	EventPickUp                         // A drag started
	EventMatch                          // A shape was dropped on its target
	EventMiss                           // A rejected drop or a lost level
	EventFeedback                       // Praise word to show
	EventTick                           // Countdown second elapsed
	EventLevelComplete                  // Level won
	EventTimeUp                         // Countdown reached zero
	EventUnlock                         // Content unlocked by this level
	EventResultReady                    // Result() is available
	EventPaused
	EventResumed
	EventExited
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventLevelStart:
		return "level_start"
	case EventSpawn:
		return "spawn"
	case EventPop:
		return "pop"
	case EventExpire:
		return "expire"
	case EventBounce:
		return "bounce"
	case EventPickUp:
		return "pick_up"
	case EventMatch:
		return "match"
	case EventMiss:
		return "miss"
	case EventFeedback:
		return "feedback"
	case EventTick:
		return "tick"
	case EventLevelComplete:
		return "level_complete"
	case EventTimeUp:
		return "time_up"
	case EventUnlock:
		return "unlock"
	case EventResultReady:
		return "result_ready"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Feedback words, as keys the presentation layer translates.
const (
	FeedbackGreat    = "great"
	FeedbackAwesome  = "awesome"
	FeedbackPerfect  = "perfect"
	FeedbackWellDone = "wellDone"
	FeedbackAmazing  = "amazing"
)

var feedbackWords = []string{FeedbackGreat, FeedbackAwesome, FeedbackPerfect, FeedbackWellDone, FeedbackAmazing}

// Event is one piece of feedback for the presentation layer.
type Event struct {
	Kind    EventKind
	ShapeID entity.ID
	Pos     core.Vec
	Score   int    // Score after the event
	Word    string // EventFeedback
	Seconds int    // EventTick: seconds remaining
	Unlock  unlock.Unlock
}
