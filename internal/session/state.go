package session

// State is the lifecycle state of a controller.
type State int

const (
	StateIdle        State = iota // No level running
	StateConfiguring              // Setting up a level
	StateActive                   // Playing
	StatePaused                   // Playing, time stopped
	StateEnding                   // Level over, celebrating or consoling
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfiguring:
		return "configuring"
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateEnding:
		return "ending"
	default:
		return "unknown"
	}
}
