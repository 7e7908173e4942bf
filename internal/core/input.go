package core

// Gesture is the kind of pointer interaction.
type Gesture int

const (
	GestureMove  Gesture = iota // Pointer moved (with or without a button held)
	GestureDown                 // Button pressed
	GestureUp                   // Button released
	GestureClick                // Press and release on the same spot
)

// String returns a human-readable name for the gesture.
func (g Gesture) String() string {
	switch g {
	case GestureMove:
		return "move"
	case GestureDown:
		return "down"
	case GestureUp:
		return "up"
	case GestureClick:
		return "click"
	default:
		return "unknown"
	}
}

// PointerEvent is a mouse or touch event already translated into canvas
// coordinates by the platform layer.
type PointerEvent struct {
	Gesture Gesture
	Pos     Vec
}

// Move builds a move event at (x, y).
func Move(x, y float64) PointerEvent {
	return PointerEvent{Gesture: GestureMove, Pos: V(x, y)}
}

// Down builds a press event at (x, y).
func Down(x, y float64) PointerEvent {
	return PointerEvent{Gesture: GestureDown, Pos: V(x, y)}
}

// Up builds a release event at (x, y).
func Up(x, y float64) PointerEvent {
	return PointerEvent{Gesture: GestureUp, Pos: V(x, y)}
}

// Click builds a click event at (x, y).
func Click(x, y float64) PointerEvent {
	return PointerEvent{Gesture: GestureClick, Pos: V(x, y)}
}

// ClickTracker synthesizes click gestures from press/release pairs, the way
// a browser fires click after mouseup on the same element.
type ClickTracker struct {
	pressed  bool
	pressPos Vec
	slop     float64
}

// NewClickTracker returns a tracker that accepts releases within slop of
// the press position as clicks.
func NewClickTracker(slop float64) *ClickTracker {
	return &ClickTracker{slop: slop}
}

// Feed consumes a raw event and returns the events to deliver: the event
// itself, followed by a click when a release completes one.
func (c *ClickTracker) Feed(ev PointerEvent) []PointerEvent {
	out := []PointerEvent{ev}
	switch ev.Gesture {
	case GestureDown:
		c.pressed = true
		c.pressPos = ev.Pos
	case GestureUp:
		if c.pressed && Distance(c.pressPos, ev.Pos) <= c.slop {
			out = append(out, PointerEvent{Gesture: GestureClick, Pos: ev.Pos})
		}
		c.pressed = false
	}
	return out
}
