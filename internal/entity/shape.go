package entity

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/kidsquids/internal/core"
)

// Animation constants, per reference frame.
const (
	animationSpeed = 0.1  // Easing factor toward target position and scale
	wobbleSpeed    = 0.1  // Wobble phase advance
	pulseSpeed     = 0.05 // Pulse phase advance
	fadeSpeed      = 0.15 // Alpha lost by a dying shape

	hoverWobble = 3
	shakeWobble = 10
)

// Scale and alpha levels.
const (
	MaxScale    = 1.5
	HoverScale  = 1.15
	LiftScale   = 1.2
	BounceScale = 1.3
	TargetAlpha = 0.3 // Initial alpha of a drag target ghost
)

// Effect timings.
const (
	PopBurst      = 100 * time.Millisecond
	BounceLength  = 150 * time.Millisecond
	ShakeLength   = 300 * time.Millisecond
	BlinkLength   = 100 * time.Millisecond
	minBlinkDelay = 150 // frames
	blinkJitter   = 200 // frames
)

type scaleEffect int

const (
	effectNone scaleEffect = iota
	effectPop
	effectBounce
	effectShrink
)

// Shape is an animated game object. Drag targets are shapes with IsTarget
// set.
type Shape struct {
	ID ID

	Pos      core.Vec // Current center
	Target   core.Vec // Eased-toward center
	Velocity core.Vec // Pixels per reference frame

	Size  float64
	Color string
	Type  ShapeType

	Scale           float64
	TargetScale     float64
	Alpha           float64
	Rotation        float64
	AngularVelocity float64 // Radians per reference frame

	Active     bool // Part of the level
	Dying      bool // Popping or expiring; no longer hit-testable
	Hovered    bool
	Lifted     bool // Being dragged
	Expression Expression

	// Mode flags
	Draggable        bool
	IsTarget         bool
	MatchID          int
	Matched          bool
	NeedsDoubleClick bool
	ClickCount       int

	// Cosmetic state
	Wobble       float64
	WobbleAmount float64
	PulsePhase   float64
	Blinking     bool

	rng        *rand.Rand
	blinkTimer float64 // Frames until the next blink
	blinkLeft  time.Duration
	effect     scaleEffect
	effectLeft time.Duration
	shakeLeft  time.Duration
}

// NewShape creates an active shape at pos. The rng drives cosmetic
// randomness (pulse phase, blink timing); nil gives fixed values.
func NewShape(pos core.Vec, size float64, color string, typ ShapeType, rng *rand.Rand) *Shape {
	s := &Shape{
		Pos:         pos,
		Target:      pos,
		Size:        size,
		Color:       color,
		Type:        typ,
		Scale:       1,
		TargetScale: 1,
		Alpha:       1,
		Active:      true,
		Expression:  Happy,
		rng:         rng,
		blinkTimer:  minBlinkDelay,
	}
	if rng != nil {
		s.PulsePhase = rng.Float64() * 2 * math.Pi
		s.blinkTimer = rng.Float64() * blinkJitter
	}
	return s
}

// NewTarget creates a dimmed drag target ghost.
func NewTarget(pos core.Vec, size float64, color string, typ ShapeType, matchID int, rng *rand.Rand) *Shape {
	s := NewShape(pos, size, color, typ, rng)
	s.IsTarget = true
	s.MatchID = matchID
	s.Alpha = TargetAlpha
	return s
}

// Update advances animation and movement by dt.
func (s *Shape) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	frames := core.Frames(dt)

	s.Wobble += wobbleSpeed * frames
	s.PulsePhase += pulseSpeed * frames

	s.updateEffects(dt)

	// Easing at 0.1 per reference frame, independent of the tick rate
	ease := 1 - math.Pow(1-animationSpeed, frames)
	s.Pos = s.Pos.Add(s.Target.Sub(s.Pos).Scale(ease))
	s.Scale += (s.TargetScale - s.Scale) * ease
	s.Scale = core.ClampF(s.Scale, 0, MaxScale)

	if !s.Velocity.IsZero() {
		step := s.Velocity.Scale(frames)
		s.Pos = s.Pos.Add(step)
		s.Target = s.Target.Add(step)
	}
	s.Rotation += s.AngularVelocity * frames

	if s.Dying && s.effect != effectPop {
		s.Alpha = core.ClampF(s.Alpha-fadeSpeed*frames, 0, 1)
	}

	s.updateBlink(dt, frames)
}

func (s *Shape) updateEffects(dt time.Duration) {
	if s.shakeLeft > 0 {
		s.shakeLeft -= dt
		if s.shakeLeft <= 0 {
			s.shakeLeft = 0
			s.WobbleAmount = 0
		}
	}

	if s.effectLeft > 0 {
		s.effectLeft -= dt
		if s.effectLeft <= 0 {
			s.effectLeft = 0
			switch s.effect {
			case effectPop:
				// Burst over, shrink away
				s.effect = effectShrink
				s.TargetScale = 0
			case effectBounce:
				s.effect = effectNone
			}
		}
	}

	switch {
	case s.effect != effectNone:
	case s.Lifted:
		s.TargetScale = LiftScale
	case s.Hovered:
		s.TargetScale = HoverScale
	default:
		s.TargetScale = 1
	}

	if s.shakeLeft == 0 {
		if s.Hovered && !s.Dying {
			s.WobbleAmount = hoverWobble
		} else {
			s.WobbleAmount = 0
		}
	}
}

func (s *Shape) updateBlink(dt time.Duration, frames float64) {
	if s.blinkLeft > 0 {
		s.blinkLeft -= dt
		if s.blinkLeft <= 0 {
			s.blinkLeft = 0
			s.Blinking = false
		}
	}

	s.blinkTimer -= frames
	if s.blinkTimer <= 0 {
		s.Blinking = true
		s.blinkLeft = BlinkLength
		s.blinkTimer = minBlinkDelay
		if s.rng != nil {
			s.blinkTimer += s.rng.Float64() * blinkJitter
		} else {
			s.blinkTimer += blinkJitter / 2
		}
	}
}

// Hittable reports whether the shape accepts pointer hits.
func (s *Shape) Hittable() bool {
	return s.Active && !s.Dying
}

// HitRadius is the radius used for hit testing. It uses the larger of the
// current and target scale so shapes are clickable while animating in.
func (s *Shape) HitRadius() float64 {
	return s.Size * math.Max(math.Max(s.Scale, s.TargetScale), 0.5)
}

// ContainsPoint reports whether p lies within the hit radius. It ignores
// the hittable state; callers check Hittable.
func (s *Shape) ContainsPoint(p core.Vec) bool {
	return core.Distance(s.Pos, p) <= s.HitRadius()
}

// Pop bursts the shape to MaxScale, then shrinks it to nothing. The shape
// stops being hittable immediately.
func (s *Shape) Pop() {
	s.Dying = true
	s.Hovered = false
	s.Alpha = 1
	s.effect = effectPop
	s.effectLeft = PopBurst
	s.TargetScale = MaxScale
}

// Expire shrinks and fades the shape out.
func (s *Shape) Expire() {
	s.Dying = true
	s.Hovered = false
	s.effect = effectShrink
	s.effectLeft = 0
	s.TargetScale = 0
}

// Bounce briefly grows the shape as click feedback.
func (s *Shape) Bounce() {
	if s.Dying {
		return
	}
	s.effect = effectBounce
	s.effectLeft = BounceLength
	s.TargetScale = BounceScale
}

// Shake wobbles the shape hard as rejection feedback.
func (s *Shape) Shake() {
	s.shakeLeft = ShakeLength
	s.WobbleAmount = shakeWobble
}

// Shaking reports whether a shake is in progress.
func (s *Shape) Shaking() bool {
	return s.shakeLeft > 0
}

// SetExpression changes the face.
func (s *Shape) SetExpression(e Expression) {
	s.Expression = e
}

// MoveTo sets the eased-toward position.
func (s *Shape) MoveTo(p core.Vec) {
	s.Target = p
}

// Place moves the shape to p without easing.
func (s *Shape) Place(p core.Vec) {
	s.Pos = p
	s.Target = p
}

// WobbleOffset returns the current wobble rotation offset in radians.
func (s *Shape) WobbleOffset() float64 {
	return math.Sin(s.Wobble) * s.WobbleAmount * 0.05
}

// Visible reports whether the shape should be drawn.
func (s *Shape) Visible() bool {
	return s.Active && s.Alpha > 0 && s.Scale > 0.01
}
