package entity

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/kidsquids/internal/core"
)

const frame = core.ReferenceFrame

func runFrames(s *Shape, n int) {
	for i := 0; i < n; i++ {
		s.Update(frame)
	}
}

func TestShapeEasesTowardTarget(t *testing.T) {
	s := NewShape(core.V(0, 0), 40, "#FF6B6B", Circle, nil)
	s.MoveTo(core.V(100, 0))

	s.Update(frame)
	if math.Abs(s.Pos.X-10) > 1e-9 {
		t.Errorf("after one frame X = %f, expected 10", s.Pos.X)
	}

	runFrames(s, 200)
	if math.Abs(s.Pos.X-100) > 0.01 {
		t.Errorf("shape should settle at target, X = %f", s.Pos.X)
	}
}

func TestShapeEasingIndependentOfTickRate(t *testing.T) {
	a := NewShape(core.V(0, 0), 40, "#000000", Circle, nil)
	b := NewShape(core.V(0, 0), 40, "#000000", Circle, nil)
	a.MoveTo(core.V(100, 0))
	b.MoveTo(core.V(100, 0))

	// 60 fps vs 30 fps over the same wall time
	for i := 0; i < 30; i++ {
		a.Update(frame)
	}
	for i := 0; i < 15; i++ {
		b.Update(2 * frame)
	}

	if math.Abs(a.Pos.X-b.Pos.X) > 1e-6 {
		t.Errorf("positions diverge: %f vs %f", a.Pos.X, b.Pos.X)
	}
}

func TestShapeVelocityMovesTarget(t *testing.T) {
	s := NewShape(core.V(100, 100), 40, "#000000", Circle, nil)
	s.Velocity = core.V(2, -1)

	runFrames(s, 10)

	if math.Abs(s.Pos.X-120) > 1e-6 || math.Abs(s.Pos.Y-90) > 1e-6 {
		t.Errorf("Pos = %+v, expected (120, 90)", s.Pos)
	}
	if s.Target != s.Pos {
		t.Errorf("moving shapes should carry their target, Target = %+v", s.Target)
	}
}

func TestShapeHitTest(t *testing.T) {
	s := NewShape(core.V(100, 100), 40, "#000000", Circle, nil)

	tests := []struct {
		name     string
		p        core.Vec
		expected bool
	}{
		{"center", core.V(100, 100), true},
		{"on edge", core.V(140, 100), true},
		{"outside", core.V(141, 100), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.ContainsPoint(tc.p); got != tc.expected {
				t.Errorf("ContainsPoint(%+v) = %v, expected %v", tc.p, got, tc.expected)
			}
		})
	}

	// Spawning shapes (scale 0) are hittable at their target scale
	s.Scale = 0
	if !s.ContainsPoint(core.V(139, 100)) {
		t.Error("spawning shape should use target scale for hits")
	}

	// Hit radius never drops below half the size
	s.TargetScale = 0
	if s.HitRadius() != 20 {
		t.Errorf("HitRadius() = %f, expected 20", s.HitRadius())
	}
}

func TestShapePopLifecycle(t *testing.T) {
	s := NewShape(core.V(100, 100), 40, "#000000", Circle, nil)
	if !s.Hittable() {
		t.Fatal("new shape should be hittable")
	}

	s.Pop()
	if s.Hittable() {
		t.Error("popping shape must not be hittable")
	}
	if s.TargetScale != MaxScale {
		t.Errorf("TargetScale = %f during burst, expected %f", s.TargetScale, MaxScale)
	}

	s.Hovered = true
	runFrames(s, 3)
	if s.TargetScale != MaxScale {
		t.Error("hover must not override the pop burst")
	}

	runFrames(s, 60)
	if s.TargetScale != 0 {
		t.Errorf("TargetScale = %f after burst, expected 0", s.TargetScale)
	}
	if s.Alpha != 0 {
		t.Errorf("Alpha = %f, expected popped shape to fade out", s.Alpha)
	}
	if s.Scale < 0 || s.Scale > MaxScale {
		t.Errorf("Scale = %f out of range", s.Scale)
	}
}

func TestShapeExpire(t *testing.T) {
	s := NewShape(core.V(100, 100), 40, "#000000", Circle, nil)
	s.Expire()
	if s.Hittable() {
		t.Error("expiring shape must not be hittable")
	}
	runFrames(s, 60)
	if s.Alpha != 0 || s.Scale > 0.01 {
		t.Errorf("expired shape should vanish, alpha=%f scale=%f", s.Alpha, s.Scale)
	}
}

func TestShapeBounceAndShake(t *testing.T) {
	s := NewShape(core.V(100, 100), 40, "#000000", Circle, nil)

	s.Bounce()
	if s.TargetScale != BounceScale {
		t.Errorf("TargetScale = %f, expected %f", s.TargetScale, BounceScale)
	}
	s.Update(BounceLength)
	if s.TargetScale != 1 {
		t.Errorf("TargetScale = %f after bounce, expected 1", s.TargetScale)
	}

	s.Shake()
	if !s.Shaking() || s.WobbleAmount != shakeWobble {
		t.Error("shake should set a strong wobble")
	}
	s.Update(ShakeLength)
	if s.Shaking() || s.WobbleAmount != 0 {
		t.Errorf("shake should end after %v", ShakeLength)
	}
}

func TestShapeHoverAndLift(t *testing.T) {
	s := NewShape(core.V(100, 100), 40, "#000000", Circle, nil)

	s.Hovered = true
	s.Update(frame)
	if s.TargetScale != HoverScale || s.WobbleAmount != hoverWobble {
		t.Errorf("hover: TargetScale=%f WobbleAmount=%f", s.TargetScale, s.WobbleAmount)
	}

	s.Lifted = true
	s.Update(frame)
	if s.TargetScale != LiftScale {
		t.Errorf("lifted TargetScale = %f, expected %f", s.TargetScale, LiftScale)
	}
}

func TestShapeBlinks(t *testing.T) {
	s := NewShape(core.V(0, 0), 40, "#000000", Circle, rand.New(rand.NewSource(1)))

	blinked := false
	for i := 0; i < 400; i++ {
		s.Update(frame)
		if s.Blinking {
			blinked = true
			break
		}
	}
	if !blinked {
		t.Fatal("shape should blink within 400 frames")
	}

	s.Update(BlinkLength)
	if s.Blinking {
		t.Error("blink should end")
	}
}

func TestNewTarget(t *testing.T) {
	tg := NewTarget(core.V(800, 300), 50, "#4ECDC4", Star, 3, nil)
	if !tg.IsTarget || tg.MatchID != 3 || tg.Alpha != TargetAlpha {
		t.Errorf("unexpected target: %+v", tg)
	}
}

func TestShapeUpdateIgnoresNonPositive(t *testing.T) {
	s := NewShape(core.V(0, 0), 40, "#000000", Circle, nil)
	s.MoveTo(core.V(100, 0))
	s.Update(0)
	s.Update(-time.Second)
	if s.Pos.X != 0 {
		t.Errorf("non-positive dt moved the shape to %f", s.Pos.X)
	}
}
