package entity

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/kidsquids/internal/core"
)

func TestNewBurst(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	colors := []string{"#FF0000", "#00FF00"}

	burst := NewBurst(rng, core.V(100, 100), 15, colors)
	if len(burst) != 15 {
		t.Fatalf("len(burst) = %d, expected 15", len(burst))
	}
	for _, c := range burst {
		if c.Size < 5 || c.Size > 15 {
			t.Errorf("size %f out of range", c.Size)
		}
		if c.Velocity.Y > -10 || c.Velocity.Y < -20 {
			t.Errorf("vertical velocity %f out of range", c.Velocity.Y)
		}
		if c.Color != colors[0] && c.Color != colors[1] {
			t.Errorf("color %q not from palette", c.Color)
		}
		if c.Alpha != 1 {
			t.Errorf("alpha = %f, expected 1", c.Alpha)
		}
	}

	if NewBurst(rng, core.V(0, 0), 0, colors) != nil {
		t.Error("empty burst should be nil")
	}
}

func TestConfettiGravityAndDecay(t *testing.T) {
	c := &Confetti{Velocity: core.V(0, -10), Alpha: 1}

	c.Update(core.ReferenceFrame)

	if math.Abs(c.Velocity.Y+9.7) > 1e-9 {
		t.Errorf("Velocity.Y = %f, expected -9.7", c.Velocity.Y)
	}
	if math.Abs(c.Pos.Y+9.7) > 1e-9 {
		t.Errorf("Pos.Y = %f, expected -9.7", c.Pos.Y)
	}
	if math.Abs(c.Alpha-0.99) > 1e-9 {
		t.Errorf("Alpha = %f, expected 0.99", c.Alpha)
	}
}

func TestUpdateConfettiPrunes(t *testing.T) {
	particles := []*Confetti{
		{Alpha: 1},
		{Alpha: 0.005},
		{Alpha: 0.5},
	}

	particles = UpdateConfetti(particles, core.ReferenceFrame)
	if len(particles) != 2 {
		t.Fatalf("len = %d, expected 2", len(particles))
	}

	for i := 0; i < 110; i++ {
		particles = UpdateConfetti(particles, core.ReferenceFrame)
	}
	if len(particles) != 0 {
		t.Errorf("len = %d, expected all particles pruned", len(particles))
	}
}
