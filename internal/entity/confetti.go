package entity

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/kidsquids/internal/core"
)

// Particle constants, per reference frame.
const (
	confettiGravity = 0.3
	confettiDecay   = 0.01
)

// ConfettiVariant is the shape of a confetti particle.
type ConfettiVariant int

const (
	ConfettiRect ConfettiVariant = iota
	ConfettiCircle
	ConfettiTriangle
)

// Confetti is a celebration particle.
type Confetti struct {
	Pos           core.Vec
	Velocity      core.Vec
	Color         string
	Size          float64
	Rotation      float64
	RotationSpeed float64
	Alpha         float64
	Variant       ConfettiVariant
}

// NewConfetti creates a particle launched upward from pos.
func NewConfetti(rng *rand.Rand, pos core.Vec, color string) *Confetti {
	return &Confetti{
		Pos:   pos,
		Color: color,
		Size:  5 + rng.Float64()*10,
		Velocity: core.Vec{
			X: (rng.Float64() - 0.5) * 15,
			Y: -10 - rng.Float64()*10,
		},
		Rotation:      rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * 0.3,
		Alpha:         1,
		Variant:       ConfettiVariant(rng.Intn(3)),
	}
}

// NewBurst creates count particles at pos with colors from the palette.
func NewBurst(rng *rand.Rand, pos core.Vec, count int, colors []string) []*Confetti {
	if count <= 0 {
		return nil
	}
	burst := make([]*Confetti, 0, count)
	for i := 0; i < count; i++ {
		color := "#FFFFFF"
		if len(colors) > 0 {
			color = colors[rng.Intn(len(colors))]
		}
		burst = append(burst, NewConfetti(rng, pos, color))
	}
	return burst
}

// Update applies gravity, motion and alpha decay.
func (c *Confetti) Update(dt time.Duration) {
	frames := core.Frames(dt)
	c.Velocity.Y += confettiGravity * frames
	c.Pos = c.Pos.Add(c.Velocity.Scale(frames))
	c.Rotation += c.RotationSpeed * frames
	c.Alpha -= confettiDecay * frames
}

// Alive reports whether the particle is still visible.
func (c *Confetti) Alive() bool {
	return c.Alpha > 0
}

// UpdateConfetti advances all particles and drops dead ones, reusing the
// slice.
func UpdateConfetti(particles []*Confetti, dt time.Duration) []*Confetti {
	alive := particles[:0]
	for _, c := range particles {
		c.Update(dt)
		if c.Alive() {
			alive = append(alive, c)
		}
	}
	for i := len(alive); i < len(particles); i++ {
		particles[i] = nil
	}
	return alive
}
