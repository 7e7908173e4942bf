package core

import "time"

// ReferenceFrame is the frame length the per-frame animation constants are
// tuned for (60 fps).
const ReferenceFrame = time.Second / 60

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	CanvasW  float64 // Canvas width in logical pixels
	CanvasH  float64 // Canvas height in logical pixels
	TickRate int     // Frames per second driven by the platform (default 60)
	Seed     int64   // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		CanvasW:  1000,
		CanvasH:  600,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the canvas rectangle.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, c.CanvasW, c.CanvasH)
}

// FrameDuration returns the length of one platform frame.
func (c RuntimeConfig) FrameDuration() time.Duration {
	if c.TickRate <= 0 {
		return ReferenceFrame
	}
	return time.Second / time.Duration(c.TickRate)
}

// Frames converts an elapsed duration into reference frames.
func Frames(dt time.Duration) float64 {
	return float64(dt) / float64(ReferenceFrame)
}
