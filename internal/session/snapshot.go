package session

import (
	"time"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/entity"
)

// ShapeView is a read-only copy of a shape for rendering.
type ShapeView struct {
	ID         entity.ID
	Pos        core.Vec
	Size       float64
	Color      string
	Type       entity.ShapeType
	Scale      float64
	Alpha      float64
	Rotation   float64 // Including wobble
	Expression entity.Expression
	Blinking   bool
	Hovered    bool
	IsTarget   bool
	Matched    bool
}

// ConfettiView is a read-only copy of a particle.
type ConfettiView struct {
	Pos      core.Vec
	Color    string
	Size     float64
	Rotation float64
	Alpha    float64
	Variant  entity.ConfettiVariant
}

// Snapshot is the HUD and scene of a controller at one instant.
type Snapshot struct {
	State         State
	Mode          catalog.Mode
	Difficulty    catalog.Difficulty
	Level         int
	Score         int
	Goal          int
	Completed     int
	TimeLimited   bool
	TimeRemaining int // Seconds, for time-limited modes
	Elapsed       time.Duration
	Canvas        core.Rect
	Palette       catalog.Palette
	Hint          string
	Dragging      bool

	Targets  []ShapeView
	Shapes   []ShapeView
	Confetti []ConfettiView
}

func viewOf(s *entity.Shape) ShapeView {
	return ShapeView{
		ID:         s.ID,
		Pos:        s.Pos,
		Size:       s.Size,
		Color:      s.Color,
		Type:       s.Type,
		Scale:      s.Scale,
		Alpha:      s.Alpha,
		Rotation:   s.Rotation + s.WobbleOffset(),
		Expression: s.Expression,
		Blinking:   s.Blinking,
		Hovered:    s.Hovered,
		IsTarget:   s.IsTarget,
		Matched:    s.Matched,
	}
}

func viewsOf(a *entity.Arena) []ShapeView {
	var views []ShapeView
	a.Each(func(s *entity.Shape) bool {
		if s.Visible() {
			views = append(views, viewOf(s))
		}
		return true
	})
	return views
}

// Snapshot returns the current HUD and scene.
func (c *Controller) Snapshot() Snapshot {
	snap := Snapshot{
		State:         c.state,
		Mode:          c.mode,
		Difficulty:    c.difficulty,
		Level:         c.level.Level,
		Score:         c.score,
		Goal:          c.level.Goal,
		Completed:     c.completed,
		TimeLimited:   c.mode.TimeLimited(),
		TimeRemaining: c.timeRemaining,
		Elapsed:       c.elapsed,
		Canvas:        c.cfg.Bounds(),
		Palette:       c.palette,
		Dragging:      c.dragged != 0,
	}
	if c.mode != "" {
		snap.Hint = catalog.InfoForMode(c.mode).Hint
	}
	if c.targets != nil {
		snap.Targets = viewsOf(c.targets)
	}
	if c.shapes != nil {
		snap.Shapes = viewsOf(c.shapes)
	}
	for _, p := range c.confetti {
		snap.Confetti = append(snap.Confetti, ConfettiView{
			Pos:      p.Pos,
			Color:    p.Color,
			Size:     p.Size,
			Rotation: p.Rotation,
			Alpha:    p.Alpha,
			Variant:  p.Variant,
		})
	}
	return snap
}
