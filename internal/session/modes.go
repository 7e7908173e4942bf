package session

import (
	"math"

	"github.com/vovakirdan/kidsquids/internal/catalog"
	"github.com/vovakirdan/kidsquids/internal/core"
	"github.com/vovakirdan/kidsquids/internal/entity"
	"github.com/vovakirdan/kidsquids/internal/progress"
)

// randomSpawnPos picks a point padded by the shape size plus a margin.
func (c *Controller) randomSpawnPos(size float64) core.Vec {
	pad := size + spawnMargin
	return core.V(
		pad+c.rng.Float64()*math.Max(c.cfg.CanvasW-2*pad, 0),
		pad+c.rng.Float64()*math.Max(c.cfg.CanvasH-2*pad, 0),
	)
}

func (c *Controller) randomColor() string {
	colors := c.palette.Colors
	if len(colors) == 0 {
		return "#FFFFFF"
	}
	return colors[c.rng.Intn(len(colors))]
}

func (c *Controller) randomType() entity.ShapeType {
	return entity.ShapeTypes[c.rng.Intn(len(entity.ShapeTypes))]
}

// newSpawn creates a shape that grows in from nothing.
func (c *Controller) newSpawn() *entity.Shape {
	size := c.level.Size
	s := entity.NewShape(c.randomSpawnPos(size), size, c.randomColor(), c.randomType(), c.rng)
	s.Scale = 0
	s.TargetScale = 1
	return s
}

// spawnTimedShape adds the single live shape of click and double mode. An
// unclicked shape falls asleep after the level's time per shape and is
// replaced.
func (c *Controller) spawnTimedShape(double bool) {
	if c.state != StateConfiguring && c.state != StateActive {
		return
	}
	s := c.newSpawn()
	s.NeedsDoubleClick = double
	id := c.shapes.Add(s)
	c.emit(Event{Kind: EventSpawn, ShapeID: id, Pos: s.Pos})

	c.sched.After(c.playCtx, c.level.TimePerShape, func() {
		s, ok := c.shapes.Get(id)
		if !ok || !s.Hittable() {
			return
		}
		s.SetExpression(entity.Sleeping)
		s.Expire()
		c.emit(Event{Kind: EventExpire, ShapeID: id, Pos: s.Pos})

		c.sched.After(c.playCtx, expireRemoveDelay, func() {
			c.shapes.Remove(id)
			if c.state == StateActive {
				c.spawnTimedShape(double)
			}
		})
	})
}

// spawnCatchShape adds a shape moving in a random direction.
func (c *Controller) spawnCatchShape() {
	if c.state != StateConfiguring && c.state != StateActive {
		return
	}
	s := c.newSpawn()
	angle := c.rng.Float64() * 2 * math.Pi
	s.Velocity = core.V(math.Cos(angle)*c.level.Speed, math.Sin(angle)*c.level.Speed)
	id := c.shapes.Add(s)
	c.emit(Event{Kind: EventSpawn, ShapeID: id, Pos: s.Pos})
}

// setupDrag lays out the shape/target pairs: shapes on the left third,
// targets on the right third, then shapes scattered vertically.
func (c *Controller) setupDrag() {
	w, h := c.cfg.CanvasW, c.cfg.CanvasH
	pairs := c.level.Pairs
	band := math.Max(w/3-dragPadding, 0)
	rowHeight := (h - 2*dragPadding) / float64(pairs)

	used := make(map[entity.ShapeType]bool)
	for i := 0; i < pairs; i++ {
		typ := c.randomType()
		for used[typ] && len(used) < len(entity.ShapeTypes) {
			typ = c.randomType()
		}
		used[typ] = true
		color := c.palette.Colors[i%len(c.palette.Colors)]
		y := dragPadding + (float64(i)+0.5)*rowHeight

		s := entity.NewShape(core.V(dragPadding+c.rng.Float64()*band, y), c.level.Size, color, typ, c.rng)
		s.Draggable = true
		s.MatchID = i
		c.shapes.Add(s)

		tx := w - dragPadding - c.rng.Float64()*band
		c.targets.Add(entity.NewTarget(core.V(tx, y), c.level.TargetSize, color, typ, i, c.rng))
	}

	c.shapes.Each(func(s *entity.Shape) bool {
		y := dragPadding + c.rng.Float64()*math.Max(h-2*dragPadding, 0)
		s.Place(core.V(s.Pos.X, y))
		return true
	})
}

// addPoints scores a successful interaction.
func (c *Controller) addPoints() {
	c.score += catalog.PointsFor(c.mode)
	c.completed++
	if c.completed >= c.level.Goal {
		// The countdown must not fail a level whose goal is already met.
		c.finishing = true
	}
}

// popShape scores a hit: the shape pops, confetti flies, and the shape is
// removed shortly after.
func (c *Controller) popShape(s *entity.Shape) {
	s.SetExpression(entity.Surprised)
	s.Pop()
	c.addPoints()

	stat := progress.StatShapesClicked
	if c.mode == catalog.ModeCatch {
		stat = progress.StatShapesCaught
	}
	c.deps.Progress.IncrementStat(stat, 1)

	c.confetti = append(c.confetti, entity.NewBurst(c.rng, s.Pos, popConfetti, c.palette.Colors)...)
	c.emit(Event{Kind: EventPop, ShapeID: s.ID, Pos: s.Pos})
	c.emit(Event{Kind: EventFeedback, Word: feedbackWords[c.rng.Intn(len(feedbackWords))]})

	id := s.ID
	c.sched.After(c.playCtx, popRemoveDelay, func() {
		c.shapes.Remove(id)
		c.afterPop()
	})
}

// afterPop checks the goal once a popped shape is gone.
func (c *Controller) afterPop() {
	if c.state != StateActive {
		return
	}
	if c.completed >= c.level.Goal {
		c.endLevel(true)
		return
	}
	switch c.mode {
	case catalog.ModeClick:
		c.spawnTimedShape(false)
	case catalog.ModeDouble:
		c.spawnTimedShape(true)
	}
}

func (c *Controller) handleClick(pos core.Vec) {
	if s := c.shapes.TopmostAt(pos, nil); s != nil {
		c.popShape(s)
	}
}

func (c *Controller) handleCatch(pos core.Vec) {
	s := c.shapes.TopmostAt(pos, nil)
	if s == nil {
		return
	}
	c.popShape(s)
	c.sched.After(c.playCtx, catchRespawnDelay, c.spawnCatchShape)
}

// handleDouble pops a shape clicked twice within the window. A click on
// another shape starts a new sequence there; a click on empty space leaves
// the pending click alone.
func (c *Controller) handleDouble(pos core.Vec) {
	s := c.shapes.TopmostAt(pos, nil)
	if s == nil {
		return
	}
	s.ClickCount++
	now := c.sched.Now()

	if c.pending != nil && c.pending.id == s.ID && now-c.pending.at < DoubleClickWindow {
		c.pending = nil
		c.popShape(s)
		c.deps.Progress.IncrementStat(progress.StatDoubleClicks, 1)
		return
	}

	s.Bounce()
	c.pending = &pendingClick{id: s.ID, at: now}
	c.emit(Event{Kind: EventBounce, ShapeID: s.ID, Pos: s.Pos})
}

func (c *Controller) draggedShape() *entity.Shape {
	if c.dragged == 0 || c.shapes == nil {
		return nil
	}
	s, ok := c.shapes.Get(c.dragged)
	if !ok {
		return nil
	}
	return s
}

func (c *Controller) handleDragStart(pos core.Vec) {
	if c.dragged != 0 {
		// The release of the previous drag never arrived.
		c.handleDragEnd()
	}
	s := c.shapes.TopmostAt(pos, func(s *entity.Shape) bool {
		return s.Draggable && !s.Matched
	})
	if s == nil {
		return
	}
	c.dragged = s.ID
	s.Lifted = true
	c.emit(Event{Kind: EventPickUp, ShapeID: s.ID, Pos: s.Pos})
}

func (c *Controller) handleDragEnd() {
	s := c.draggedShape()
	c.dragged = 0
	if s == nil {
		return
	}
	s.Lifted = false
	c.checkDragMatch(s)
}

// checkDragMatch accepts a drop closer to the matching target's center than
// the target's size. Anything else shakes the shape where it was dropped.
func (c *Controller) checkDragMatch(s *entity.Shape) {
	var target *entity.Shape
	c.targets.Each(func(t *entity.Shape) bool {
		if !t.Matched && t.MatchID == s.MatchID && core.Distance(s.Pos, t.Pos) < t.Size {
			target = t
			return false
		}
		return true
	})

	if target == nil {
		s.Shake()
		c.emit(Event{Kind: EventMiss, ShapeID: s.ID, Pos: s.Pos})
		return
	}

	target.Matched = true
	target.Alpha = 1
	target.SetExpression(entity.Happy)
	s.Matched = true
	s.Draggable = false
	s.Active = false
	s.MoveTo(target.Pos)

	c.addPoints()
	c.deps.Progress.IncrementStat(progress.StatShapesDropped, 1)
	c.confetti = append(c.confetti, entity.NewBurst(c.rng, target.Pos, matchConfetti, c.palette.Colors)...)
	c.emit(Event{Kind: EventMatch, ShapeID: s.ID, Pos: target.Pos})
	c.emit(Event{Kind: EventFeedback, Word: FeedbackPerfect})

	if c.allMatched() {
		c.finishing = true
		c.sched.After(c.ctx, dragFinishDelay, func() { c.endLevel(true) })
	}
}

func (c *Controller) allMatched() bool {
	matched := true
	c.targets.Each(func(t *entity.Shape) bool {
		if !t.Matched {
			matched = false
		}
		return matched
	})
	return matched
}
