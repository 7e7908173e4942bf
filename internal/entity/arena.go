package entity

import (
	"time"

	"github.com/vovakirdan/kidsquids/internal/core"
)

// ID identifies a shape within its arena. IDs are never reused.
type ID uint64

// Arena indexes shapes by ID and keeps insertion (draw) order. Removal is
// O(1); the order list is compacted lazily.
type Arena struct {
	nextID ID
	shapes map[ID]*Shape
	order  []ID
	stale  int
}

// NewArena creates an empty arena.
func NewArena() *Arena {
	return &Arena{shapes: make(map[ID]*Shape)}
}

// Add stores s under a fresh ID and returns it.
func (a *Arena) Add(s *Shape) ID {
	a.nextID++
	s.ID = a.nextID
	a.shapes[s.ID] = s
	a.order = append(a.order, s.ID)
	return s.ID
}

// Get returns the shape with the given ID.
func (a *Arena) Get(id ID) (*Shape, bool) {
	s, ok := a.shapes[id]
	return s, ok
}

// Remove deletes a shape. It reports whether the shape was present.
func (a *Arena) Remove(id ID) bool {
	s, ok := a.shapes[id]
	if !ok {
		return false
	}
	s.Active = false
	delete(a.shapes, id)
	a.stale++
	if a.stale > len(a.order)/2 {
		a.compact()
	}
	return true
}

func (a *Arena) compact() {
	live := a.order[:0]
	for _, id := range a.order {
		if _, ok := a.shapes[id]; ok {
			live = append(live, id)
		}
	}
	a.order = live
	a.stale = 0
}

// Len returns the number of shapes.
func (a *Arena) Len() int {
	return len(a.shapes)
}

// Clear removes every shape. IDs keep increasing.
func (a *Arena) Clear() {
	for _, s := range a.shapes {
		s.Active = false
	}
	a.shapes = make(map[ID]*Shape)
	a.order = a.order[:0]
	a.stale = 0
}

// Each calls fn for every shape in draw order until fn returns false.
func (a *Arena) Each(fn func(*Shape) bool) {
	for _, id := range a.order {
		s, ok := a.shapes[id]
		if !ok {
			continue
		}
		if !fn(s) {
			return
		}
	}
}

// Shapes returns the shapes in draw order.
func (a *Arena) Shapes() []*Shape {
	out := make([]*Shape, 0, len(a.shapes))
	a.Each(func(s *Shape) bool {
		out = append(out, s)
		return true
	})
	return out
}

// TopmostAt returns the last-drawn hittable shape containing p that
// satisfies accept (nil accepts all).
func (a *Arena) TopmostAt(p core.Vec, accept func(*Shape) bool) *Shape {
	for i := len(a.order) - 1; i >= 0; i-- {
		s, ok := a.shapes[a.order[i]]
		if !ok || !s.Hittable() || !s.ContainsPoint(p) {
			continue
		}
		if accept == nil || accept(s) {
			return s
		}
	}
	return nil
}

// Update advances every shape by dt.
func (a *Arena) Update(dt time.Duration) {
	for _, id := range a.order {
		if s, ok := a.shapes[id]; ok {
			s.Update(dt)
		}
	}
}
