package entity

import (
	"testing"

	"github.com/vovakirdan/kidsquids/internal/core"
)

func newTestShape(x, y float64) *Shape {
	return NewShape(core.V(x, y), 40, "#000000", Circle, nil)
}

func TestArenaAddGetRemove(t *testing.T) {
	a := NewArena()

	s1 := newTestShape(0, 0)
	s2 := newTestShape(100, 0)
	id1 := a.Add(s1)
	id2 := a.Add(s2)

	if id1 == id2 {
		t.Fatal("IDs must be unique")
	}
	if got, ok := a.Get(id1); !ok || got != s1 {
		t.Error("Get(id1) should return s1")
	}

	if !a.Remove(id1) {
		t.Error("Remove(id1) should report true")
	}
	if a.Remove(id1) {
		t.Error("second Remove(id1) should report false")
	}
	if _, ok := a.Get(id1); ok {
		t.Error("removed shape still present")
	}
	if s1.Active {
		t.Error("removed shape should be inactive")
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", a.Len())
	}

	// IDs are never reused
	id3 := a.Add(newTestShape(0, 0))
	if id3 == id1 || id3 == id2 {
		t.Errorf("ID %d reused", id3)
	}
}

func TestArenaOrder(t *testing.T) {
	a := NewArena()
	var ids []ID
	for i := 0; i < 10; i++ {
		ids = append(ids, a.Add(newTestShape(float64(i), 0)))
	}
	for i := 0; i < 10; i += 2 {
		a.Remove(ids[i])
	}

	shapes := a.Shapes()
	if len(shapes) != 5 {
		t.Fatalf("len(Shapes()) = %d, expected 5", len(shapes))
	}
	for i, s := range shapes {
		if s.ID != ids[2*i+1] {
			t.Errorf("Shapes()[%d].ID = %d, expected %d", i, s.ID, ids[2*i+1])
		}
	}
}

func TestArenaClear(t *testing.T) {
	a := NewArena()
	s := newTestShape(0, 0)
	last := a.Add(s)
	a.Clear()

	if a.Len() != 0 || len(a.Shapes()) != 0 {
		t.Error("arena should be empty")
	}
	if s.Active {
		t.Error("cleared shapes should be inactive")
	}
	if id := a.Add(newTestShape(0, 0)); id <= last {
		t.Errorf("ID after Clear = %d, expected > %d", id, last)
	}
}

func TestArenaTopmostAt(t *testing.T) {
	a := NewArena()
	bottom := newTestShape(100, 100)
	top := newTestShape(110, 100)
	a.Add(bottom)
	a.Add(top)

	if got := a.TopmostAt(core.V(105, 100), nil); got != top {
		t.Error("expected the last added shape")
	}

	top.Pop()
	if got := a.TopmostAt(core.V(105, 100), nil); got != bottom {
		t.Error("dying shapes must be skipped")
	}

	onlyTargets := func(s *Shape) bool { return s.IsTarget }
	if got := a.TopmostAt(core.V(105, 100), onlyTargets); got != nil {
		t.Error("filter should reject non-targets")
	}

	if got := a.TopmostAt(core.V(500, 500), nil); got != nil {
		t.Error("expected no shape far away")
	}
}
