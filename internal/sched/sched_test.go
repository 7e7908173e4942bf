package sched

import (
	"context"
	"reflect"
	"testing"
	"time"
)

func TestAfterRunsOnce(t *testing.T) {
	s := New()
	ctx := context.Background()
	runs := 0
	s.After(ctx, 100*time.Millisecond, func() { runs++ })

	s.Advance(99 * time.Millisecond)
	if runs != 0 {
		t.Fatal("task ran early")
	}
	s.Advance(time.Millisecond)
	if runs != 1 {
		t.Fatalf("runs = %d, expected 1", runs)
	}
	s.Advance(time.Second)
	if runs != 1 {
		t.Errorf("one-shot task ran %d times", runs)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected 0", s.Len())
	}
}

func TestEveryRepeats(t *testing.T) {
	s := New()
	runs := 0
	s.Every(context.Background(), time.Second, func() { runs++ })

	for i := 0; i < 60*5; i++ {
		s.Advance(time.Second / 60)
	}
	// 300 frames of 16.666666ms fall just short of 5s
	if runs != 4 && runs != 5 {
		t.Errorf("runs = %d, expected about 5", runs)
	}

	s.Advance(3 * time.Second)
	if runs < 7 {
		t.Errorf("a long step should catch up, runs = %d", runs)
	}
}

func TestCancelledTasksNeverRun(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	runs := 0
	s.After(ctx, 100*time.Millisecond, func() { runs++ })
	s.Every(ctx, 50*time.Millisecond, func() { runs++ })

	cancel()
	s.Advance(time.Second)

	if runs != 0 {
		t.Errorf("cancelled tasks ran %d times", runs)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, expected cancelled tasks pruned", s.Len())
	}

	// Registering on a cancelled context is a no-op
	s.After(ctx, 0, func() { runs++ })
	s.Advance(time.Millisecond)
	if runs != 0 {
		t.Error("task registered on a cancelled context ran")
	}
}

func TestCancelFromInsideTask(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	var order []string

	s.After(ctx, 10*time.Millisecond, func() {
		order = append(order, "first")
		cancel()
	})
	s.After(ctx, 20*time.Millisecond, func() { order = append(order, "second") })

	s.Advance(time.Second)
	if !reflect.DeepEqual(order, []string{"first"}) {
		t.Errorf("order = %v, expected only first", order)
	}
}

func TestOrderAndNestedScheduling(t *testing.T) {
	s := New()
	ctx := context.Background()
	var order []string

	s.After(ctx, 30*time.Millisecond, func() { order = append(order, "c") })
	s.After(ctx, 10*time.Millisecond, func() {
		order = append(order, "a")
		// Due at 10ms + 5ms, still inside this step
		s.After(ctx, 5*time.Millisecond, func() { order = append(order, "b") })
	})
	s.After(ctx, 30*time.Millisecond, func() { order = append(order, "d") })

	s.Advance(100 * time.Millisecond)

	expected := []string{"a", "b", "c", "d"}
	if !reflect.DeepEqual(order, expected) {
		t.Errorf("order = %v, expected %v", order, expected)
	}
	if s.Now() != 100*time.Millisecond {
		t.Errorf("Now() = %v, expected 100ms", s.Now())
	}
}

func TestNowInsideCallback(t *testing.T) {
	s := New()
	var seen time.Duration
	s.After(context.Background(), 250*time.Millisecond, func() { seen = s.Now() })

	s.Advance(time.Second)
	if seen != 250*time.Millisecond {
		t.Errorf("callback saw Now() = %v, expected 250ms", seen)
	}
}

func TestNoTimeNoRuns(t *testing.T) {
	s := New()
	runs := 0
	s.Every(context.Background(), 0, func() { runs++ })
	s.After(context.Background(), time.Second, func() { runs++ })

	s.Advance(0)
	if runs != 0 {
		t.Errorf("runs = %d without game time passing", runs)
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, zero interval should be ignored", s.Len())
	}

	s.Reset()
	if s.Len() != 0 || s.Now() != 0 {
		t.Error("Reset should clear tasks and time")
	}
}
