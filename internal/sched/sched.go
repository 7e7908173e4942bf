// Package sched runs delayed and repeating callbacks on game time.
//
// Time only moves when Advance is called, so pausing a session pauses every
// timer. Each task is bound to a context; once the context is cancelled the
// task never runs again.
package sched

import (
	"context"
	"time"
)

type task struct {
	ctx   context.Context
	due   time.Duration
	every time.Duration // 0 for one-shot tasks
	seq   uint64
	fn    func()
}

// Scheduler holds pending tasks. It is not safe for concurrent use; the
// owning session drives it from its update loop.
type Scheduler struct {
	now   time.Duration
	seq   uint64
	tasks []*task
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the current game time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After runs fn once, d after the current game time.
func (s *Scheduler) After(ctx context.Context, d time.Duration, fn func()) {
	if d < 0 {
		d = 0
	}
	s.add(ctx, s.now+d, 0, fn)
}

// Every runs fn each interval d, first at now+d. Non-positive intervals are
// ignored.
func (s *Scheduler) Every(ctx context.Context, d time.Duration, fn func()) {
	if d <= 0 {
		return
	}
	s.add(ctx, s.now+d, d, fn)
}

func (s *Scheduler) add(ctx context.Context, due, every time.Duration, fn func()) {
	if ctx.Err() != nil {
		return
	}
	s.seq++
	s.tasks = append(s.tasks, &task{ctx: ctx, due: due, every: every, seq: s.seq, fn: fn})
}

// Advance moves game time forward by dt and runs every task that falls due,
// in due-time order. Tasks registered while advancing run in the same call
// if they fall due before the new time.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	end := s.now + dt

	for {
		t := s.next(end)
		if t == nil {
			break
		}
		// Callbacks observe the time they were due at
		s.now = t.due
		if t.every > 0 {
			t.due += t.every
		} else {
			s.remove(t)
		}
		t.fn()
	}

	s.now = end
	s.prune()
}

// next returns the earliest live task due at or before end.
func (s *Scheduler) next(end time.Duration) *task {
	var best *task
	for _, t := range s.tasks {
		if t.due > end || t.ctx.Err() != nil {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) remove(target *task) {
	for i, t := range s.tasks {
		if t == target {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// prune drops tasks whose context has been cancelled.
func (s *Scheduler) prune() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.ctx.Err() == nil {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
}

// Len returns the number of pending tasks that can still run.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.tasks {
		if t.ctx.Err() == nil {
			n++
		}
	}
	return n
}

// Reset drops every task and rewinds time to zero.
func (s *Scheduler) Reset() {
	s.tasks = nil
	s.now = 0
}
