// Package sched runs deferred callbacks on the game loop. Time only moves
// when the loop calls Advance with its frame delta, so nothing here sleeps
// or spawns goroutines.
package sched

import (
	"context"
	"sort"
	"time"
)

// ID identifies a scheduled task.
type ID uint64

type task struct {
	id  ID
	due time.Duration
	fn  func(context.Context)
}

// Scheduler is a virtual-clock task queue. It is not safe for concurrent use.
type Scheduler struct {
	now    time.Duration
	nextID ID
	tasks  []task
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual time.
func (s *Scheduler) Now() time.Duration { return s.now }

// After schedules fn to run once d has elapsed. A non-positive d runs on the
// next Advance, including one already in progress.
func (s *Scheduler) After(d time.Duration, fn func(context.Context)) ID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.tasks = append(s.tasks, task{id: s.nextID, due: s.now + d, fn: fn})
	return s.nextID
}

// Cancel removes a pending task. It returns false if the task already ran or
// was never scheduled.
func (s *Scheduler) Cancel(id ID) bool {
	for i, t := range s.tasks {
		if t.id == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending task.
func (s *Scheduler) CancelAll() {
	s.tasks = s.tasks[:0]
}

// Pending returns the number of tasks waiting to run.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Advance moves the clock forward by dt and runs every task that has come
// due, earliest first with ties broken by scheduling order. It returns the
// number of tasks run.
func (s *Scheduler) Advance(ctx context.Context, dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for {
		idx := s.nextDue()
		if idx < 0 {
			return ran
		}
		t := s.tasks[idx]
		s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
		t.fn(ctx)
		ran++
	}
}

// nextDue returns the index of the earliest due task, or -1.
func (s *Scheduler) nextDue() int {
	best := -1
	for i, t := range s.tasks {
		if t.due > s.now {
			continue
		}
		if best < 0 || t.due < s.tasks[best].due || (t.due == s.tasks[best].due && t.id < s.tasks[best].id) {
			best = i
		}
	}
	return best
}

// DueTimes returns the due times of pending tasks in run order, relative to
// now.
func (s *Scheduler) DueTimes() []time.Duration {
	pending := make([]task, len(s.tasks))
	copy(pending, s.tasks)
	sort.SliceStable(pending, func(i, j int) bool {
		if pending[i].due != pending[j].due {
			return pending[i].due < pending[j].due
		}
		return pending[i].id < pending[j].id
	})

	out := make([]time.Duration, len(pending))
	for i, t := range pending {
		out[i] = t.due - s.now
	}
	return out
}
