// Package schedule runs one-shot delayed actions on the frame clock.
package schedule

import (
	"sort"
	"time"
)

// task is a pending action and the elapsed time it fires at
type task struct {
	due    time.Duration
	seq    uint64
	action func()
}

// Scheduler fires delayed actions as the owner advances its clock.
// Nothing runs on its own: expiries happen only inside Advance, so they
// always land at a well-defined point of the frame.
type Scheduler struct {
	now     time.Duration
	nextSeq uint64
	tasks   []task
}

// New creates an empty scheduler
func New() *Scheduler {
	return &Scheduler{}
}

// After schedules action to run once delay has elapsed.
// A non-positive delay fires on the next Advance.
func (s *Scheduler) After(delay time.Duration, action func()) {
	if delay < 0 {
		delay = 0
	}
	s.tasks = append(s.tasks, task{
		due:    s.now + delay,
		seq:    s.nextSeq,
		action: action,
	})
	s.nextSeq++
}

// Advance moves the clock forward by dt and runs every action that came due,
// earliest first (ties in scheduling order). Actions scheduled while
// advancing are considered from the next call.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt > 0 {
		s.now += dt
	}

	var due []task
	pending := s.tasks[:0]
	for _, t := range s.tasks {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			pending = append(pending, t)
		}
	}
	s.tasks = pending
	if len(due) == 0 {
		return
	}

	sort.Slice(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].seq < due[j].seq
	})
	for _, t := range due {
		t.action()
	}
}

// Pending returns the number of actions waiting to fire
func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Clear drops every pending action without running it
func (s *Scheduler) Clear() {
	s.tasks = nil
}

// FromSeconds converts a frame delta in seconds to a Duration,
// rounded to the nearest nanosecond.
func FromSeconds(dt float64) time.Duration {
	return time.Duration(dt*float64(time.Second) + 0.5)
}
