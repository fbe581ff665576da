// Package sched is a one-shot timer queue driven by the frame loop.
//
// Time only moves when the owner calls Advance with the frame delta, so timers
// follow simulated time: pausing the loop pauses every timer, and tests can
// step through delays without sleeping.
package sched

import (
	"sort"
	"time"
)

// Timer is a handle to a scheduled callback.
type Timer struct {
	id        uint64
	due       time.Duration
	fn        func()
	fired     bool
	cancelled bool
}

// Cancel stops the timer from firing. It returns true if the call prevented
// the callback from running, false if it had already fired or been cancelled.
// Cancel on a nil Timer is a no-op.
func (t *Timer) Cancel() bool {
	if t == nil || t.fired || t.cancelled {
		return false
	}
	t.cancelled = true
	return true
}

// Pending reports whether the timer is still waiting to fire.
func (t *Timer) Pending() bool {
	return t != nil && !t.fired && !t.cancelled
}

// Scheduler holds pending timers. It is not safe for concurrent use; it is
// owned by a single frame loop.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	timers []*Timer
}

// New creates an empty scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once, d after the current simulated time.
// Negative delays are treated as zero.
func (s *Scheduler) After(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	s.nextID++
	t := &Timer{id: s.nextID, due: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves simulated time forward by dt and runs every timer that
// became due, in due order (ties in scheduling order). Timers scheduled by a
// callback that are already due run in the same call. Returns how many
// callbacks ran.
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt > 0 {
		s.now += dt
	}

	ran := 0
	for {
		due := s.collectDue()
		if len(due) == 0 {
			return ran
		}
		for _, t := range due {
			// An earlier callback in this batch may have cancelled it.
			if t.cancelled {
				continue
			}
			t.fired = true
			ran++
			if t.fn != nil {
				t.fn()
			}
		}
	}
}

// Len returns the number of pending timers.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if t.Pending() {
			n++
		}
	}
	return n
}

// CancelAll cancels every pending timer.
func (s *Scheduler) CancelAll() {
	for _, t := range s.timers {
		t.Cancel()
	}
	s.timers = s.timers[:0]
}

// collectDue removes due and dead timers from the queue and returns the due
// ones sorted by due time.
func (s *Scheduler) collectDue() []*Timer {
	var due []*Timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		switch {
		case !t.Pending():
			// drop
		case t.due <= s.now:
			due = append(due, t)
		default:
			kept = append(kept, t)
		}
	}
	// Zero the tail so dropped timers can be collected.
	for i := len(kept); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = kept

	sort.SliceStable(due, func(i, j int) bool {
		if due[i].due != due[j].due {
			return due[i].due < due[j].due
		}
		return due[i].id < due[j].id
	})
	return due
}
