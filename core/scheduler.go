package core

import (
	"sort"
	"time"
)

// TimerID identifies a pending callback. The zero value is never issued.
type TimerID uint64

type timer struct {
	id  TimerID
	due time.Duration
	fn  func()
}

// Scheduler runs callbacks against simulated time. Callbacks only fire from
// Advance, so they run on the tick goroutine like the rest of the step.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers []timer
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time of the last Advance.
func (s *Scheduler) Now() time.Duration { return s.now }

// After schedules fn to run once simulated time reaches Now()+d.
func (s *Scheduler) After(d time.Duration, fn func()) TimerID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	s.timers = append(s.timers, timer{id: s.nextID, due: s.now + d, fn: fn})
	return s.nextID
}

// Cancel drops a pending callback. It reports false if the timer already
// ran or never existed.
func (s *Scheduler) Cancel(id TimerID) bool {
	for i, t := range s.timers {
		if t.id == id {
			s.timers = append(s.timers[:i], s.timers[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	s.timers = s.timers[:0]
}

// Pending returns the number of callbacks waiting.
func (s *Scheduler) Pending() int { return len(s.timers) }

// Advance moves simulated time to now and runs every callback that is due,
// earliest first. Time never goes backwards.
func (s *Scheduler) Advance(now time.Duration) {
	if now > s.now {
		s.now = now
	}
	if len(s.timers) == 0 {
		return
	}

	var due []timer
	kept := s.timers[:0]
	for _, t := range s.timers {
		if t.due <= s.now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.timers = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].due < due[j].due })
	for _, t := range due {
		t.fn()
	}
}
