// internal/system/scheduler.go
package system

import "time"

type task struct {
	remaining  float64
	generation uint64
	run        func()
}

// Scheduler runs continuations after a delay, measured in the game loop's
// delta time. Every task remembers the generation it was scheduled in;
// after Invalidate, older tasks still come due but do nothing.
type Scheduler struct {
	tasks      []task
	generation uint64
	stale      int
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// After schedules run once delay has elapsed. A zero delay runs at the
// next Update.
func (s *Scheduler) After(delay time.Duration, run func()) {
	s.tasks = append(s.tasks, task{
		remaining:  delay.Seconds(),
		generation: s.generation,
		run:        run,
	})
}

// Update advances time and runs the tasks that came due, in scheduling
// order. Tasks scheduled while running wait for the next Update.
func (s *Scheduler) Update(deltaTime float64) {
	current := s.tasks
	s.tasks = nil

	var due []task
	for _, t := range current {
		t.remaining -= deltaTime
		if t.remaining <= 0 {
			due = append(due, t)
		} else {
			s.tasks = append(s.tasks, t)
		}
	}

	for _, t := range due {
		if t.generation != s.generation {
			s.stale++
			continue
		}
		t.run()
	}
}

// Invalidate starts a new generation.
func (s *Scheduler) Invalidate() {
	s.generation++
}

// Generation is the current generation.
func (s *Scheduler) Generation() uint64 { return s.generation }

// Pending is the number of tasks not yet due, stale ones included.
func (s *Scheduler) Pending() int { return len(s.tasks) }

// Stale counts the tasks dropped because of Invalidate.
func (s *Scheduler) Stale() int { return s.stale }
