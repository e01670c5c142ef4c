// Package effect holds the ambient animations a pane can host and the slot
// that guarantees at most one live instance of each.
package effect

// Task is a timer-driven animation. Tick advances one frame; Stop releases it
// for good.
type Task interface {
	Tick()
	Stop()
}

// Slot owns at most one Task. Every Start bumps the generation; timer
// messages carry the generation they were scheduled for, and Accept rejects
// any that no longer match, so a superseded loop dies on its next tick.
type Slot struct {
	task  Task
	owner int
	gen   uint64
}

// Start stops any running task, installs t and returns its generation.
func (s *Slot) Start(owner int, t Task) uint64 {
	s.Stop()
	s.gen++
	s.task = t
	s.owner = owner
	return s.gen
}

// Stop tears down the running task. It reports whether one was running.
func (s *Slot) Stop() bool {
	if s.task == nil {
		return false
	}
	s.task.Stop()
	s.task = nil
	s.owner = 0
	s.gen++
	return true
}

// Accept reports whether a tick scheduled for gen belongs to the live task.
func (s *Slot) Accept(gen uint64) bool {
	return s.task != nil && gen == s.gen
}

func (s *Slot) Active() bool {
	return s.task != nil
}

// Owner is the pane hosting the running task, or 0.
func (s *Slot) Owner() int {
	return s.owner
}

func (s *Slot) Generation() uint64 {
	return s.gen
}

func (s *Slot) Task() Task {
	return s.task
}
