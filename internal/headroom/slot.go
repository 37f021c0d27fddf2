package headroom

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Slot is a single-slot debounce scheduler. At most one task is pending at a
// time; requests made while one is pending are dropped. The task reads its
// input when it runs, not when it was requested, so a coalesced burst is
// handled once with the latest data.
type Slot struct {
	interval time.Duration
	pending  bool
}

// NewSlot returns a Slot that delivers its task after interval. A zero
// interval delivers on the next loop iteration.
func NewSlot(interval time.Duration) Slot {
	return Slot{interval: interval}
}

// Pending reports whether a task is scheduled and not yet released.
func (s *Slot) Pending() bool { return s.pending }

// Schedule arms the slot and returns a command that yields msg on the next
// tick. It returns nil when the slot is already armed.
func (s *Slot) Schedule(msg tea.Msg) tea.Cmd {
	if s.pending {
		return nil
	}
	s.pending = true
	if s.interval <= 0 {
		return func() tea.Msg { return msg }
	}
	return tea.Tick(s.interval, func(time.Time) tea.Msg { return msg })
}

// Release re-arms debouncing. Call it at the end of the task.
func (s *Slot) Release() { s.pending = false }
