// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timer

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered to the Bubble Tea program when a timer elapses.
type FiredMsg struct {
	ID ID
}

// Tea is a Scheduler for use inside a Bubble Tea model. After only records
// the callback and queues a tea.Tick; the model returns Flush() from Update
// and passes every FiredMsg to Fire.
type Tea struct {
	nextID  ID
	pending map[ID]func()
	outbox  []tea.Cmd
}

// NewTea returns an empty scheduler.
func NewTea() *Tea {
	return &Tea{pending: make(map[ID]func())}
}

// After implements Scheduler.
func (s *Tea) After(d time.Duration, fn func()) ID {
	s.nextID++
	id := s.nextID
	s.pending[id] = fn
	s.outbox = append(s.outbox, tea.Tick(d, func(time.Time) tea.Msg {
		return FiredMsg{ID: id}
	}))
	return id
}

// Cancel implements Scheduler. The tick still arrives but Fire ignores it.
func (s *Tea) Cancel(id ID) {
	delete(s.pending, id)
}

// Fire runs the callback for msg if it has not been cancelled. It reports
// whether a callback ran.
func (s *Tea) Fire(msg FiredMsg) bool {
	fn, ok := s.pending[msg.ID]
	if !ok {
		return false
	}
	delete(s.pending, msg.ID)
	fn()
	return true
}

// Pending reports how many callbacks have not fired yet.
func (s *Tea) Pending() int { return len(s.pending) }

// Flush returns the tick commands queued since the last Flush, or nil.
func (s *Tea) Flush() tea.Cmd {
	if len(s.outbox) == 0 {
		return nil
	}
	cmds := s.outbox
	s.outbox = nil
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}
