// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timer

import (
	"sort"
	"time"
)

// ID identifies a scheduled callback. The zero ID is never issued.
type ID uint64

// Scheduler runs callbacks after a delay without blocking the caller.
type Scheduler interface {
	// After schedules fn to run once d has elapsed.
	After(d time.Duration, fn func()) ID

	// Cancel drops a pending callback. Unknown or already fired IDs are ignored.
	Cancel(id ID)
}

// =============================================================================
// MANUAL (VIRTUAL CLOCK)
// =============================================================================

type entry struct {
	id  ID
	due time.Duration
	fn  func()
}

// Manual is a Scheduler backed by a virtual clock. Callbacks only run from
// Advance or RunUntilIdle, in due order; ties fire in scheduling order.
type Manual struct {
	now     time.Duration
	nextID  ID
	pending []entry
}

// NewManual returns a scheduler whose clock starts at zero.
func NewManual() *Manual {
	return &Manual{}
}

// After implements Scheduler.
func (m *Manual) After(d time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	m.nextID++
	m.pending = append(m.pending, entry{id: m.nextID, due: m.now + d, fn: fn})
	return m.nextID
}

// Cancel implements Scheduler.
func (m *Manual) Cancel(id ID) {
	for i, e := range m.pending {
		if e.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Elapsed reports the virtual time since the scheduler was created.
func (m *Manual) Elapsed() time.Duration { return m.now }

// Pending reports how many callbacks are waiting.
func (m *Manual) Pending() int { return len(m.pending) }

// Advance moves the clock forward by d, firing every callback that falls due
// on the way. Callbacks scheduled by a firing callback run in the same
// Advance when they are due before the target time.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		e, ok := m.next()
		if !ok || e.due > target {
			break
		}
		m.Cancel(e.id)
		m.now = e.due
		e.fn()
	}
	m.now = target
}

// RunUntilIdle fires callbacks until none remain, calling sleep with the gap
// before each one. A nil sleep advances instantly. limit bounds the number of
// callbacks run so a self-rescheduling timer cannot spin forever; it returns
// false when the limit was hit.
func (m *Manual) RunUntilIdle(sleep func(time.Duration), limit int) bool {
	for fired := 0; ; fired++ {
		e, ok := m.next()
		if !ok {
			return true
		}
		if fired >= limit {
			return false
		}
		if gap := e.due - m.now; gap > 0 && sleep != nil {
			sleep(gap)
		}
		m.Advance(e.due - m.now)
	}
}

func (m *Manual) next() (entry, bool) {
	if len(m.pending) == 0 {
		return entry{}, false
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		return m.pending[i].due < m.pending[j].due
	})
	return m.pending[0], true
}
