// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timer

import "time"

// Group is a Scheduler that remembers the timers scheduled through it so
// they can be dropped together, the way a page unload drops every timer the
// page started.
type Group struct {
	parent Scheduler
	live   map[ID]struct{}
}

// NewGroup wraps parent.
func NewGroup(parent Scheduler) *Group {
	return &Group{parent: parent, live: make(map[ID]struct{})}
}

// After implements Scheduler.
func (g *Group) After(d time.Duration, fn func()) ID {
	var id ID
	id = g.parent.After(d, func() {
		delete(g.live, id)
		fn()
	})
	g.live[id] = struct{}{}
	return id
}

// Cancel implements Scheduler.
func (g *Group) Cancel(id ID) {
	delete(g.live, id)
	g.parent.Cancel(id)
}

// CancelAll drops every timer still pending in the group.
func (g *Group) CancelAll() {
	for id := range g.live {
		g.parent.Cancel(id)
	}
	g.live = make(map[ID]struct{})
}

// Len reports how many of the group's timers are still pending.
func (g *Group) Len() int { return len(g.live) }
