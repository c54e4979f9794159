// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"testing"
	"time"

	"github.com/SwayamPurwar/portfolio-term/internal/timer"
)

func TestTapper(t *testing.T) {
	clock := timer.NewManual()
	tp := NewTapper(clock, 500*time.Millisecond, 2)

	if tp.Tap() {
		t.Fatal("first tap should not fire")
	}
	if tp.Count() != 1 {
		t.Errorf("Count = %d, want 1", tp.Count())
	}
	clock.Advance(500 * time.Millisecond)
	if tp.Count() != 0 {
		t.Errorf("Count after window = %d, want 0", tp.Count())
	}

	tp.Tap()
	clock.Advance(499 * time.Millisecond)
	if !tp.Tap() {
		t.Error("second tap inside the window should fire")
	}

	tp.Tap()
	tp.Reset()
	if tp.Count() != 0 || clock.Pending() != 0 {
		t.Errorf("Reset left count=%d pending=%d", tp.Count(), clock.Pending())
	}
}

func TestTapper_MinimumOne(t *testing.T) {
	tp := NewTapper(timer.NewManual(), time.Second, 0)
	if !tp.Tap() {
		t.Error("a tapper needing zero taps behaves as needing one")
	}
}
