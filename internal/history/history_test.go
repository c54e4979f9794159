// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package history

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func filled(entries ...string) *Buffer {
	b := New()
	for _, e := range entries {
		b.Append(e)
	}
	return b
}

// =============================================================================
// NAVIGATION TESTS
// =============================================================================

func TestBack_SaturatesAtOldest(t *testing.T) {
	b := filled("ls", "pwd")

	steps := []string{b.Back(), b.Back(), b.Back()}
	want := []string{"pwd", "ls", "ls"}
	if diff := cmp.Diff(want, steps); diff != "" {
		t.Errorf("Back sequence mismatch (-want +got):\n%s", diff)
	}
	if b.Cursor() != 1 {
		t.Errorf("Cursor = %d, want 1", b.Cursor())
	}
}

func TestForward_LeavesBrowsing(t *testing.T) {
	b := filled("ls", "pwd")
	b.Back()
	b.Back()

	if got := b.Forward(); got != "pwd" {
		t.Errorf("first Forward = %q, want %q", got, "pwd")
	}
	if got := b.Forward(); got != "" {
		t.Errorf("second Forward = %q, want empty", got)
	}
	if b.Cursor() != NotBrowsing {
		t.Errorf("Cursor = %d, want %d", b.Cursor(), NotBrowsing)
	}
	if got := b.Forward(); got != "" || b.Cursor() != NotBrowsing {
		t.Errorf("Forward while not browsing = (%q, %d)", got, b.Cursor())
	}
}

func TestBack_EmptyBuffer(t *testing.T) {
	b := New()
	if got := b.Back(); got != "" {
		t.Errorf("Back on empty buffer = %q", got)
	}
	if b.Cursor() != NotBrowsing {
		t.Errorf("Cursor = %d, want %d", b.Cursor(), NotBrowsing)
	}
}

func TestCursorStaysInRange(t *testing.T) {
	b := filled("a", "b", "c")
	moves := []func() string{b.Back, b.Back, b.Forward, b.Back, b.Back, b.Back, b.Back, b.Forward, b.Forward, b.Forward, b.Forward}
	for i, move := range moves {
		move()
		if c := b.Cursor(); c < NotBrowsing || c > b.Len()-1 {
			t.Fatalf("step %d: cursor %d out of range", i, c)
		}
	}
}

// =============================================================================
// MUTATION TESTS
// =============================================================================

func TestAppend_ResetsCursor(t *testing.T) {
	b := filled("ls")
	b.Back()
	b.Append("help")

	if b.Cursor() != NotBrowsing {
		t.Errorf("Cursor after Append = %d", b.Cursor())
	}
	if diff := cmp.Diff([]string{"ls", "help"}, b.Entries()); diff != "" {
		t.Errorf("Entries mismatch (-want +got):\n%s", diff)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	b := filled("ls")
	got := b.Entries()
	got[0] = "mutated"
	if b.Entries()[0] != "ls" {
		t.Error("Entries should not expose internal storage")
	}
}

func TestClear(t *testing.T) {
	b := filled("ls", "pwd")
	b.Back()
	b.Clear()
	if b.Len() != 0 || b.Cursor() != NotBrowsing {
		t.Errorf("after Clear: len=%d cursor=%d", b.Len(), b.Cursor())
	}
}
