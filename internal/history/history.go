// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history records submitted terminal lines and lets the input field
// walk back through them with the arrow keys.
//
// The cursor counts backwards from the newest entry: -1 means the user is not
// browsing, 0 is the most recent line, Len()-1 the oldest. Every Append puts
// the cursor back to -1.
package history

// NotBrowsing is the cursor value outside of history navigation.
const NotBrowsing = -1

// Buffer is an append-only list of submitted lines plus a browse cursor.
// It is not safe for concurrent use; the terminal controller owns it.
type Buffer struct {
	entries []string
	cursor  int
}

// New returns an empty buffer.
func New() *Buffer {
	return &Buffer{cursor: NotBrowsing}
}

// Append records a submitted line and resets the cursor.
func (b *Buffer) Append(entry string) {
	b.entries = append(b.entries, entry)
	b.cursor = NotBrowsing
}

// Back moves one step towards older entries and returns the entry under the
// cursor. At the oldest entry it stays put. An empty buffer yields "".
func (b *Buffer) Back() string {
	if len(b.entries) == 0 {
		return ""
	}
	if b.cursor < len(b.entries)-1 {
		b.cursor++
	}
	return b.at(b.cursor)
}

// Forward moves one step towards newer entries. Stepping past the newest
// entry leaves browsing mode and returns "".
func (b *Buffer) Forward() string {
	if b.cursor > 0 {
		b.cursor--
		return b.at(b.cursor)
	}
	b.cursor = NotBrowsing
	return ""
}

// Entries returns a copy of the entries, oldest first.
func (b *Buffer) Entries() []string {
	out := make([]string, len(b.entries))
	copy(out, b.entries)
	return out
}

// Len returns the number of recorded entries.
func (b *Buffer) Len() int { return len(b.entries) }

// Cursor returns the current browse position.
func (b *Buffer) Cursor() int { return b.cursor }

// ResetCursor leaves browsing mode without touching the entries.
func (b *Buffer) ResetCursor() { b.cursor = NotBrowsing }

// Clear drops every entry. Used when the session is unloaded.
func (b *Buffer) Clear() {
	b.entries = nil
	b.cursor = NotBrowsing
}

func (b *Buffer) at(cursor int) string {
	return b.entries[len(b.entries)-1-cursor]
}
