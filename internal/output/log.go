// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package output holds the terminal's scrollback: an ordered list of
// committed lines plus at most one transient pending line.
//
// Lines are either plain text, shown verbatim, or rich fragments: a small
// HTML subset (div, span, br, b with class attributes) that is sanitized on
// the way in and rendered to styled terminal text by Render.
package output

import (
	"html"

	"github.com/microcosm-cc/bluemonday"
)

// Line is a single committed entry in the log.
type Line struct {
	Content string
	Rich    bool
}

// Log is the output buffer of one terminal session. Committed lines are
// never modified; the only way to remove them is Clear.
//
// The pending line (the chat placeholder, then the partially revealed reply)
// is kept outside the committed list so it can be replaced on every reveal
// step and committed once complete.
type Log struct {
	lines    []Line
	pending  *Line
	policy   *bluemonday.Policy
	revision uint64
	clears   uint64
}

// New returns an empty log.
func New() *Log {
	return &Log{policy: Policy()}
}

// Append commits a plain-text line.
func (l *Log) Append(text string) {
	l.lines = append(l.lines, Line{Content: text})
	l.revision++
}

// AppendRich commits a rich fragment after sanitizing it.
func (l *Log) AppendRich(fragment string) {
	l.lines = append(l.lines, Line{Content: l.policy.Sanitize(fragment), Rich: true})
	l.revision++
}

// Clear removes every committed line. A pending line survives.
func (l *Log) Clear() {
	l.lines = nil
	l.revision++
	l.clears++
}

// Lines returns a copy of the committed lines, oldest first.
func (l *Log) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Len returns the number of committed lines.
func (l *Log) Len() int { return len(l.lines) }

// Last returns the newest committed line.
func (l *Log) Last() (Line, bool) {
	if len(l.lines) == 0 {
		return Line{}, false
	}
	return l.lines[len(l.lines)-1], true
}

// SetPending replaces the pending line with a rich fragment.
func (l *Log) SetPending(fragment string) {
	l.pending = &Line{Content: l.policy.Sanitize(fragment), Rich: true}
	l.revision++
}

// Pending returns the pending line, if any.
func (l *Log) Pending() (Line, bool) {
	if l.pending == nil {
		return Line{}, false
	}
	return *l.pending, true
}

// ClearPending discards the pending line without committing it.
func (l *Log) ClearPending() {
	if l.pending == nil {
		return
	}
	l.pending = nil
	l.revision++
}

// CommitPending moves the pending line into the committed list.
func (l *Log) CommitPending() {
	if l.pending == nil {
		return
	}
	l.lines = append(l.lines, *l.pending)
	l.pending = nil
	l.revision++
}

// Revision changes on every mutation. Views use it to skip re-rendering.
func (l *Log) Revision() uint64 { return l.revision }

// Clears counts calls to Clear. Writers that print incrementally compare it
// to notice a clear even when the log has since grown past its old length.
func (l *Log) Clears() uint64 { return l.clears }

// Escape makes user-supplied text safe to embed in a rich fragment.
func Escape(text string) string {
	return html.EscapeString(text)
}
