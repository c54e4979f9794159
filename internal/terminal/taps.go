// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"
	"time"

	"github.com/SwayamPurwar/portfolio-term/internal/timer"
	"github.com/SwayamPurwar/portfolio-term/internal/util"
)

// Tapper fires when an event repeats need times with less than window
// between consecutive events.
type Tapper struct {
	timers timer.Scheduler
	window time.Duration
	need   int

	count int
	reset timer.ID
}

// NewTapper returns a Tapper for need taps within window of each other.
func NewTapper(timers timer.Scheduler, window time.Duration, need int) *Tapper {
	if need < 1 {
		need = 1
	}
	return &Tapper{timers: timers, window: window, need: need}
}

// Tap records one event and reports whether it completed the series.
func (t *Tapper) Tap() bool {
	t.count++
	if t.reset != 0 {
		t.timers.Cancel(t.reset)
	}
	t.reset = t.timers.After(t.window, func() {
		t.count = 0
		t.reset = 0
	})
	if t.count == t.need {
		t.count = 0
		return true
	}
	return false
}

// Count returns the taps recorded in the current series.
func (t *Tapper) Count() int { return t.count }

// Reset forgets the current series.
func (t *Tapper) Reset() {
	if t.reset != 0 {
		t.timers.Cancel(t.reset)
		t.reset = 0
	}
	t.count = 0
}

// Sequence reports when the last keys typed spell word.
type Sequence struct {
	word string
	buf  string
}

// NewSequence watches for word, compared case-insensitively.
func NewSequence(word string) *Sequence {
	return &Sequence{word: strings.ToLower(word)}
}

// Feed adds a key press. Named keys such as "enter" count as their name,
// the same way a browser's KeyboardEvent.key would.
func (s *Sequence) Feed(key string) bool {
	s.buf = util.LastN(s.buf+strings.ToLower(key), util.RuneLen(s.word))
	return s.buf == s.word
}
