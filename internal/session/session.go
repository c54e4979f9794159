// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package session

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// MODE
// =============================================================================

// Mode selects how a submitted line is interpreted.
type Mode int

const (
	// ModeCommand routes input to the command dispatcher.
	ModeCommand Mode = iota
	// ModeChat routes input to the chat assistant.
	ModeChat
)

// String returns the mode name shown in the status bar.
func (m Mode) String() string {
	switch m {
	case ModeCommand:
		return "command"
	case ModeChat:
		return "chat"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// =============================================================================
// SESSION
// =============================================================================

// Session is the state of one terminal run. It is owned by the terminal
// controller and not safe for concurrent use.
type Session struct {
	id           string
	open         bool
	mode         Mode
	started      time.Time
	lastActivity time.Time
	now          func() time.Time
}

// New creates a closed session in Command mode.
func New() *Session {
	return NewWithClock(time.Now)
}

// NewWithClock is New with an injectable clock.
func NewWithClock(now func() time.Time) *Session {
	t := now()
	return &Session{
		id:           uuid.NewString(),
		mode:         ModeCommand,
		started:      t,
		lastActivity: t,
		now:          now,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// IsOpen reports whether the terminal is visible.
func (s *Session) IsOpen() bool { return s.open }

// Mode returns the current input mode.
func (s *Session) Mode() Mode { return s.mode }

// Toggle flips the open flag and returns the new value.
func (s *Session) Toggle() bool {
	s.open = !s.open
	s.Touch()
	return s.open
}

// SetMode switches the input mode.
func (s *Session) SetMode(m Mode) {
	s.mode = m
}

// Touch records user activity.
func (s *Session) Touch() {
	s.lastActivity = s.now()
}

// Reset returns the session to its initial closed Command state under a new
// identity, as happens when the page is unloaded.
func (s *Session) Reset() {
	t := s.now()
	s.id = uuid.NewString()
	s.open = false
	s.mode = ModeCommand
	s.started = t
	s.lastActivity = t
}

// =============================================================================
// STATUS
// =============================================================================

// Status is a snapshot for the status bar and `config show`-style output.
type Status struct {
	ID       string
	Open     bool
	Mode     Mode
	Started  time.Time
	Uptime   time.Duration
	IdleTime time.Duration
}

// Status returns a snapshot of the session.
func (s *Session) Status() Status {
	now := s.now()
	return Status{
		ID:       s.id,
		Open:     s.open,
		Mode:     s.mode,
		Started:  s.started,
		Uptime:   now.Sub(s.started),
		IdleTime: now.Sub(s.lastActivity),
	}
}

// FormatDuration returns a compact human-readable duration.
func FormatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	if secs == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	return fmt.Sprintf("%dm %ds", mins, secs)
}
