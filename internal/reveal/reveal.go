// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package reveal presents an assistant reply the way a typing terminal
// would: a thinking placeholder, then the text one character at a time,
// then an optional follow-up action.
//
// The sequence is an explicit state machine driven by timer.Scheduler
// callbacks:
//
//	Idle -> Thinking -> Revealing -> AwaitingAction -> Done
//
// AwaitingAction is skipped when the reply has no action.
package reveal

import (
	"errors"
	"fmt"
	"time"

	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
)

// ErrBusy is returned by Start while a sequence is in progress.
var ErrBusy = errors.New("reveal: sequence in progress")

// Prefix starts every assistant line.
const Prefix = `<span class="` + output.ClassSam + `">S.A.M. &gt;</span> `

// Placeholder is shown while the assistant is "thinking".
const Placeholder = Prefix + "Thinking..."

// State is a step of the reveal sequence.
type State int

const (
	StateIdle State = iota
	StateThinking
	StateRevealing
	StateAwaitingAction
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateThinking:
		return "thinking"
	case StateRevealing:
		return "revealing"
	case StateAwaitingAction:
		return "awaiting-action"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Timing controls the pace of a sequence.
type Timing struct {
	ThinkingDelay time.Duration
	CharInterval  time.Duration
	ActionDelay   time.Duration
}

// DefaultTiming returns the site's pacing.
func DefaultTiming() Timing {
	return Timing{
		ThinkingDelay: 800 * time.Millisecond,
		CharInterval:  30 * time.Millisecond,
		ActionDelay:   600 * time.Millisecond,
	}
}

// Revealer runs one sequence at a time into an output log's pending line.
type Revealer struct {
	log    *output.Log
	timers timer.Scheduler
	timing Timing

	state  State
	text   []rune
	pos    int
	action func()
	timer  timer.ID

	onStep func()
	onDone func()
}

// New creates an idle revealer.
func New(log *output.Log, timers timer.Scheduler, timing Timing) *Revealer {
	return &Revealer{log: log, timers: timers, timing: timing}
}

// OnStep registers fn to run after every revealed character.
func (r *Revealer) OnStep(fn func()) { r.onStep = fn }

// OnDone registers fn to run when a sequence reaches Done.
func (r *Revealer) OnDone(fn func()) { r.onDone = fn }

// SetTiming changes the pacing of future steps.
func (r *Revealer) SetTiming(t Timing) { r.timing = t }

// State returns the current step.
func (r *Revealer) State() State { return r.state }

// Busy reports whether a sequence is in progress.
func (r *Revealer) Busy() bool {
	switch r.state {
	case StateThinking, StateRevealing, StateAwaitingAction:
		return true
	}
	return false
}

// Start begins revealing text. action, if non-nil, runs ActionDelay after
// the full line has been committed.
func (r *Revealer) Start(text string, action func()) error {
	if r.Busy() {
		return ErrBusy
	}
	r.state = StateThinking
	r.text = []rune(text)
	r.pos = 0
	r.action = action
	r.log.SetPending(Placeholder)
	r.timer = r.timers.After(r.timing.ThinkingDelay, r.beginReveal)
	return nil
}

// Cancel abandons the sequence: the pending line and any scheduled step or
// action are dropped, and the revealer returns to Idle.
func (r *Revealer) Cancel() {
	if r.timer != 0 {
		r.timers.Cancel(r.timer)
		r.timer = 0
	}
	r.log.ClearPending()
	r.state = StateIdle
	r.text = nil
	r.pos = 0
	r.action = nil
}

func (r *Revealer) beginReveal() {
	r.state = StateRevealing
	r.log.SetPending(Prefix)
	r.timer = r.timers.After(r.timing.CharInterval, r.step)
}

func (r *Revealer) step() {
	if r.pos < len(r.text) {
		r.pos++
	}
	r.log.SetPending(Prefix + output.Escape(string(r.text[:r.pos])))
	if r.onStep != nil {
		r.onStep()
	}

	if r.pos < len(r.text) {
		r.timer = r.timers.After(r.timing.CharInterval, r.step)
		return
	}

	r.log.CommitPending()
	if r.action == nil {
		r.finish()
		return
	}
	r.state = StateAwaitingAction
	r.timer = r.timers.After(r.timing.ActionDelay, func() {
		action := r.action
		r.action = nil
		action()
		if r.state == StateAwaitingAction {
			r.finish()
		}
	})
}

func (r *Revealer) finish() {
	r.timer = 0
	r.state = StateDone
	if r.onDone != nil {
		r.onDone()
	}
}
