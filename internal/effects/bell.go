// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Bell plays cues as terminal bells. Like browser audio it stays silent
// until the visitor has interacted once (Unlock), and bursts are rate
// limited so a flurry of cues rings once.
type Bell struct {
	out      io.Writer
	enabled  bool
	unlocked bool
	limiter  *rate.Limiter
	log      *zap.Logger
}

// NewBell returns a bell writing to out. A disabled bell only logs.
func NewBell(out io.Writer, enabled bool, log *zap.Logger) *Bell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bell{
		out:     out,
		enabled: enabled,
		limiter: rate.NewLimiter(rate.Every(250*time.Millisecond), 1),
		log:     log,
	}
}

// Unlock allows cues to sound. Hosts call it on the first key press.
func (b *Bell) Unlock() { b.unlocked = true }

// Unlocked reports whether audio has been unlocked.
func (b *Bell) Unlocked() bool { return b.unlocked }

// PlayCue implements CuePlayer.
func (b *Bell) PlayCue(cue Cue) {
	if !b.enabled || !b.unlocked {
		b.log.Debug("cue muted", zap.String("cue", string(cue)), zap.Bool("unlocked", b.unlocked))
		return
	}
	if !b.limiter.Allow() {
		return
	}
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		b.log.Debug("cue failed", zap.String("cue", string(cue)), zap.Error(err))
	}
}
