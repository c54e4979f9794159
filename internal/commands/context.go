// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"math/rand"
	"time"

	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/history"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
)

// Terminal is the slice of the session controller that commands may drive.
type Terminal interface {
	// Toggle opens or closes the terminal.
	Toggle()
	// SetMode switches between Command and Chat mode.
	SetMode(m session.Mode)
}

// Settings are the site-specific values handlers print or navigate to.
type Settings struct {
	HomeTarget  string
	AboutTarget string
	WorkTarget  string
	SocialURL   string
	WorkingDir  string
	Listing     string

	BlackoutDelay time.Duration
	GravityDelay  time.Duration
}

// DefaultSettings returns the swayam.dev values.
func DefaultSettings() Settings {
	return Settings{
		HomeTarget:    "index.html",
		AboutTarget:   "about.html",
		WorkTarget:    "#work",
		SocialURL:     "https://github.com/SwayamPurwar",
		WorkingDir:    "/home/guest/swayam.dev",
		Listing:       "index.html   about.html   work/   contact.exe   cv.pdf",
		BlackoutDelay: 800 * time.Millisecond,
		GravityDelay:  1000 * time.Millisecond,
	}
}

// Context carries everything a handler may use.
type Context struct {
	Log      *output.Log
	History  *history.Buffer
	Terminal Terminal
	FX       effects.Set
	Timers   timer.Scheduler
	Settings Settings

	// Now and Intn are injectable for deterministic tests.
	Now  func() time.Time
	Intn func(n int) int

	dispatch func(line string) error
}

func (c *Context) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Context) intn(n int) int {
	if c.Intn != nil {
		return c.Intn(n)
	}
	return rand.Intn(n)
}

// redispatch runs line through the dispatcher that owns this context.
func (c *Context) redispatch(line string) error {
	if c.dispatch == nil {
		return nil
	}
	return c.dispatch(line)
}
