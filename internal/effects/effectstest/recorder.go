// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package effectstest provides a recording implementation of every effects
// collaborator for use in tests.
package effectstest

import (
	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
)

// Recorder records every collaborator call in order.
type Recorder struct {
	Navigations []string
	Opened      []string
	Cues        []effects.Cue
	Accents     []string
	Glows       []string
	Themes      []appstate.Theme

	Matrix      bool
	MatrixCalls []bool
	Blackouts   int
	Gravity     int
	Boss        int

	// Calls is the flattened call log, e.g. "navigate about.html".
	Calls []string
}

// New returns an empty recorder.
func New() *Recorder { return &Recorder{} }

// Set returns an effects.Set backed entirely by r.
func (r *Recorder) Set() effects.Set {
	return effects.Set{Navigator: r, Opener: r, Cues: r, Theme: r, Visuals: r, Boss: r}
}

func (r *Recorder) NavigateTo(target string) {
	r.Navigations = append(r.Navigations, target)
	r.Calls = append(r.Calls, "navigate "+target)
}

func (r *Recorder) OpenExternal(url string) {
	r.Opened = append(r.Opened, url)
	r.Calls = append(r.Calls, "open "+url)
}

func (r *Recorder) PlayCue(cue effects.Cue) {
	r.Cues = append(r.Cues, cue)
	r.Calls = append(r.Calls, "cue "+string(cue))
}

func (r *Recorder) SetAccent(value string) {
	r.Accents = append(r.Accents, value)
	r.Calls = append(r.Calls, "accent "+value)
}

func (r *Recorder) SetGlow(value string) {
	r.Glows = append(r.Glows, value)
	r.Calls = append(r.Calls, "glow "+value)
}

func (r *Recorder) SetTheme(theme appstate.Theme) {
	r.Themes = append(r.Themes, theme)
	r.Calls = append(r.Calls, "theme "+string(theme))
}

func (r *Recorder) ToggleMatrix(enable bool) {
	r.MatrixCalls = append(r.MatrixCalls, enable)
	if enable {
		r.Calls = append(r.Calls, "matrix on")
	} else {
		r.Calls = append(r.Calls, "matrix off")
	}
	r.Matrix = enable
}

func (r *Recorder) ToggleBlackout() {
	r.Blackouts++
	r.Calls = append(r.Calls, "blackout")
}

func (r *Recorder) StartGravity() {
	r.Gravity++
	r.Calls = append(r.Calls, "gravity")
}

func (r *Recorder) ToggleBoss() {
	r.Boss++
	r.Calls = append(r.Calls, "boss")
}
