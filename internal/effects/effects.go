// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package effects implements the terminal's outward-facing collaborators:
// page navigation, external links, audio cues, theming and the visual
// easter eggs. The terminal core only sees the interfaces declared here.
package effects

import "github.com/SwayamPurwar/portfolio-term/internal/appstate"

// =============================================================================
// COLLABORATOR INTERFACES
// =============================================================================

// Navigator moves the visitor around the site. A target starting with '#'
// scrolls to an anchor on the current page; anything else is a page path
// and unloads the terminal session.
type Navigator interface {
	NavigateTo(target string)
}

// Opener opens a URL outside the terminal.
type Opener interface {
	OpenExternal(url string)
}

// Cue names a short sound effect.
type Cue string

const (
	CueClick Cue = "click"
	CueBoot  Cue = "boot"
	CueHover Cue = "hover"
)

// CuePlayer plays sound cues. Playback problems never reach the caller.
type CuePlayer interface {
	PlayCue(cue Cue)
}

// ThemeSetter changes the site's colours.
type ThemeSetter interface {
	SetAccent(value string)
	SetGlow(value string)
	SetTheme(theme appstate.Theme)
}

// Visuals drives the full-screen easter eggs. Enabling an effect that is
// already active is a no-op.
type Visuals interface {
	ToggleMatrix(enable bool)
	ToggleBlackout()
	StartGravity()
}

// BossScreen hides the site behind a fake code editor.
type BossScreen interface {
	ToggleBoss()
}

// Set bundles every collaborator the terminal needs.
type Set struct {
	Navigator Navigator
	Opener    Opener
	Cues      CuePlayer
	Theme     ThemeSetter
	Visuals   Visuals
	Boss      BossScreen
}
