// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package appstate holds the process-wide UI state that the terminal's
// collaborators mutate: accent colour, theme, current page and the visual
// effect flags. It is created once at startup and handed to the effects
// layer; views read it, only effects write it.
package appstate

// Theme is a body-level colour scheme.
type Theme string

const (
	ThemeDefault   Theme = ""
	ThemeBlueprint Theme = "blueprint"
	ThemePaper     Theme = "paper"
)

// Pages the site can show.
const (
	PageIndex = "index"
	PageAbout = "about"
)

// State is the shared UI state. Fields are exported for rendering; mutate
// them through the effects package so cues and invariants stay consistent.
type State struct {
	// DefaultAccent is restored when the matrix effect ends.
	DefaultAccent string
	Accent        string
	// Glow is the ambient glow expression set alongside a custom accent.
	Glow  string
	Theme Theme

	Page   string
	Anchor string

	// Preloading is true while the page-load overlay is showing; the
	// terminal toggle key is ignored meanwhile.
	Preloading bool

	Matrix   bool
	Blackout bool
	Gravity  bool
	Boss     bool

	// Visits counts page loads, including the first.
	Visits int
}

// New returns the state of a freshly loaded index page.
func New(defaultAccent string) *State {
	return &State{
		DefaultAccent: defaultAccent,
		Accent:        defaultAccent,
		Page:          PageIndex,
		Visits:        1,
	}
}

// LoadPage switches to page as a full navigation. Everything set at runtime
// belongs to the old page and is dropped.
func (s *State) LoadPage(page string) {
	visits := s.Visits
	*s = *New(s.DefaultAccent)
	s.Page = page
	s.Visits = visits + 1
}
