// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"strings"

	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
)

// MatrixAccent is the accent colour while the matrix rain runs.
const MatrixAccent = "#0F0"

// Site applies navigation, theme and visual effects to an appstate.State.
type Site struct {
	state *appstate.State
	cues  CuePlayer
	log   *zap.Logger

	// OnUnload runs after a page path has been loaded. Hosts use it to
	// reset the terminal session.
	OnUnload func(page string)
}

// NewSite wires a Site to state. cues may be nil.
func NewSite(state *appstate.State, cues CuePlayer, log *zap.Logger) *Site {
	if log == nil {
		log = zap.NewNop()
	}
	return &Site{state: state, cues: cues, log: log}
}

// NavigateTo implements Navigator.
func (s *Site) NavigateTo(target string) {
	if strings.HasPrefix(target, "#") {
		s.state.Anchor = target
		s.log.Debug("scroll to anchor", zap.String("anchor", target))
		return
	}

	page := PageName(target)
	s.log.Info("page navigation", zap.String("target", target), zap.String("page", page))
	s.state.LoadPage(page)
	if s.OnUnload != nil {
		s.OnUnload(page)
	}
}

// PageName maps a page path such as "about.html" or "/about" to its name.
func PageName(target string) string {
	name := strings.Trim(target, "/")
	name = strings.TrimSuffix(name, ".html")
	if name == "" {
		return appstate.PageIndex
	}
	return name
}

// SetAccent implements ThemeSetter.
func (s *Site) SetAccent(value string) {
	s.state.Accent = value
}

// SetGlow implements ThemeSetter.
func (s *Site) SetGlow(value string) {
	s.state.Glow = value
}

// SetTheme implements ThemeSetter.
func (s *Site) SetTheme(theme appstate.Theme) {
	s.state.Theme = theme
}

// ToggleMatrix implements Visuals. Disabling always restores the default
// accent, even if the rain was not running.
func (s *Site) ToggleMatrix(enable bool) {
	if !enable {
		s.state.Matrix = false
		s.state.Accent = s.state.DefaultAccent
		return
	}
	if s.state.Matrix {
		return
	}
	s.state.Matrix = true
	s.state.Accent = MatrixAccent
}

// ToggleBlackout implements Visuals. Cutting power clicks, restoring it
// plays the boot cue.
func (s *Site) ToggleBlackout() {
	s.state.Blackout = !s.state.Blackout
	if s.state.Blackout {
		s.play(CueClick)
	} else {
		s.play(CueBoot)
	}
}

// StartGravity implements Visuals.
func (s *Site) StartGravity() {
	s.state.Gravity = true
}

// ToggleBoss flips the fake code editor screen.
func (s *Site) ToggleBoss() {
	s.state.Boss = !s.state.Boss
}

func (s *Site) play(cue Cue) {
	if s.cues != nil {
		s.cues.PlayCue(cue)
	}
}
