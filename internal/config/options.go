// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"github.com/SwayamPurwar/portfolio-term/internal/commands"
	"github.com/SwayamPurwar/portfolio-term/internal/reveal"
	"github.com/SwayamPurwar/portfolio-term/internal/terminal"
)

// TerminalOptions maps the configuration onto the terminal controller.
func (c *Config) TerminalOptions() terminal.Options {
	return terminal.Options{
		Prompt:       c.Terminal.Prompt,
		ScrollSettle: c.Terminal.ScrollSettle,
		TapWindow:    c.Effects.TapWindow,
		TapCount:     c.Effects.TapCount,
		MatrixWord:   c.Effects.MatrixWord,
		Timing: reveal.Timing{
			ThinkingDelay: c.Chat.ThinkingDelay,
			CharInterval:  c.Chat.CharInterval,
			ActionDelay:   c.Chat.ActionDelay,
		},
		Settings: commands.Settings{
			HomeTarget:    c.Site.Home,
			AboutTarget:   c.Site.About,
			WorkTarget:    c.Site.Work,
			SocialURL:     c.Site.SocialURL,
			WorkingDir:    c.Site.WorkingDir,
			Listing:       c.Site.Listing,
			BlackoutDelay: c.Effects.BlackoutDelay,
			GravityDelay:  c.Effects.GravityDelay,
		},
	}
}
