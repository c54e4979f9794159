// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the portfolio-term TUI.

# Color System (colors.go)

Fixed colours use Lip Gloss AdaptiveColor for light/dark terminals. The
site's accent is not fixed: the visitor can change it with the color
command, so AccentColor and GlowColor resolve arbitrary values (hex or CSS
colour names) at runtime with go-colorful.

# Schemes

Three body schemes mirror the site themes:

	default   - dark terminal with a lavender accent
	blueprint - white lines on drafting-table blue
	paper     - ink on cream

# Theme (theme.go)

Theme holds every lipgloss.Style the views use. Rebuild it with Apply when
the accent or scheme changes; Palette maps the output log's rich-text
classes onto it.

# Animations (animations.go)

Spinner frames for the chat thinking indicator, the preloader progress bar,
the matrix glyph set and easing curves for the gravity drop.
*/
package styles
