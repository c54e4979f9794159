// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
)

// =============================================================================
// ACCENT COLORS
// =============================================================================

// Lavender - Default site accent
var Lavender = lipgloss.AdaptiveColor{Light: "#7E5FA6", Dark: "#BFA5D8"}

// Matrix - Phosphor green used while the rain runs
var Matrix = lipgloss.AdaptiveColor{Light: "#008F11", Dark: "#00FF41"}

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Rose - Alerts and critical lines
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Cyan - The visitor's own chat lines
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// =============================================================================
// SURFACE AND TEXT COLORS
// =============================================================================

var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#0E0E12"}
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#16161D"}
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#2A2A35"}

var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#E4E4E7"}
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A1A1AA"}
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#71717A"}

// =============================================================================
// SCHEMES
// =============================================================================

// Scheme is the set of body colours for one site theme.
type Scheme struct {
	Name       appstate.Theme
	Background lipgloss.TerminalColor
	Surface    lipgloss.TerminalColor
	Border     lipgloss.TerminalColor
	Text       lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
}

var (
	DefaultScheme = Scheme{
		Name:       appstate.ThemeDefault,
		Background: Surface,
		Surface:    SurfaceDim,
		Border:     Overlay,
		Text:       TextPrimary,
		Muted:      TextMuted,
	}

	BlueprintScheme = Scheme{
		Name:       appstate.ThemeBlueprint,
		Background: lipgloss.Color("#0B3A75"),
		Surface:    lipgloss.Color("#0F4C96"),
		Border:     lipgloss.Color("#7FB2F0"),
		Text:       lipgloss.Color("#F0F6FF"),
		Muted:      lipgloss.Color("#A9C8F0"),
	}

	PaperScheme = Scheme{
		Name:       appstate.ThemePaper,
		Background: lipgloss.Color("#F4EFE6"),
		Surface:    lipgloss.Color("#EAE3D6"),
		Border:     lipgloss.Color("#B8AE9C"),
		Text:       lipgloss.Color("#2B2B2B"),
		Muted:      lipgloss.Color("#6F6A60"),
	}
)

// SchemeFor returns the scheme of a site theme, DefaultScheme when unknown.
func SchemeFor(theme appstate.Theme) Scheme {
	switch theme {
	case appstate.ThemeBlueprint:
		return BlueprintScheme
	case appstate.ThemePaper:
		return PaperScheme
	default:
		return DefaultScheme
	}
}

// =============================================================================
// RUNTIME ACCENTS
// =============================================================================

// namedColors covers the CSS colour keywords visitors are likely to try.
var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#FFFFFF",
	"red":     "#FF0000",
	"green":   "#008000",
	"lime":    "#00FF00",
	"blue":    "#0000FF",
	"yellow":  "#FFFF00",
	"cyan":    "#00FFFF",
	"aqua":    "#00FFFF",
	"magenta": "#FF00FF",
	"fuchsia": "#FF00FF",
	"orange":  "#FFA500",
	"purple":  "#800080",
	"pink":    "#FFC0CB",
	"hotpink": "#FF69B4",
	"gold":    "#FFD700",
	"teal":    "#008080",
	"navy":    "#000080",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#C0C0C0",
	"violet":  "#EE82EE",
	"indigo":  "#4B0082",
	"coral":   "#FF7F50",
	"crimson": "#DC143C",
	"tomato":  "#FF6347",
}

// ParseColor resolves a CSS hex value (#rgb or #rrggbb, '#' optional) or a
// colour keyword.
func ParseColor(value string) (colorful.Color, bool) {
	v := strings.ToLower(strings.TrimSpace(value))
	if hex, ok := namedColors[v]; ok {
		v = hex
	}
	if v != "" && !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) != 4 && len(v) != 7 {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex(v)
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

// AccentColor returns value as a terminal colour, or Lavender if it cannot
// be parsed.
func AccentColor(value string) lipgloss.TerminalColor {
	c, ok := ParseColor(value)
	if !ok {
		return Lavender
	}
	return lipgloss.Color(c.Clamped().Hex())
}

// GlowColor is the accent blended most of the way into the background. It
// tints the terminal panel border while a custom accent is set.
func GlowColor(accent string, dark bool) lipgloss.TerminalColor {
	c, ok := ParseColor(accent)
	if !ok {
		return Overlay
	}
	bg, _ := colorful.Hex("#FFFFFF")
	if dark {
		bg, _ = colorful.Hex("#0E0E12")
	}
	return lipgloss.Color(c.BlendLab(bg, 0.6).Clamped().Hex())
}
