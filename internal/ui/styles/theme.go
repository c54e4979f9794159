// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
)

// Theme holds all the styled components for the application.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	Scheme      Scheme
	AccentValue string
	CustomGlow  bool

	// ==========================================================================
	// PAGE STYLES
	// ==========================================================================

	App       lipgloss.Style
	Header    lipgloss.Style
	Logo      lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style
	Page      lipgloss.Style
	Footer    lipgloss.Style
	Hint      lipgloss.Style

	// ==========================================================================
	// TERMINAL PANEL STYLES
	// ==========================================================================

	Panel       lipgloss.Style
	PanelTitle  lipgloss.Style
	Prompt      lipgloss.Style
	ChatPrompt  lipgloss.Style
	InputText   lipgloss.Style
	Placeholder lipgloss.Style
	Spinner     lipgloss.Style

	// ==========================================================================
	// OUTPUT CLASSES
	// ==========================================================================

	Accent lipgloss.Style
	Muted  lipgloss.Style
	You    lipgloss.Style
	Sam    lipgloss.Style
	Alert  lipgloss.Style

	// ==========================================================================
	// OVERLAYS
	// ==========================================================================

	Preloader lipgloss.Style
	Blackout  lipgloss.Style
	Rain      lipgloss.Style
	RainHead  lipgloss.Style
}

// NewTheme creates a theme for the current terminal.
func NewTheme(scheme appstate.Theme, accent string) *Theme {
	profile := termenv.ColorProfile()
	return newTheme(profile, termenv.HasDarkBackground(), scheme, accent)
}

func newTheme(profile termenv.Profile, dark bool, scheme appstate.Theme, accent string) *Theme {
	t := &Theme{
		IsDark:       dark,
		HasTrueColor: profile == termenv.TrueColor,
		ColorProfile: profile,
	}
	t.Apply(scheme, accent, false)
	return t
}

// Apply rebuilds the styles for a scheme and accent. customGlow tints the
// panel border with the accent's glow.
func (t *Theme) Apply(scheme appstate.Theme, accent string, customGlow bool) {
	t.Scheme = SchemeFor(scheme)
	t.AccentValue = accent
	t.CustomGlow = customGlow
	t.initStyles()
}

// Matches reports whether the theme was built for these inputs.
func (t *Theme) Matches(scheme appstate.Theme, accent string, customGlow bool) bool {
	return t.Scheme.Name == scheme && t.AccentValue == accent && t.CustomGlow == customGlow
}

func (t *Theme) initStyles() {
	s := t.Scheme
	accent := AccentColor(t.AccentValue)

	border := s.Border
	if t.CustomGlow {
		border = GlowColor(t.AccentValue, t.IsDark)
	}

	t.App = lipgloss.NewStyle().
		Foreground(s.Text)

	t.Header = lipgloss.NewStyle().
		Padding(0, 2).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(s.Border)

	t.Logo = lipgloss.NewStyle().
		Bold(true).
		Foreground(accent)

	t.NavItem = lipgloss.NewStyle().
		Foreground(s.Muted).
		Padding(0, 1)

	t.NavActive = lipgloss.NewStyle().
		Foreground(accent).
		Underline(true).
		Padding(0, 1)

	t.Page = lipgloss.NewStyle().
		Padding(0, 2)

	t.Footer = lipgloss.NewStyle().
		Foreground(s.Muted).
		Padding(0, 2)

	t.Hint = lipgloss.NewStyle().
		Foreground(s.Muted).
		Italic(true)

	t.Panel = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)

	t.PanelTitle = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.Prompt = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.ChatPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.InputText = lipgloss.NewStyle().
		Foreground(s.Text)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(s.Muted)

	t.Spinner = lipgloss.NewStyle().
		Foreground(accent)

	t.Accent = lipgloss.NewStyle().
		Foreground(accent)

	t.Muted = lipgloss.NewStyle().
		Foreground(s.Muted)

	t.You = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.Sam = lipgloss.NewStyle().
		Foreground(accent).
		Bold(true)

	t.Alert = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.Preloader = lipgloss.NewStyle().
		Foreground(accent).
		Align(lipgloss.Center)

	t.Blackout = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#3F3F46")).
		Background(lipgloss.Color("#000000"))

	t.Rain = lipgloss.NewStyle().
		Foreground(Matrix)

	t.RainHead = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#E8FFE8")).
		Bold(true)
}

// Palette maps the output log's rich-text classes to styles.
func (t *Theme) Palette() output.Palette {
	return output.Palette{
		output.ClassAccent: t.Accent,
		output.ClassMuted:  t.Muted,
		output.ClassYou:    t.You,
		output.ClassSam:    t.Sam,
		output.ClassAlert:  t.Alert,
	}
}

// SetSize updates the theme dimensions for responsive layouts.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

// GetLayoutMode returns the current layout mode based on width.
func (t *Theme) GetLayoutMode() LayoutMode {
	if t.Width < 60 {
		return LayoutNarrow
	}
	if t.Width < 100 {
		return LayoutMedium
	}
	return LayoutWide
}

// LayoutMode represents the current responsive layout mode.
type LayoutMode int

const (
	LayoutNarrow LayoutMode = iota // < 60 columns
	LayoutMedium                   // 60-100 columns
	LayoutWide                     // >= 100 columns
)
