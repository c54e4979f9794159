// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
)

// =============================================================================
// COLOR TESTS
// =============================================================================

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		hex  string
		want bool
	}{
		{"#bfa5d8", "#bfa5d8", true},
		{"#0F0", "#00ff00", true},
		{"ff0000", "#ff0000", true},
		{"Red", "#ff0000", true},
		{" hotpink ", "#ff69b4", true},
		{"", "", false},
		{"#12345", "", false},
		{"chartreuse-ish", "", false},
		{"#zzzzzz", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, ok := ParseColor(tc.in)
			if ok != tc.want {
				t.Fatalf("ParseColor(%q) ok = %v, want %v", tc.in, ok, tc.want)
			}
			if ok && c.Hex() != tc.hex {
				t.Errorf("ParseColor(%q) = %s, want %s", tc.in, c.Hex(), tc.hex)
			}
		})
	}
}

func TestAccentColorFallsBackToLavender(t *testing.T) {
	if got := AccentColor("not a colour"); got != Lavender {
		t.Errorf("AccentColor(invalid) = %v, want Lavender", got)
	}
	if got := AccentColor("#0F0"); got != lipgloss.Color("#00ff00") {
		t.Errorf("AccentColor(#0F0) = %v", got)
	}
}

func TestGlowColorBlendsTowardBackground(t *testing.T) {
	dark, ok := GlowColor("#ff0000", true).(lipgloss.Color)
	if !ok {
		t.Fatal("GlowColor should return a lipgloss.Color for valid input")
	}
	light := GlowColor("#ff0000", false).(lipgloss.Color)
	if dark == light {
		t.Error("glow should depend on the background")
	}
	if dark == lipgloss.Color("#ff0000") {
		t.Error("glow should not equal the accent")
	}
	if GlowColor("nope", true) != Overlay {
		t.Error("invalid accent should fall back to Overlay")
	}
}

func TestSchemeFor(t *testing.T) {
	tests := []struct {
		theme appstate.Theme
		want  appstate.Theme
	}{
		{appstate.ThemeDefault, appstate.ThemeDefault},
		{appstate.ThemeBlueprint, appstate.ThemeBlueprint},
		{appstate.ThemePaper, appstate.ThemePaper},
		{appstate.Theme("neon"), appstate.ThemeDefault},
	}
	for _, tc := range tests {
		if got := SchemeFor(tc.theme).Name; got != tc.want {
			t.Errorf("SchemeFor(%q).Name = %q, want %q", tc.theme, got, tc.want)
		}
	}
}

// =============================================================================
// THEME TESTS
// =============================================================================

func TestNewThemeSetsScheme(t *testing.T) {
	theme := newTheme(termenv.TrueColor, true, appstate.ThemePaper, "#bfa5d8")

	if !theme.HasTrueColor {
		t.Error("TrueColor profile should set HasTrueColor")
	}
	if theme.Scheme.Name != appstate.ThemePaper {
		t.Errorf("Scheme = %q, want paper", theme.Scheme.Name)
	}
	if !theme.Matches(appstate.ThemePaper, "#bfa5d8", false) {
		t.Error("Matches should report the inputs it was built from")
	}
}

func TestThemeApply(t *testing.T) {
	theme := newTheme(termenv.Ascii, true, appstate.ThemeDefault, "#bfa5d8")
	theme.Apply(appstate.ThemeBlueprint, "#0F0", true)

	if !theme.Matches(appstate.ThemeBlueprint, "#0F0", true) {
		t.Error("Apply should record its inputs")
	}
	if theme.Matches(appstate.ThemeBlueprint, "#0F0", false) {
		t.Error("Matches should include the glow flag")
	}
	if got := theme.Accent.GetForeground(); got != lipgloss.Color("#00ff00") {
		t.Errorf("accent foreground = %v", got)
	}
}

func TestPaletteCoversOutputClasses(t *testing.T) {
	theme := newTheme(termenv.Ascii, true, appstate.ThemeDefault, "#bfa5d8")
	pal := theme.Palette()

	for _, class := range []string{output.ClassAccent, output.ClassMuted, output.ClassYou, output.ClassSam, output.ClassAlert} {
		if _, ok := pal[class]; !ok {
			t.Errorf("palette missing class %q", class)
		}
	}
}

func TestLayoutMode(t *testing.T) {
	theme := newTheme(termenv.Ascii, true, appstate.ThemeDefault, "")
	tests := []struct {
		width int
		want  LayoutMode
	}{
		{40, LayoutNarrow},
		{59, LayoutNarrow},
		{60, LayoutMedium},
		{99, LayoutMedium},
		{100, LayoutWide},
	}
	for _, tc := range tests {
		theme.SetSize(tc.width, 24)
		if got := theme.GetLayoutMode(); got != tc.want {
			t.Errorf("width %d: GetLayoutMode() = %v, want %v", tc.width, got, tc.want)
		}
	}
}

// =============================================================================
// ANIMATION TESTS
// =============================================================================

func TestSpinnerConfigs(t *testing.T) {
	for name, s := range map[string]SpinnerConfig{"Dots": DotsSpinner, "Line": LineSpinner} {
		if len(s.Frames) == 0 || s.FPS <= 0 {
			t.Errorf("%s spinner is not usable: %+v", name, s)
		}
	}
	if got := (SpinnerConfig{FPS: 10}).Duration(); got != 100*time.Millisecond {
		t.Errorf("Duration() = %v, want 100ms", got)
	}
}

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		width   int
		percent float64
		want    string
	}{
		{0, 50, ""},
		{10, 0, "----------"},
		{10, 100, "##########"},
		{10, 50, "#####-----"},
		{10, -5, "----------"},
		{10, 500, "##########"},
	}
	for _, tc := range tests {
		if got := RenderProgressBar(tc.width, tc.percent); got != tc.want {
			t.Errorf("RenderProgressBar(%d, %v) = %q, want %q", tc.width, tc.percent, got, tc.want)
		}
	}

	if got := RenderProgressBar(10, 55); len(got) != 10 {
		t.Errorf("partial bar has length %d, want 10", len(got))
	}
}

func TestMatrixGlyphsAreSingleWidth(t *testing.T) {
	for _, r := range MatrixGlyphs {
		if w := runewidth.RuneWidth(r); w != 1 {
			t.Errorf("glyph %q has width %d", r, w)
		}
	}
}

func TestEasing(t *testing.T) {
	var ease EasingFunc = EaseOutQuad
	if ease(0) != 0 || ease(1) != 1 {
		t.Errorf("EaseOutQuad endpoints = %v, %v", ease(0), ease(1))
	}
	if ease(0.5) <= 0.5 {
		t.Error("EaseOutQuad should start fast")
	}
	if Clamp01(-1) != 0 || Clamp01(2) != 1 || Clamp01(0.3) != 0.3 {
		t.Error("Clamp01 out of range")
	}
}

func TestPanelBorderFollowsGlow(t *testing.T) {
	theme := newTheme(termenv.Ascii, true, appstate.ThemeDefault, "#ff0000")
	plain := theme.Panel.GetBorderTopForeground()
	theme.Apply(appstate.ThemeDefault, "#ff0000", true)
	glow := theme.Panel.GetBorderTopForeground()
	if plain == glow {
		t.Error("custom glow should recolour the panel border")
	}
	if !strings.HasPrefix(string(glow.(lipgloss.Color)), "#") {
		t.Errorf("glow border = %v, want a hex colour", glow)
	}
}
