// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package site

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// PAGE TESTS
// =============================================================================

func TestPagesNames(t *testing.T) {
	assert.Equal(t, []string{"about", "index"}, NewPages("notty").Names())
}

func TestPagesRender(t *testing.T) {
	p := NewPages("notty")

	out, err := p.Render("about", 60)
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "ABOUT")

	again, err := p.Render("about", 60)
	require.NoError(t, err)
	assert.Equal(t, out, again, "renders are cached per width")
}

func TestPagesRenderUnknownShowsNotFound(t *testing.T) {
	out, err := NewPages("notty").Render("contact", 60)
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(out), "404")
}

func TestPagesSource(t *testing.T) {
	src, ok := NewPages("notty").Source("index")
	require.True(t, ok)
	assert.Contains(t, src, "## Work")

	_, ok = NewPages("notty").Source("missing")
	assert.False(t, ok)
}

func TestAnchorLine(t *testing.T) {
	rendered := "  # SWAYAM\n\n  intro\n\n  \x1b[1m## Work\x1b[0m   \n  item"
	assert.Equal(t, 4, AnchorLine(rendered, "#work"))
	assert.Equal(t, -1, AnchorLine(rendered, "#contact"))
	assert.Equal(t, -1, AnchorLine(rendered, "#"))
}

func TestAnchorLineOnRenderedIndex(t *testing.T) {
	out, err := NewPages("notty").Render("index", 80)
	require.NoError(t, err)

	line := AnchorLine(out, "#work")
	require.GreaterOrEqual(t, line, 0)
	assert.Contains(t, strings.ToLower(ansi.Strip(strings.Split(out, "\n")[line])), "work")
}

// =============================================================================
// RAIN TESTS
// =============================================================================

func TestRainStepLightsCells(t *testing.T) {
	r := NewRain([]rune("01"), rand.New(rand.NewSource(1)), 10, 5)
	assert.Zero(t, r.Lit())

	r.Step()
	assert.Positive(t, r.Lit())

	view := r.View(lipgloss.NewStyle(), lipgloss.NewStyle())
	rows := strings.Split(view, "\n")
	require.Len(t, rows, 5)
	for _, row := range rows {
		assert.Len(t, []rune(row), 10)
		assert.Empty(t, strings.Trim(row, "01 "))
	}
}

func TestRainTrailFades(t *testing.T) {
	r := NewRain([]rune("x"), rand.New(rand.NewSource(1)), 1, 1)
	r.drops[0] = 0
	r.Step()
	require.Equal(t, 1, r.Lit())

	for i := 0; i < trail; i++ {
		r.drops[0] = 5 // off screen, never reset below
		r.Step()
	}
	assert.Zero(t, r.Lit())
}

func TestRainResizeKeepsDrops(t *testing.T) {
	r := NewRain([]rune("x"), rand.New(rand.NewSource(1)), 3, 3)
	r.drops[0] = 2
	r.Resize(6, 4)
	assert.Len(t, r.drops, 6)
	assert.Equal(t, 2, r.drops[0])
	assert.Len(t, r.grid, 4)
}

func TestRainResizeSameSizeKeepsTrail(t *testing.T) {
	r := NewRain([]rune("x"), rand.New(rand.NewSource(1)), 4, 4)
	r.Step()
	lit := r.Lit()
	require.Positive(t, lit)

	r.Resize(4, 4)
	assert.Equal(t, lit, r.Lit())
}

// =============================================================================
// GRAVITY TESTS
// =============================================================================

func TestGravitySettlesOnFloor(t *testing.T) {
	lines := []string{"  hello", "", "world"}
	g := NewGravity(lines, 20, 6, rand.New(rand.NewSource(7)))
	require.Len(t, g.bodies, 2)

	steps := 0
	for g.Step() {
		steps++
		require.Less(t, steps, 2000, "gravity never settled")
	}

	rows := strings.Split(g.View(), "\n")
	require.Len(t, rows, 6)
	for _, row := range rows[:5] {
		assert.Empty(t, row)
	}
	assert.NotEmpty(t, rows[5])
}

func TestGravityIgnoresBlankLines(t *testing.T) {
	g := NewGravity([]string{"", "   ", "\x1b[1m\x1b[0m"}, 10, 3, rand.New(rand.NewSource(1)))
	assert.Empty(t, g.bodies)
	assert.False(t, g.Step())
}

// =============================================================================
// BOSS SCREEN TESTS
// =============================================================================

func TestBossScreenView(t *testing.T) {
	b := NewBossScreen("monokai")
	view := ansi.Strip(b.View(60, 20))
	rows := strings.Split(view, "\n")

	require.Len(t, rows, 20)
	assert.Contains(t, rows[0], BossTitle)
	assert.Contains(t, view, "Project Deadline: ASAP")
	assert.Contains(t, view, "Press ESC twice")
	assert.Empty(t, b.View(0, 10))
}
