// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package site

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// trail is how many frames a glyph stays visible after the head passes.
const trail = 12

// resetChance is the per-frame chance that a column which ran off the
// bottom starts again from the top.
const resetChance = 0.025

type cell struct {
	glyph rune
	age   int // frames since drawn; 0 is the head
}

// Rain is the matrix effect: one falling drop per column leaving a fading
// trail.
type Rain struct {
	glyphs []rune
	rng    *rand.Rand
	width  int
	height int
	drops  []int
	grid   [][]cell
}

// NewRain returns rain for a width x height screen.
func NewRain(glyphs []rune, rng *rand.Rand, width, height int) *Rain {
	r := &Rain{glyphs: glyphs, rng: rng}
	r.Resize(width, height)
	return r
}

// Resize changes the screen size. Existing drops are kept where they fit.
func (r *Rain) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == r.width && height == r.height {
		return
	}
	drops := make([]int, width)
	for i := range drops {
		if i < len(r.drops) {
			drops[i] = r.drops[i]
		} else {
			drops[i] = r.rng.Intn(height)
		}
	}
	r.drops = drops
	r.width, r.height = width, height
	r.grid = make([][]cell, height)
	for y := range r.grid {
		r.grid[y] = make([]cell, width)
		for x := range r.grid[y] {
			r.grid[y][x].age = trail
		}
	}
}

// Step advances the rain by one frame.
func (r *Rain) Step() {
	for y := range r.grid {
		for x := range r.grid[y] {
			if r.grid[y][x].age < trail {
				r.grid[y][x].age++
			}
		}
	}
	for x, y := range r.drops {
		if y >= 0 && y < r.height {
			r.grid[y][x] = cell{glyph: r.glyphs[r.rng.Intn(len(r.glyphs))]}
		}
		if y >= r.height && r.rng.Float64() < resetChance {
			r.drops[x] = 0
			continue
		}
		r.drops[x]++
	}
}

// Lit counts the cells currently visible.
func (r *Rain) Lit() int {
	n := 0
	for y := range r.grid {
		for x := range r.grid[y] {
			if r.grid[y][x].age < trail {
				n++
			}
		}
	}
	return n
}

// View renders the rain. head styles the newest glyph of each drop, body
// the trail.
func (r *Rain) View(head, body lipgloss.Style) string {
	var b strings.Builder
	for y, row := range r.grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			switch {
			case c.age >= trail:
				b.WriteByte(' ')
			case c.age == 0:
				b.WriteString(head.Render(string(c.glyph)))
			default:
				b.WriteString(body.Render(string(c.glyph)))
			}
		}
	}
	return b.String()
}
