// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package site

import (
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

const (
	gravityAccel = 0.35 // rows per frame squared
	settleSpeed  = 0.5
	friction     = 0.95
)

type body struct {
	text   string
	width  int
	x, y   float64
	vx, vy float64
	bounce float64
}

// Gravity drops every non-blank line of a page to the floor. Lines bounce a
// little, drift sideways and come to rest.
type Gravity struct {
	bodies []*body
	width  int
	height int
}

// NewGravity takes the plain page lines as they are laid out on screen.
func NewGravity(lines []string, width, height int, rng *rand.Rand) *Gravity {
	g := &Gravity{width: width, height: height}
	for y, line := range lines {
		text := strings.TrimRight(ansi.Strip(line), " ")
		trimmed := strings.TrimLeft(text, " ")
		if trimmed == "" {
			continue
		}
		indent := len(text) - len(trimmed)
		g.bodies = append(g.bodies, &body{
			text:   trimmed,
			width:  runewidth.StringWidth(trimmed),
			x:      float64(indent),
			y:      float64(y),
			vx:     (rng.Float64() - 0.5) * 2,
			bounce: rng.Float64()*0.5 + 0.3,
		})
	}
	return g
}

// Step advances one frame and reports whether anything is still moving.
func (g *Gravity) Step() bool {
	moving := false
	floor := float64(g.height - 1)
	for _, b := range g.bodies {
		b.vy += gravityAccel
		b.y += b.vy
		b.x += b.vx

		if b.y >= floor {
			b.y = floor
			b.vy *= -b.bounce
			b.vx *= friction
			if math.Abs(b.vy) < settleSpeed {
				b.vy = 0
			}
		}
		right := float64(g.width - b.width)
		if right < 0 {
			right = 0
		}
		if b.x < 0 || b.x > right {
			b.vx = -b.vx
			b.x = math.Max(0, math.Min(b.x, right))
		}
		if math.Abs(b.vx) < 0.05 {
			b.vx = 0
		}
		if b.vy != 0 || b.vx != 0 || b.y < floor {
			moving = true
		}
	}
	return moving
}

// View draws the bodies. Later lines are drawn over earlier ones.
func (g *Gravity) View() string {
	if g.width <= 0 || g.height <= 0 {
		return ""
	}
	grid := make([][]rune, g.height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", g.width))
	}
	for _, b := range g.bodies {
		y := int(math.Round(b.y))
		if y < 0 || y >= g.height {
			continue
		}
		x := int(math.Round(b.x))
		for _, r := range b.text {
			if x >= g.width {
				break
			}
			w := runewidth.RuneWidth(r)
			if x >= 0 {
				grid[y][x] = r
				if w == 2 && x+1 < g.width {
					grid[y][x+1] = 0
				}
			}
			x += w
		}
	}
	rows := make([]string, g.height)
	for y, row := range grid {
		rows[y] = strings.TrimRight(strings.ReplaceAll(string(row), "\x00", ""), " ")
	}
	return strings.Join(rows, "\n")
}
