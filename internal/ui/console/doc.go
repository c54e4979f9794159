// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package console is the Bubble Tea host for the portfolio terminal.
//
// The screen is the portfolio page (glamour markdown) with a header, a
// footer and, when open, the terminal panel docked at the bottom. Full-screen
// effects (preloader, matrix rain, gravity, blackout, boss screen) replace
// or overlay the page while appstate says they are active.
//
// All terminal behaviour lives in terminal.Controller. The model only maps
// keys and mouse events onto it, routes timer.FiredMsg back into the
// timer.Tea scheduler, and watches appstate for effects that need their own
// animation ticks.
package console
