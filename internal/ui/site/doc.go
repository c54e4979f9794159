// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package site renders what sits behind the terminal panel: the portfolio
// pages and the full-screen effects (matrix rain, gravity, blackout and the
// boss screen). Every renderer here is pure: it takes a size and returns a
// string, so the Bubble Tea model owns all timing.
package site
