// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timer provides the one-shot timer facility shared by the command
// dispatcher, the chat reveal and the logo tap trigger.
//
// Nothing in the terminal blocks on a delay. Callers schedule a callback with
// Scheduler.After and keep going; the callback later runs on the same logical
// thread as every other state mutation.
//
// Implementations:
//   - Tea: each timer becomes a tea.Tick command; the resulting FiredMsg is
//     routed back through the Bubble Tea Update loop.
//   - Manual: a virtual clock driven by Advance. Tests use it directly and
//     the line-mode hosts pace it with real sleeps via RunUntilIdle.
package timer
