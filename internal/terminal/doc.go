// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package terminal is the session and mode controller of the fake terminal.
// It owns the session, the history and the output log, and routes every
// submitted line either to the command dispatcher or to the chat assistant.
//
// # Key Types
//
//   - Controller: toggling, submission, history navigation and reset
//   - Tapper: counts rapid repeated events (logo taps, double Esc)
//   - Sequence: spots a word typed while the terminal is closed
//
// All methods must be called from one goroutine: the Bubble Tea Update loop
// or a line-mode REPL. Timers come back through the same loop.
package terminal
