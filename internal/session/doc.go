// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session holds the per-run state of the terminal: whether it is
// open and which input mode it is in.
//
// # Key Types
//
//   - Session: open flag, mode, identity and activity timestamps
//   - Mode: Command or Chat
//
// The mode survives closing and reopening the terminal. Only a full page
// navigation (Reset) returns the session to its initial state.
package session
