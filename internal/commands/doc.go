// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands implements the terminal's Command mode: a fixed registry
// of verbs and the dispatcher that runs them.
//
// # Key Types
//
//   - Registry: every verb and alias, built once at startup
//   - Dispatcher: splits a line into verb and argument and runs the handler
//   - Context: the collaborators a handler may touch
//   - Completer: tab completion for verbs and their well-known arguments
//
// # Usage
//
//	reg := commands.NewRegistry()
//	d := commands.NewDispatcher(reg, ctx, logger)
//	d.Execute("cd about")
//
// Handlers never fail visibly. Usage problems and unknown targets are
// written to the output log as ordinary lines; Execute additionally returns
// them as typed errors so hosts can log them or choose an exit status.
package commands
