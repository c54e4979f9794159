// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli wires the portfolio terminal into the portfolio-term command.
//
// # Hosts
//
// The same terminal controller runs behind three hosts:
//
//   - the full screen interface (default when stdin and stdout are terminals)
//   - a line-oriented REPL (plain, or when not attached to a terminal)
//   - exec, which runs one line or a piped script and exits
//
// # Commands
//
//	portfolio-term                      start the interface
//	portfolio-term plain                start the REPL
//	portfolio-term exec [--chat] LINE   run LINE and print the log
//	portfolio-term page NAME            print a rendered page
//	portfolio-term config show|path|get|keys|init
//	portfolio-term version
package cli
