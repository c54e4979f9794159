// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads portfolio-term settings.
//
// Sources, lowest precedence first:
//   - built-in defaults (Default)
//   - ~/.portfolio-term/config.toml, or the path given with --config
//   - PTERM_* environment variables, e.g. PTERM_CHAT_THINKING_DELAY=1s
//
// Watch reloads the file when it changes so the running TUI can pick up new
// timings and colours without a restart.
package config
