// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared across the terminal packages.
//
// String Utilities:
//   - TruncateRunes, TruncateWidth: UTF-8 and display-width safe truncation
//   - PadRight: column alignment for help listings
//   - FirstField: verb/remainder split used by the command parser
//
// File Operations:
//   - AtomicWriteFile: crash-safe writes for the config file
package util
