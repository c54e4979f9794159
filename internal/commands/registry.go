// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import "fmt"

// =============================================================================
// COMMAND DEFINITION
// =============================================================================

// Handler runs a verb. arg is everything after the verb, with its internal
// spacing intact. A non-nil error has already been reported to the log.
type Handler func(ctx *Context, arg string) error

// Command is a verb the terminal understands.
type Command struct {
	// Name is the primary verb (e.g. "ls")
	Name string

	// Aliases are alternative verbs (e.g. "dir")
	Aliases []string

	// Description is shown in help and completion
	Description string

	// Usage shows argument syntax (e.g. "cd [page_name]")
	Usage string

	// Values are the well-known arguments, offered by completion
	Values []string

	// Handler executes the command
	Handler Handler

	// Hidden commands don't appear in help
	Hidden bool

	// Category for grouping in help display
	Category string
}

// Help categories, in display order.
const (
	CategoryBasic       = "BASIC COMMANDS"
	CategorySystem      = "SYSTEM"
	CategoryExperiments = "EXPERIMENTS"
)

var categoryOrder = []string{CategoryBasic, CategorySystem, CategoryExperiments}

// =============================================================================
// COMMAND REGISTRY
// =============================================================================

// Registry holds every verb. It is populated once by NewRegistry and is
// read-only afterwards.
type Registry struct {
	byKey map[string]*Command
	order []*Command
}

// NewRegistry creates the registry with all built-in commands.
func NewRegistry() *Registry {
	r := &Registry{byKey: make(map[string]*Command)}
	r.registerBuiltins()
	return r
}

// register adds cmd under its name and aliases. A key collision is a
// programming error in the built-in table.
func (r *Registry) register(cmd *Command) {
	keys := append([]string{cmd.Name}, cmd.Aliases...)
	for _, key := range keys {
		if _, dup := r.byKey[key]; dup {
			panic(fmt.Sprintf("commands: duplicate key %q", key))
		}
	}
	for _, key := range keys {
		r.byKey[key] = cmd
	}
	r.order = append(r.order, cmd)
}

// Get retrieves a command by name or alias.
func (r *Registry) Get(verb string) *Command {
	return r.byKey[verb]
}

// All returns the commands in registration order.
func (r *Registry) All() []*Command {
	out := make([]*Command, len(r.order))
	copy(out, r.order)
	return out
}

// Keys returns every name and alias.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for _, cmd := range r.order {
		keys = append(keys, cmd.Name)
		keys = append(keys, cmd.Aliases...)
	}
	return keys
}

// ByCategory returns the visible commands of category in registration order.
func (r *Registry) ByCategory(category string) []*Command {
	var out []*Command
	for _, cmd := range r.order {
		if !cmd.Hidden && cmd.Category == category {
			out = append(out, cmd)
		}
	}
	return out
}

// Categories returns the help categories in display order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}
