// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"sort"
	"strings"
)

// =============================================================================
// COMPLETER
// =============================================================================

// Completion is one candidate for the input field.
type Completion struct {
	// Value replaces the whole input line when accepted
	Value string
	// Display is what the suggestion list shows
	Display     string
	Description string
	Score       int
}

// Completer handles tab completion for verbs and their arguments.
type Completer struct {
	registry *Registry
}

// NewCompleter creates a completer over registry.
func NewCompleter(registry *Registry) *Completer {
	return &Completer{registry: registry}
}

// Complete returns candidates for input, best first.
func (c *Completer) Complete(input string) []Completion {
	input = strings.TrimLeft(strings.ToLower(input), " ")
	idx := strings.IndexByte(input, ' ')
	if idx < 0 {
		return c.completeVerbs(input)
	}

	verb := input[:idx]
	partial := strings.TrimLeft(input[idx:], " ")
	cmd := c.registry.Get(verb)
	if cmd == nil || strings.Contains(partial, " ") {
		return nil
	}

	var out []Completion
	for _, v := range cmd.Values {
		if strings.HasPrefix(v, partial) {
			out = append(out, Completion{
				Value:   verb + " " + v,
				Display: v,
				Score:   calculateScore(v, partial),
			})
		}
	}
	sortCompletions(out)
	return out
}

func (c *Completer) completeVerbs(partial string) []Completion {
	var out []Completion
	for _, cmd := range c.registry.All() {
		if cmd.Hidden {
			continue
		}
		if strings.HasPrefix(cmd.Name, partial) {
			out = append(out, Completion{
				Value:       cmd.Name,
				Display:     cmd.Name,
				Description: cmd.Description,
				Score:       calculateScore(cmd.Name, partial),
			})
		}
		for _, alias := range cmd.Aliases {
			if partial != "" && strings.HasPrefix(alias, partial) {
				out = append(out, Completion{
					Value:       alias,
					Display:     alias + " -> " + cmd.Name,
					Description: cmd.Description,
					Score:       calculateScore(alias, partial) - 10,
				})
			}
		}
	}
	sortCompletions(out)
	return out
}

// calculateScore ranks a candidate; higher is better.
func calculateScore(value, partial string) int {
	if value == partial {
		return 200
	}
	score := 100
	if strings.HasPrefix(value, partial) {
		score += 50 + 20 - len(value)
	}
	return score - len(value)/2
}

func sortCompletions(completions []Completion) {
	sort.SliceStable(completions, func(i, j int) bool {
		if completions[i].Score != completions[j].Score {
			return completions[i].Score > completions[j].Score
		}
		return completions[i].Value < completions[j].Value
	})
}

// =============================================================================
// COMPLETION NAVIGATION
// =============================================================================

// CompletionState cycles through the candidates offered for one input.
type CompletionState struct {
	Completions []Completion
	Selected    int
}

// Update replaces the candidates and selects the first.
func (cs *CompletionState) Update(completions []Completion) {
	cs.Completions = completions
	cs.Selected = 0
}

// Next moves to the next candidate, wrapping around.
func (cs *CompletionState) Next() {
	if len(cs.Completions) == 0 {
		return
	}
	cs.Selected = (cs.Selected + 1) % len(cs.Completions)
}

// Accept returns the selected value, or "" when there is none.
func (cs *CompletionState) Accept() string {
	if cs.Selected < 0 || cs.Selected >= len(cs.Completions) {
		return ""
	}
	return cs.Completions[cs.Selected].Value
}

// Active reports whether there are candidates to cycle.
func (cs *CompletionState) Active() bool { return len(cs.Completions) > 0 }

// Clear drops the candidates.
func (cs *CompletionState) Clear() {
	cs.Completions = nil
	cs.Selected = 0
}
