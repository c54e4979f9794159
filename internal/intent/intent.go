// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package intent is S.A.M., the terminal's scripted chat assistant. It maps
// a free-text question to a canned reply using an ordered table of substring
// rules; there is no language model behind it.
package intent

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// =============================================================================
// TYPES
// =============================================================================

// Action is a side effect a reply triggers after it has been shown.
type Action int

const (
	ActionNone Action = iota
	ActionMatrix
	ActionGravity
	ActionAbout
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMatrix:
		return "matrix"
	case ActionGravity:
		return "gravity"
	case ActionAbout:
		return "about"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Rule is one entry of the knowledge base. It matches when the lower-cased
// input contains any of Any, or equals any of Exact.
type Rule struct {
	Name     string
	Any      []string
	Exact    []string
	Response string
	Action   Action
	EndsChat bool
}

// Reply is what S.A.M. says about one input.
type Reply struct {
	Text     string
	Action   Action
	EndsChat bool
	// Rule is the matching rule's name, or FallbackRule.
	Rule string
}

// FallbackRule names the reply given when no rule matches.
const FallbackRule = "fallback"

// =============================================================================
// MATCHER
// =============================================================================

// Matcher evaluates a fixed rule table.
type Matcher struct {
	rules []Rule
}

// New returns a matcher over the built-in knowledge base.
func New() *Matcher {
	return NewWithRules(defaultRules)
}

// NewWithRules returns a matcher over rules, in order.
func NewWithRules(rules []Rule) *Matcher {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Matcher{rules: cp}
}

// Rules returns a copy of the rule table.
func (m *Matcher) Rules() []Rule {
	out := make([]Rule, len(m.rules))
	copy(out, m.rules)
	return out
}

// Respond picks the reply for raw. The fallback quotes raw as given.
func (m *Matcher) Respond(raw string) Reply {
	text := Normalize(raw)
	for _, rule := range m.rules {
		if rule.matches(text) {
			return Reply{Text: rule.Response, Action: rule.Action, EndsChat: rule.EndsChat, Rule: rule.Name}
		}
	}
	return Reply{
		Text: fmt.Sprintf("Query '%s' not found in my database. Try asking about 'Kite project', 'hiring status', or 'funny joke'.", raw),
		Rule: FallbackRule,
	}
}

// Normalize trims and lower-cases input the way rules expect it.
func Normalize(raw string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(raw))
}

func (r Rule) matches(text string) bool {
	for _, exact := range r.Exact {
		if text == exact {
			return true
		}
	}
	for _, sub := range r.Any {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}

// Shadowed returns the names of rules that can never match because every
// one of their patterns is already caught by an earlier rule.
func (m *Matcher) Shadowed() []string {
	var out []string
	for i, rule := range m.rules {
		earlier := m.rules[:i]
		if rule.shadowedBy(earlier) {
			out = append(out, rule.Name)
		}
	}
	return out
}

func (r Rule) shadowedBy(earlier []Rule) bool {
	if len(r.Any) == 0 && len(r.Exact) == 0 {
		return false
	}
	for _, sub := range r.Any {
		// Any text containing sub also contains an earlier substring.
		if !anyEarlier(earlier, func(e Rule) bool { return containsAny(sub, e.Any) }) {
			return false
		}
	}
	for _, exact := range r.Exact {
		if !anyEarlier(earlier, func(e Rule) bool { return e.matches(exact) }) {
			return false
		}
	}
	return true
}

func anyEarlier(rules []Rule, pred func(Rule) bool) bool {
	for _, r := range rules {
		if pred(r) {
			return true
		}
	}
	return false
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
