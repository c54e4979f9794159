// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package intent

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

// =============================================================================
// MATCHING TESTS
// =============================================================================

func TestRespond_RuleSelection(t *testing.T) {
	m := New()
	tests := []struct {
		input string
		rule  string
	}{
		{"hello", "greeting"},
		{"HELLO", "greeting"},
		{"Hey there", "greeting"},
		{"i love this", "greeting"}, // "this" contains "hi"
		{"who is swayam", "about-swayam"},
		{"what is sam", "meaning-of-sam"},
		{"tell me about kite", "kite"},
		{"apple music", "apple-music"},
		{"are you available", "hiring"},
		{"github", "socials"},
		{"source code", "source"},
		{"email", "contact"},
		{"show me the matrix", "matrix"},
		{"gravity", "gravity"},
		{"ls", "files"},
		{"status", "status"},
		{"sam", "who-are-you"},
		{"who made you", "creator"},
		{"tell me a joke", "joke"},
		{"where do you live", "location"},
		{"cv", "experience"},
		{"go to about", "navigate-about"},
		{"stuck", "loader"},
		{"scroll", "scroll"},
		{"bhopal", "bhopal"},
		{"xyz", FallbackRule},
	}

	for _, tc := range tests {
		if got := m.Respond(tc.input).Rule; got != tc.rule {
			t.Errorf("Respond(%q).Rule = %q, want %q", tc.input, got, tc.rule)
		}
	}
}

func TestRespond_GreetingCaseInsensitive(t *testing.T) {
	m := New()
	want := "Greetings. I am S.A.M. (System Access Manager). My sensors detect a visitor. How can I help you navigate Swayam's world?"
	for _, in := range []string{"hello", "HELLO", "HeLLo"} {
		assert.Equal(t, want, m.Respond(in).Text, in)
	}
}

func TestRespond_Creator(t *testing.T) {
	got := New().Respond("who made you")
	assert.Equal(t, "I was brought to life by Swayam Purwar's late-night coding sessions and too much caffeine.", got.Text)
	assert.Equal(t, ActionNone, got.Action)
}

func TestRespond_ExitIsExact(t *testing.T) {
	m := New()
	for _, in := range []string{"exit", "quit", "EXIT", "  Quit "} {
		r := m.Respond(in)
		assert.True(t, r.EndsChat, in)
		assert.Equal(t, "AI session closed. Standard terminal protocol restored.", r.Text)
	}

	r := m.Respond("exit now")
	assert.False(t, r.EndsChat)
	assert.Equal(t, FallbackRule, r.Rule)
}

func TestRespond_Actions(t *testing.T) {
	m := New()
	assert.Equal(t, ActionMatrix, m.Respond("simulation").Action)
	assert.Equal(t, ActionGravity, m.Respond("will it fall").Action)
	assert.Equal(t, ActionAbout, m.Respond("navigation").Action)
	assert.Equal(t, ActionNone, m.Respond("joke").Action)
}

func TestRespond_FallbackQuotesOriginal(t *testing.T) {
	got := New().Respond("What Is XYZ")
	assert.Equal(t, "Query 'What Is XYZ' not found in my database. Try asking about 'Kite project', 'hiring status', or 'funny joke'.", got.Text)
}

// =============================================================================
// TABLE TESTS
// =============================================================================

func TestShadowed(t *testing.T) {
	if diff := cmp.Diff([]string{"creator-again"}, New().Shadowed()); diff != "" {
		t.Errorf("Shadowed mismatch (-want +got):\n%s", diff)
	}
}

func TestShadowed_ExactRule(t *testing.T) {
	m := NewWithRules([]Rule{
		{Name: "broad", Any: []string{"ex"}},
		{Name: "exit", Exact: []string{"exit"}},
		{Name: "empty"},
	})
	assert.Equal(t, []string{"exit"}, m.Shadowed())
}

func TestRules_Copy(t *testing.T) {
	m := New()
	rules := m.Rules()
	rules[0].Response = "changed"
	assert.NotEqual(t, "changed", m.Rules()[0].Response)
	assert.Equal(t, "greeting", rules[0].Name)
	assert.Equal(t, "bhopal", rules[len(rules)-1].Name)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "matrix", ActionMatrix.String())
	assert.Equal(t, "Action(9)", Action(9).String())
}
