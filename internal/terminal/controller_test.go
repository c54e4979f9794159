// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/effects/effectstest"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/reveal"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
)

type fakeInput struct {
	value   string
	focused bool
	resets  int
}

func (f *fakeInput) Reset() { f.value = ""; f.resets++ }
func (f *fakeInput) Focus() { f.focused = true }
func (f *fakeInput) Blur() { f.focused = false }
func (f *fakeInput) SetValue(v string) { f.value = v }

type fakeScroller struct{ calls int }

func (f *fakeScroller) GotoBottom() { f.calls++ }

type fixture struct {
	c      *Controller
	state  *appstate.State
	fx     *effectstest.Recorder
	clock  *timer.Manual
	input  *fakeInput
	scroll *fakeScroller
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		state:  appstate.New("#bfa5d8"),
		fx:     effectstest.New(),
		clock:  timer.NewManual(),
		input:  &fakeInput{},
		scroll: &fakeScroller{},
	}
	f.c = New(Deps{
		State:    f.state,
		FX:       f.fx.Set(),
		Timers:   f.clock,
		Input:    f.input,
		Scroller: f.scroll,
	}, DefaultOptions())
	return f
}

func (f *fixture) open() *fixture {
	f.c.Toggle()
	return f
}

func (f *fixture) lines() []string {
	var out []string
	for _, line := range f.c.Output().Lines() {
		out = append(out, output.Plain(line))
	}
	return out
}

func revealDuration(text string) time.Duration {
	return 800*time.Millisecond + time.Duration(len([]rune(text)))*30*time.Millisecond
}

// =============================================================================
// TOGGLE TESTS
// =============================================================================

func TestToggle_OpenAndClose(t *testing.T) {
	f := newFixture(t)
	f.input.value = "stale"
	f.c.History().Append("ls")
	f.c.History().Back()

	f.c.Toggle()
	assert.True(t, f.c.Session().IsOpen())
	assert.True(t, f.input.focused)
	assert.Empty(t, f.input.value)
	assert.Equal(t, []effects.Cue{effects.CueClick}, f.fx.Cues)
	assert.Equal(t, -1, f.c.History().Cursor())

	f.c.Toggle()
	assert.False(t, f.c.Session().IsOpen())
	assert.False(t, f.input.focused)
	assert.Len(t, f.fx.Cues, 1, "closing is silent")
}

func TestToggleKey_IgnoredWhilePreloading(t *testing.T) {
	f := newFixture(t)
	f.state.Preloading = true
	assert.False(t, f.c.ToggleKey())
	assert.False(t, f.c.Session().IsOpen())

	f.state.Preloading = false
	assert.True(t, f.c.ToggleKey())
	assert.True(t, f.c.Session().IsOpen())
}

func TestTapLogo_ThirdTapToggles(t *testing.T) {
	f := newFixture(t)

	assert.False(t, f.c.TapLogo())
	f.clock.Advance(400 * time.Millisecond)
	assert.False(t, f.c.TapLogo())
	f.clock.Advance(400 * time.Millisecond)
	assert.True(t, f.c.TapLogo())
	assert.True(t, f.c.Session().IsOpen())

	// Count restarted: one more tap does nothing.
	assert.False(t, f.c.TapLogo())
}

func TestTapLogo_IgnoredWhilePreloading(t *testing.T) {
	f := newFixture(t)
	f.state.Preloading = true
	for i := 0; i < 3; i++ {
		assert.False(t, f.c.TapLogo())
		f.clock.Advance(100 * time.Millisecond)
	}
	assert.False(t, f.c.Session().IsOpen())

	// Overlay taps left no partial count behind.
	f.state.Preloading = false
	assert.False(t, f.c.TapLogo())
	assert.False(t, f.c.Session().IsOpen())
}

func TestTapLogo_SlowTapsReset(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 5; i++ {
		assert.False(t, f.c.TapLogo())
		f.clock.Advance(500 * time.Millisecond)
	}
	assert.False(t, f.c.Session().IsOpen())
}

// =============================================================================
// COMMAND MODE TESTS
// =============================================================================

func TestSubmit_HelpScenario(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("help")

	lines := f.lines()
	require.Len(t, lines, 2)
	assert.Equal(t, "user@swayam:~$ help", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "--- BASIC COMMANDS ---"))
	assert.Contains(t, lines[1], "--- SYSTEM ---")
	assert.Contains(t, lines[1], "--- EXPERIMENTS ---")
	assert.Equal(t, []string{"help"}, f.c.History().Entries())

	f.clock.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, f.scroll.calls)
	assert.True(t, f.input.focused)
}

func TestSubmit_IgnoresBlankAndClosed(t *testing.T) {
	f := newFixture(t)
	f.c.Submit("ls")
	assert.Zero(t, f.c.Output().Len(), "closed terminal ignores input")

	f.open()
	f.c.Submit("   ")
	assert.Zero(t, f.c.Output().Len())
	assert.Zero(t, f.c.History().Len())
}

func TestSubmit_LowerCasesCommandButEchoesOriginal(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("  PWD  ")
	assert.Equal(t, []string{"user@swayam:~$ PWD", "/home/guest/swayam.dev"}, f.lines())
	assert.Equal(t, []string{"PWD"}, f.c.History().Entries())
}

func TestSubmit_ExitClosesTerminal(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("exit")
	assert.False(t, f.c.Session().IsOpen())
	assert.False(t, f.input.focused)
}

func TestSubmit_CdAboutUnloadsSession(t *testing.T) {
	f := newFixture(t)
	site := effects.NewSite(f.state, f.fx, nil)
	fx := f.fx.Set()
	fx.Navigator = site
	f.c = New(Deps{State: f.state, FX: fx, Timers: f.clock, Input: f.input, Scroller: f.scroll}, DefaultOptions())
	site.OnUnload = func(string) { f.c.Reset() }
	oldID := f.c.Session().ID()

	f.open()
	f.c.Submit("blackout")
	f.c.Submit("ai")
	f.c.SetMode(session.ModeCommand)
	f.c.Submit("cd about")

	assert.Equal(t, appstate.PageAbout, f.state.Page)
	assert.False(t, f.c.Session().IsOpen())
	assert.Equal(t, session.ModeCommand, f.c.Session().Mode())
	assert.Zero(t, f.c.Output().Len())
	assert.Zero(t, f.c.History().Len())
	assert.NotEqual(t, oldID, f.c.Session().ID())

	f.clock.Advance(5 * time.Second)
	assert.Zero(t, f.fx.Blackouts, "timers of the unloaded page never fire")
}

func TestSubmit_CdWorkKeepsSession(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("cd work")
	assert.Equal(t, []string{"#work"}, f.fx.Navigations)
	assert.True(t, f.c.Session().IsOpen())
	assert.Equal(t, 2, f.c.Output().Len())
}

// =============================================================================
// CHAT MODE TESTS
// =============================================================================

func TestChat_WhoMadeYouScenario(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("ai")
	require.Equal(t, session.ModeChat, f.c.Session().Mode())

	f.c.Submit("who made you")
	assert.Equal(t, []string{
		"user@swayam:~$ ai",
		"S.A.M. v1.0 ONLINE. Talk to me.",
		"You: who made you",
	}, f.lines())

	pending, ok := f.c.Output().Pending()
	require.True(t, ok)
	assert.Equal(t, "S.A.M. > Thinking...", output.Plain(pending))

	reply := "I was brought to life by Swayam Purwar's late-night coding sessions and too much caffeine."
	f.clock.Advance(revealDuration(reply))

	lines := f.lines()
	require.Len(t, lines, 4)
	assert.Equal(t, "S.A.M. > "+reply, lines[3])
	assert.Equal(t, reveal.StateDone, f.c.RevealState())
	assert.GreaterOrEqual(t, f.scroll.calls, len([]rune(reply)), "scrolls on each revealed character")
}

func TestChat_ExitReturnsToCommandMode(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("chat")
	f.c.Submit("EXIT")

	assert.Equal(t, session.ModeCommand, f.c.Session().Mode(), "mode flips before the reply is shown")

	f.clock.Advance(10 * time.Second)
	last, _ := f.c.Output().Last()
	assert.Equal(t, "S.A.M. > AI session closed. Standard terminal protocol restored.", output.Plain(last))
}

func TestChat_EscapesUserInput(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("ai")
	f.c.Submit("<b>hi</b>")

	lines := f.lines()
	assert.Equal(t, "You: <b>hi</b>", lines[len(lines)-1])
}

func TestChat_QueuesWhileRevealing(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("ai")
	f.c.Submit("tell me a joke")
	f.c.Submit("exit")
	f.c.Submit("pwd")

	assert.Equal(t, 2, f.c.Queued())
	assert.Equal(t, []string{"ai", "tell me a joke"}, f.c.History().Entries(), "queued lines are not recorded yet")

	f.clock.RunUntilIdle(nil, 10000)

	assert.Zero(t, f.c.Queued())
	assert.Equal(t, []string{
		"user@swayam:~$ ai",
		"S.A.M. v1.0 ONLINE. Talk to me.",
		"You: tell me a joke",
		"S.A.M. > Why did the web developer walk out of the restaurant? Because of the table layout.",
		"You: exit",
		"S.A.M. > AI session closed. Standard terminal protocol restored.",
		"user@swayam:~$ pwd",
		"/home/guest/swayam.dev",
	}, f.lines())
}

func TestChat_ActionRunsAfterDelay(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("ai")
	f.c.Submit("go to about")

	reply := "Rerouting you to the 'About' section... [INITIATING NAV]"
	f.clock.Advance(revealDuration(reply))
	assert.Empty(t, f.fx.Navigations)
	assert.Equal(t, reveal.StateAwaitingAction, f.c.RevealState())

	f.clock.Advance(600 * time.Millisecond)
	assert.Equal(t, []string{"about.html"}, f.fx.Navigations)
}

func TestChat_MatrixAndGravityActions(t *testing.T) {
	f := newFixture(t).open()
	f.c.Submit("ai")
	f.c.Submit("simulation")
	f.c.Submit("gravity")
	f.clock.RunUntilIdle(nil, 10000)

	assert.Equal(t, []bool{true}, f.fx.MatrixCalls)
	assert.Equal(t, 1, f.fx.Gravity)
}

// =============================================================================
// HISTORY NAVIGATION TESTS
// =============================================================================

func TestHistoryNavigation(t *testing.T) {
	f := newFixture(t).open()
	f.input.value = "typed"
	f.c.HistoryBack()
	assert.Equal(t, "typed", f.input.value, "empty history leaves the input alone")

	f.c.Submit("ls")
	f.c.Submit("pwd")

	assert.Equal(t, "pwd", f.c.HistoryBack())
	assert.Equal(t, "ls", f.c.HistoryBack())
	assert.Equal(t, "ls", f.c.HistoryBack())
	assert.Equal(t, "ls", f.input.value)

	assert.Equal(t, "pwd", f.c.HistoryForward())
	assert.Equal(t, "", f.c.HistoryForward())
	assert.Equal(t, "", f.input.value)
}

// =============================================================================
// GLOBAL KEY TESTS
// =============================================================================

func TestGlobalKey_MatrixWord(t *testing.T) {
	f := newFixture(t)
	for _, k := range []string{"x", "m", "a", "t", "r", "i", "x"} {
		f.c.GlobalKey(k)
	}
	assert.Equal(t, []bool{true}, f.fx.MatrixCalls)

	f.open()
	for _, k := range strings.Split("matrix", "") {
		f.c.GlobalKey(k)
	}
	assert.Len(t, f.fx.MatrixCalls, 1, "ignored while the terminal is open")
}

func TestGlobalKey_DoubleEscape(t *testing.T) {
	f := newFixture(t)
	f.c.GlobalKey("esc")
	f.clock.Advance(600 * time.Millisecond)
	f.c.GlobalKey("esc")
	assert.Zero(t, f.fx.Boss)

	f.c.GlobalKey("esc")
	assert.Equal(t, 1, f.fx.Boss)
}

func TestBreaker(t *testing.T) {
	f := newFixture(t)
	assert.False(t, f.c.Breaker())

	f.state.Blackout = true
	assert.True(t, f.c.Breaker())
	assert.Equal(t, 1, f.fx.Blackouts)
}

// =============================================================================
// HELPER TESTS
// =============================================================================

func TestSequence(t *testing.T) {
	s := NewSequence("matrix")
	fed := false
	for _, k := range []string{"M", "A", "T", "R", "I", "X"} {
		fed = s.Feed(k)
	}
	assert.True(t, fed, "case-insensitive")
	assert.False(t, s.Feed("x"))
}

func TestApply_UpdatesPrompt(t *testing.T) {
	f := newFixture(t).open()
	opts := DefaultOptions()
	opts.Prompt = "guest$"
	f.c.Apply(opts)
	f.c.Submit("pwd")
	assert.Equal(t, "guest$ pwd", f.lines()[0])
}
