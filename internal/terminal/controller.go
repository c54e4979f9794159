// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package terminal

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/commands"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/history"
	"github.com/SwayamPurwar/portfolio-term/internal/intent"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/reveal"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
)

// =============================================================================
// COLLABORATORS
// =============================================================================

// Input is the line editor the visitor types into.
type Input interface {
	Reset()
	Focus()
	Blur()
	SetValue(value string)
}

// Scroller keeps the output view pinned to the newest line.
type Scroller interface {
	GotoBottom()
}

type nopInput struct{}

func (nopInput) Reset()          {}
func (nopInput) Focus()          {}
func (nopInput) Blur()           {}
func (nopInput) SetValue(string) {}

type nopScroller struct{}

func (nopScroller) GotoBottom() {}

// =============================================================================
// OPTIONS
// =============================================================================

// Options tune the controller. Zero values are replaced by defaults.
type Options struct {
	Prompt       string
	ScrollSettle time.Duration
	TapWindow    time.Duration
	TapCount     int
	MatrixWord   string
	Timing       reveal.Timing
	Settings     commands.Settings
}

// DefaultOptions returns the site's behaviour.
func DefaultOptions() Options {
	return Options{
		Prompt:       "user@swayam:~$",
		ScrollSettle: 50 * time.Millisecond,
		TapWindow:    500 * time.Millisecond,
		TapCount:     3,
		MatrixWord:   "matrix",
		Timing:       reveal.DefaultTiming(),
		Settings:     commands.DefaultSettings(),
	}
}

// Deps are the controller's collaborators. State, FX and Timers are
// required; Input, Scroller and Logger may be nil.
type Deps struct {
	State    *appstate.State
	FX       effects.Set
	Timers   timer.Scheduler
	Input    Input
	Scroller Scroller
	Logger   *zap.Logger
	// Now overrides the clock used for the session and the date command.
	Now func() time.Time
	// Intn overrides the random source of whoami.
	Intn func(n int) int
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller is the terminal's session and mode controller.
type Controller struct {
	opts  Options
	state *appstate.State
	fx    effects.Set

	session  *session.Session
	out      *output.Log
	history  *history.Buffer
	cmdCtx   *commands.Context
	dispatch *commands.Dispatcher
	matcher  *intent.Matcher
	revealer *reveal.Revealer
	timers   *timer.Group

	input    Input
	scroller Scroller
	logger   *zap.Logger

	queue  []string
	logo   *Tapper
	escape *Tapper
	matrix *Sequence
}

// New wires a controller. The terminal starts closed in Command mode.
func New(deps Deps, opts Options) *Controller {
	opts = withDefaults(opts)
	if deps.Input == nil {
		deps.Input = nopInput{}
	}
	if deps.Scroller == nil {
		deps.Scroller = nopScroller{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	c := &Controller{
		opts:     opts,
		state:    deps.State,
		fx:       deps.FX,
		out:      output.New(),
		history:  history.New(),
		matcher:  intent.New(),
		timers:   timer.NewGroup(deps.Timers),
		input:    deps.Input,
		scroller: deps.Scroller,
		logger:   deps.Logger,
	}
	if deps.Now != nil {
		c.session = session.NewWithClock(deps.Now)
	} else {
		c.session = session.New()
	}

	c.cmdCtx = &commands.Context{
		Log:      c.out,
		History:  c.history,
		Terminal: c,
		FX:       c.fx,
		Timers:   c.timers,
		Settings: opts.Settings,
		Now:      deps.Now,
		Intn:     deps.Intn,
	}
	c.dispatch = commands.NewDispatcher(commands.NewRegistry(), c.cmdCtx, c.logger.Named("commands"))

	c.revealer = reveal.New(c.out, c.timers, opts.Timing)
	c.revealer.OnStep(c.scroller.GotoBottom)
	c.revealer.OnDone(c.drainQueue)

	c.logo = NewTapper(c.timers, opts.TapWindow, opts.TapCount)
	c.escape = NewTapper(c.timers, opts.TapWindow, 2)
	c.matrix = NewSequence(opts.MatrixWord)

	c.logger.Debug("terminal ready", zap.String("session", c.session.ID()))
	return c
}

func withDefaults(opts Options) Options {
	def := DefaultOptions()
	if opts.Prompt == "" {
		opts.Prompt = def.Prompt
	}
	if opts.ScrollSettle <= 0 {
		opts.ScrollSettle = def.ScrollSettle
	}
	if opts.TapWindow <= 0 {
		opts.TapWindow = def.TapWindow
	}
	if opts.TapCount <= 0 {
		opts.TapCount = def.TapCount
	}
	if opts.MatrixWord == "" {
		opts.MatrixWord = def.MatrixWord
	}
	if opts.Timing == (reveal.Timing{}) {
		opts.Timing = def.Timing
	}
	if opts.Settings == (commands.Settings{}) {
		opts.Settings = def.Settings
	}
	return opts
}

// Output returns the log the controller writes to.
func (c *Controller) Output() *output.Log { return c.out }

// History returns the submitted-line history.
func (c *Controller) History() *history.Buffer { return c.history }

// Session returns the current session.
func (c *Controller) Session() *session.Session { return c.session }

// Registry returns the command registry, for help and completion.
func (c *Controller) Registry() *commands.Registry { return c.dispatch.Registry() }

// Matcher returns the chat rule matcher.
func (c *Controller) Matcher() *intent.Matcher { return c.matcher }

// RevealState returns the chat reveal step.
func (c *Controller) RevealState() reveal.State { return c.revealer.State() }

// Queued returns how many submissions wait for the current reveal.
func (c *Controller) Queued() int { return len(c.queue) }

// Prompt returns the command prompt.
func (c *Controller) Prompt() string { return c.opts.Prompt }

// Apply changes options on a live controller, e.g. after a config reload.
func (c *Controller) Apply(opts Options) {
	opts = withDefaults(opts)
	c.opts = opts
	c.cmdCtx.Settings = opts.Settings
	c.revealer.SetTiming(opts.Timing)
	c.logo = NewTapper(c.timers, opts.TapWindow, opts.TapCount)
	c.escape = NewTapper(c.timers, opts.TapWindow, 2)
	c.matrix = NewSequence(opts.MatrixWord)
}

// =============================================================================
// OPEN / CLOSE
// =============================================================================

// Toggle opens or closes the terminal.
func (c *Controller) Toggle() {
	if c.session.Toggle() {
		c.input.Reset()
		c.input.Focus()
		c.fx.Cues.PlayCue(effects.CueClick)
		c.history.ResetCursor()
		c.logger.Debug("terminal opened")
		return
	}
	c.input.Blur()
	c.logger.Debug("terminal closed")
}

// ToggleKey handles the toggle hotkey. It is ignored while the page-load
// overlay is showing and reports whether the terminal toggled.
func (c *Controller) ToggleKey() bool {
	if c.state.Preloading {
		return false
	}
	c.Toggle()
	return true
}

// TapLogo registers a tap on the header logo; the third rapid tap toggles.
// Taps during the page-load overlay are not counted.
func (c *Controller) TapLogo() bool {
	if c.state.Preloading {
		return false
	}
	if !c.logo.Tap() {
		return false
	}
	c.Toggle()
	return true
}

// SetMode switches the input mode.
func (c *Controller) SetMode(m session.Mode) {
	c.session.SetMode(m)
}

// =============================================================================
// SUBMISSION
// =============================================================================

// Submit handles the Enter key. Blank lines and lines typed while closed are
// ignored. While a chat reply is still being revealed the line waits in a
// queue and is processed, in order, once the reply is done.
func (c *Controller) Submit(raw string) {
	text := strings.TrimSpace(raw)
	if text == "" || !c.session.IsOpen() {
		return
	}
	c.session.Touch()

	if c.revealer.Busy() {
		c.queue = append(c.queue, text)
		c.input.Reset()
		c.logger.Debug("submission queued", zap.Int("depth", len(c.queue)))
		return
	}
	c.process(text)
}

func (c *Controller) process(text string) {
	c.history.Append(text)

	switch c.session.Mode() {
	case session.ModeChat:
		c.out.AppendRich(`<span class="` + output.ClassYou + `">You:</span> ` + output.Escape(text))
		c.chat(text)
	default:
		c.out.Append(c.opts.Prompt + " " + text)
		if err := c.dispatch.Execute(cases.Lower(language.Und).String(text)); err != nil {
			c.logger.Debug("command outcome", zap.Error(err))
		}
	}

	c.input.Reset()
	if c.session.IsOpen() {
		c.input.Focus()
	}
	c.timers.After(c.opts.ScrollSettle, c.scroller.GotoBottom)
}

func (c *Controller) chat(text string) {
	reply := c.matcher.Respond(text)
	if reply.EndsChat {
		c.session.SetMode(session.ModeCommand)
	}
	c.logger.Debug("chat reply", zap.String("rule", reply.Rule), zap.Stringer("action", reply.Action))

	if err := c.revealer.Start(reply.Text, c.actionFor(reply.Action)); err != nil {
		if errors.Is(err, reveal.ErrBusy) {
			c.logger.Warn("reveal already running; reply dropped", zap.String("rule", reply.Rule))
			return
		}
		c.logger.Error("start reveal", zap.Error(err))
	}
}

func (c *Controller) actionFor(a intent.Action) func() {
	switch a {
	case intent.ActionMatrix:
		return func() { c.fx.Visuals.ToggleMatrix(true) }
	case intent.ActionGravity:
		return c.fx.Visuals.StartGravity
	case intent.ActionAbout:
		return func() { c.fx.Navigator.NavigateTo(c.opts.Settings.AboutTarget) }
	default:
		return nil
	}
}

func (c *Controller) drainQueue() {
	for len(c.queue) > 0 && !c.revealer.Busy() {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.process(next)
	}
}

// =============================================================================
// HISTORY NAVIGATION
// =============================================================================

// HistoryBack recalls the previous line into the input and returns it. With
// no history the input is left alone.
func (c *Controller) HistoryBack() string {
	if c.history.Len() == 0 {
		return ""
	}
	value := c.history.Back()
	c.input.SetValue(value)
	return value
}

// HistoryForward recalls the next line, or clears the input past the newest.
func (c *Controller) HistoryForward() string {
	value := c.history.Forward()
	c.input.SetValue(value)
	return value
}

// =============================================================================
// KEYS OUTSIDE THE TERMINAL
// =============================================================================

// GlobalKey feeds a key pressed while the terminal is closed: typing the
// matrix word toggles the rain and a double Esc toggles the boss screen.
func (c *Controller) GlobalKey(key string) {
	if c.session.IsOpen() {
		return
	}
	if c.matrix.Feed(key) {
		c.fx.Visuals.ToggleMatrix(!c.state.Matrix)
	}
	if key == "esc" && c.escape.Tap() && c.fx.Boss != nil {
		c.fx.Boss.ToggleBoss()
	}
}

// Breaker restores power after a blackout. It reports whether it did.
func (c *Controller) Breaker() bool {
	if !c.state.Blackout {
		return false
	}
	c.fx.Visuals.ToggleBlackout()
	return true
}

// =============================================================================
// RESET
// =============================================================================

// Reset unloads the session as a full page navigation does: the terminal
// closes, returns to Command mode and forgets its output, history, queue and
// timers.
func (c *Controller) Reset() {
	c.revealer.Cancel()
	c.timers.CancelAll()
	c.queue = nil
	c.out.Clear()
	c.history.Clear()
	c.logo.Reset()
	c.escape.Reset()
	c.session.Reset()
	c.input.Reset()
	c.input.Blur()
	c.logger.Info("session reset", zap.String("session", c.session.ID()))
}
