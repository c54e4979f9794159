// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/config"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/terminal"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/site"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/styles"
)

// timerLimit bounds the callbacks run while settling one submission.
const timerLimit = 100000

// =============================================================================
// HOST
// =============================================================================

// host runs the terminal controller without a screen. Timers are driven by
// hand; output is streamed to a writer as lines are committed.
type host struct {
	log    *zap.Logger
	state  *appstate.State
	timers *timer.Manual
	ctrl   *terminal.Controller
	print  *printer
	pages  *site.Pages
	width  int

	// loaded is set by a page navigation and consumed by settle.
	loaded string
}

func newHost(cfg *config.Config, log *zap.Logger, w io.Writer) *host {
	if log == nil {
		log = zap.NewNop()
	}
	tty := isTerminalWriter(w)
	width := DefaultTerminalWidth
	if tty {
		width = GetTerminalWidth()
	}

	state := appstate.New(cfg.UI.Accent)
	bell := effects.NewBell(w, cfg.UI.Audio && tty, log.Named("bell"))
	bell.Unlock()
	siteFX := effects.NewSite(state, bell, log.Named("site"))
	timers := timer.NewManual()

	ctrl := terminal.New(terminal.Deps{
		State: state,
		FX: effects.Set{
			Navigator: siteFX,
			Opener:    effects.NewBrowser(cfg.UI.OpenBrowser && tty, log.Named("browser")),
			Cues:      bell,
			Theme:     siteFX,
			Visuals:   siteFX,
			Boss:      siteFX,
		},
		Timers: timers,
		Logger: log.Named("terminal"),
	}, cfg.TerminalOptions())

	h := &host{
		log:    log,
		state:  state,
		timers: timers,
		ctrl:   ctrl,
		print:  newPrinter(w, ctrl.Output(), tty, styles.NewTheme(appstate.ThemeDefault, cfg.UI.Accent)),
		pages:  site.NewPages(cfg.UI.GlamourStyle),
		width:  width,
	}
	siteFX.OnUnload = func(page string) {
		ctrl.Reset()
		h.loaded = page
	}
	return h
}

// open opens the terminal if it is closed.
func (h *host) open() {
	if !h.ctrl.Session().IsOpen() {
		h.ctrl.Toggle()
	}
	h.print.flush()
}

// submit runs one line and waits for everything it scheduled. sleep paces
// the timers; nil runs them instantly.
func (h *host) submit(line string, sleep func(time.Duration)) {
	before := effectsOf(h.state)
	h.ctrl.Submit(line)
	h.settle(sleep)
	h.notify(before)
}

func (h *host) settle(sleep func(time.Duration)) {
	h.print.flush()
	var pace func(time.Duration)
	if sleep != nil {
		pace = func(d time.Duration) {
			h.print.flush()
			sleep(d)
		}
	}
	if !h.timers.RunUntilIdle(pace, timerLimit) {
		h.log.Warn("timers did not settle", zap.Int("pending", h.timers.Pending()))
	}
	h.print.flush()

	if h.loaded != "" {
		page := h.loaded
		h.loaded = ""
		h.showPage(page)
		h.open()
	}
}

func (h *host) showPage(page string) {
	rendered, err := h.pages.Render(page, h.width)
	if err != nil {
		h.log.Warn("render page", zap.String("page", page), zap.Error(err))
	}
	h.print.reset()
	h.print.raw(rendered)
}

// =============================================================================
// EFFECT NOTICES
// =============================================================================

type effectFlags struct {
	matrix, blackout, gravity, boss bool
	theme                           appstate.Theme
	accent                          string
}

func effectsOf(s *appstate.State) effectFlags {
	return effectFlags{
		matrix:   s.Matrix,
		blackout: s.Blackout,
		gravity:  s.Gravity,
		boss:     s.Boss,
		theme:    s.Theme,
		accent:   s.Accent,
	}
}

// notify reports visual effects this host cannot draw.
func (h *host) notify(before effectFlags) {
	after := effectsOf(h.state)
	flag := func(name string, was, is bool) {
		if was == is {
			return
		}
		state := "off"
		if is {
			state = "on"
		}
		h.print.notice(fmt.Sprintf("[%s: %s]", name, state))
	}
	flag("matrix", before.matrix, after.matrix)
	flag("blackout", before.blackout, after.blackout)
	flag("gravity", before.gravity, after.gravity)
	flag("boss", before.boss, after.boss)
	if before.theme != after.theme {
		name := string(after.theme)
		if name == "" {
			name = "default"
		}
		h.print.notice("[theme: " + name + "]")
	}
	if before.accent != after.accent {
		h.print.notice("[accent: " + after.accent + "]")
	}
}

// =============================================================================
// PRINTER
// =============================================================================

// printer writes the output log as it grows. On a terminal the pending line
// is redrawn in place so the typing reveal is visible; elsewhere only
// committed lines are written.
type printer struct {
	w    io.Writer
	term *termenv.Output
	log  *output.Log
	tty  bool
	pal  output.Palette

	printed int
	clears  uint64
	pending bool
}

func newPrinter(w io.Writer, log *output.Log, tty bool, theme *styles.Theme) *printer {
	profile := GetColorProfile(w)
	p := &printer{
		w:    w,
		term: termenv.NewOutput(w, termenv.WithProfile(profile)),
		log:  log,
		tty:  tty,
	}
	if profile != termenv.Ascii {
		p.pal = theme.Palette()
	}
	return p
}

func (p *printer) render(line output.Line) string {
	if p.pal == nil {
		return output.Plain(line)
	}
	return output.Render(line, p.pal)
}

func (p *printer) clearPending() {
	if p.pending {
		fmt.Fprint(p.w, "\r")
		p.term.ClearLine()
		p.pending = false
	}
}

func (p *printer) flush() {
	if c := p.log.Clears(); c != p.clears {
		p.clearPending()
		if p.tty {
			p.term.ClearScreen()
		}
		p.clears = c
		p.printed = 0
	}

	lines := p.log.Lines()
	if p.printed < len(lines) {
		p.clearPending()
		for _, line := range lines[p.printed:] {
			fmt.Fprintln(p.w, p.render(line))
		}
		p.printed = len(lines)
	}

	if !p.tty {
		return
	}
	if line, ok := p.log.Pending(); ok {
		fmt.Fprint(p.w, "\r")
		p.term.ClearLine()
		fmt.Fprint(p.w, p.render(line))
		p.pending = true
	} else {
		p.clearPending()
	}
}

// reset forgets what was printed, as after a log cleared by navigation.
func (p *printer) reset() {
	p.clearPending()
	p.clears = p.log.Clears()
	p.printed = p.log.Len()
}

func (p *printer) raw(text string) {
	p.clearPending()
	fmt.Fprintln(p.w, text)
}

func (p *printer) notice(text string) {
	p.clearPending()
	if p.tty {
		text = p.term.String(text).Faint().String()
	}
	fmt.Fprintln(p.w, text)
}
