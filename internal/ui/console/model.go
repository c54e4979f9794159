// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/commands"
	"github.com/SwayamPurwar/portfolio-term/internal/config"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/terminal"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/site"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/styles"
)

// ist is the site owner's clock shown in the header. India has no DST.
var ist = time.FixedZone("IST", 5*60*60+30*60)

// =============================================================================
// MESSAGES
// =============================================================================

// ConfigReloadedMsg carries a config reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

type preloadTickMsg struct{}

type clockTickMsg time.Time

type rainTickMsg struct{}

type gravityTickMsg struct{}

// =============================================================================
// MODEL
// =============================================================================

// Options configure a console model.
type Options struct {
	Config *config.Config
	Logger *zap.Logger
	// Bell receives the audio cues; output is discarded when nil.
	Bell *effects.Bell
	// Opener handles external links; nil opens nothing.
	Opener effects.Opener
	Now    func() time.Time
	Rand   *rand.Rand
	// Theme overrides terminal detection, for tests.
	Theme *styles.Theme
}

// Model is the Bubble Tea model.
type Model struct {
	cfg    *config.Config
	log    *zap.Logger
	now    func() time.Time
	rng    *rand.Rand
	keys   KeyMap
	theme  *styles.Theme
	timers *timer.Tea

	state *appstate.State
	site  *effects.Site
	bell  *effects.Bell
	ctrl  *terminal.Controller

	input      *inputBox
	output     *logPane
	completer  *commands.Completer
	completion *commands.CompletionState
	page       viewport.Model
	spinner    spinner.Model

	pages   *site.Pages
	boss    *site.BossScreen
	rain    *site.Rain
	gravity *site.Gravity

	pageKey      string
	pageLines    []string
	anchor       string
	visits       int
	preloadStart time.Time
	breakerX     int
	breakerY     int
	clock        time.Time

	width  int
	height int
	ready  bool
}

// New builds the model and the terminal controller behind it.
func New(opts Options) Model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(now().UnixNano()))
	}
	bell := opts.Bell
	if bell == nil {
		bell = effects.NewBell(io.Discard, false, log.Named("bell"))
	}
	theme := opts.Theme
	if theme == nil {
		theme = styles.NewTheme(appstate.ThemeDefault, cfg.UI.Accent)
	}

	state := appstate.New(cfg.UI.Accent)
	siteFX := effects.NewSite(state, bell, log.Named("site"))

	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "type 'help'"
	ti.CharLimit = 256
	input := &inputBox{ti: ti}

	output := &logPane{vp: viewport.New(0, 0), pinned: true}

	sp := spinner.New()
	sp.Spinner = spinner.Spinner{Frames: styles.DotsSpinner.Frames, FPS: styles.DotsSpinner.Duration()}

	timers := timer.NewTea()
	fx := effects.Set{
		Navigator: siteFX,
		Opener:    opts.Opener,
		Cues:      bell,
		Theme:     siteFX,
		Visuals:   siteFX,
		Boss:      siteFX,
	}
	if fx.Opener == nil {
		fx.Opener = effects.NewBrowser(false, log.Named("browser"))
	}

	ctrl := terminal.New(terminal.Deps{
		State:    state,
		FX:       fx,
		Timers:   timers,
		Input:    input,
		Scroller: output,
		Logger:   log.Named("terminal"),
		Now:      now,
		Intn:     rng.Intn,
	}, cfg.TerminalOptions())
	siteFX.OnUnload = func(page string) { ctrl.Reset() }

	m := Model{
		cfg:        cfg,
		log:        log,
		now:        now,
		rng:        rng,
		keys:       DefaultKeyMap(cfg.Terminal.ToggleKeys),
		theme:      theme,
		timers:     timers,
		state:      state,
		site:       siteFX,
		bell:       bell,
		ctrl:       ctrl,
		input:      input,
		output:     output,
		completer:  commands.NewCompleter(ctrl.Registry()),
		completion: &commands.CompletionState{},
		page:       viewport.New(0, 0),
		spinner:    sp,
		pages:      site.NewPages(cfg.UI.GlamourStyle),
		boss:       site.NewBossScreen("monokai"),
		visits:     state.Visits,
		clock:      now(),
	}
	m.styleWidgets()
	m.startPreloader()
	return m
}

// Controller exposes the terminal controller.
func (m Model) Controller() *terminal.Controller { return m.ctrl }

// State exposes the shared UI state.
func (m Model) State() *appstate.State { return m.state }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	var preload tea.Cmd
	if m.state.Preloading {
		preload = preloadTick()
	}
	return tea.Batch(
		preload,
		clockTick(),
		tea.SetWindowTitle(windowTitle),
	)
}

const windowTitle = "Swayam | Creative Developer"

func clockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return clockTickMsg(t) })
}

func (m *Model) startPreloader() tea.Cmd {
	if m.cfg.UI.Preloader <= 0 {
		m.state.Preloading = false
		return nil
	}
	m.state.Preloading = true
	m.preloadStart = m.now()
	return preloadTick()
}

func preloadTick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(time.Time) tea.Msg { return preloadTickMsg{} })
}

func rainTick() tea.Cmd {
	return tea.Tick(styles.MatrixFrameRate, func(time.Time) tea.Msg { return rainTickMsg{} })
}

func gravityTick() tea.Cmd {
	return tea.Tick(styles.GravityFrameRate, func(time.Time) tea.Msg { return gravityTickMsg{} })
}

// syncTheme rebuilds styles when the accent or scheme changed.
func (m *Model) syncTheme() {
	custom := m.state.Glow != ""
	if m.theme.Matches(m.state.Theme, m.state.Accent, custom) {
		return
	}
	m.theme.Apply(m.state.Theme, m.state.Accent, custom)
	m.styleWidgets()
}

func (m *Model) styleWidgets() {
	m.input.ti.PromptStyle = m.theme.Prompt
	m.input.ti.TextStyle = m.theme.InputText
	m.input.ti.PlaceholderStyle = m.theme.Placeholder
	m.spinner.Style = m.theme.Spinner
}
