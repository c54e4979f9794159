// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/reveal"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
	"github.com/SwayamPurwar/portfolio-term/internal/timer"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/site"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/styles"
)

// snapshot is the part of the state whose changes need host work.
type snapshot struct {
	matrix   bool
	gravity  bool
	blackout bool
	boss     bool
	reveal   reveal.State
}

func (m Model) snapshot() snapshot {
	return snapshot{
		matrix:   m.state.Matrix,
		gravity:  m.state.Gravity,
		blackout: m.state.Blackout,
		boss:     m.state.Boss,
		reveal:   m.ctrl.RevealState(),
	}
}

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	prev := m.snapshot()
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.theme.SetSize(msg.Width, msg.Height)
		m.ready = true
		m.pageKey = ""

	case timer.FiredMsg:
		m.timers.Fire(msg)

	case preloadTickMsg:
		if m.state.Preloading {
			if m.now().Sub(m.preloadStart) >= m.cfg.UI.Preloader {
				m.state.Preloading = false
			} else {
				cmds = append(cmds, preloadTick())
			}
		}

	case clockTickMsg:
		m.clock = time.Time(msg)
		cmds = append(cmds, clockTick())

	case rainTickMsg:
		if m.state.Matrix && m.rain != nil {
			m.rain.Step()
			cmds = append(cmds, rainTick())
		}

	case gravityTickMsg:
		if m.gravity != nil && m.gravity.Step() {
			cmds = append(cmds, gravityTick())
		}

	case spinner.TickMsg:
		if m.ctrl.RevealState() == reveal.StateThinking {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case ConfigReloadedMsg:
		m.applyConfig(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			return m, tea.Quit
		}
		cmd, quit := m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}
		cmds = append(cmds, cmd)
	}

	cmds = append(cmds, m.afterUpdate(prev)...)
	cmds = append(cmds, m.timers.Flush(), m.input.takeCmd())
	m.sync()
	return m, tea.Batch(cmds...)
}

// afterUpdate starts the host side of effects that just switched on.
func (m *Model) afterUpdate(prev snapshot) []tea.Cmd {
	var cmds []tea.Cmd

	if m.state.Visits != m.visits {
		m.visits = m.state.Visits
		m.pageKey = ""
		m.rain = nil
		m.gravity = nil
		m.page.GotoTop()
		m.completion.Clear()
		if cmd := m.startPreloader(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	switch {
	case m.state.Matrix && m.rain == nil:
		m.rain = site.NewRain(styles.MatrixGlyphs, m.rng, m.width, m.bodyHeight())
		cmds = append(cmds, rainTick())
	case !m.state.Matrix:
		m.rain = nil
	}

	if m.state.Gravity && m.gravity == nil {
		m.gravity = site.NewGravity(m.visiblePageLines(), m.width, m.bodyHeight(), m.rng)
		cmds = append(cmds, gravityTick())
	}

	if m.state.Blackout && !prev.blackout {
		label := len(breakerLabel)
		m.breakerX = m.rng.Intn(max(1, m.width-label))
		m.breakerY = m.rng.Intn(max(1, m.height))
	}

	if m.state.Boss != prev.boss {
		title := windowTitle
		if m.state.Boss {
			title = site.BossTitle
		}
		cmds = append(cmds, tea.SetWindowTitle(title))
	}

	if m.ctrl.RevealState() == reveal.StateThinking && prev.reveal != reveal.StateThinking {
		cmds = append(cmds, m.spinner.Tick)
	}
	return cmds
}

func (m *Model) applyConfig(msg ConfigReloadedMsg) {
	if msg.Err != nil {
		m.log.Warn("config reload failed", zap.Error(msg.Err))
		return
	}
	cfg := msg.Config
	m.ctrl.Apply(cfg.TerminalOptions())
	m.keys = DefaultKeyMap(cfg.Terminal.ToggleKeys)
	if m.state.Accent == m.state.DefaultAccent {
		m.state.Accent = cfg.UI.Accent
	}
	m.state.DefaultAccent = cfg.UI.Accent
	if cfg.UI.GlamourStyle != m.cfg.UI.GlamourStyle {
		m.pages = site.NewPages(cfg.UI.GlamourStyle)
		m.pageKey = ""
	}
	m.cfg = cfg
	m.log.Info("config reloaded")
}

// =============================================================================
// INPUT
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	m.bell.Unlock()

	if m.state.Blackout {
		if key.Matches(msg, m.keys.Breaker) {
			m.ctrl.Breaker()
		}
		return nil, false
	}

	if key.Matches(msg, m.keys.Toggle) {
		m.ctrl.ToggleKey()
		m.completion.Clear()
		return nil, false
	}

	if m.ctrl.Session().IsOpen() {
		return m.handleTerminalKey(msg), false
	}
	return nil, m.handlePageKey(msg)
}

func (m *Model) handleTerminalKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Close):
		m.ctrl.Toggle()
	case key.Matches(msg, m.keys.Submit):
		m.completion.Clear()
		m.ctrl.Submit(m.input.ti.Value())
	case key.Matches(msg, m.keys.HistoryUp):
		m.ctrl.HistoryBack()
	case key.Matches(msg, m.keys.HistoryDown):
		m.ctrl.HistoryForward()
	case key.Matches(msg, m.keys.Complete):
		m.complete()
	case key.Matches(msg, m.keys.PageUp):
		m.output.scrollUp(max(1, m.output.vp.Height/2))
	case key.Matches(msg, m.keys.PageDown) && msg.Type != tea.KeySpace:
		m.output.scrollDown(max(1, m.output.vp.Height/2))
	default:
		m.completion.Clear()
		var cmd tea.Cmd
		m.input.ti, cmd = m.input.ti.Update(msg)
		return cmd
	}
	return nil
}

// handlePageKey handles keys while the terminal is closed and reports
// whether to quit.
func (m *Model) handlePageKey(msg tea.KeyMsg) bool {
	m.ctrl.GlobalKey(msg.String())
	if m.state.Boss {
		return false
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.ScrollUp):
		m.page.LineUp(1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.page.LineDown(1)
	case key.Matches(msg, m.keys.PageUp):
		m.page.HalfViewUp()
	case key.Matches(msg, m.keys.PageDown):
		m.page.HalfViewDown()
	}
	return false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if m.ctrl.Session().IsOpen() && msg.Y >= m.height-m.panelHeight()-footerHeight {
			m.output.scrollUp(1)
		} else {
			m.page.LineUp(1)
		}
		return
	case tea.MouseButtonWheelDown:
		if m.ctrl.Session().IsOpen() && msg.Y >= m.height-m.panelHeight()-footerHeight {
			m.output.scrollDown(1)
		} else {
			m.page.LineDown(1)
		}
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}

	m.bell.Unlock()
	if m.state.Blackout {
		m.ctrl.Breaker()
		return
	}
	if msg.Y == 0 && msg.X < logoEnd {
		m.ctrl.TapLogo()
	}
}

func (m *Model) complete() {
	if !m.completion.Active() {
		m.completion.Update(m.completer.Complete(m.input.ti.Value()))
	} else {
		m.completion.Next()
	}
	if v := m.completion.Accept(); v != "" {
		m.input.SetValue(v)
	}
	if len(m.completion.Completions) == 1 {
		m.completion.Clear()
	}
}

// =============================================================================
// LAYOUT
// =============================================================================

const (
	headerHeight = 2
	footerHeight = 1
	// panelChrome is the border plus the title and input rows.
	panelChrome = 4
)

func (m Model) panelHeight() int {
	if !m.ctrl.Session().IsOpen() {
		return 0
	}
	h := max(8, m.height*2/5)
	return min(h, m.height-headerHeight-footerHeight-2)
}

func (m Model) bodyHeight() int {
	return max(1, m.height-headerHeight-footerHeight-m.panelHeight())
}

func (m Model) panelInnerWidth() int {
	return max(10, m.width-4)
}

func (m Model) visiblePageLines() []string {
	lines := strings.Split(m.page.View(), "\n")
	if len(lines) > m.bodyHeight() {
		lines = lines[:m.bodyHeight()]
	}
	return lines
}

// sync pushes state into the widgets after every update.
func (m *Model) sync() {
	m.syncTheme()
	if !m.ready {
		return
	}

	m.page.Width = m.width
	m.page.Height = m.bodyHeight()
	if m.rain != nil {
		m.rain.Resize(m.width, m.bodyHeight())
	}

	pageKey := fmt.Sprintf("%s@%d", m.state.Page, m.width)
	if pageKey != m.pageKey {
		rendered, err := m.pages.Render(m.state.Page, m.width-4)
		if err != nil {
			m.log.Warn("render page", zap.String("page", m.state.Page), zap.Error(err))
		}
		m.page.SetContent(m.theme.Page.Render(rendered))
		m.pageLines = strings.Split(rendered, "\n")
		m.pageKey = pageKey
		m.anchor = ""
	}
	if m.state.Anchor != m.anchor {
		if line := site.AnchorLine(strings.Join(m.pageLines, "\n"), m.state.Anchor); line >= 0 {
			m.page.SetYOffset(line)
		}
		m.anchor = m.state.Anchor
	}

	inner := m.panelInnerWidth()
	m.output.vp.Width = inner
	m.output.vp.Height = max(1, m.panelHeight()-panelChrome)
	m.input.ti.Width = max(1, inner-lipgloss.Width(m.promptText())-2)
	m.output.setContent(m.renderLog(inner))
}

func (m Model) renderLog(width int) string {
	pal := m.theme.Palette()
	out := m.ctrl.Output()

	rows := make([]string, 0, out.Len()+1)
	for _, line := range out.Lines() {
		rows = append(rows, output.Render(line, pal))
	}
	if pending, ok := out.Pending(); ok {
		text := output.Render(pending, pal)
		if m.ctrl.RevealState() == reveal.StateThinking {
			text += " " + m.spinner.View()
		}
		rows = append(rows, text)
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(rows, "\n"))
}

func (m Model) promptText() string {
	if m.ctrl.Session().Mode() == session.ModeChat {
		return "You >"
	}
	return m.ctrl.Prompt()
}
