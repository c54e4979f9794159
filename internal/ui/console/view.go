// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package console

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/styles"
	"github.com/SwayamPurwar/portfolio-term/internal/util"
)

const (
	logo         = "SWAYAM."
	breakerLabel = "[ BREAKER ] press b"
	// logoEnd is the first column right of the logo, header padding included.
	logoEnd = 2 + len(logo)
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return ""
	}
	switch {
	case m.state.Preloading:
		return m.viewPreloader()
	case m.state.Boss:
		return m.boss.View(m.width, m.height)
	case m.state.Blackout:
		return m.viewBlackout()
	}

	body := m.page.View()
	switch {
	case m.rain != nil:
		body = m.rain.View(m.theme.RainHead, m.theme.Rain)
	case m.gravity != nil:
		body = m.gravity.View()
	}
	h := m.bodyHeight()
	body = lipgloss.NewStyle().Height(h).MaxHeight(h).Render(body)

	sections := []string{m.viewHeader(), body}
	if m.ctrl.Session().IsOpen() {
		sections = append(sections, m.viewPanel())
	}
	sections = append(sections, m.viewFooter())
	return m.theme.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) viewHeader() string {
	nav := []string{m.theme.Logo.Render(logo)}
	for _, page := range []string{appstate.PageIndex, appstate.PageAbout} {
		style := m.theme.NavItem
		if m.state.Page == page {
			style = m.theme.NavActive
		}
		nav = append(nav, style.Render(page))
	}
	left := strings.Join(nav, " ")
	right := m.theme.Muted.Render(m.clock.In(ist).Format("15:04:05") + " IST")

	inner := max(0, m.width-4)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left
	if gap > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return m.theme.Header.Width(m.width).Render(line)
}

func (m Model) viewPanel() string {
	mode := m.ctrl.Session().Mode()
	title := m.theme.PanelTitle.Render("TERMINAL") + m.theme.Muted.Render(" ["+strings.ToUpper(mode.String())+"]")
	if n := m.ctrl.Queued(); n > 0 {
		title += m.theme.Muted.Render(fmt.Sprintf(" (%d queued)", n))
	}

	promptStyle := m.theme.Prompt
	if mode == session.ModeChat {
		promptStyle = m.theme.ChatPrompt
	}
	inputRow := promptStyle.Render(m.promptText()) + " " + m.input.ti.View()

	content := lipgloss.JoinVertical(lipgloss.Left, title, m.output.vp.View(), inputRow)
	return m.theme.Panel.Width(m.width - 2).Render(content)
}

func (m Model) viewFooter() string {
	hints := m.keysClosed()
	if m.ctrl.Session().IsOpen() {
		hints = m.keysOpen()
	}
	status := m.ctrl.Session().Status()
	right := fmt.Sprintf("session %s  up %s", util.TruncateRunes(status.ID, 8), shortDuration(status.Uptime))
	left := strings.Join(hints, "  ")

	inner := max(0, m.width-4)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := util.TruncateWidth(left, inner)
	if gap > 0 {
		line = left + strings.Repeat(" ", gap) + right
	}
	return m.theme.Footer.Render(line)
}

func (m Model) keysOpen() []string {
	return helpItems(m.keys.Close.Help().Key, m.keys.Close.Help().Desc,
		m.keys.Complete.Help().Key, m.keys.Complete.Help().Desc,
		"up/down", "history")
}

func (m Model) keysClosed() []string {
	return helpItems(m.keys.Toggle.Help().Key, m.keys.Toggle.Help().Desc,
		m.keys.ScrollDown.Help().Key, m.keys.ScrollDown.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc)
}

func helpItems(pairs ...string) []string {
	items := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		items = append(items, pairs[i]+" "+pairs[i+1])
	}
	return items
}

func shortDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d < time.Minute {
		return fmt.Sprintf("%ds", int(d.Seconds()))
	}
	return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
}

func (m Model) viewPreloader() string {
	progress := 1.0
	if m.cfg.UI.Preloader > 0 {
		progress = float64(m.now().Sub(m.preloadStart)) / float64(m.cfg.UI.Preloader)
	}
	percent := styles.EaseOutQuad(styles.Clamp01(progress)) * 100

	barWidth := min(40, max(10, m.width-10))
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.Logo.Render("SWAYAM.DEV"),
		"",
		m.theme.Preloader.Render(styles.RenderProgressBar(barWidth, percent)),
		m.theme.Muted.Render(fmt.Sprintf("%3.0f%%", percent)),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewBlackout() string {
	rows := make([]string, m.height)
	blank := strings.Repeat(" ", m.width)
	for y := range rows {
		rows[y] = blank
	}
	if m.breakerY < len(rows) {
		label := util.TruncateWidth(breakerLabel, m.width)
		x := min(m.breakerX, max(0, m.width-lipgloss.Width(label)))
		rows[m.breakerY] = util.PadRight(strings.Repeat(" ", x)+label, m.width)
	}
	return m.theme.Blackout.Render(strings.Join(rows, "\n"))
}
