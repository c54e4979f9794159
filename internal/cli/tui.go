// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/config"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/console"
)

// runTUI runs the full screen interface until the visitor quits or ctx is
// cancelled. Edits to the config file are applied live.
func (a *app) runTUI(ctx context.Context) error {
	log := a.log.Named("tui")

	model := console.New(console.Options{
		Config: a.cfg,
		Logger: log,
		Bell:   effects.NewBell(os.Stderr, a.cfg.UI.Audio, log.Named("bell")),
		Opener: effects.NewBrowser(a.cfg.UI.OpenBrowser, log.Named("browser")),
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if a.cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if a.cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if path, err := a.resolveConfigPath(); err == nil {
		err := config.Watch(watchCtx, path, func(cfg *config.Config, err error) {
			p.Send(console.ConfigReloadedMsg{Config: cfg, Err: err})
		})
		if err != nil {
			log.Warn("config watch disabled", zap.Error(err))
		}
	}

	log.Info("interface started")
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run interface: %w", err)
	}
	log.Info("interface stopped")
	return nil
}
