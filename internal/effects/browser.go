// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package effects

import (
	"io"

	"github.com/pkg/browser"
	"go.uber.org/zap"
)

// Browser opens external links in the system browser.
type Browser struct {
	enabled bool
	open    func(url string) error
	log     *zap.Logger
}

// NewBrowser returns an Opener. When disabled, links are only logged.
func NewBrowser(enabled bool, log *zap.Logger) *Browser {
	if log == nil {
		log = zap.NewNop()
	}
	// The launcher's own output would corrupt the TUI.
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard
	return &Browser{enabled: enabled, open: browser.OpenURL, log: log}
}

// OpenExternal implements Opener.
func (b *Browser) OpenExternal(url string) {
	if !b.enabled {
		b.log.Info("external link suppressed", zap.String("url", url))
		return
	}
	if err := b.open(url); err != nil {
		b.log.Warn("open external link", zap.String("url", url), zap.Error(err))
	}
}
