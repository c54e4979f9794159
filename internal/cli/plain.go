// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SwayamPurwar/portfolio-term/internal/config"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
)

// prompter reads one line of input.
type prompter interface {
	Prompt(prompt string) (string, error)
}

// linePrompter is a liner-backed prompter with persistent history.
type linePrompter struct {
	line        *liner.State
	historyFile string
	log         *zap.Logger
}

func newLinePrompter(log *zap.Logger) *linePrompter {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	p := &linePrompter{line: line, log: log}
	if dir, err := config.Dir(); err == nil {
		p.historyFile = filepath.Join(dir, "history")
		if f, err := os.Open(p.historyFile); err == nil {
			if _, err := line.ReadHistory(f); err != nil {
				log.Debug("read history", zap.Error(err))
			}
			f.Close()
		}
	}
	return p
}

func (p *linePrompter) Prompt(prompt string) (string, error) {
	input, err := p.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		p.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (p *linePrompter) Close() {
	if p.historyFile != "" {
		if err := os.MkdirAll(filepath.Dir(p.historyFile), 0o700); err == nil {
			if f, err := os.Create(p.historyFile); err == nil {
				if _, err := p.line.WriteHistory(f); err != nil {
					p.log.Debug("write history", zap.Error(err))
				}
				f.Close()
			}
		}
	}
	p.line.Close()
}

// =============================================================================
// REPL
// =============================================================================

func (a *app) plainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plain",
		Short: "Start the line-oriented REPL",
		Long: `Starts the terminal as a plain REPL. It opens ready for input; 'exit'
leaves. Used automatically when stdin or stdout is not a terminal.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlain(cmd)
		},
	}
}

func (a *app) runPlain(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	h := newHost(a.cfg, a.log, out)

	in := newLinePrompter(a.log.Named("repl"))
	defer in.Close()

	fmt.Fprintln(out, "Type 'help' for commands, 'ai' to chat, 'exit' to leave.")
	return runREPL(h, in, time.Sleep)
}

// runREPL reads and runs lines until the terminal is closed or input ends.
func runREPL(h *host, in prompter, sleep func(time.Duration)) error {
	h.open()
	for h.ctrl.Session().IsOpen() {
		line, err := in.Prompt(promptFor(h))
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if h.state.Blackout {
			if strings.EqualFold(strings.TrimSpace(line), "b") {
				before := effectsOf(h.state)
				h.ctrl.Breaker()
				h.notify(before)
			}
			continue
		}
		h.submit(line, sleep)
	}
	return nil
}

func promptFor(h *host) string {
	switch {
	case h.state.Blackout:
		return breakerPrompt
	case h.ctrl.Session().Mode() == session.ModeChat:
		return "You > "
	default:
		return h.ctrl.Prompt() + " "
	}
}

const breakerPrompt = "[ BREAKER ] type b > "
