// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SwayamPurwar/portfolio-term/internal/session"
	"github.com/SwayamPurwar/portfolio-term/internal/ui/site"
)

func (a *app) execCmd() *cobra.Command {
	var chat bool

	cmd := &cobra.Command{
		Use:   "exec [line...]",
		Short: "Run a terminal line and print the output",
		Long: `Runs one line through the terminal and prints what it writes.
With no arguments, lines are read from stdin and run in order.

Example:
  portfolio-term exec help
  portfolio-term exec --chat who made you
  printf 'ai\nhello\n' | portfolio-term exec`,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := newHost(a.cfg, a.log.Named("exec"), cmd.OutOrStdout())
			h.open()
			if chat {
				h.ctrl.SetMode(session.ModeChat)
			}

			if len(args) > 0 {
				h.submit(strings.Join(args, " "), nil)
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				if !h.ctrl.Session().IsOpen() {
					break
				}
				h.submit(scanner.Text(), nil)
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&chat, "chat", false, "start in chat mode")
	return cmd
}

func (a *app) pageCmd() *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "page [name]",
		Short: "Print a rendered page",
		Long:  "Prints a site page as rendered markdown. With no name, lists the pages.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pages := site.NewPages(a.cfg.UI.GlamourStyle)
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, name := range pages.Names() {
					fmt.Fprintln(out, name)
				}
				return nil
			}

			if width <= 0 {
				width = DefaultTerminalWidth
				if isTerminalWriter(out) {
					width = GetTerminalWidth()
				}
			}
			rendered, err := pages.Render(args[0], width)
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			fmt.Fprintln(out, rendered)
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", 0, "wrap width (default terminal width)")
	return cmd
}
