// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/SwayamPurwar/portfolio-term/internal/appstate"
	"github.com/SwayamPurwar/portfolio-term/internal/effects"
	"github.com/SwayamPurwar/portfolio-term/internal/output"
	"github.com/SwayamPurwar/portfolio-term/internal/session"
)

// DateLayout mirrors a browser's Date.toString().
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// ChatGreeting is printed when Chat mode starts.
const ChatGreeting = "S.A.M. v1.0 ONLINE. Talk to me."

// registerBuiltins populates the registry. Registration order is help order.
func (r *Registry) registerBuiltins() {
	// =========================================================================
	// BASIC COMMANDS
	// =========================================================================

	r.register(&Command{
		Name:        "help",
		Description: "Show available commands",
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.AppendRich(HelpFragment(r))
			return nil
		},
	})

	r.register(&Command{
		Name:        "ls",
		Aliases:     []string{"dir"},
		Description: "List directory contents (pages)",
		Category:    CategoryBasic,
		Handler:     cmdList,
	})

	r.register(&Command{
		Name:        "cd",
		Description: "Change directory (navigation)",
		Usage:       "cd [page_name]",
		Values:      []string{"home", "about", "work", "projects", ".."},
		Category:    CategoryBasic,
		Handler:     cmdChangeDir,
	})

	r.register(&Command{
		Name:        "pwd",
		Description: "Print working directory",
		Category:    CategoryBasic,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.Append(ctx.Settings.WorkingDir)
			return nil
		},
	})

	r.register(&Command{
		Name:        "date",
		Aliases:     []string{"time"},
		Description: "Show system date & time",
		Category:    CategoryBasic,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.Append(ctx.now().Format(DateLayout))
			return nil
		},
	})

	r.register(&Command{
		Name:        "history",
		Description: "View command history",
		Category:    CategoryBasic,
		Handler:     cmdHistory,
	})

	r.register(&Command{
		Name:        "clear",
		Aliases:     []string{"cls"},
		Description: "Clear terminal screen",
		Category:    CategoryBasic,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.Clear()
			return nil
		},
	})

	r.register(&Command{
		Name:        "echo",
		Description: "Print the arguments",
		Usage:       "echo [text]",
		Hidden:      true,
		Handler: func(ctx *Context, arg string) error {
			ctx.Log.Append(arg)
			return nil
		},
	})

	r.register(&Command{
		Name:        "exit",
		Aliases:     []string{"gui"},
		Description: "Close the terminal",
		Hidden:      true,
		Handler: func(ctx *Context, _ string) error {
			ctx.Terminal.Toggle()
			return nil
		},
	})

	r.register(&Command{
		Name:        "goto",
		Description: "Alias of cd",
		Usage:       "goto [page_name]",
		Values:      []string{"home", "about", "work", "projects"},
		Hidden:      true,
		Handler: func(ctx *Context, arg string) error {
			return ctx.redispatch("cd " + arg)
		},
	})

	// =========================================================================
	// SYSTEM
	// =========================================================================

	r.register(&Command{
		Name:        "whoami",
		Description: "Current user info",
		Category:    CategorySystem,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.Append(fmt.Sprintf("Guest User [IP: %d.0.0.1]. Access Level: Visitor.", ctx.intn(255)+1))
			return nil
		},
	})

	r.register(&Command{
		Name:        "socials",
		Description: "Connect via LinkedIn/GitHub",
		Category:    CategorySystem,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.Append("GitHub | LinkedIn")
			ctx.FX.Opener.OpenExternal(ctx.Settings.SocialURL)
			return nil
		},
	})

	r.register(&Command{
		Name:        "theme",
		Description: "Change UI theme to Blueprint / Paper",
		Usage:       "theme blueprint|paper|reset",
		Values:      []string{"blueprint", "paper", "reset", "default"},
		Category:    CategorySystem,
		Handler:     cmdTheme,
	})

	r.register(&Command{
		Name:        "color",
		Description: "Change the accent colour",
		Usage:       "color #ff0000",
		Hidden:      true,
		Handler:     cmdColor,
	})

	// =========================================================================
	// EXPERIMENTS
	// =========================================================================

	r.register(&Command{
		Name:        "matrix",
		Description: "Toggle visual effect",
		Category:    CategoryExperiments,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.Append("Initializing Matrix...")
			ctx.FX.Visuals.ToggleMatrix(true)
			return nil
		},
	})

	r.register(&Command{
		Name:        "blackout",
		Aliases:     []string{"shutdown"},
		Description: "Power saving mode",
		Category:    CategoryExperiments,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.AppendRich(alert("INITIATING SYSTEM POWER CUT..."))
			ctx.Timers.After(ctx.Settings.BlackoutDelay, ctx.FX.Visuals.ToggleBlackout)
			return nil
		},
	})

	r.register(&Command{
		Name:        "gravity",
		Description: "Disable artificial gravity",
		Hidden:      true,
		Handler: func(ctx *Context, _ string) error {
			ctx.Log.AppendRich(alert("WARNING: ARTIFICIAL GRAVITY GENERATORS FAILING..."))
			ctx.Timers.After(ctx.Settings.GravityDelay, func() {
				ctx.Log.Append("CRITICAL ERROR: STRUCTURE UNSTABLE.")
				ctx.FX.Visuals.StartGravity()
			})
			return nil
		},
	})

	r.register(&Command{
		Name:        "ai",
		Aliases:     []string{"chat"},
		Description: "To load Artificial Intelligence",
		Category:    CategoryExperiments,
		Handler: func(ctx *Context, _ string) error {
			ctx.Terminal.SetMode(session.ModeChat)
			ctx.Log.Append(ChatGreeting)
			return nil
		},
	})
}

// =============================================================================
// HANDLERS
// =============================================================================

func cmdList(ctx *Context, _ string) error {
	ctx.Log.Append(ctx.Settings.Listing)
	return nil
}

func cmdChangeDir(ctx *Context, arg string) error {
	switch arg {
	case "..", "home", "index", "~":
		ctx.Log.Append("Navigating to /home...")
		ctx.FX.Navigator.NavigateTo(ctx.Settings.HomeTarget)
	case "about":
		ctx.Log.Append("Navigating to /about...")
		ctx.FX.Navigator.NavigateTo(ctx.Settings.AboutTarget)
	case "work", "projects":
		ctx.Log.Append("Navigating to /work...")
		ctx.FX.Navigator.NavigateTo(ctx.Settings.WorkTarget)
	case "":
		ctx.Log.Append("Usage: cd [page_name]")
		return &UsageError{Verb: "cd", Usage: "cd [page_name]"}
	default:
		ctx.Log.Append(fmt.Sprintf("bash: cd: %s: No such directory", arg))
		return &NotFoundError{Verb: "cd", Target: arg}
	}
	return nil
}

func cmdHistory(ctx *Context, _ string) error {
	entries := ctx.History.Entries()
	if len(entries) == 0 {
		ctx.Log.Append("No history found.")
		return ErrEmptyState
	}
	lines := make([]string, len(entries))
	for i, entry := range entries {
		lines[i] = fmt.Sprintf("%d  %s", i+1, entry)
	}
	ctx.Log.Append(strings.Join(lines, "\n"))
	return nil
}

func cmdColor(ctx *Context, arg string) error {
	if arg == "" {
		ctx.Log.Append("Error: Please specify a color (e.g., color #ff0000).")
		return &UsageError{Verb: "color", Usage: "color #ff0000"}
	}
	ctx.FX.Theme.SetAccent(arg)
	ctx.FX.Theme.SetGlow(GlowFor(arg))
	ctx.Log.Append("SUCCESS: System accent changed to " + arg)
	ctx.FX.Cues.PlayCue(effects.CueBoot)
	return nil
}

func cmdTheme(ctx *Context, arg string) error {
	switch arg {
	case "blueprint":
		ctx.FX.Theme.SetTheme(appstate.ThemeBlueprint)
		ctx.Log.Append("System reloaded: BLUEPRINT.")
	case "paper":
		ctx.FX.Theme.SetTheme(appstate.ThemePaper)
		ctx.Log.Append("System reloaded: ANALOG.")
	case "reset", "default":
		ctx.FX.Theme.SetTheme(appstate.ThemeDefault)
		ctx.Log.Append("System restored.")
	default:
		ctx.Log.Append("Themes available: blueprint, paper, reset")
		return &UsageError{Verb: "theme", Usage: "theme blueprint|paper|reset"}
	}
	return nil
}

// GlowFor returns the ambient glow expression for an accent value.
func GlowFor(accent string) string {
	return fmt.Sprintf("radial-gradient(circle, %s40 0%%, rgba(0, 0, 0, 0) 70%%)", accent)
}

func alert(text string) string {
	return `<span class="` + output.ClassAlert + `">` + output.Escape(text) + `</span>`
}
