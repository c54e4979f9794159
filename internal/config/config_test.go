// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/SwayamPurwar/portfolio-term/internal/terminal"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "user@swayam:~$", cfg.Terminal.Prompt)
	assert.Equal(t, 800*time.Millisecond, cfg.Chat.ThinkingDelay)
	assert.Equal(t, 30*time.Millisecond, cfg.Chat.CharInterval)
	assert.Equal(t, 600*time.Millisecond, cfg.Chat.ActionDelay)
	assert.Equal(t, 3, cfg.Effects.TapCount)
	assert.Equal(t, "#bfa5d8", cfg.UI.Accent)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadTOMLMissingReturnsErrNoConfig(t *testing.T) {
	err := LoadTOML(Default(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.True(t, errors.Is(err, ErrNoConfig))
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[chat]
thinking_delay = "1s"

[site]
social_url = "https://example.com/me"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, time.Second, cfg.Chat.ThinkingDelay)
	assert.Equal(t, 30*time.Millisecond, cfg.Chat.CharInterval, "unset keys keep defaults")
	assert.Equal(t, "https://example.com/me", cfg.Site.SocialURL)
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[chat]\ntypo_delay = \"1s\"\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat.typo_delay")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[effects]\ntap_count = 0\n")

	_, err := Load(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "effects.tap_count", verrs[0].Field)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PTERM_CHAT_CHAR_INTERVAL", "5ms")
	t.Setenv("PTERM_UI_AUDIO", "false")
	t.Setenv("PTERM_TERMINAL_TOGGLE_KEYS", "`,f1")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, 5*time.Millisecond, cfg.Chat.CharInterval)
	assert.False(t, cfg.UI.Audio)
	assert.Equal(t, []string{"`", "f1"}, cfg.Terminal.ToggleKeys)
	assert.Equal(t, 800*time.Millisecond, cfg.Chat.ThinkingDelay)
}

func TestEnvOverridesBeatFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[logging]\nlevel = \"warn\"\n")
	t.Setenv("PTERM_LOGGING_LEVEL", "debug")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestUnprefixedEnvIgnored(t *testing.T) {
	t.Setenv("HOME", "/home/visitor")
	t.Setenv("PROMPT", "$ ")
	t.Setenv("ACCENT", "#000000")
	t.Setenv("AUDIO", "false")
	t.Setenv("LISTING", "nothing here")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, "index.html", cfg.Site.Home)
	assert.Equal(t, "user@swayam:~$", cfg.Terminal.Prompt)
	assert.Equal(t, "#bfa5d8", cfg.UI.Accent)
	assert.Equal(t, Default().UI.Audio, cfg.UI.Audio)
	assert.Equal(t, Default().Site.Listing, cfg.Site.Listing)
}

func TestSplitWordEnvKeys(t *testing.T) {
	t.Setenv("PTERM_SITE_SOCIAL_URL", "https://example.com/me")
	t.Setenv("PTERM_SITE_WORKING_DIR", "/srv/site")
	t.Setenv("PTERM_UI_GLAMOUR_STYLE", "dark")

	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/me", cfg.Site.SocialURL)
	assert.Equal(t, "/srv/site", cfg.Site.WorkingDir)
	assert.Equal(t, "dark", cfg.UI.GlamourStyle)
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Terminal.Prompt = " "
	cfg.Chat.CharInterval = 0
	cfg.Site.Work = "work"
	cfg.Site.SocialURL = "ftp://x"
	cfg.Logging.Level = "loud"
	cfg.UI.Preloader = -time.Second

	err := cfg.Validate()
	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, len(verrs))
	for i, v := range verrs {
		fields[i] = v.Field
	}
	assert.ElementsMatch(t, []string{
		"terminal.prompt",
		"chat.char_interval",
		"ui.preloader",
		"site.social_url",
		"site.work",
		"logging.level",
	}, fields)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Chat.ThinkingDelay = 1500 * time.Millisecond
	cfg.Site.Listing = "a  b"

	require.NoError(t, Save(cfg, path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGet(t *testing.T) {
	cfg := Default()

	v, err := cfg.Get("chat.thinking_delay")
	require.NoError(t, err)
	assert.Equal(t, 800*time.Millisecond, v)

	v, err = cfg.Get("terminal.prompt")
	require.NoError(t, err)
	assert.Equal(t, "user@swayam:~$", v)

	_, err = cfg.Get("chat.nope")
	assert.EqualError(t, err, "unknown key: chat.nope")

	_, err = cfg.Get("terminal.prompt.x")
	assert.Error(t, err)
}

func TestKeysAreGettable(t *testing.T) {
	cfg := Default()
	keys := Keys()
	assert.Contains(t, keys, "effects.matrix_word")
	for _, k := range keys {
		_, err := cfg.Get(k)
		assert.NoError(t, err, k)
	}
}

func TestGlobal(t *testing.T) {
	t.Cleanup(ResetGlobalForTesting)

	ResetGlobalForTesting()
	assert.Equal(t, Default(), Global())

	custom := Default()
	custom.Terminal.Prompt = "guest$"
	SetGlobal(custom)
	assert.Same(t, custom, Global())
}

func TestGlobalConcurrentAccess(t *testing.T) {
	t.Cleanup(ResetGlobalForTesting)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetGlobal(Default())
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, Global())
		}()
	}
	wg.Wait()
}

func TestWatchReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[chat]\nthinking_delay = \"1s\"\n")

	ctx, cancel := context.WithCancel(context.Background())
	got := make(chan *Config, 4)
	require.NoError(t, Watch(ctx, path, func(cfg *Config, err error) {
		if err == nil {
			got <- cfg
		}
	}))

	writeFile(t, path, "[chat]\nthinking_delay = \"2s\"\n")

	select {
	case cfg := <-got:
		assert.Equal(t, 2*time.Second, cfg.Chat.ThinkingDelay)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload after write")
	}

	cancel()
	time.Sleep(50 * time.Millisecond)
}

func TestWatchMissingDirectory(t *testing.T) {
	defer goleak.VerifyNone(t)

	err := Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "config.toml"), func(*Config, error) {})
	assert.Error(t, err)
}

func TestDefaultTerminalOptions(t *testing.T) {
	if diff := cmp.Diff(terminal.DefaultOptions(), Default().TerminalOptions()); diff != "" {
		t.Errorf("default options mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminalOptionsFollowConfig(t *testing.T) {
	cfg := Default()
	cfg.Chat.CharInterval = 5 * time.Millisecond
	cfg.Site.About = "me.html"
	cfg.Effects.TapCount = 5

	opts := cfg.TerminalOptions()
	assert.Equal(t, 5*time.Millisecond, opts.Timing.CharInterval)
	assert.Equal(t, "me.html", opts.Settings.AboutTarget)
	assert.Equal(t, 5, opts.TapCount)
}
