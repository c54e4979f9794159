// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"

	"github.com/SwayamPurwar/portfolio-term/internal/util"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PTERM"

// ErrNoConfig is returned when the config file does not exist.
var ErrNoConfig = errors.New("config file not found")

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config is the complete portfolio-term configuration.
type Config struct {
	Terminal TerminalConfig `toml:"terminal"`
	Chat     ChatConfig     `toml:"chat"`
	Effects  EffectsConfig  `toml:"effects"`
	Site     SiteConfig     `toml:"site"`
	UI       UIConfig       `toml:"ui"`
	Logging  LoggingConfig  `toml:"logging"`
}

// TerminalConfig controls the terminal panel itself.
type TerminalConfig struct {
	Prompt       string        `toml:"prompt" split_words:"true"`
	ToggleKeys   []string      `toml:"toggle_keys" split_words:"true"`
	ScrollSettle time.Duration `toml:"scroll_settle" split_words:"true"`
}

// ChatConfig paces S.A.M.'s typing effect.
type ChatConfig struct {
	ThinkingDelay time.Duration `toml:"thinking_delay" split_words:"true"`
	CharInterval  time.Duration `toml:"char_interval" split_words:"true"`
	ActionDelay   time.Duration `toml:"action_delay" split_words:"true"`
}

// EffectsConfig tunes the easter eggs.
type EffectsConfig struct {
	BlackoutDelay time.Duration `toml:"blackout_delay" split_words:"true"`
	GravityDelay  time.Duration `toml:"gravity_delay" split_words:"true"`
	TapWindow     time.Duration `toml:"tap_window" split_words:"true"`
	TapCount      int           `toml:"tap_count" split_words:"true"`
	MatrixWord    string        `toml:"matrix_word" split_words:"true"`
}

// SiteConfig holds the portfolio's pages and links.
type SiteConfig struct {
	Home       string `toml:"home" split_words:"true"`
	About      string `toml:"about" split_words:"true"`
	Work       string `toml:"work" split_words:"true"`
	SocialURL  string `toml:"social_url" split_words:"true"`
	WorkingDir string `toml:"working_dir" split_words:"true"`
	Listing    string `toml:"listing" split_words:"true"`
}

// UIConfig controls the TUI host.
type UIConfig struct {
	Accent       string        `toml:"accent" split_words:"true"`
	Preloader    time.Duration `toml:"preloader" split_words:"true"`
	AltScreen    bool          `toml:"alt_screen" split_words:"true"`
	Mouse        bool          `toml:"mouse" split_words:"true"`
	Audio        bool          `toml:"audio" split_words:"true"`
	OpenBrowser  bool          `toml:"open_browser" split_words:"true"`
	GlamourStyle string        `toml:"glamour_style" split_words:"true"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `toml:"level" split_words:"true"`
	File        string `toml:"file" split_words:"true"`
	Development bool   `toml:"development" split_words:"true"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Terminal: TerminalConfig{
			Prompt:       "user@swayam:~$",
			ToggleKeys:   []string{"`", "~"},
			ScrollSettle: 50 * time.Millisecond,
		},
		Chat: ChatConfig{
			ThinkingDelay: 800 * time.Millisecond,
			CharInterval:  30 * time.Millisecond,
			ActionDelay:   600 * time.Millisecond,
		},
		Effects: EffectsConfig{
			BlackoutDelay: 800 * time.Millisecond,
			GravityDelay:  time.Second,
			TapWindow:     500 * time.Millisecond,
			TapCount:      3,
			MatrixWord:    "matrix",
		},
		Site: SiteConfig{
			Home:       "index.html",
			About:      "about.html",
			Work:       "#work",
			SocialURL:  "https://github.com/SwayamPurwar",
			WorkingDir: "/home/guest/swayam.dev",
			Listing:    "index.html   about.html   work/   contact.exe   cv.pdf",
		},
		UI: UIConfig{
			Accent:       "#bfa5d8",
			Preloader:    1200 * time.Millisecond,
			AltScreen:    true,
			Mouse:        true,
			Audio:        true,
			OpenBrowser:  true,
			GlamourStyle: "auto",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// Dir returns the configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".portfolio-term"), nil
}

// Path returns the default config file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// DefaultLogFile returns the log path used when logging.file is empty.
func DefaultLogFile() string {
	dir, err := Dir()
	if err != nil {
		return filepath.Join(os.TempDir(), "portfolio-term.log")
	}
	return filepath.Join(dir, "portfolio-term.log")
}

// =============================================================================
// LOAD / SAVE
// =============================================================================

// Load reads the config at path (the default path when empty), applies
// environment overrides and validates the result. A missing file is not an
// error: defaults are used.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := Path()
		if err != nil {
			return nil, err
		}
		path = p
	}

	cfg := Default()
	if err := LoadTOML(cfg, path); err != nil && !errors.Is(err, ErrNoConfig) {
		return nil, err
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the file at path over cfg. Keys absent from the file keep
// their current values.
func LoadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: %w", path, ErrNoConfig)
		}
		return fmt.Errorf("read config: %w", err)
	}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("decode %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnvOverrides applies PTERM_* variables. Unset variables leave the
// current values alone.
func (c *Config) ApplyEnvOverrides() error {
	if err := envconfig.Process(EnvPrefix, c); err != nil {
		return fmt.Errorf("environment overrides: %w", err)
	}
	return nil
}

// Encode renders cfg as a commented TOML document.
func Encode(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("# portfolio-term configuration\n")
	buf.WriteString("# Durations use Go syntax: 800ms, 1s, 1m30s\n\n")
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes cfg to path atomically.
func Save(cfg *Config, path string) error {
	data, err := Encode(cfg)
	if err != nil {
		return err
	}
	if err := util.AtomicWriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidateErrors
	add := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if strings.TrimSpace(c.Terminal.Prompt) == "" {
		add("terminal.prompt", "must not be empty")
	}
	if len(c.Terminal.ToggleKeys) == 0 {
		add("terminal.toggle_keys", "at least one key is required")
	}

	durations := []struct {
		field string
		value time.Duration
	}{
		{"terminal.scroll_settle", c.Terminal.ScrollSettle},
		{"chat.thinking_delay", c.Chat.ThinkingDelay},
		{"chat.char_interval", c.Chat.CharInterval},
		{"chat.action_delay", c.Chat.ActionDelay},
		{"effects.blackout_delay", c.Effects.BlackoutDelay},
		{"effects.gravity_delay", c.Effects.GravityDelay},
		{"effects.tap_window", c.Effects.TapWindow},
		{"ui.preloader", c.UI.Preloader},
	}
	for _, d := range durations {
		if d.value < 0 {
			add(d.field, "must not be negative, got %s", d.value)
		}
		if d.value > time.Minute {
			add(d.field, "must be at most 1m, got %s", d.value)
		}
	}
	if c.Chat.CharInterval == 0 {
		add("chat.char_interval", "must be positive")
	}
	if c.Effects.TapWindow == 0 {
		add("effects.tap_window", "must be positive")
	}
	if c.Effects.TapCount < 1 || c.Effects.TapCount > 10 {
		add("effects.tap_count", "must be between 1 and 10, got %d", c.Effects.TapCount)
	}
	if c.Effects.MatrixWord == "" {
		add("effects.matrix_word", "must not be empty")
	}

	if c.Site.SocialURL != "" && !strings.HasPrefix(c.Site.SocialURL, "https://") && !strings.HasPrefix(c.Site.SocialURL, "http://") {
		add("site.social_url", "must be an http(s) URL, got %q", c.Site.SocialURL)
	}
	if !strings.HasPrefix(c.Site.Work, "#") {
		add("site.work", "must be an anchor starting with '#', got %q", c.Site.Work)
	}

	if c.UI.Accent == "" {
		add("ui.accent", "must not be empty")
	}

	if !validLevels[strings.ToLower(c.Logging.Level)] {
		add("logging.level", "invalid level %q, must be one of: debug, info, warn, error", c.Logging.Level)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// GET (DOT NOTATION)
// =============================================================================

// Get returns the value at a dotted TOML key such as "chat.thinking_delay".
func (c *Config) Get(key string) (any, error) {
	parts := strings.Split(key, ".")
	v := reflect.ValueOf(c).Elem()
	for i, part := range parts {
		field, ok := fieldByTag(v, part)
		if !ok {
			return nil, fmt.Errorf("unknown key: %s", strings.Join(parts[:i+1], "."))
		}
		if i == len(parts)-1 {
			return field.Interface(), nil
		}
		if field.Kind() != reflect.Struct {
			return nil, fmt.Errorf("key %q is not a table", strings.Join(parts[:i+1], "."))
		}
		v = field
	}
	return nil, fmt.Errorf("invalid key: %s", key)
}

// Keys lists every dotted key.
func Keys() []string {
	var keys []string
	t := reflect.TypeOf(Config{})
	for i := 0; i < t.NumField(); i++ {
		section := t.Field(i)
		prefix := section.Tag.Get("toml")
		for j := 0; j < section.Type.NumField(); j++ {
			keys = append(keys, prefix+"."+section.Type.Field(j).Tag.Get("toml"))
		}
	}
	return keys
}

func fieldByTag(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if t.Field(i).Tag.Get("toml") == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig   *Config
	globalConfigMu sync.RWMutex
)

// Global returns the process configuration, defaults until SetGlobal runs.
func Global() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}
	return Default()
}

// SetGlobal sets the process configuration. Thread-safe.
func SetGlobal(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting clears the process configuration.
func ResetGlobalForTesting() {
	SetGlobal(nil)
}
