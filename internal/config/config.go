package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	DefaultConfigFileName = "config.toml"
	EnvConfigPath         = "REMINDERS_CONFIG"
)

type Keymap struct {
	Quit   string `toml:"quit"`
	Add    string `toml:"add"`
	Edit   string `toml:"edit"`
	Toggle string `toml:"toggle"`
	Search string `toml:"search"`
	Group  string `toml:"group"`
	Clear  string `toml:"clear"`
}

type Config struct {
	Theme      string `toml:"theme"`
	Color      string `toml:"color"`
	LogLevel   string `toml:"log_level"`
	LogFormat  string `toml:"log_format"`
	GroupByTag bool   `toml:"group_by_tag"`
	Keys       Keymap `toml:"keys"`
}

// ResolveConfigPath returns $REMINDERS_CONFIG, or config.toml under the
// user config dir, falling back to the working directory.
func ResolveConfigPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return DefaultConfigFileName
	}
	return filepath.Join(dir, "reminders", DefaultConfigFileName)
}

// LoadOrCreate reads the config at path. A missing file is created with
// the defaults.
func LoadOrCreate(path string) (Config, error) {
	cfg := Defaults()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := write(path, cfg); err != nil {
			return cfg, fmt.Errorf("write default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	cfg.fillBlanks()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Theme {
	case "classic", "neon", "mono":
	default:
		return fmt.Errorf("theme must be classic, neon or mono, got %q", c.Theme)
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("color must be auto, always or never, got %q", c.Color)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error", "off":
	default:
		return fmt.Errorf("log_level must be debug, info, warn, error or off, got %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format must be console or json, got %q", c.LogFormat)
	}
	return nil
}

func (c *Config) fillBlanks() {
	d := Defaults()
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.Color == "" {
		c.Color = d.Color
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = d.LogFormat
	}
	k := &c.Keys
	for _, f := range []struct {
		dst *string
		def string
	}{
		{&k.Quit, d.Keys.Quit},
		{&k.Add, d.Keys.Add},
		{&k.Edit, d.Keys.Edit},
		{&k.Toggle, d.Keys.Toggle},
		{&k.Search, d.Keys.Search},
		{&k.Group, d.Keys.Group},
		{&k.Clear, d.Keys.Clear},
	} {
		if *f.dst == "" {
			*f.dst = f.def
		}
	}
}

func write(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func Defaults() Config {
	return Config{
		Theme:     "classic",
		Color:     "auto",
		LogLevel:  "warn",
		LogFormat: "console",
		Keys: Keymap{
			Quit:   "q",
			Add:    "a",
			Edit:   "e",
			Toggle: " ",
			Search: "s",
			Group:  "g",
			Clear:  "esc",
		},
	}
}
