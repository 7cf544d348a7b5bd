// Package config loads the optional TOML configuration file.
//
// Lookup order: --config, $NAVDEMO_CONFIG, ~/.navdemo/config.toml. Only the
// default location may be missing.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	EnvConfig = "NAVDEMO_CONFIG"

	dirName  = ".navdemo"
	fileName = "config.toml"
)

type Config struct {
	// Deeplink is applied when the TUI starts, unless a link is given on the
	// command line.
	Deeplink string `toml:"deeplink"`

	Browse BrowseConfig `toml:"browse"`
	TUI    TUIConfig    `toml:"tui"`
	Log    LogConfig    `toml:"log"`

	// Path is the file the config was read from; empty for defaults.
	Path string `toml:"-"`
}

type BrowseConfig struct {
	Delay          time.Duration `toml:"delay"`
	FailurePercent int           `toml:"failure_percent"`
}

type TUIConfig struct {
	// Theme is light|dark|auto.
	Theme string `toml:"theme"`
	// Glyphs is unicode|ascii.
	Glyphs string `toml:"glyphs"`
}

type LogConfig struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Browse: BrowseConfig{
			Delay:          500 * time.Millisecond,
			FailurePercent: 20,
		},
		TUI: TUIConfig{Theme: "auto", Glyphs: "unicode"},
		Log: LogConfig{Level: "info"},
	}
}

func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, dirName, fileName), nil
}

// Load resolves and reads the config file, layering it over Default and then
// applying environment overrides.
func Load(explicit string) (Config, error) {
	path := strings.TrimSpace(explicit)
	required := path != ""
	if path == "" {
		if v := strings.TrimSpace(os.Getenv(EnvConfig)); v != "" {
			path = v
			required = true
		}
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			cfg := Default()
			cfg.ApplyEnv(os.Getenv)
			return cfg, nil
		}
		path = p
	}

	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		cfg = Default()
		err = nil
	}
	if err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg, nil
}

// LoadFile reads path over the defaults. Unknown keys are an error so typos
// don't go unnoticed.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	cfg.Path = path
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Browse.Delay < 0 {
		return fmt.Errorf("browse.delay must not be negative")
	}
	if c.Browse.FailurePercent < 0 || c.Browse.FailurePercent > 100 {
		return fmt.Errorf("browse.failure_percent must be within 0..100; got %d", c.Browse.FailurePercent)
	}
	switch strings.ToLower(c.TUI.Theme) {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("tui.theme must be auto, light or dark; got %q", c.TUI.Theme)
	}
	switch strings.ToLower(c.TUI.Glyphs) {
	case "", "unicode", "ascii":
	default:
		return fmt.Errorf("tui.glyphs must be unicode or ascii; got %q", c.TUI.Glyphs)
	}
	return nil
}

// ApplyEnv lets environment variables override file values. Invalid values
// are ignored.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv("NAVDEMO_TUI_THEME")); v != "" {
		c.TUI.Theme = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv("NAVDEMO_TUI_GLYPHS")); v != "" {
		c.TUI.Glyphs = strings.ToLower(v)
	}
	if v := strings.TrimSpace(getenv("NAVDEMO_BROWSE_DELAY")); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			c.Browse.Delay = d
		}
	}
	if v := strings.TrimSpace(getenv("NAVDEMO_BROWSE_FAILURE_PERCENT")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 && n <= 100 {
			c.Browse.FailurePercent = n
		}
	}
	if v := strings.TrimSpace(getenv("NAVDEMO_LOG_LEVEL")); v != "" {
		c.Log.Level = v
	}
}
