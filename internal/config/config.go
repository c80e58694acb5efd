package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Server ServerConfig `toml:"server"`
	UI     UIConfig     `toml:"ui"`
	Index  IndexConfig  `toml:"index"`
}

type ServerConfig struct {
	URL      string `toml:"url"`
	Username string `toml:"username"`
	Token    string `toml:"token"`
	UserID   string `toml:"user_id"`
	Library  string `toml:"library"` // library name to browse, empty = every library
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

// IndexConfig configures the index bar. It is the part of the file that is
// re-applied on hot reload.
type IndexConfig struct {
	Edge                string `toml:"edge"` // "right" or "left"
	ScrollsToSectionTop bool   `toml:"scrolls_to_section_top"`
	HideWhenInactive    bool   `toml:"hide_when_inactive"`
	FlashOnEnter        bool   `toml:"flash_on_enter"`
	FlashDelayMs        int    `toml:"flash_delay_ms"`
	FlashDurationMs     int    `toml:"flash_duration_ms"`
	FadeMs              int    `toml:"fade_ms"`
	Haptics             bool   `toml:"haptics"`
	HapticMs            int    `toml:"haptic_ms"`
	GroupBy             string `toml:"group_by"` // "letter" or "year"
	FullAlphabet        bool   `toml:"full_alphabet"`
}

func (c IndexConfig) FlashDelay() time.Duration     { return ms(c.FlashDelayMs) }
func (c IndexConfig) FlashDuration() time.Duration  { return ms(c.FlashDurationMs) }
func (c IndexConfig) HapticDuration() time.Duration { return ms(c.HapticMs) }

// FadeDuration returns the show/hide fade. A zero fade_ms means instant.
func (c IndexConfig) FadeDuration() time.Duration {
	if c.FadeMs <= 0 {
		return -1
	}
	return ms(c.FadeMs)
}

func ms(n int) time.Duration {
	if n < 0 {
		n = 0
	}
	return time.Duration(n) * time.Millisecond
}

func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{},
		UI: UIConfig{
			Fullscreen: false,
			Width:      1280,
			Height:     800,
		},
		Index: IndexConfig{
			Edge:             "right",
			HideWhenInactive: true,
			FlashOnEnter:     true,
			FlashDelayMs:     300,
			FlashDurationMs:  1000,
			FadeMs:           200,
			Haptics:          true,
			HapticMs:         10,
			GroupBy:          "letter",
			FullAlphabet:     false,
		},
	}
}

func ConfigDir() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "couchindex"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFile(path)
}

// LoadFile reads the config at path on top of the defaults. A missing file
// yields the defaults.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default path.
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}
