package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"go-launchvol/grid"
)

const (
	defaultModel = "mini"
	defaultTick  = time.Second
)

// Colors are the volume bar colors
type Colors struct {
	Empty  grid.Color
	Filled grid.Color
	Marker grid.Color
}

// Config is the main configuration structure
type Config struct {
	Model        string        // controller model: mini or x
	Port         string        // MIDI port substring; empty lets the model decide
	Tick         time.Duration // how often the volume is resampled
	Mixer        string        // alsa, pulse, macos or memory; empty picks by OS
	MixerDevice  string
	MixerControl string
	Debug        bool
	Colors       Colors
}

// file is the on-disk form
type file struct {
	Model        string     `toml:"model"`
	Port         string     `toml:"port,omitempty"`
	Tick         string     `toml:"tick"`
	Mixer        string     `toml:"mixer,omitempty"`
	MixerDevice  string     `toml:"mixer_device,omitempty"`
	MixerControl string     `toml:"mixer_control,omitempty"`
	Debug        bool       `toml:"debug"`
	Colors       fileColors `toml:"colors"`
}

type fileColors struct {
	Empty  string `toml:"empty"`
	Filled string `toml:"filled"`
	Marker string `toml:"marker"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Model: defaultModel,
		Tick:  defaultTick,
		Colors: Colors{
			Empty:  grid.Off,
			Filled: grid.Green,
			Marker: grid.Yellow,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "launchvol"), nil
}

// ConfigPath returns the full path to config.toml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config at path (the default path when empty), or returns
// defaults if the file does not exist. Empty values keep their default.
// An explicit path that cannot be resolved is an error.
func Load(path string) (*Config, error) {
	explicit := strings.TrimSpace(path) != ""
	path, err := resolvePath(path)
	if err != nil {
		if explicit {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var raw file
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg := DefaultConfig()
	if s := strings.TrimSpace(raw.Model); s != "" {
		cfg.Model = s
	}
	cfg.Port = strings.TrimSpace(raw.Port)
	if s := strings.TrimSpace(raw.Tick); s != "" {
		tick, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("parse tick: %w", err)
		}
		if tick <= 0 {
			return nil, fmt.Errorf("tick must be positive, got %s", tick)
		}
		cfg.Tick = tick
	}
	cfg.Mixer = strings.TrimSpace(raw.Mixer)
	cfg.MixerDevice = strings.TrimSpace(raw.MixerDevice)
	cfg.MixerControl = strings.TrimSpace(raw.MixerControl)
	cfg.Debug = raw.Debug

	for _, c := range []struct {
		name string
		raw  string
		dst  *grid.Color
	}{
		{"empty", raw.Colors.Empty, &cfg.Colors.Empty},
		{"filled", raw.Colors.Filled, &cfg.Colors.Filled},
		{"marker", raw.Colors.Marker, &cfg.Colors.Marker},
	} {
		if strings.TrimSpace(c.raw) == "" {
			continue
		}
		color, err := grid.ParseColor(c.raw)
		if err != nil {
			return nil, fmt.Errorf("colors.%s: %w", c.name, err)
		}
		*c.dst = color
	}

	return cfg, nil
}

// Save writes the config to path (the default path when empty)
func (c *Config) Save(path string) error {
	path, err := resolvePath(path)
	if err != nil {
		return err
	}

	// Create directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(file{
		Model:        c.Model,
		Port:         c.Port,
		Tick:         c.Tick.String(),
		Mixer:        c.Mixer,
		MixerDevice:  c.MixerDevice,
		MixerControl: c.MixerControl,
		Debug:        c.Debug,
		Colors: fileColors{
			Empty:  c.Colors.Empty.String(),
			Filled: c.Colors.Filled.String(),
			Marker: c.Colors.Marker.String(),
		},
	})
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ConfigPath()
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
