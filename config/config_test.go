package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go-launchvol/grid"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Model != defaultModel {
		t.Fatalf("Model = %q, want %q", cfg.Model, defaultModel)
	}
	if cfg.Tick != defaultTick {
		t.Fatalf("Tick = %v, want %v", cfg.Tick, defaultTick)
	}
	if cfg.Colors != DefaultConfig().Colors {
		t.Fatalf("Colors = %+v, want %+v", cfg.Colors, DefaultConfig().Colors)
	}
}

func TestLoad_UnresolvableExplicitPathIsAnError(t *testing.T) {
	t.Setenv("HOME", "")

	if cfg, err := Load("~/launchvol.toml"); err == nil {
		t.Fatalf("Load(~/launchvol.toml) = %+v, want error without HOME", cfg)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") returned error: %v", err)
	}
	if cfg.Model != DefaultConfig().Model {
		t.Fatalf("Model = %q, want default %q", cfg.Model, DefaultConfig().Model)
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
model = "  x  "
port = "LPX MIDI"
tick = "250ms"
mixer = "alsa"
mixer_device = "hw:1"
mixer_control = "PCM"
debug = true

[colors]
filled = "amber"
marker = "dim_red"
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Model != "x" {
		t.Fatalf("Model = %q, want %q", cfg.Model, "x")
	}
	if cfg.Port != "LPX MIDI" {
		t.Fatalf("Port = %q, want %q", cfg.Port, "LPX MIDI")
	}
	if cfg.Tick != 250*time.Millisecond {
		t.Fatalf("Tick = %v, want 250ms", cfg.Tick)
	}
	if cfg.Mixer != "alsa" || cfg.MixerDevice != "hw:1" || cfg.MixerControl != "PCM" {
		t.Fatalf("mixer = %q %q %q", cfg.Mixer, cfg.MixerDevice, cfg.MixerControl)
	}
	if !cfg.Debug {
		t.Fatalf("Debug = false, want true")
	}
	want := Colors{Empty: grid.Off, Filled: grid.Amber, Marker: grid.DimRed}
	if cfg.Colors != want {
		t.Fatalf("Colors = %+v, want %+v", cfg.Colors, want)
	}
}

func TestLoad_EmptyValuesKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("model = \"\"\ntick = \"  \"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Model != defaultModel || cfg.Tick != defaultTick {
		t.Fatalf("Model, Tick = %q, %v, want defaults", cfg.Model, cfg.Tick)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad tick":     `tick = "soon"`,
		"zero tick":    `tick = "0s"`,
		"bad color":    "[colors]\nfilled = \"purple\"",
		"invalid toml": `model = `,
	}
	for name, body := range cases {
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
		if _, err := Load(path); err == nil {
			t.Fatalf("%s: Load returned nil error", name)
		}
	}
}

func TestSave_RoundTripsThroughLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := DefaultConfig()
	cfg.Model = "x"
	cfg.Tick = 2 * time.Second
	cfg.Colors.Marker = grid.Orange
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "orange") {
		t.Fatalf("saved config missing marker color:\n%s", data)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("Load(Save(cfg)) = %+v, want %+v", *got, *cfg)
	}
}

func TestConfigPath_UnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath returned error: %v", err)
	}
	if want := filepath.Join(home, ".config", "launchvol", "config.toml"); path != want {
		t.Fatalf("ConfigPath = %q, want %q", path, want)
	}
}
