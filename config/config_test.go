package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/pong/constants"
	"github.com/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.Variant != constants.VariantAtari || cfg.Frontend != FrontendTerminal {
		t.Errorf("Unexpected defaults %+v", cfg)
	}
	if cfg.Audio.MasterVolume != 100 || !cfg.Audio.Enabled {
		t.Errorf("Expected full-volume audio, got %+v", cfg.Audio)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := writeFile(t, "pong.toml", `
variant = "classic"
frontend = "window"

[audio]
master_volume = 40

[log]
debug = true
`)

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path {
		t.Errorf("Expected source %s, got %s", path, source)
	}
	if cfg.Variant != "classic" || cfg.Frontend != FrontendWindow {
		t.Errorf("File values not applied: %+v", cfg)
	}
	if cfg.Audio.MasterVolume != 40 || !cfg.Log.Debug {
		t.Errorf("Section values not applied: %+v", cfg)
	}
	// Untouched keys keep defaults
	if !cfg.Audio.Enabled || cfg.Audio.SampleRate != constants.DefaultSampleRate || cfg.Log.Dir != "logs" {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestLoadMissingDefaultPathFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Expected fallback to defaults, got %v", err)
	}
	if source != "defaults" || cfg.Variant != constants.VariantAtari {
		t.Errorf("Expected defaults, got source=%s cfg=%+v", source, cfg)
	}
}

func TestLoadDefaultPathWhenPresent(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := filepath.Join(home, ".config", "pong", "config.toml")
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte(`variant = "classic"`), 0644)

	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if source != path || cfg.Variant != "classic" {
		t.Errorf("Expected %s with classic, got %s %+v", path, source, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"syntax", `variant = `, "load config"},
		{"unknown key", `difficulty = 3`, "unknown key"},
		{"wrong type", `variant = 3`, "load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Load(writeFile(t, "bad.toml", tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Expected error containing %q, got %v", tt.want, err)
			}
		})
	}

	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected error for explicit missing file")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PONG_VARIANT", "classic")
	t.Setenv("PONG_BACKGROUND", "/tmp/bg.png")
	t.Setenv("PONG_FRONTEND", "window")

	cfg := Default()
	cfg.ApplyEnv()

	if cfg.Variant != "classic" || cfg.Background != "/tmp/bg.png" || cfg.Frontend != FrontendWindow {
		t.Errorf("Env overrides not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		target error
	}{
		{"variant", func(c *Config) { c.Variant = "neon" }, ErrUnknownVariant},
		{"frontend", func(c *Config) { c.Frontend = "web" }, ErrUnknownFrontend},
		{"volume", func(c *Config) { c.Audio.MasterVolume = 101 }, nil},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Expected validation error")
			}
			if tt.target != nil && errors.Cause(err) != tt.target {
				t.Errorf("Expected cause %v, got %v", tt.target, err)
			}
		})
	}
}

func TestVariantSpec(t *testing.T) {
	cfg := Default()
	cfg.Variant = constants.VariantClassic
	v, err := cfg.VariantSpec()
	if err != nil || v.Width != 800 || v.NeedsBackground {
		t.Errorf("Unexpected classic spec %+v err=%v", v, err)
	}

	cfg.Variant = "bogus"
	if _, err := cfg.VariantSpec(); errors.Cause(err) != ErrUnknownVariant {
		t.Errorf("Expected ErrUnknownVariant, got %v", err)
	}
}

func TestAudioConfigConversion(t *testing.T) {
	t.Setenv("PONG_MASTER_VOLUME", "")
	t.Setenv("PONG_AUDIO_ENABLED", "")

	cfg := Default()
	cfg.Audio.MasterVolume = 25
	ac := cfg.AudioConfig()
	if ac.MasterVolume != 0.25 || !ac.Enabled {
		t.Errorf("Unexpected audio config %+v", ac)
	}

	t.Setenv("PONG_AUDIO_ENABLED", "false")
	if cfg.AudioConfig().Enabled {
		t.Error("Expected env to disable audio")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Variant = constants.VariantClassic
	cfg.Audio.MasterVolume = 60

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load after save failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Round trip mismatch: %+v vs %+v", loaded, cfg)
	}
}
