// Package config resolves game settings from defaults, a TOML file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lixenwraith/pong/audio"
	"github.com/lixenwraith/pong/constants"
	"github.com/pkg/errors"
)

// Frontends
const (
	FrontendTerminal = "terminal"
	FrontendWindow   = "window"
)

// DefaultBackground is looked up relative to the working directory
const DefaultBackground = "atari-logo.jpg"

var (
	ErrUnknownVariant  = errors.New("unknown variant")
	ErrUnknownFrontend = errors.New("unknown frontend")
)

// Config is the complete set of user settings
type Config struct {
	Variant    string `toml:"variant"`
	Frontend   string `toml:"frontend"`
	Background string `toml:"background"`
	Color      string `toml:"color"` // auto, 256, truecolor

	Audio AudioSection `toml:"audio"`
	Log   LogSection   `toml:"log"`
}

// AudioSection configures the bounce cue
type AudioSection struct {
	Enabled      bool `toml:"enabled"`
	MasterVolume int  `toml:"master_volume"` // 0-100
	SampleRate   int  `toml:"sample_rate"`
}

// LogSection configures the debug log file
type LogSection struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Variant:    constants.VariantAtari,
		Frontend:   FrontendTerminal,
		Background: DefaultBackground,
		Color:      "auto",
		Audio: AudioSection{
			Enabled:      true,
			MasterVolume: int(constants.DefaultMasterVolume * 100),
			SampleRate:   constants.DefaultSampleRate,
		},
		Log: LogSection{Dir: "logs"},
	}
}

// DefaultPath returns ~/.config/pong/config.toml, or "" without a home directory
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pong", "config.toml")
}

// Load reads path over the defaults. An empty path tries DefaultPath and
// silently falls back to defaults when it does not exist.
// The returned source names where the settings came from.
func Load(path string) (*Config, string, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
		if path == "" {
			return cfg, "defaults", nil
		}
		if _, err := os.Stat(path); err != nil {
			return cfg, "defaults", nil
		}
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, "", errors.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, path, nil
}

// ApplyEnv overrides file values with PONG_* variables.
// Audio variables are applied by AudioConfig.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PONG_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := os.Getenv("PONG_BACKGROUND"); v != "" {
		c.Background = v
	}
	if v := os.Getenv("PONG_FRONTEND"); v != "" {
		c.Frontend = v
	}
}

// Validate checks names that select code paths
func (c *Config) Validate() error {
	if _, ok := constants.Variants[c.Variant]; !ok {
		return errors.Wrapf(ErrUnknownVariant, "%q", c.Variant)
	}
	switch c.Frontend {
	case FrontendTerminal, FrontendWindow:
	default:
		return errors.Wrapf(ErrUnknownFrontend, "%q", c.Frontend)
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 100 {
		return errors.Errorf("master_volume %d outside 0-100", c.Audio.MasterVolume)
	}
	if c.Audio.SampleRate <= 0 {
		return errors.Errorf("sample_rate %d must be positive", c.Audio.SampleRate)
	}
	return nil
}

// VariantSpec returns the court variant
func (c *Config) VariantSpec() (constants.Variant, error) {
	v, ok := constants.Variants[c.Variant]
	if !ok {
		return constants.Variant{}, errors.Wrapf(ErrUnknownVariant, "%q", c.Variant)
	}
	return v, nil
}

// AudioConfig converts the audio section, then applies PONG_AUDIO_* overrides
func (c *Config) AudioConfig() *audio.AudioConfig {
	return audio.LoadAudioConfig(&audio.AudioConfig{
		Enabled:      c.Audio.Enabled,
		MasterVolume: audio.ClampVolume(float64(c.Audio.MasterVolume) / 100.0),
		SampleRate:   c.Audio.SampleRate,
	})
}

// Save writes the settings as TOML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "create config dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrap(err, "encode config")
	}
	return nil
}
