package audio

import (
	"os"
	"strconv"

	"github.com/lixenwraith/pong/constants"
)

// AudioConfig holds playback settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}

// DefaultAudioConfig returns enabled audio at full master volume
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: constants.DefaultMasterVolume,
		SampleRate:   constants.DefaultSampleRate,
	}
}

// LoadAudioConfig applies environment overrides on top of base (nil means defaults)
func LoadAudioConfig(base *AudioConfig) *AudioConfig {
	cfg := DefaultAudioConfig()
	if base != nil {
		c := *base
		cfg = &c
	}

	if enabled := os.Getenv("PONG_AUDIO_ENABLED"); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100 in the environment
	if volume := os.Getenv("PONG_MASTER_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = ClampVolume(float64(val) / 100.0)
		}
	}

	if sampleRate := os.Getenv("PONG_SAMPLE_RATE"); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

// ClampVolume limits a volume to [0, 1]
func ClampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
