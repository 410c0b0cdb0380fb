package constants

import "time"

// Bounce Sound
const (
	// BounceSoundDuration is how long a bounce tone plays
	BounceSoundDuration = 200 * time.Millisecond

	// BounceSoundGain is the oscillator gain before master volume
	BounceSoundGain = 0.1

	// BounceSoundAttack and BounceSoundRelease shape the tone edges to avoid clicks
	BounceSoundAttack  = 2 * time.Millisecond
	BounceSoundRelease = 10 * time.Millisecond
)

// BounceChord holds the A major triad a bounce picks from (A4, C#5, E5)
var BounceChord = [...]float64{440, 554.37, 659.25}

// Audio Engine Defaults
const (
	DefaultSampleRate   = 48000
	DefaultMasterVolume = 1.0

	// SpeakerBufferDuration is the beep speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)
