package audio

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/pong/constants"
	"github.com/pkg/errors"
)

// SoundManager plays fire-and-forget bounce cues through a beep mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	notes       *NotePicker
	initialized bool
	muted       atomic.Bool
	played      atomic.Uint64
}

// NewSoundManager creates a sound manager; nil config means defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	sm := &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
		notes:  NewNotePicker(time.Now().UnixNano()),
	}
	sm.muted.Store(!cfg.Enabled)
	return sm
}

// Initialize opens the speaker and starts the mixer. The speaker opens even
// when the config disables audio, which only sets the starting mute state,
// so a later ToggleMute can make the game audible.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return errors.Wrap(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	log.Printf("audio: speaker started at %d Hz", sm.config.SampleRate)
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayBounce queues one bounce tone on a random chord note; no-op when silent
func (sm *SoundManager) PlayBounce() {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}

	tone := CreateBounceSound(sm.config, sm.notes.Next())
	speaker.Lock()
	sm.mixer.Add(tone)
	speaker.Unlock()
	sm.played.Add(1)
}

// ToggleMute flips mute state, returns true if sound is now audible
func (sm *SoundManager) ToggleMute() bool {
	muted := !sm.muted.Load()
	sm.muted.Store(muted)
	return !muted
}

// IsMuted returns current mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// Played returns the number of tones queued since start
func (sm *SoundManager) Played() uint64 {
	return sm.played.Load()
}
