package engine

// SoundPlayer emits the bounce cue; calls must not block
type SoundPlayer interface {
	PlayBounce()
}

// silentPlayer is used when no audio backend is available
type silentPlayer struct{}

func (silentPlayer) PlayBounce() {}
