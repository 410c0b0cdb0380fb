package audio

import "testing"

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.PlayBounce()
	sm.Cleanup()

	if sm.Played() != 0 {
		t.Errorf("Expected no tones queued before init, got %d", sm.Played())
	}
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil)

	// Speaker initialization may fail in CI without audio devices
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	// Double initialization is a no-op
	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should succeed as no-op, got error: %v", err)
	}

	sm.PlayBounce()
	if sm.Played() != 1 {
		t.Errorf("Expected 1 tone queued, got %d", sm.Played())
	}
	sm.Cleanup()
}

func TestSoundManagerDisabledStartsMuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if !sm.IsMuted() {
		t.Error("Disabled audio should start muted")
	}
	sm.PlayBounce()
	if sm.Played() != 0 {
		t.Errorf("Muted manager queued %d tones", sm.Played())
	}
}

// TestSoundManagerDisabledThenUnmuted verifies that audio disabled at start can be toggled on
func TestSoundManagerDisabledThenUnmuted(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg)

	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	defer sm.Cleanup()

	sm.PlayBounce()
	if sm.Played() != 0 {
		t.Fatalf("Muted manager queued %d tones", sm.Played())
	}
	if audible := sm.ToggleMute(); !audible {
		t.Fatal("Toggle from disabled start should unmute")
	}
	sm.PlayBounce()
	if sm.Played() != 1 {
		t.Errorf("Expected 1 tone queued after unmute, got %d", sm.Played())
	}
}

func TestSoundManagerToggleMute(t *testing.T) {
	sm := NewSoundManager(nil)

	if sm.IsMuted() {
		t.Fatal("Expected unmuted by default")
	}
	if audible := sm.ToggleMute(); audible {
		t.Error("First toggle should mute")
	}
	if audible := sm.ToggleMute(); !audible {
		t.Error("Second toggle should unmute")
	}
}

func TestNotePickerUniform(t *testing.T) {
	p := NewNotePicker(42)
	counts := map[float64]int{}

	const draws = 3000
	for i := 0; i < draws; i++ {
		counts[p.Next()]++
	}

	if len(counts) != 3 {
		t.Fatalf("Expected 3 distinct notes, got %v", counts)
	}
	for note, c := range counts {
		if c < draws/3-200 || c > draws/3+200 {
			t.Errorf("Note %v drawn %d times, not roughly uniform", note, c)
		}
	}
}
