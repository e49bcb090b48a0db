package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/blockfall/game"
)

func TestCueRecipesCoverEverySound(t *testing.T) {
	sounds := []game.Sound{
		game.SoundLock,
		game.SoundClear1,
		game.SoundClear2,
		game.SoundClear3,
		game.SoundClear4,
		game.SoundHardDrop,
		game.SoundGameOver,
		game.SoundLevelUp,
		game.SoundCombo,
		game.SoundAbilityReady,
		game.SoundAbilityActivate,
		game.SoundExplosion,
	}
	for _, s := range sounds {
		if _, ok := cueRecipes[s]; !ok {
			t.Errorf("no cue recipe for %v", s)
		}
	}
}

func TestToneStreamsFiniteAndBounded(t *testing.T) {
	rate := beep.SampleRate(44100)
	dur := 50 * time.Millisecond
	streamer := NewTone(440, 880, dur, WaveSine, rate, 0.5)

	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := streamer.Stream(buf)
		for i := 0; i < n; i++ {
			for ch := 0; ch < 2; ch++ {
				if v := buf[i][ch]; v < -1 || v > 1 {
					t.Fatalf("sample %d out of range: %v", total+i, v)
				}
			}
		}
		total += n
		if !ok {
			break
		}
	}

	if want := rate.N(dur); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}

	// A finished streamer stays finished
	if n, ok := streamer.Stream(buf); n != 0 || ok {
		t.Error("exhausted tone should not produce more samples")
	}
}

func TestToneEnvelopeStartsAndEndsQuiet(t *testing.T) {
	rate := beep.SampleRate(44100)
	streamer := NewTone(440, 440, 100*time.Millisecond, WaveSquare, rate, 1.0)

	buf := make([][2]float64, rate.N(100*time.Millisecond))
	n, _ := streamer.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d samples, want %d", n, len(buf))
	}

	if v := buf[0][0]; v != 0 {
		t.Errorf("first sample = %v, want attack to start at 0", v)
	}
	last := buf[n-1][0]
	if last < -0.05 || last > 0.05 {
		t.Errorf("final sample = %v, want release near 0", last)
	}
}

func TestMuteToggle(t *testing.T) {
	sm := NewSoundManager()

	if sm.IsMuted() {
		t.Fatal("manager should start unmuted")
	}
	if !sm.ToggleMute() {
		t.Error("first toggle should return muted")
	}
	if sm.ToggleMute() {
		t.Error("second toggle should return unmuted")
	}

	sm.SetMuted(true)
	if got := sm.Play(game.SoundLock); got {
		t.Error("muted manager must not queue tones")
	}
}

func TestPlayBeforeInitialize(t *testing.T) {
	sm := NewSoundManager()
	if sm.Play(game.SoundLock) {
		t.Error("uninitialized manager must not queue tones")
	}
}
