// Package audio synthesizes the game's fire-and-forget cues with beep.
// A missing audio device degrades to silent mode; playback never reports
// errors back to the game core
package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/blockfall/constants"
	"github.com/lixenwraith/blockfall/game"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// cueRecipe describes the synthesized tone for one cue
type cueRecipe struct {
	startFreq float64
	endFreq   float64
	duration  time.Duration
	wave      WaveType
	gain      float64
}

var cueRecipes = map[game.Sound]cueRecipe{
	game.SoundLock:            {220, 220, 40 * time.Millisecond, WaveSquare, 0.25},
	game.SoundClear1:          {523, 523, 120 * time.Millisecond, WaveSine, 0.4},
	game.SoundClear2:          {659, 659, 150 * time.Millisecond, WaveSine, 0.4},
	game.SoundClear3:          {784, 784, 180 * time.Millisecond, WaveSine, 0.4},
	game.SoundClear4:          {1046, 1318, 250 * time.Millisecond, WaveSine, 0.5},
	game.SoundHardDrop:        {160, 80, 60 * time.Millisecond, WaveSaw, 0.3},
	game.SoundGameOver:        {440, 110, 500 * time.Millisecond, WaveSaw, 0.4},
	game.SoundLevelUp:         {440, 880, 200 * time.Millisecond, WaveSine, 0.4},
	game.SoundCombo:           {988, 988, 80 * time.Millisecond, WaveSine, 0.35},
	game.SoundAbilityReady:    {660, 660, 100 * time.Millisecond, WaveSquare, 0.3},
	game.SoundAbilityActivate: {220, 880, 250 * time.Millisecond, WaveSquare, 0.35},
	game.SoundExplosion:       {0, 0, 300 * time.Millisecond, WaveNoise, 0.5},
}

// SoundManager owns the speaker and a shared mixer. It implements
// game.SoundPlayer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	silent      atomic.Bool
	muted       atomic.Bool
}

// NewSoundManager creates an uninitialized sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Failure switches to silent mode and is
// not an error: audio availability must never affect core state
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferMs*time.Millisecond)); err != nil {
		sm.silent.Store(true)
		sm.initialized = true
		return nil
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Play implements game.SoundPlayer; returns whether a tone was queued
func (sm *SoundManager) Play(sound game.Sound) bool {
	if sm.silent.Load() || sm.muted.Load() {
		return false
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return false
	}

	recipe, ok := cueRecipes[sound]
	if !ok {
		return false
	}

	streamer := NewTone(recipe.startFreq, recipe.endFreq, recipe.duration,
		recipe.wave, sampleRate, recipe.gain)

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute flag and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	for {
		old := sm.muted.Load()
		if sm.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// SetMuted sets the mute flag
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// IsMuted returns the mute state
func (sm *SoundManager) IsMuted() bool {
	return sm.muted.Load()
}

// IsSilent reports whether the backend is unavailable
func (sm *SoundManager) IsSilent() bool {
	return sm.silent.Load()
}

// Cleanup stops all playing tones
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.silent.Load() {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}
