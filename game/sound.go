package game

// Sound identifies a fire-and-forget audio cue emitted by the session.
// The audio backend owns synthesis; a disabled backend is a valid player
type Sound uint8

const (
	SoundLock Sound = iota
	SoundClear1
	SoundClear2
	SoundClear3
	SoundClear4
	SoundHardDrop
	SoundGameOver
	SoundLevelUp
	SoundCombo
	SoundAbilityReady
	SoundAbilityActivate
	SoundExplosion
)

// clearSound maps a line count to its cue; counts above 4 use the tetris
// cue
func clearSound(n int) Sound {
	switch {
	case n <= 1:
		return SoundClear1
	case n == 2:
		return SoundClear2
	case n == 3:
		return SoundClear3
	default:
		return SoundClear4
	}
}

// SoundPlayer is the session's outbound audio boundary. Play must never
// block or fail the caller
type SoundPlayer interface {
	Play(Sound) bool
}
