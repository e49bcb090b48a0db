package game

import "time"

// EffectKind discriminates timed presentation effects
type EffectKind uint8

const (
	// EffectLineClear is the clear animation window; while one is open no
	// new clear detection may start, and row removal is deferred to its
	// expiry
	EffectLineClear EffectKind = iota

	// EffectHardDrop is the drop animation; piece inputs are rejected
	// while it is open
	EffectHardDrop

	// EffectExplosion is the bomb flash over the cleared region
	EffectExplosion
)

// String returns the effect name for snapshots and logs
func (k EffectKind) String() string {
	switch k {
	case EffectLineClear:
		return "LineClear"
	case EffectHardDrop:
		return "HardDrop"
	case EffectExplosion:
		return "Explosion"
	default:
		return "Unknown"
	}
}

// TimedEffect is a presentation window measured in game time. Only the
// line-clear window gates engine logic; the rest are render hints
type TimedEffect struct {
	Kind      EffectKind
	StartedAt time.Time
	Duration  time.Duration

	// Rows identified by a line-clear window
	Rows []int

	// Origin and travel of a hard drop, or the bomb position
	X, FromY, ToY int

	// Cells removed by an explosion
	Removed []RemovedCell
}

// Progress returns the effect's position in 0..1 at the given game time
func (e *TimedEffect) Progress(now time.Time) float64 {
	if e.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(e.StartedAt)) / float64(e.Duration)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Expired reports whether the window has closed at the given game time
func (e *TimedEffect) Expired(now time.Time) bool {
	return now.Sub(e.StartedAt) >= e.Duration
}

// deferredAction is a deadline-keyed state transition drained once per
// tick against the pausable clock. The generation stamp prevents actions
// scheduled before a reset from mutating the reset state
type deferredAction struct {
	due time.Time
	gen uint64
	run func(now time.Time)
}
