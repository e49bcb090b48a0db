package game

import "time"

// PieceView is the render-facing description of a piece
type PieceView struct {
	Kind   Kind
	Shape  [][]bool
	X, Y   int
	Color  Color
	IsBomb bool
}

// EffectView is an open presentation window with its progress resolved
type EffectView struct {
	Kind     EffectKind
	Progress float64
	Rows     []int
	X, FromY int
	ToY      int
	Removed  []RemovedCell
}

// Snapshot is the complete render-facing state for one frame. It shares
// nothing with live session state; the renderer may hold it across the
// session mutex
type Snapshot struct {
	Grid   [][]Cell
	Width  int
	Height int

	Active *PieceView
	GhostY int

	Hold     *Kind
	CanHold  bool
	Upcoming []Kind

	Score    int
	Lines    int
	Level    int
	RenCount int

	ChargeFraction    float64
	AbilityActive     bool
	AbilityRemaining  time.Duration
	CooldownRemaining time.Duration

	Effects []EffectView

	Started  bool
	Paused   bool
	GameOver bool
}
