package constants

import "time"

// Progression Curve
const (
	// LinesPerLevel is the number of cleared lines required per level step
	LinesPerLevel = 10

	// InitialDropInterval is the gravity interval at tempo 1.0
	InitialDropInterval = 1000 * time.Millisecond

	// MinDropInterval is the floor for the gravity interval at high levels
	MinDropInterval = 100 * time.Millisecond

	// BaseTempo is the tempo factor at level 1
	BaseTempo = 1.0

	// TempoStep is the tempo increase per level above 1
	TempoStep = 0.15

	// MaxTempo caps the tempo factor
	MaxTempo = 4.0
)

// Scoring
var (
	// LineClearMultipliers maps lines-cleared (0..4) to base score per level
	LineClearMultipliers = [5]int{0, 40, 100, 300, 1200}
)

const (
	// RenBonusRatio is the fraction of base score awarded per combo step
	RenBonusRatio = 0.5

	// RenBonusCap limits the combo multiplier applied to the bonus
	RenBonusCap = 10

	// HardDropScorePerRow is the bonus per row of hard-drop distance
	HardDropScorePerRow = 2
)

// Ultimate Ability
const (
	// AbilityActivationCost is the charge required to activate the ability
	AbilityActivationCost = 100

	// ChargePerPiece is the charge gained on every piece lock
	ChargePerPiece = 2

	// ChargePerLine is the charge gained per cleared line
	ChargePerLine = 10

	// AbilityCooldown is the minimum game time between activations
	AbilityCooldown = 30 * time.Second

	// AbilityDuration is how long the ability stays active after activation
	AbilityDuration = 10 * time.Second

	// ExplosionRange is the square-window radius of a bomb explosion
	ExplosionRange = 2

	// ExplosionScore is the flat score bonus for a bomb explosion
	ExplosionScore = 500
)

// Presentation Windows
const (
	// LineClearWindow is the duration of the line-clear animation; row
	// removal and scoring are deferred until it expires
	LineClearWindow = 500 * time.Millisecond

	// HardDropWindow is the duration of the hard-drop animation during
	// which piece inputs are rejected
	HardDropWindow = 150 * time.Millisecond

	// ExplosionWindow is the duration of the explosion flash
	ExplosionWindow = 300 * time.Millisecond

	// CollapseDelay is the presentation delay between an explosion and the
	// column collapse that follows it
	CollapseDelay = 300 * time.Millisecond
)
