package game

import (
	"time"

	"github.com/lixenwraith/blockfall/constants"
)

// Progression holds score, cleared-line total, level, and the gravity
// interval derived from level. The interval is monotonically
// non-increasing in level and floor-clamped
type Progression struct {
	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
}

// NewProgression returns the level-1 starting state
func NewProgression() Progression {
	return Progression{
		Level:        1,
		DropInterval: constants.InitialDropInterval,
	}
}

// BaseScore returns the pre-combo score for an n-line clear at the
// current level. Counts above 4 are clamped to the tetris multiplier
func (p *Progression) BaseScore(n int) int {
	if n < 0 {
		n = 0
	}
	if n >= len(constants.LineClearMultipliers) {
		n = len(constants.LineClearMultipliers) - 1
	}
	return constants.LineClearMultipliers[n] * p.Level
}

// ApplyClear adds the total score delta for an n-line clear (base plus
// combo bonus), advances the line total, and recomputes level and drop
// interval. Returns whether the level increased
func (p *Progression) ApplyClear(n, scoreDelta int) (leveledUp bool) {
	p.Score += scoreDelta
	p.Lines += n

	level := p.Lines/constants.LinesPerLevel + 1
	if level > p.Level {
		p.Level = level
		p.DropInterval = dropIntervalForLevel(level)
		leveledUp = true
	}
	return leveledUp
}

// AddScore adds a flat bonus (hard drop distance, explosion)
func (p *Progression) AddScore(delta int) {
	if delta > 0 {
		p.Score += delta
	}
}

// dropIntervalForLevel derives the gravity interval from the tempo curve
// t = min(MaxTempo, BaseTempo + (level-1)*TempoStep),
// interval = max(MinDropInterval, InitialDropInterval / t)
func dropIntervalForLevel(level int) time.Duration {
	tempo := constants.BaseTempo + float64(level-1)*constants.TempoStep
	if tempo > constants.MaxTempo {
		tempo = constants.MaxTempo
	}
	interval := time.Duration(float64(constants.InitialDropInterval) / tempo)
	if interval < constants.MinDropInterval {
		interval = constants.MinDropInterval
	}
	return interval
}
