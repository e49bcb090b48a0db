package game

import (
	"math"

	"github.com/lixenwraith/blockfall/constants"
)

// ComboTracker counts consecutive piece-locks that each produced at
// least one line clear ("ren")
type ComboTracker struct {
	ren       int
	lastClear bool
}

// OnClear records a clearing lock: the counter increments if the
// previous lock also cleared, otherwise restarts at 1. Returns the new
// ren count
func (c *ComboTracker) OnClear() int {
	if c.lastClear {
		c.ren++
	} else {
		c.ren = 1
	}
	c.lastClear = true
	return c.ren
}

// OnNoClear resets the counter after a lock that cleared nothing
func (c *ComboTracker) OnNoClear() {
	c.ren = 0
	c.lastClear = false
}

// Ren returns the current consecutive-clear count
func (c *ComboTracker) Ren() int {
	return c.ren
}

// Bonus returns the combo contribution for a clear with the given base
// score and ren count: floor(base * ratio * min(ren, cap))
func (c *ComboTracker) Bonus(base, ren int) int {
	capped := ren
	if capped > constants.RenBonusCap {
		capped = constants.RenBonusCap
	}
	return int(math.Floor(float64(base) * constants.RenBonusRatio * float64(capped)))
}
