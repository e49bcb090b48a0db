package game

import (
	"time"

	"github.com/lixenwraith/blockfall/constants"
)

// UltimateAbility tracks the charge-gated bomb ability. Charge accrues
// on locks and clears while the ability is inactive; activation requires
// full charge and an elapsed cooldown, consumes the charge, and starts
// both the active duration and the next cooldown
type UltimateAbility struct {
	charge         int
	active         bool
	activatedAt    time.Time
	cooldownEndsAt time.Time
}

// OnLock accrues the per-piece charge increment, clamped to the
// activation cost. No accrual while the ability is active
func (u *UltimateAbility) OnLock() {
	u.accrue(constants.ChargePerPiece)
}

// OnClear accrues the per-line charge increment for an n-line clear
func (u *UltimateAbility) OnClear(n int) {
	u.accrue(constants.ChargePerLine * n)
}

func (u *UltimateAbility) accrue(delta int) {
	if u.active {
		return
	}
	u.charge += delta
	if u.charge > constants.AbilityActivationCost {
		u.charge = constants.AbilityActivationCost
	}
}

// Ready reports whether activation would succeed at the given game time
func (u *UltimateAbility) Ready(now time.Time) bool {
	return !u.active &&
		u.charge == constants.AbilityActivationCost &&
		!now.Before(u.cooldownEndsAt)
}

// Activate consumes the charge and starts the ability. Fails with no
// state change unless fully charged, inactive, and off cooldown
func (u *UltimateAbility) Activate(now time.Time) bool {
	if !u.Ready(now) {
		return false
	}
	u.charge = 0
	u.active = true
	u.activatedAt = now
	u.cooldownEndsAt = now.Add(constants.AbilityCooldown)
	return true
}

// ExpireIfDue deactivates the ability once its duration has elapsed.
// Returns true on the active->inactive transition. Queued pieces are
// never bomb-substituted, so there is nothing to revert here
func (u *UltimateAbility) ExpireIfDue(now time.Time) bool {
	if u.active && now.Sub(u.activatedAt) >= constants.AbilityDuration {
		u.active = false
		return true
	}
	return false
}

// Active reports whether the ability is currently running
func (u *UltimateAbility) Active() bool {
	return u.active
}

// ActiveRemaining returns how much of the ability duration is left at
// the given game time, zero when inactive
func (u *UltimateAbility) ActiveRemaining(now time.Time) time.Duration {
	if !u.active {
		return 0
	}
	if remaining := constants.AbilityDuration - now.Sub(u.activatedAt); remaining > 0 {
		return remaining
	}
	return 0
}

// Charge returns the raw charge value
func (u *UltimateAbility) Charge() int {
	return u.charge
}

// ChargeFraction returns charge as 0..1 for HUD display
func (u *UltimateAbility) ChargeFraction() float64 {
	return float64(u.charge) / float64(constants.AbilityActivationCost)
}

// CooldownRemaining returns how much cooldown is left at the given game
// time, zero when elapsed
func (u *UltimateAbility) CooldownRemaining(now time.Time) time.Duration {
	if remaining := u.cooldownEndsAt.Sub(now); remaining > 0 {
		return remaining
	}
	return 0
}
