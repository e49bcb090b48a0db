package game

import (
	"testing"
	"time"

	"github.com/lixenwraith/blockfall/constants"
)

func TestUltimateChargeAccrual(t *testing.T) {
	var u UltimateAbility

	u.OnLock()
	if u.Charge() != constants.ChargePerPiece {
		t.Errorf("charge after lock = %d, want %d", u.Charge(), constants.ChargePerPiece)
	}

	u.OnClear(2)
	want := constants.ChargePerPiece + 2*constants.ChargePerLine
	if u.Charge() != want {
		t.Errorf("charge after double clear = %d, want %d", u.Charge(), want)
	}

	// Clamp at the activation cost
	for i := 0; i < 50; i++ {
		u.OnClear(4)
	}
	if u.Charge() != constants.AbilityActivationCost {
		t.Errorf("charge = %d, want clamp at %d", u.Charge(), constants.AbilityActivationCost)
	}
}

func TestUltimateActivationGates(t *testing.T) {
	var u UltimateAbility
	now := time.Unix(0, 0)

	if u.Activate(now) {
		t.Fatal("activation without charge must fail")
	}

	u.OnClear(10)
	if !u.Ready(now) {
		t.Fatal("full charge off cooldown should be ready")
	}
	if !u.Activate(now) {
		t.Fatal("ready activation must succeed")
	}
	if u.Charge() != 0 || !u.Active() {
		t.Errorf("post-activation charge=%d active=%v, want 0/true", u.Charge(), u.Active())
	}

	// No accrual while active
	u.OnLock()
	u.OnClear(4)
	if u.Charge() != 0 {
		t.Errorf("charge accrued while active: %d", u.Charge())
	}

	if u.ExpireIfDue(now.Add(constants.AbilityDuration - time.Millisecond)) {
		t.Error("ability expired before its duration elapsed")
	}
	if !u.ExpireIfDue(now.Add(constants.AbilityDuration)) {
		t.Error("ability should expire once the duration elapses")
	}
	if u.ExpireIfDue(now.Add(constants.AbilityDuration)) {
		t.Error("expiry must report the transition only once")
	}
}

func TestUltimateCooldown(t *testing.T) {
	var u UltimateAbility
	now := time.Unix(0, 0)

	u.OnClear(10)
	u.Activate(now)
	u.ExpireIfDue(now.Add(constants.AbilityDuration))

	// Recharge fully while the cooldown is still running
	u.OnClear(10)
	during := now.Add(constants.AbilityCooldown - time.Second)
	if u.Ready(during) || u.Activate(during) {
		t.Error("activation during cooldown must fail even at full charge")
	}
	if u.CooldownRemaining(during) != time.Second {
		t.Errorf("cooldown remaining = %v, want 1s", u.CooldownRemaining(during))
	}

	after := now.Add(constants.AbilityCooldown)
	if !u.Activate(after) {
		t.Error("activation after cooldown should succeed")
	}
}

func TestUltimateFractions(t *testing.T) {
	var u UltimateAbility
	if u.ChargeFraction() != 0 {
		t.Errorf("empty fraction = %v, want 0", u.ChargeFraction())
	}
	u.OnClear(5)
	if u.ChargeFraction() != 0.5 {
		t.Errorf("half fraction = %v, want 0.5", u.ChargeFraction())
	}

	now := time.Unix(0, 0)
	u.OnClear(5)
	u.Activate(now)
	half := now.Add(constants.AbilityDuration / 2)
	if u.ActiveRemaining(half) != constants.AbilityDuration/2 {
		t.Errorf("active remaining = %v, want %v",
			u.ActiveRemaining(half), constants.AbilityDuration/2)
	}
}
