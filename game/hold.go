package game

// HoldManager is the single-slot swap-or-store mechanic. canHold is true
// only between a piece lock and the next hold action: it goes false
// immediately after a hold and true again on the next lock
type HoldManager struct {
	kind     Kind
	occupied bool
	canHold  bool
}

// NewHoldManager returns an empty, usable hold slot
func NewHoldManager() *HoldManager {
	return &HoldManager{canHold: true}
}

// CanHold reports whether a hold action is currently permitted
func (h *HoldManager) CanHold() bool {
	return h.canHold
}

// Exchange stores the current piece kind and returns the previously held
// kind, if any. The hold is locked out until Unlock. The caller spawns
// the replacement piece (fresh from the queue when the slot was empty,
// the returned kind otherwise)
func (h *HoldManager) Exchange(current Kind) (stored Kind, hadStored bool) {
	stored, hadStored = h.kind, h.occupied
	h.kind = current
	h.occupied = true
	h.canHold = false
	return stored, hadStored
}

// Unlock re-enables holding; called exactly on a successful lock
func (h *HoldManager) Unlock() {
	h.canHold = true
}

// Slot returns the held kind and whether the slot is occupied
func (h *HoldManager) Slot() (Kind, bool) {
	return h.kind, h.occupied
}
