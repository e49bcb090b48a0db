package game

// Active piece movement. All mutations are collision-checked against the
// board; failed attempts leave the piece untouched.

// TryMove translates the piece by (dx,dy) iff the target position is
// collision-free. Returns whether the move was applied
func TryMove(b *Board, p *Piece, dx, dy int) bool {
	if p == nil || b.Collides(p, dx, dy) {
		return false
	}
	p.X += dx
	p.Y += dy
	return true
}

// TryRotate commits the 90-degree clockwise rotation candidate iff it
// does not collide at the current position. No wall-kick search is
// performed: a rotation that would collide simply fails
func TryRotate(b *Board, p *Piece) bool {
	if p == nil {
		return false
	}
	candidate := &Piece{
		Kind:   p.Kind,
		Shape:  p.RotatedShape(),
		X:      p.X,
		Y:      p.Y,
		Color:  p.Color,
		IsBomb: p.IsBomb,
	}
	if b.Collides(candidate, 0, 0) {
		return false
	}
	p.Shape = candidate.Shape
	return true
}

// ProjectedDropY returns the maximal y >= p.Y reachable by repeated
// single-row descent without collision; used for the ghost preview and
// the hard-drop target
func ProjectedDropY(b *Board, p *Piece) int {
	y := p.Y
	for !b.Collides(p, 0, y-p.Y+1) {
		y++
	}
	return y
}
