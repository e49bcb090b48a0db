package game

// Board is the authoritative play grid. Rows are indexed top to bottom;
// (0,0) is the top-left visible cell. The board is owned by the session
// and mutated only by lock, clear, and explosion operations
type Board struct {
	W, H  int
	cells [][]Cell
}

// RemovedCell records a cell emptied by an explosion, for animation and
// scoring by the caller
type RemovedCell struct {
	X, Y  int
	Prior Cell
}

// NewBoard creates an empty board of the given dimensions
func NewBoard(w, h int) *Board {
	cells := make([][]Cell, h)
	for y := range cells {
		cells[y] = make([]Cell, w)
	}
	return &Board{W: w, H: h, cells: cells}
}

// InBounds reports whether (x,y) is a visible board coordinate
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Cell returns the cell at (x,y); out-of-bounds reads return an empty cell
func (b *Board) Cell(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.cells[y][x]
}

// SetCell writes the cell at (x,y); out-of-bounds writes are dropped
func (b *Board) SetCell(x, y int, c Cell) {
	if b.InBounds(x, y) {
		b.cells[y][x] = c
	}
}

// Collides reports whether the piece, translated by (dx,dy), would fall
// outside the side or bottom walls or overlap an occupied cell. Cells
// above the visible board (y < 0) never collide with board contents, so
// pieces may partially sit above the board before spawn collision is
// evaluated
func (b *Board) Collides(p *Piece, dx, dy int) bool {
	collision := false
	p.ForEachCell(func(x, y int) {
		x += dx
		y += dy
		if x < 0 || x >= b.W || y >= b.H {
			collision = true
			return
		}
		if y >= 0 && !b.cells[y][x].Empty() {
			collision = true
		}
	})
	return collision
}

// IsRowComplete reports whether no cell in row y is empty
func (b *Board) IsRowComplete(y int) bool {
	if y < 0 || y >= b.H {
		return false
	}
	for x := 0; x < b.W; x++ {
		if b.cells[y][x].Empty() {
			return false
		}
	}
	return true
}

// CompleteRows scans bottom-to-top and returns all complete row indices
func (b *Board) CompleteRows() []int {
	var rows []int
	for y := b.H - 1; y >= 0; y-- {
		if b.IsRowComplete(y) {
			rows = append(rows, y)
		}
	}
	return rows
}

// LockPiece writes the piece's color into every occupied cell at y >= 0.
// Cells above the visible board are discarded; the count of discarded
// cells is returned so the caller can surface the overflow
func (b *Board) LockPiece(p *Piece) (lost int) {
	p.ForEachCell(func(x, y int) {
		if y < 0 {
			lost++
			return
		}
		if b.InBounds(x, y) {
			b.cells[y][x] = filled(p.Color)
		}
	})
	return lost
}

// RemoveRows deletes the given rows and inserts an equal number of empty
// rows at the top, preserving the relative order of retained rows. The
// resulting height is always H: a miscount is repaired by trimming or
// padding rather than allowed to drift. Returns true if a repair was
// needed
func (b *Board) RemoveRows(rows []int) (repaired bool) {
	remove := make(map[int]bool, len(rows))
	for _, y := range rows {
		if y >= 0 && y < b.H {
			remove[y] = true
		}
	}

	kept := make([][]Cell, 0, b.H)
	for y := 0; y < b.H; y++ {
		if !remove[y] {
			kept = append(kept, b.cells[y])
		}
	}

	next := make([][]Cell, 0, b.H)
	for i := 0; i < b.H-len(kept); i++ {
		next = append(next, make([]Cell, b.W))
	}
	next = append(next, kept...)

	// Height repair: trim from the top or pad with empty rows
	if len(next) != b.H {
		repaired = true
		for len(next) > b.H {
			next = next[1:]
		}
		for len(next) < b.H {
			next = append([][]Cell{make([]Cell, b.W)}, next...)
		}
	}

	b.cells = next
	return repaired
}

// ClearRegion empties every in-bounds cell within the square window
// [cx-r, cx+r] x [cy-r, cy+r] and returns what was removed
func (b *Board) ClearRegion(cx, cy, radius int) []RemovedCell {
	var removed []RemovedCell
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if !b.InBounds(x, y) || b.cells[y][x].Empty() {
				continue
			}
			removed = append(removed, RemovedCell{X: x, Y: y, Prior: b.cells[y][x]})
			b.cells[y][x] = Cell{}
		}
	}
	return removed
}

// CollapseColumn shifts every non-empty cell in column x down over the
// empty cells below it, independent of other columns
func (b *Board) CollapseColumn(x int) {
	if x < 0 || x >= b.W {
		return
	}
	write := b.H - 1
	for y := b.H - 1; y >= 0; y-- {
		if !b.cells[y][x].Empty() {
			b.cells[write][x] = b.cells[y][x]
			if write != y {
				b.cells[y][x] = Cell{}
			}
			write--
		}
	}
	for y := write; y >= 0; y-- {
		b.cells[y][x] = Cell{}
	}
}

// Grid returns a deep copy of the cells for render snapshots
func (b *Board) Grid() [][]Cell {
	out := make([][]Cell, b.H)
	for y := range b.cells {
		out[y] = make([]Cell, b.W)
		copy(out[y], b.cells[y])
	}
	return out
}
