package game

// CellKind discriminates the contents of a board cell
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellFilled
	CellBomb
)

// Color identifies the palette entry of a filled cell or piece.
// The renderer owns the mapping to actual terminal colors
type Color uint8

const (
	ColorCyan Color = iota
	ColorYellow
	ColorPurple
	ColorGreen
	ColorRed
	ColorBlue
	ColorOrange
	ColorBomb
)

// Cell is a single board cell. The Color payload is meaningful only when
// Kind is CellFilled; board logic must never infer cell semantics from
// colors
type Cell struct {
	Kind  CellKind
	Color Color
}

// Empty reports whether the cell holds nothing
func (c Cell) Empty() bool {
	return c.Kind == CellEmpty
}

// filled constructs an occupied cell with the given color
func filled(color Color) Cell {
	return Cell{Kind: CellFilled, Color: color}
}
