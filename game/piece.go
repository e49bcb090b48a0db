package game

import "fmt"

// Kind is the closed set of piece shapes: the 7 standard tetrominoes
// plus the 1x1 bomb substituted by the ultimate ability
type Kind uint8

const (
	KindI Kind = iota
	KindO
	KindT
	KindS
	KindZ
	KindJ
	KindL
	KindBomb

	// StandardKinds is the number of spawnable (non-bomb) kinds
	StandardKinds = 7
)

// String returns the piece letter for logging
func (k Kind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	case KindJ:
		return "J"
	case KindL:
		return "L"
	case KindBomb:
		return "Bomb"
	default:
		return "?"
	}
}

// canonicalShapes holds the fixed spawn-orientation shape of each kind.
// Matrices are minimal bounding boxes, indexed [row][col]
var canonicalShapes = [8][][]bool{
	KindI: {
		{true, true, true, true},
	},
	KindO: {
		{true, true},
		{true, true},
	},
	KindT: {
		{true, true, true},
		{false, true, false},
	},
	KindS: {
		{false, true, true},
		{true, true, false},
	},
	KindZ: {
		{true, true, false},
		{false, true, true},
	},
	KindJ: {
		{true, false, false},
		{true, true, true},
	},
	KindL: {
		{false, false, true},
		{true, true, true},
	},
	KindBomb: {
		{true},
	},
}

// kindColors maps each kind to its palette color
var kindColors = [8]Color{
	KindI:    ColorCyan,
	KindO:    ColorYellow,
	KindT:    ColorPurple,
	KindS:    ColorGreen,
	KindZ:    ColorRed,
	KindJ:    ColorBlue,
	KindL:    ColorOrange,
	KindBomb: ColorBomb,
}

// Piece is the currently controllable tetromino (or bomb).
// X,Y is the board position of the shape's top-left origin; the shape
// matrix is mutated only by committed rotations
type Piece struct {
	Kind   Kind
	Shape  [][]bool
	X, Y   int
	Color  Color
	IsBomb bool
}

// NewPiece constructs a piece of the given kind at origin (0,0) with its
// canonical shape. Unknown kinds are rejected
func NewPiece(kind Kind) (*Piece, error) {
	if kind > KindBomb {
		return nil, fmt.Errorf("invalid piece kind %d", kind)
	}
	return &Piece{
		Kind:   kind,
		Shape:  copyShape(canonicalShapes[kind]),
		Color:  kindColors[kind],
		IsBomb: kind == KindBomb,
	}, nil
}

// MustPiece is NewPiece for statically valid kinds
func MustPiece(kind Kind) *Piece {
	p, err := NewPiece(kind)
	if err != nil {
		panic(err)
	}
	return p
}

// Width returns the shape's column count
func (p *Piece) Width() int {
	if len(p.Shape) == 0 {
		return 0
	}
	return len(p.Shape[0])
}

// Height returns the shape's row count
func (p *Piece) Height() int {
	return len(p.Shape)
}

// RotatedShape computes the 90-degree clockwise transform of the shape,
// rotated[x][rows-1-y] = shape[y][x]. The caller decides whether the
// candidate is committed
func (p *Piece) RotatedShape() [][]bool {
	rows := len(p.Shape)
	if rows == 0 {
		return nil
	}
	cols := len(p.Shape[0])

	rotated := make([][]bool, cols)
	for x := range rotated {
		rotated[x] = make([]bool, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			rotated[x][rows-1-y] = p.Shape[y][x]
		}
	}
	return rotated
}

// ForEachCell invokes fn with the board coordinates of every occupied
// shape cell at the piece's current position
func (p *Piece) ForEachCell(fn func(x, y int)) {
	for sy, row := range p.Shape {
		for sx, occupied := range row {
			if occupied {
				fn(p.X+sx, p.Y+sy)
			}
		}
	}
}

// copyShape deep-copies a shape matrix
func copyShape(shape [][]bool) [][]bool {
	out := make([][]bool, len(shape))
	for i, row := range shape {
		out[i] = make([]bool, len(row))
		copy(out[i], row)
	}
	return out
}
