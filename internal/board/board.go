package board

// Rand is the random source used to place food. *rand.Rand from
// golang.org/x/exp/rand satisfies it.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

const (
	// Board settings
	Width  = 600
	Height = 600
	// Size of a single grid cell. All positions are multiples of it.
	CellSize = 20
)

// Board describes the toroidal playing field.
type Board struct {
	Width  int
	Height int
	Cell   int
}

// Default returns the standard 600x600 board with 20 pixel cells.
func Default() Board {
	return Board{Width: Width, Height: Height, Cell: CellSize}
}

// Cols returns the number of grid columns.
func (b Board) Cols() int {
	return b.Width / b.Cell
}

// Rows returns the number of grid rows.
func (b Board) Rows() int {
	return b.Height / b.Cell
}

// Wrap folds any coordinate pair back onto the board so that leaving one
// edge re-enters from the opposite one. The result is never negative.
func (b Board) Wrap(p Position) Position {
	return Position{X: mod(p.X, b.Width), Y: mod(p.Y, b.Height)}
}

// Step moves p one cell in direction d and wraps the result.
func (b Board) Step(p Position, d Direction) Position {
	return b.Wrap(p.Add(d, b.Cell))
}

// Contains reports whether p lies inside the board.
func (b Board) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// RandomCell returns a uniformly chosen grid-aligned position.
func (b Board) RandomCell(rng Rand) Position {
	return Position{
		X: rng.Intn(b.Cols()) * b.Cell,
		Y: rng.Intn(b.Rows()) * b.Cell,
	}
}

// CellOf converts a position into column and row indexes.
func (b Board) CellOf(p Position) (col, row int) {
	p = b.Wrap(p)
	return p.X / b.Cell, p.Y / b.Cell
}

func mod(a, n int) int {
	return ((a % n) + n) % n
}
