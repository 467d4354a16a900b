package board

// Position represents pixel coordinates of a grid cell on the board.
type Position struct {
	X, Y int
}

// Add returns p shifted by d scaled by n.
func (p Position) Add(d Direction, n int) Position {
	return Position{X: p.X + d.DX*n, Y: p.Y + d.DY*n}
}

// Direction represents a unit movement vector.
type Direction struct {
	DX, DY int
}

var (
	No    = Direction{}
	Up    = Direction{DX: 0, DY: -1}
	Down  = Direction{DX: 0, DY: 1}
	Left  = Direction{DX: -1, DY: 0}
	Right = Direction{DX: 1, DY: 0}
)

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// Valid reports whether d is one of Up, Down, Left or Right.
func (d Direction) Valid() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	}
	return false
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
