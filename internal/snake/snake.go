package snake

import (
	"fmt"
	"slices"
	"time"

	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/food"
)

const (
	StartSpeed = 10 // moves per second
	MaxSpeed   = 20

	SmallPoints = 1
	LargePoints = 5
)

// StartPosition is where a new snake is placed.
var StartPosition = board.Position{X: 100, Y: 100}

// Outcome is the result kind of a Move call.
type Outcome int

const (
	Continue Outcome = iota
	Ate
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Ate:
		return "ate"
	case GameOver:
		return "game over"
	}
	return "continue"
}

// Result describes what happened during a Move call.
// Large is only meaningful when Outcome is Ate.
type Result struct {
	Outcome Outcome
	Large   bool
}

// Snake represents the player character.
type Snake struct {
	board     board.Board
	body      []board.Position // head first
	direction board.Direction
	score     int
	speed     int
	lastMove  time.Time
	dead      bool
}

// New returns a single segment snake at start heading right.
// It panics if start lies outside b.
func New(b board.Board, start board.Position) *Snake {
	if !b.Contains(start) {
		panic(fmt.Sprintf("snake: start %v is outside the %dx%d board", start, b.Width, b.Height))
	}
	return &Snake{
		board:     b,
		body:      []board.Position{start},
		direction: board.Right,
		speed:     StartSpeed,
	}
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []board.Position {
	return slices.Clone(s.body)
}

// Head returns the head position.
func (s *Snake) Head() board.Position {
	return s.body[0]
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the current heading.
func (s *Snake) Direction() board.Direction {
	return s.direction
}

func (s *Snake) Score() int {
	return s.score
}

func (s *Snake) Speed() int {
	return s.speed
}

// Dead reports whether the snake has bitten itself.
func (s *Snake) Dead() bool {
	return s.dead
}

// Interval returns the minimum time between two accepted moves.
func (s *Snake) Interval() time.Duration {
	return time.Duration(1000/s.speed) * time.Millisecond
}

// ChangeDirection turns the snake unless d would reverse it onto its own neck.
func (s *Snake) ChangeDirection(d board.Direction) {
	if !d.Valid() || d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// Move advances the snake one cell if enough time has passed since the
// previous accepted move. Eating f regenerates it through sp.
func (s *Snake) Move(now time.Time, f *food.Food, sp *food.Spawner) Result {
	if s.dead {
		return Result{Outcome: GameOver}
	}
	if !s.lastMove.IsZero() && now.Sub(s.lastMove) < s.Interval() {
		return Result{Outcome: Continue}
	}
	s.lastMove = now

	head := s.board.Step(s.body[0], s.direction)
	// The body is checked before the tail is trimmed, so chasing the tail
	// into the cell it is about to leave is fatal.
	if slices.Contains(s.body[1:], head) {
		s.dead = true
		return Result{Outcome: GameOver}
	}
	s.body = slices.Insert(s.body, 0, head)

	if head != f.Position {
		s.body = s.body[:len(s.body)-1]
		return Result{Outcome: Continue}
	}

	large := f.Large
	sp.Regenerate(f)
	if large {
		s.score += LargePoints
		s.grow()
	} else {
		s.score += SmallPoints
	}
	if s.speed < MaxSpeed {
		s.speed++
	}
	return Result{Outcome: Ate, Large: large}
}

// grow appends one segment behind the tail, opposite to the heading.
func (s *Snake) grow() {
	tail := s.body[len(s.body)-1]
	s.body = append(s.body, s.board.Wrap(tail.Add(s.direction, -s.board.Cell)))
}
