// Package session ties the snake and its food together and advances the
// game one tick at a time. It is the only part of the game core that the
// terminal front end talks to.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/food"
	"github.com/vinser/gridsnake/internal/snake"
)

// Status tells whether the current life is still running.
type Status int

const (
	Alive Status = iota
	Dead
)

func (s Status) String() string {
	if s == Dead {
		return "dead"
	}
	return "alive"
}

// Report is returned by Tick.
type Report struct {
	Status Status
	Result snake.Result
	// NewHigh is set on the tick that ends the life with a score above
	// the previously known high score.
	NewHigh bool
}

// Session owns all mutable game state of one player.
type Session struct {
	board   board.Board
	spawner *food.Spawner
	snake   *snake.Snake
	food    food.Food
	status  Status
	high    int
	runID   string
}

// New starts a fresh life. highScore is the best score known to the
// persistence layer.
func New(b board.Board, rng board.Rand, highScore int) *Session {
	s := &Session{
		board:   b,
		spawner: food.NewSpawner(b, rng),
		high:    highScore,
	}
	s.Restart()
	return s
}

// Restart resets the snake and the food and makes the session alive again.
func (s *Session) Restart() {
	s.snake = snake.New(s.board, snake.StartPosition)
	s.food = s.spawner.Spawn()
	s.status = Alive
	s.runID = uuid.NewString()
}

// Tick advances the game. Calls after the snake died keep reporting game
// over without moving anything until Restart.
func (s *Session) Tick(now time.Time) Report {
	if s.status == Dead {
		return Report{Status: Dead, Result: snake.Result{Outcome: snake.GameOver}}
	}
	res := s.snake.Move(now, &s.food, s.spawner)
	if res.Outcome != snake.GameOver {
		return Report{Status: Alive, Result: res}
	}
	s.status = Dead
	r := Report{Status: Dead, Result: res}
	if score := s.snake.Score(); score > s.high {
		s.high = score
		r.NewHigh = true
	}
	return r
}

// HandleDirection turns the snake. Ignored once the snake is dead.
func (s *Session) HandleDirection(d board.Direction) {
	if s.status == Dead {
		return
	}
	s.snake.ChangeDirection(d)
}

func (s *Session) Board() board.Board {
	return s.board
}

func (s *Session) Snake() *snake.Snake {
	return s.snake
}

// Food returns a copy of the current food.
func (s *Session) Food() food.Food {
	return s.food
}

// Body returns the snake segments, head first.
func (s *Session) Body() []board.Position {
	return s.snake.Body()
}

func (s *Session) Speed() int {
	return s.snake.Speed()
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) Score() int {
	return s.snake.Score()
}

func (s *Session) HighScore() int {
	return s.high
}

// RunID identifies the current life in logs.
func (s *Session) RunID() string {
	return s.runID
}
