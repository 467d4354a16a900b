package food

import "github.com/vinser/gridsnake/internal/board"

// LargeChance is the probability that a regenerated food item is large.
const LargeChance = 0.10

// Food is the single edible item on the board.
type Food struct {
	Position board.Position
	Large    bool
}

// Spawner places food on random grid cells.
type Spawner struct {
	board board.Board
	rng   board.Rand
}

func NewSpawner(b board.Board, rng board.Rand) *Spawner {
	return &Spawner{board: b, rng: rng}
}

// Spawn returns a fresh small food item on a random cell.
func (s *Spawner) Spawn() Food {
	return Food{Position: s.board.RandomCell(s.rng)}
}

// Regenerate moves f to a new random cell and rolls whether it is large.
// The new cell may be occupied by the snake.
func (s *Spawner) Regenerate(f *Food) {
	f.Position = s.board.RandomCell(s.rng)
	f.Large = s.rng.Float64() < LargeChance
}
