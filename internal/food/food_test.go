package food

import (
	"math/rand"
	"testing"

	"github.com/vinser/gridsnake/internal/board"
)

// fixedRand replays canned values.
type fixedRand struct {
	ints   []int
	floats []float64
}

func (r *fixedRand) Intn(n int) int {
	v := r.ints[0] % n
	r.ints = r.ints[1:]
	return v
}

func (r *fixedRand) Float64() float64 {
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func TestSpawn(t *testing.T) {
	s := NewSpawner(board.Default(), &fixedRand{ints: []int{3, 7}})
	f := s.Spawn()
	want := board.Position{X: 60, Y: 140}
	if f.Position != want {
		t.Errorf("Spawn() position = %v; want %v", f.Position, want)
	}
	if f.Large {
		t.Error("Spawn() produced large food")
	}
}

func TestRegenerateThreshold(t *testing.T) {
	tests := []struct {
		name string
		roll float64
		want bool
	}{
		{"Zero", 0, true},
		{"Just below", 0.0999, true},
		{"Threshold", 0.10, false},
		{"High", 0.95, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := &fixedRand{ints: []int{1, 2}, floats: []float64{tt.roll}}
			s := NewSpawner(board.Default(), rng)
			f := &Food{Position: board.Position{X: 300, Y: 300}}
			s.Regenerate(f)
			if f.Large != tt.want {
				t.Errorf("Large = %v; want %v", f.Large, tt.want)
			}
			if f.Position != (board.Position{X: 20, Y: 40}) {
				t.Errorf("Position = %v; want {20 40}", f.Position)
			}
		})
	}
}

func TestRegenerateLargeRatio(t *testing.T) {
	b := board.Default()
	s := NewSpawner(b, rand.New(rand.NewSource(42)))
	var f Food
	large := 0
	const n = 20000
	for i := 0; i < n; i++ {
		s.Regenerate(&f)
		if !b.Contains(f.Position) {
			t.Fatalf("food out of bounds: %v", f.Position)
		}
		if f.Large {
			large++
		}
	}
	ratio := float64(large) / n
	if ratio < 0.09 || ratio > 0.11 {
		t.Errorf("large food ratio = %f; want about %f", ratio, LargeChance)
	}
}
