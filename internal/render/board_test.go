package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/food"
	"github.com/vinser/gridsnake/internal/state"
)

func init() {
	// Plain text output keeps expectations readable.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestBoardSmall(t *testing.T) {
	b := board.Board{Width: 80, Height: 60, Cell: 20}
	body := []board.Position{{X: 20, Y: 20}, {X: 0, Y: 20}}
	f := food.Food{Position: board.Position{X: 60, Y: 40}}

	got := Board(b, body, f, NewSprites(state.SpriteSmall))
	want := "    \n" +
		"o@  \n" +
		"   *\n"
	if got != want {
		t.Errorf("Board() =\n%q\nwant\n%q", got, want)
	}
}

func TestBoardLargeFoodOverSnake(t *testing.T) {
	b := board.Board{Width: 40, Height: 20, Cell: 20}
	body := []board.Position{{X: 20, Y: 0}, {X: 0, Y: 0}}
	f := food.Food{Position: board.Position{X: 0, Y: 0}, Large: true}

	got := Board(b, body, f, NewSprites(state.SpriteMedium))
	if got != "$$@@\n" {
		t.Errorf("Board() = %q; want %q", got, "$$@@\n")
	}
}

func TestBoardDimensions(t *testing.T) {
	b := board.Default()
	body := []board.Position{{X: 100, Y: 100}}
	f := food.Food{Position: board.Position{X: 0, Y: 0}}
	for _, size := range []string{state.SpriteSmall, state.SpriteMedium, state.SpriteLarge} {
		t.Run(size, func(t *testing.T) {
			w, h := CharDims(size)
			out := strings.TrimSuffix(Board(b, body, f, NewSprites(size)), "\n")
			lines := strings.Split(out, "\n")
			if len(lines) != b.Rows()*h {
				t.Fatalf("got %d lines; want %d", len(lines), b.Rows()*h)
			}
			for i, l := range lines {
				if lipgloss.Width(l) != b.Cols()*w {
					t.Fatalf("line %d has width %d; want %d", i, lipgloss.Width(l), b.Cols()*w)
				}
			}
		})
	}
}

func TestNewSpritesFallback(t *testing.T) {
	sp := NewSprites("gigantic")
	if len(sp[Head]) != 1 || lipgloss.Width(sp[Head][0]) != 2 {
		t.Errorf("unexpected fallback sprite %q", sp[Head])
	}
}
