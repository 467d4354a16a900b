package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/food"
	"github.com/vinser/gridsnake/internal/state"
	"github.com/vinser/gridsnake/internal/style"
)

// Item is a kind of board cell.
type Item int

const (
	Ground Item = iota
	Head
	Body
	SmallFood
	LargeFood
)

// Sprites holds one rendered sprite per item. Every sprite has the same
// number of lines and each line has the same width.
type Sprites map[Item][]string

var rawSprites = map[string]map[Item][]string{
	state.SpriteSmall: {
		Ground:    {" "},
		Head:      {"@"},
		Body:      {"o"},
		SmallFood: {"*"},
		LargeFood: {"$"},
	},
	state.SpriteMedium: {
		Ground:    {"  "},
		Head:      {"@@"},
		Body:      {"[]"},
		SmallFood: {"()"},
		LargeFood: {"$$"},
	},
	state.SpriteLarge: {
		Ground:    {"    ", "    "},
		Head:      {"/@@\\", "\\@@/"},
		Body:      {"[##]", "[##]"},
		SmallFood: {" () ", "    "},
		LargeFood: {"/$$\\", "\\$$/"},
	},
}

var itemStyles = map[Item]lipgloss.Style{
	Ground:    style.Ground,
	Head:      style.SnakeHead,
	Body:      style.SnakeBody,
	SmallFood: style.Food,
	LargeFood: style.LargeFood,
}

// NewSprites styles the sprites of the given size. Unknown sizes fall back to medium.
func NewSprites(size string) Sprites {
	raw, ok := rawSprites[size]
	if !ok {
		raw = rawSprites[state.SpriteMedium]
	}
	sp := make(Sprites, len(raw))
	for item, lines := range raw {
		for _, l := range lines {
			sp[item] = append(sp[item], itemStyles[item].Render(l))
		}
	}
	return sp
}

// CharDims returns (tileWidthChars, tileHeightRows) for a sprite size.
func CharDims(size string) (int, int) {
	switch size {
	case state.SpriteSmall:
		return 1, 1
	case state.SpriteLarge:
		return 4, 2
	default:
		return 2, 1
	}
}

// Board draws the whole board. Food is drawn over the snake, as it can
// spawn under it.
func Board(b board.Board, body []board.Position, f food.Food, sp Sprites) string {
	cells := make(map[[2]int]Item, len(body)+1)
	for i := len(body) - 1; i >= 0; i-- {
		col, row := b.CellOf(body[i])
		item := Body
		if i == 0 {
			item = Head
		}
		cells[[2]int{col, row}] = item
	}
	col, row := b.CellOf(f.Position)
	if f.Large {
		cells[[2]int{col, row}] = LargeFood
	} else {
		cells[[2]int{col, row}] = SmallFood
	}

	spriteRows := len(sp[Ground])
	var sb strings.Builder
	lines := make([]strings.Builder, spriteRows)
	for y := 0; y < b.Rows(); y++ {
		for i := range lines {
			lines[i].Reset()
		}
		for x := 0; x < b.Cols(); x++ {
			sprite := sp[cells[[2]int{x, y}]]
			for i := range lines {
				lines[i].WriteString(sprite[i])
			}
		}
		for i := range lines {
			sb.WriteString(lines[i].String())
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
