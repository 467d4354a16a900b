package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type RGB struct {
	R int
	G int
	B int
}

var RGBColor = map[string]RGB{
	"black":  {0, 0, 0},
	"red":    {255, 0, 0},
	"green":  {0, 255, 0},
	"yellow": {255, 255, 0},
	"white":  {255, 255, 255},
	"grey":   {128, 128, 128},
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

func color(name string) lipgloss.Color {
	c := RGBColor[name]
	return lipgloss.Color(GenerateHexColor(c.R, c.G, c.B))
}

var (
	// Board
	Ground    = lipgloss.NewStyle().Background(color("grey"))
	SnakeHead = lipgloss.NewStyle().Background(color("grey")).Foreground(color("green")).Bold(true)
	SnakeBody = lipgloss.NewStyle().Background(color("grey")).Foreground(color("green"))
	Food      = lipgloss.NewStyle().Background(color("grey")).Foreground(color("red"))
	LargeFood = lipgloss.NewStyle().Background(color("grey")).Foreground(color("yellow")).Bold(true)

	// General UI
	SplashSnake = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))  // Bright green
	SplashFood  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))   // Bright red
	SplashTitle = lipgloss.NewStyle().Foreground(lipgloss.Color("226")) // Bright yellow

	SetupTitle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	SetupItem         = lipgloss.NewStyle()
	SetupItemSelected = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple

	HighScore = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // Bright red
	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Content    = lipgloss.NewStyle()
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
