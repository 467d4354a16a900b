package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsnake/internal/style"
)

// scales is tiled along the top edge of every screen.
const scales = "~-"

// Strip returns the decorative top line, exactly width cells wide.
func Strip(width int) string {
	if width <= 0 {
		return ""
	}
	line := strings.Repeat(scales, width/len(scales)+1)[:width]
	return style.TopPattern.Render(line)
}

// Frame lays out a screen that stands in for the board: strip and title on
// top, a key hint line at the bottom and content centered in between.
type Frame struct {
	Title  string
	Footer string
	// Board area in terminal cells.
	Width  int
	Height int
	// Zero terminal size leaves the frame uncentered.
	TermWidth  int
	TermHeight int
}

// Render places content inside the frame.
func (f Frame) Render(content string) string {
	top := lipgloss.JoinVertical(lipgloss.Left, Strip(f.Width), style.Title.Render(f.Title))
	bottom := style.Footer.Render(f.Footer)
	free := f.Height - lipgloss.Height(top) - lipgloss.Height(bottom)
	view := lipgloss.JoinVertical(lipgloss.Left,
		top,
		lipgloss.PlaceVertical(free, lipgloss.Center, content),
		bottom,
	)
	return Center(view, f.TermWidth, f.TermHeight)
}

// Center puts view in the middle of the terminal. Views larger than the
// terminal, or an unknown terminal size, are returned as is.
func Center(view string, termWidth, termHeight int) string {
	if termWidth <= 0 || termHeight <= 0 {
		return view
	}
	if lipgloss.Width(view) >= termWidth && lipgloss.Height(view) >= termHeight {
		return view
	}
	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
}
