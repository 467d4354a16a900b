package over

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsnake/internal/render"
	"github.com/vinser/gridsnake/internal/style"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	score     int
	highScore int
	newHigh   bool
	saveErr   error
}

// PlayAgainMsg is a message sent when the user chooses to play again.
type PlayAgainMsg struct{}

func playAgainCmd() tea.Cmd {
	return func() tea.Msg {
		return PlayAgainMsg{}
	}
}

// QuitGameMsg is a message sent when the user chooses to quit from the game over screen.
type QuitGameMsg struct{}

func quitGameCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitGameMsg{}
	}
}

// New builds the game over screen. saveErr is the result of persisting a
// new high score, if there was one.
func New(score, highScore int, newHigh bool, saveErr error, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	return Model{
		width:     width,
		height:    height,
		score:     score,
		highScore: highScore,
		newHigh:   newHigh,
		saveErr:   saveErr,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "a":
			return m, playAgainCmd()
		case "esc":
			return m, quitGameCmd()
		}
	}
	return m, nil
}

const footer = "enter — play again, esc — quit"

func (m Model) View() string {
	return render.Frame{
		Title:      "Game Over!",
		Footer:     footer,
		Width:      m.width,
		Height:     m.height,
		TermWidth:  m.termWidth,
		TermHeight: m.termHeight,
	}.Render(m.renderContent())
}

func (m Model) renderContent() string {
	var content []string

	if m.newHigh {
		content = append(content, style.HighScore.Render(fmt.Sprintf("New High Score: %d !!!", m.score)))
	} else {
		content = append(content, fmt.Sprintf("Your score: %d", m.score))
		content = append(content, fmt.Sprintf("High Score: %d", m.highScore))
	}
	if m.saveErr != nil {
		content = append(content, "", "(high score was not saved)")
	}

	content = append(content, "") // Add a blank line
	content = append(content, "Press ENTER to play again.")

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func (m Model) Score() int {
	return m.score
}

func (m Model) NewHigh() bool {
	return m.newHigh
}
