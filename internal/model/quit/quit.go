package quit

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const quitPeriod = 2 * time.Second

type Model struct {
	quitUntil time.Time
	score     int
	highScore int
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

// New shows the farewell screen with the last and best scores.
func New(score, highScore int) Model {
	return Model{
		quitUntil: time.Now().Add(quitPeriod),
		score:     score,
		highScore: highScore,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	t, ok := msg.(TickMsg)
	if !ok {
		return m, nil
	}
	if time.Time(t).After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	return fmt.Sprintf("\nLast score: %d, high score: %d\nBye!\n", m.score, m.highScore)
}
