package ready

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/gridsnake/internal/render"
)

const readyPeriod = 3 * time.Second

// Model counts down before a new life starts.
type Model struct {
	highScore  int
	readyUntil time.Time
	now        time.Time

	width      int
	height     int
	termWidth  int
	termHeight int
}

// TickMsg is a tick message.
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

func New(highScore, width, height int) Model {
	now := time.Now()
	return Model{
		highScore:  highScore,
		readyUntil: now.Add(readyPeriod),
		now:        now,
		width:      width,
		height:     height,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		m.now = time.Time(msg)
		if !m.now.Before(m.readyUntil) {
			return m, timedoutCmd()
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

// Remaining returns the whole seconds left, rounded up.
func (m Model) Remaining() int {
	left := m.readyUntil.Sub(m.now)
	if left <= 0 {
		return 0
	}
	return int((left + time.Second - 1) / time.Second)
}

func (m Model) View() string {
	content := fmt.Sprintf("Starting in %d...\n\nHigh Score: %d", m.Remaining(), m.highScore)
	return render.Frame{
		Title:      "Get ready!",
		Footer:     "space — go now, q — quit",
		Width:      m.width,
		Height:     m.height,
		TermWidth:  m.termWidth,
		TermHeight: m.termHeight,
	}.Render(content)
}
