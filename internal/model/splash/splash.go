package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/gridsnake/internal/state"
	"github.com/vinser/gridsnake/internal/style"
)

const title = `
▄▀▀▀ █▀▀▄ ▀█▀ █▀▀▄   ▄▀▀▀ █▄ █ ▄▀▀▄ █ ▄▀ █▀▀▀
█ ▀█ █▄▄▀  █  █  █    ▀▀▄ █ ▀█ █▄▄█ █▀▄  █▀▀
▀▀▀  ▀  ▀ ▀▀▀ ▀▀▀    ▀▀▀  ▀  ▀ ▀  ▀ ▀  ▀ ▀▀▀▀
`

const (
	startLength  = 3
	foodSpacing  = 4
	middlePause  = 2 * time.Second
	moveDuration = 60 * time.Millisecond

	headRune = '█'
	bodyRune = '▓'
	foodRune = '●'
)

type Model struct {
	state *state.State

	width  int
	height int

	head       int // column of the head, may start off screen
	length     int
	pauseUntil time.Time
	paused     bool // the mid screen pause has been taken
	food       []bool

	grid [][]rune
	sb   *strings.Builder
}

type MoveMsg struct{}

func moveCmd() tea.Cmd {
	return tea.Tick(moveDuration, func(t time.Time) tea.Msg {
		return MoveMsg{}
	})
}

type MakeSettingsMsg struct{}

func makeSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return MakeSettingsMsg{}
	}
}

type ShowAboutMsg struct{}

func showAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return ShowAboutMsg{}
	}
}

type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(state *state.State, width, height int) Model {
	food := make([]bool, width)
	for i := foodSpacing; i < width; i += foodSpacing {
		food[i] = true
	}

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
	}

	return Model{
		state:  state,
		width:  width,
		height: height,
		head:   -1,
		length: startLength,
		food:   food,
		grid:   grid,
		sb:     &strings.Builder{},
	}
}

func (m Model) Init() tea.Cmd {
	return moveCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MoveMsg:
		return m.crawl(time.Now())
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, makeSettingsCmd()
		case "?", "i":
			return m, showAboutCmd()
		case "enter", "esc", " ":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

// crawl moves the snake one column to the right, eating the food it meets.
func (m Model) crawl(now time.Time) (Model, tea.Cmd) {
	if !m.pauseUntil.IsZero() {
		if now.Before(m.pauseUntil) {
			return m, moveCmd()
		}
		m.pauseUntil = time.Time{}
	}
	if !m.paused && m.head == m.width/2 {
		m.paused = true
		m.pauseUntil = now.Add(middlePause)
		return m, moveCmd()
	}
	m.head++
	if m.head >= 0 && m.head < len(m.food) && m.food[m.head] {
		m.food[m.head] = false
		m.length++
	}
	if m.head-m.length >= m.width {
		return m, timedoutCmd()
	}
	return m, moveCmd()
}

// Length returns the current snake length.
func (m Model) Length() int {
	return m.length
}

func (m Model) View() string {
	m.clearGrid()
	m.drawTitle()
	m.drawSnake()
	return m.renderGrid()
}

func (m *Model) clearGrid() {
	for i := range m.grid {
		for j := range m.grid[i] {
			m.grid[i][j] = ' '
		}
	}
}

func (m *Model) crawlRow() int {
	return m.height * 2 / 3
}

func (m *Model) drawTitle() {
	lines := strings.Split(strings.Trim(title, "\n"), "\n")
	top := m.height/3 - len(lines)
	if top < 0 {
		top = 0
	}
	for i, line := range lines {
		y := top + i
		if y >= m.height {
			break
		}
		runes := []rune(line)
		left := (m.width - len(runes)) / 2
		for x, r := range runes {
			sx := left + x
			if sx >= 0 && sx < m.width {
				m.grid[y][sx] = r
			}
		}
	}
}

func (m *Model) drawSnake() {
	y := m.crawlRow()
	if y < 0 || y >= m.height {
		return
	}
	for x, ok := range m.food {
		if ok {
			m.grid[y][x] = foodRune
		}
	}
	for i := 0; i < m.length; i++ {
		x := m.head - i
		if x < 0 || x >= m.width {
			continue
		}
		if i == 0 {
			m.grid[y][x] = headRune
		} else {
			m.grid[y][x] = bodyRune
		}
	}
}

func (m *Model) renderGrid() string {
	m.sb.Reset()
	row := m.crawlRow()
	for y, line := range m.grid {
		for _, r := range line {
			switch {
			case r == ' ' || r == 0:
				m.sb.WriteRune(' ')
			case r == foodRune:
				m.sb.WriteString(style.SplashFood.Render(string(r)))
			case y == row:
				m.sb.WriteString(style.SplashSnake.Render(string(r)))
			default:
				m.sb.WriteString(style.SplashTitle.Render(string(r)))
			}
		}
		m.sb.WriteRune('\n')
	}
	m.sb.WriteString("enter — play, s — settings, ? — about, m — mute, q — quit\n")
	return m.sb.String()
}
