package play

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/food"
	"github.com/vinser/gridsnake/internal/model/motd"
	"github.com/vinser/gridsnake/internal/render"
	"github.com/vinser/gridsnake/internal/session"
	"github.com/vinser/gridsnake/internal/snake"
	"github.com/vinser/gridsnake/internal/sound"
	"github.com/vinser/gridsnake/internal/state"
	"github.com/vinser/gridsnake/internal/style"
)

// FramesPerSecond is the redraw rate. Snake moves are rate limited
// separately by its speed.
const FramesPerSecond = 30

// Game is the part of session.Session driven by the play screen.
type Game interface {
	Tick(now time.Time) session.Report
	HandleDirection(d board.Direction)
	Board() board.Board
	Body() []board.Position
	Food() food.Food
	Score() int
	HighScore() int
	Speed() int
	RunID() string
}

// TerminalDimensions holds the terminal size information
type TerminalDimensions struct {
	Width  int
	Height int
}

type Model struct {
	state    *state.State
	game     Game
	keys     KeyMap
	help     help.Model
	sprites  render.Sprites
	paused   bool
	frameGen int // frames of an older generation are dropped
	sb       *strings.Builder
	terminal TerminalDimensions
	motd     motd.Model
}

// FrameMsg triggers one game tick and a redraw.
type FrameMsg struct {
	Time time.Time
	gen  int
}

func tickFrame(gen int) tea.Cmd {
	return tea.Tick(time.Second/FramesPerSecond, func(t time.Time) tea.Msg {
		return FrameMsg{Time: t, gen: gen}
	})
}

// GameOverMsg is sent when the snake bites itself.
type GameOverMsg struct {
	Score     int
	HighScore int
	NewHigh   bool
	RunID     string
}

func gameOverCmd(g Game, newHigh bool) tea.Cmd {
	msg := GameOverMsg{
		Score:     g.Score(),
		HighScore: g.HighScore(),
		NewHigh:   newHigh,
		RunID:     g.RunID(),
	}
	return func() tea.Msg { return msg }
}

// WindowSizeMsg is a message sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New returns a new play model.
func New(s *state.State, g Game) Model {
	cols := g.Board().Cols()
	w, _ := render.CharDims(s.SpriteSize)
	return Model{
		state:    s,
		game:     g,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		sprites:  render.NewSprites(s.SpriteSize),
		sb:       &strings.Builder{},
		terminal: TerminalDimensions{Width: 80, Height: 24},
		motd:     motd.New(motd.LoadTips(), cols*w, 1, 30*time.Second, rand.New(rand.NewSource(time.Now().UnixNano()))),
	}
}

func (m Model) Init() tea.Cmd {
	return tickFrame(m.frameGen)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(motd.TickMsg); ok {
		if !m.paused {
			return m, nil
		}
		var cmd tea.Cmd
		m.motd, cmd = m.motd.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.terminal.Width = msg.Width
		m.terminal.Height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Pause) {
			if m.paused {
				return m.resume()
			}
			return m.Pause()
		}
		if m.paused {
			return m, nil
		}
		if d, ok := m.keys.Direction(msg); ok {
			m.game.HandleDirection(d)
		}
		return m, nil
	case FrameMsg:
		if m.paused || msg.gen != m.frameGen {
			return m, nil
		}
		return m.tick(msg.Time)
	}
	return m, nil
}

func (m Model) tick(now time.Time) (Model, tea.Cmd) {
	rep := m.game.Tick(now)
	switch {
	case rep.Result.Outcome == snake.GameOver:
		log.Info().
			Str("run", m.game.RunID()).
			Int("score", m.game.Score()).
			Int("length", len(m.game.Body())).
			Bool("new_high", rep.NewHigh).
			Msg("snake died")
		return m, gameOverCmd(m.game, rep.NewHigh)
	case rep.Result.Outcome == snake.Ate:
		log.Debug().
			Str("run", m.game.RunID()).
			Bool("large", rep.Result.Large).
			Int("score", m.game.Score()).
			Int("speed", m.game.Speed()).
			Msg("food eaten")
		if rep.Result.Large {
			m.state.PlaySound(sound.EAT_LARGE)
		} else {
			m.state.PlaySound(sound.EAT)
		}
	}
	return m, tickFrame(m.frameGen)
}

// Pause stops the frame loop and shows tips until the pause key is pressed.
func (m Model) Pause() (Model, tea.Cmd) {
	if m.paused {
		return m, nil
	}
	m.paused = true
	m.frameGen++
	m.state.SoundManager.StopListed(sound.EAT, sound.EAT_LARGE)
	return m, m.motd.Init()
}

func (m Model) resume() (Model, tea.Cmd) {
	m.paused = false
	m.frameGen++
	return m, tickFrame(m.frameGen)
}

func (m Model) Paused() bool {
	return m.paused
}

// boardWidth returns the board width in terminal columns.
func (m *Model) boardWidth() int {
	w, _ := render.CharDims(m.state.SpriteSize)
	return m.game.Board().Cols() * w
}

// headerText builds the score line or the pause banner.
func (m *Model) headerText() string {
	if m.paused {
		return "PAUSED"
	}
	return fmt.Sprintf("Score: %d  High Score: %d  Speed: %d", m.game.Score(), m.game.HighScore(), m.game.Speed())
}

// View returns the complete screen output with the board and stats.
func (m *Model) View() string {
	m.sb.Reset()
	width := m.boardWidth()

	m.sb.WriteString(render.Strip(width))
	m.sb.WriteString("\n")
	m.sb.WriteString(style.Title.Render(m.headerText()))
	m.sb.WriteString("\n")
	m.sb.WriteString(render.Board(m.game.Board(), m.game.Body(), m.game.Food(), m.sprites))
	if m.paused {
		m.motd.SetWidth(width)
		m.sb.WriteString(m.motd.View())
	}
	m.sb.WriteString("\n")
	m.sb.WriteString(style.Footer.Render(m.footerText()))

	return render.Center(m.sb.String(), m.terminal.Width, m.terminal.Height)
}

func (m *Model) footerText() string {
	if m.paused {
		return "p: resume • q: quit"
	}
	return m.help.ShortHelpView(m.keys.ShortHelp())
}
