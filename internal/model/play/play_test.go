package play

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/food"
	"github.com/vinser/gridsnake/internal/session"
	"github.com/vinser/gridsnake/internal/snake"
	"github.com/vinser/gridsnake/internal/state"
)

// fakeGame replays canned reports and records input.
type fakeGame struct {
	reports []session.Report
	ticks   []time.Time
	dirs    []board.Direction
	score   int
	high    int
}

func (g *fakeGame) Tick(now time.Time) session.Report {
	g.ticks = append(g.ticks, now)
	if len(g.reports) == 0 {
		return session.Report{Status: session.Alive}
	}
	r := g.reports[0]
	g.reports = g.reports[1:]
	return r
}

func (g *fakeGame) HandleDirection(d board.Direction) { g.dirs = append(g.dirs, d) }
func (g *fakeGame) Board() board.Board                { return board.Board{Width: 100, Height: 60, Cell: 20} }
func (g *fakeGame) Body() []board.Position            { return []board.Position{{X: 20, Y: 20}} }
func (g *fakeGame) Food() food.Food                   { return food.Food{Position: board.Position{X: 60, Y: 40}} }
func (g *fakeGame) Score() int                        { return g.score }
func (g *fakeGame) HighScore() int                    { return g.high }
func (g *fakeGame) Speed() int                        { return snake.StartSpeed }
func (g *fakeGame) RunID() string                     { return "run-1" }

func newModel(g *fakeGame) Model {
	s := state.New()
	s.SpriteSize = state.SpriteSmall
	return New(s, g)
}

func keyRunes(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestDirectionKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want board.Direction
	}{
		{"Arrow up", tea.KeyMsg{Type: tea.KeyUp}, board.Up},
		{"Arrow down", tea.KeyMsg{Type: tea.KeyDown}, board.Down},
		{"Arrow left", tea.KeyMsg{Type: tea.KeyLeft}, board.Left},
		{"Arrow right", tea.KeyMsg{Type: tea.KeyRight}, board.Right},
		{"WASD", keyRunes("a"), board.Left},
		{"Vi", keyRunes("j"), board.Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &fakeGame{}
			m := newModel(g)
			m, _ = m.Update(tt.msg)
			if len(g.dirs) != 1 || g.dirs[0] != tt.want {
				t.Errorf("directions = %v; want [%v]", g.dirs, tt.want)
			}
		})
	}
}

func TestUnboundKeyIgnored(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g)
	m.Update(keyRunes("x"))
	if len(g.dirs) != 0 {
		t.Errorf("unexpected directions %v", g.dirs)
	}
}

func TestFrameTicksGame(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m, cmd := m.Update(FrameMsg{Time: now})
	if len(g.ticks) != 1 || !g.ticks[0].Equal(now) {
		t.Fatalf("ticks = %v; want [%v]", g.ticks, now)
	}
	if cmd == nil {
		t.Error("frame did not schedule the next frame")
	}
}

func TestGameOver(t *testing.T) {
	g := &fakeGame{
		score: 7,
		high:  7,
		reports: []session.Report{{
			Status:  session.Dead,
			Result:  snake.Result{Outcome: snake.GameOver},
			NewHigh: true,
		}},
	}
	m := newModel(g)
	_, cmd := m.Update(FrameMsg{Time: time.Now()})
	if cmd == nil {
		t.Fatal("expected a game over command")
	}
	msg, ok := cmd().(GameOverMsg)
	if !ok {
		t.Fatalf("cmd() = %T; want GameOverMsg", cmd())
	}
	want := GameOverMsg{Score: 7, HighScore: 7, NewHigh: true, RunID: "run-1"}
	if msg != want {
		t.Errorf("GameOverMsg = %+v; want %+v", msg, want)
	}
}

func TestEatKeepsTicking(t *testing.T) {
	g := &fakeGame{reports: []session.Report{{
		Status: session.Alive,
		Result: snake.Result{Outcome: snake.Ate, Large: true},
	}}}
	m := newModel(g)
	_, cmd := m.Update(FrameMsg{Time: time.Now()})
	if cmd == nil {
		t.Error("meal stopped the frame loop")
	}
}

func TestPause(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g)

	m, _ = m.Update(keyRunes("p"))
	if !m.Paused() {
		t.Fatal("p did not pause")
	}
	// Frames are ignored while paused, including late ones.
	m, cmd := m.Update(FrameMsg{Time: time.Now()})
	if len(g.ticks) != 0 || cmd != nil {
		t.Errorf("paused model ticked: %d ticks", len(g.ticks))
	}
	m, _ = m.Update(keyRunes("w"))
	if len(g.dirs) != 0 {
		t.Errorf("paused model turned the snake: %v", g.dirs)
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("View() does not show the pause banner")
	}

	m, cmd = m.Update(keyRunes("p"))
	if m.Paused() || cmd == nil {
		t.Fatal("second p did not resume")
	}
	// A frame scheduled before the pause belongs to an old generation.
	m.Update(FrameMsg{Time: time.Now()})
	if len(g.ticks) != 0 {
		t.Errorf("stale frame ticked the game")
	}
}

func TestView(t *testing.T) {
	g := &fakeGame{score: 3, high: 12}
	m := newModel(g)
	m, _ = m.Update(WindowSizeMsg{Width: 20, Height: 10})
	view := m.View()
	for _, want := range []string{"Score: 3", "High Score: 12", "Speed: 10", "@", "*"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestPauseFromOutside(t *testing.T) {
	g := &fakeGame{}
	m := newModel(g)
	m, cmd := m.Pause()
	if !m.Paused() || cmd == nil {
		t.Fatal("Pause() did not pause")
	}
	if _, cmd = m.Pause(); cmd != nil {
		t.Error("second Pause() restarted the tips")
	}
}
