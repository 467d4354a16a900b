package app

import (
	"math/rand"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/vinser/gridsnake/internal/board"
	"github.com/vinser/gridsnake/internal/flags"
	"github.com/vinser/gridsnake/internal/model/about"
	"github.com/vinser/gridsnake/internal/model/bosskey"
	"github.com/vinser/gridsnake/internal/model/over"
	"github.com/vinser/gridsnake/internal/model/play"
	"github.com/vinser/gridsnake/internal/model/quit"
	"github.com/vinser/gridsnake/internal/model/ready"
	"github.com/vinser/gridsnake/internal/model/setup"
	"github.com/vinser/gridsnake/internal/model/splash"
	"github.com/vinser/gridsnake/internal/render"
	"github.com/vinser/gridsnake/internal/session"
	"github.com/vinser/gridsnake/internal/sound"
	"github.com/vinser/gridsnake/internal/state"
	xrand "golang.org/x/exp/rand"
)

type status uint

const (
	statusStartSplash status = iota
	statusDoSettings
	statusAbout
	statusGetReady
	statusGameplay
	statusBossKey
	statusGameOver
	statusQuitting
)

func (s status) String() string {
	switch s {
	case statusStartSplash:
		return "splash"
	case statusDoSettings:
		return "settings"
	case statusAbout:
		return "about"
	case statusGetReady:
		return "ready"
	case statusGameplay:
		return "gameplay"
	case statusBossKey:
		return "bosskey"
	case statusGameOver:
		return "gameover"
	case statusQuitting:
		return "quitting"
	}
	return "unknown"
}

// HighScores persists the best score between runs.
type HighScores interface {
	Load() int
	Save(n int) error
	Reset() error
}

// Config carries everything the application needs from main.
type Config struct {
	State   *state.State
	Scores  HighScores
	Rand    board.Rand
	Version string
}

type Model struct {
	status  status
	state   *state.State
	scores  HighScores
	rng     board.Rand
	board   board.Board
	session *session.Session
	version string
	// models
	splash splash.Model
	setup  setup.Model
	about  about.Model
	ready  ready.Model
	play   play.Model
	boss   bosskey.Model
	over   over.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func New(cfg Config) Model {
	st := cfg.State
	if st == nil {
		st = state.New()
	}
	rng := cfg.Rand
	if rng == nil {
		rng = NewRand(0)
	}
	m := Model{
		status:  statusStartSplash,
		state:   st,
		scores:  cfg.Scores,
		rng:     rng,
		board:   board.Default(),
		version: cfg.Version,
	}
	m.splash = m.newSplash()
	log.Info().Str("version", m.version).Str("sprites", st.SpriteSize).Bool("mute", st.Mute).Msg("gridsnake started")
	return m
}

// NewRand returns the food placement source. A zero seed is taken from the clock.
func NewRand(seed int64) *xrand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return xrand.New(xrand.NewSource(uint64(seed)))
}

// LoadState reads saved preferences and applies command line overrides.
// With -reset both the preferences and the high score are cleared.
func LoadState(fl *flags.Flags, scores HighScores) *state.State {
	st := state.Load()
	if fl == nil {
		return st
	}
	if fl.Reset {
		st = state.New()
		if err := scores.Reset(); err != nil {
			log.Error().Err(err).Msg("reset high score")
		}
		if err := st.Save(); err != nil {
			log.Error().Err(err).Msg("reset settings")
		}
	}
	if fl.IsSet("mute") {
		st.Mute = fl.Mute
	}
	if fl.IsSet("size") {
		st.SpriteSize = fl.Sprite
	}
	return st
}

// screenSize returns the board size in terminal cells for the current sprites.
func (m *Model) screenSize() (int, int) {
	w, h := render.CharDims(m.state.SpriteSize)
	return m.board.Cols() * w, m.board.Rows() * h
}

const minSplashWidth = 50

func (m *Model) newSplash() splash.Model {
	width, height := m.screenSize()
	return splash.New(m.state, max(width, minSplashWidth), height)
}

func (m *Model) newAbout() about.Model {
	width, height := m.screenSize()
	a := about.New(max(width, minSplashWidth), height)
	if m.termWidth > 0 && m.termHeight > 0 {
		a.SetSize(m.termWidth, m.termHeight)
	}
	return a
}

// newGame starts a fresh life behind a short countdown.
func (m *Model) newGame() tea.Cmd {
	if m.session == nil {
		m.session = session.New(m.board, m.rng, m.scores.Load())
	} else {
		m.session.Restart()
	}
	m.status = statusGetReady
	width, height := m.screenSize()
	m.ready = ready.New(m.session.HighScore(), width, height)
	m.ready.SetSize(m.termWidth, m.termHeight)
	return m.ready.Init()
}

// startPlay hands the live session to the play screen.
func (m *Model) startPlay() tea.Cmd {
	m.status = statusGameplay
	m.play = play.New(m.state, m.session)
	// Seed the play model with the latest terminal size so it renders correctly before any manual resize
	if m.termWidth > 0 && m.termHeight > 0 {
		m.play, _ = m.play.Update(play.WindowSizeMsg{Width: m.termWidth, Height: m.termHeight})
	}
	m.state.SoundManager.StopAll()
	m.state.PlaySound(sound.START)
	log.Info().
		Str("run", m.session.RunID()).
		Int("high_score", m.session.HighScore()).
		Str("sprites", m.state.SpriteSize).
		Msg("game started")
	return m.play.Init()
}

func (m *Model) gameOver(msg play.GameOverMsg) {
	var saveErr error
	if msg.NewHigh {
		if saveErr = m.scores.Save(msg.Score); saveErr != nil {
			log.Error().Err(saveErr).Int("score", msg.Score).Msg("save high score")
		} else {
			log.Info().Str("run", msg.RunID).Int("score", msg.Score).Msg("new high score")
		}
		m.state.PlaySound(sound.HIGH_SCORE)
	} else {
		m.state.PlaySound(sound.GAME_OVER)
	}
	width, height := m.screenSize()
	m.status = statusGameOver
	m.over = over.New(msg.Score, msg.HighScore, msg.NewHigh, saveErr, width, height)
	m.over.SetSize(m.termWidth, m.termHeight)
}

func (m *Model) applySettings(msg setup.SaveSettingsMsg) {
	m.state.SpriteSize = msg.SpriteSize
	m.state.SetMute(msg.Mute)
	if msg.Reset {
		if err := m.scores.Reset(); err != nil {
			log.Error().Err(err).Msg("reset high score")
		}
		// The cached high score belongs to the old record.
		m.session = nil
	}
	m.saveState()
}

func (m *Model) saveState() {
	if err := m.state.Save(); err != nil {
		log.Error().Err(err).Msg("save settings")
	}
}

// showBoss pauses the game and covers it with the build monitor.
func (m *Model) showBoss() tea.Cmd {
	var cmd tea.Cmd
	m.play, cmd = m.play.Pause()
	m.status = statusBossKey
	m.boss = bosskey.New(bosskey.LoadLines(), rand.New(rand.NewSource(time.Now().UnixNano())))
	m.boss.SetSize(m.termWidth, m.termHeight)
	m.state.SoundManager.StopAll()
	return tea.Batch(cmd, m.boss.Init())
}

func (m *Model) startQuit() {
	m.status = statusQuitting
	m.state.SoundManager.StopAll()
	score, high := 0, m.scores.Load()
	if m.session != nil {
		score, high = m.session.Score(), m.session.HighScore()
	}
	m.quit = quit.New(score, high)
}

func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.status == statusQuitting {
				return m, tea.Quit
			}
			m.startQuit()
			return m, m.quit.Init()
		case "m": // mute/unmute
			m.state.SetMute(!m.state.Mute)
			m.saveState()
			return m, nil
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		switch m.status {
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusGetReady:
			m.ready.SetSize(msg.Width, msg.Height)
		case statusBossKey:
			m.boss.SetSize(msg.Width, msg.Height)
		case statusGameplay:
			m.play, cmd = m.play.Update(play.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
			cmds = append(cmds, cmd)
		case statusGameOver:
			m.over.SetSize(msg.Width, msg.Height)
		}
		cmds = append(cmds, tea.ClearScreen)
		return m, tea.Batch(cmds...)
	}

	switch m.status {
	case statusStartSplash:
		switch msg := msg.(type) {
		case splash.MakeSettingsMsg:
			m.status = statusDoSettings
			m.setup = setup.New(m.state.SpriteSize, m.state.Mute)
		case splash.ShowAboutMsg:
			m.status = statusAbout
			m.about = m.newAbout()
		case splash.TimedoutMsg:
			cmd = m.newGame()
		default:
			m.splash, cmd = m.splash.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusDoSettings:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			m.applySettings(msg)
			cmd = m.newGame()
		case setup.DiscardSettingsMsg:
			cmd = m.newGame()
		default:
			m.setup, cmd = m.setup.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusStartSplash
			m.splash = m.newSplash()
			cmd = m.splash.Init()
		default:
			m.about, cmd = m.about.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusGetReady:
		switch msg := msg.(type) {
		case ready.TimedoutMsg:
			cmd = m.startPlay()
		default:
			m.ready, cmd = m.ready.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusGameplay:
		switch msg := msg.(type) {
		case play.GameOverMsg:
			m.gameOver(msg)
		case tea.KeyMsg:
			if msg.String() == "b" {
				cmd = m.showBoss()
			} else {
				m.play, cmd = m.play.Update(msg)
			}
		default:
			m.play, cmd = m.play.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusBossKey:
		switch msg := msg.(type) {
		case tea.KeyMsg:
			if msg.String() == "b" {
				// The game stays paused until the player resumes it.
				m.status = statusGameplay
			}
		case bosskey.TickMsg:
			m.boss, cmd = m.boss.Update(msg)
		default:
			// Paused play still needs its tip ticks.
			m.play, cmd = m.play.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusGameOver:
		switch msg := msg.(type) {
		case over.PlayAgainMsg:
			cmd = m.newGame()
		case over.QuitGameMsg:
			m.startQuit()
			cmd = m.quit.Init()
		default:
			m.over, cmd = m.over.Update(msg)
		}
		cmds = append(cmds, cmd)
	case statusQuitting:
		switch msg := msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		case tea.KeyMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	switch m.status {
	case statusStartSplash:
		return m.splash.View()
	case statusDoSettings:
		return m.setup.View()
	case statusAbout:
		return m.about.View()
	case statusGetReady:
		return m.ready.View()
	case statusGameplay:
		return m.play.View()
	case statusBossKey:
		return m.boss.View()
	case statusGameOver:
		return m.over.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}

// Session returns the current game session, nil before the first game.
func (m Model) Session() *session.Session {
	return m.session
}
