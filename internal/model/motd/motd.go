// Package motd scrolls gameplay tips across a single line.
package motd

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsnake/internal/embeddata"
)

const fallbackTip = "Mind your tail!"

type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   string
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type motdMessages struct {
	Tips []string `json:"tips"`
}

// LoadTips returns the embedded tips or a single fallback tip.
func LoadTips() []string {
	var msgs []string
	motdBytes, err := embeddata.ReadMOTD()
	if err == nil {
		var motdData motdMessages
		if json.Unmarshal(motdBytes, &motdData) == nil {
			msgs = motdData.Tips
		}
	}
	if len(msgs) == 0 {
		msgs = []string{fallbackTip}
	}
	return msgs
}

// New scrolls each tip repeats times across frameWidth columns and waits
// interval before picking the next one.
func New(msgs []string, frameWidth, repeats int, interval time.Duration, rng *rand.Rand) Model {
	if len(msgs) == 0 {
		msgs = []string{fallbackTip}
	}
	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    msgs[rng.Intn(len(msgs))],
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); !ok {
		return m, nil
	}
	if m.doneCount >= m.repeats {
		if time.Since(m.lastShown) >= m.interval {
			m.current = m.msgs[m.rng.Intn(len(m.msgs))]
			m.lastShown = time.Now()
			m.doneCount = 0
			m.offset = 0
		}
		return m, Tick()
	}
	m.offset++
	if m.offset >= len(m.current)+m.frameWidth {
		m.offset = 0
		m.doneCount++
	}
	return m, Tick()
}

// Current returns the tip being shown.
func (m Model) Current() string {
	return m.current
}

// Window returns the unstyled visible part of the scrolling line.
func (m Model) Window() string {
	if m.frameWidth <= 0 {
		return ""
	}
	spaces := strings.Repeat(" ", m.frameWidth)
	line := spaces + m.current + spaces
	start := min(m.offset, len(line))
	end := min(start+m.frameWidth, len(line))
	return line[start:end]
}

func (m Model) View() string {
	return m.style.Render(m.Window())
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
