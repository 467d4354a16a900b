// Package bosskey draws a build monitor that hides the game on demand.
package bosskey

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsnake/internal/embeddata"
)

const shownLines = 5

var categories = []string{"INFO", "WARN", "ERROR", "DEBUG", "NOTE", "HUMOR", "HINT"}

const histHeight = shownLines

type Model struct {
	msgs      []string
	bossLines []string
	rng       *rand.Rand
	width     int
	height    int
}

// TickMsg refreshes the log lines.
type TickMsg time.Time

type bossMessages struct {
	Lines []string `json:"lines"`
}

// LoadLines reads the embedded log lines.
func LoadLines() []string {
	var msgs []string
	data, err := embeddata.ReadBoss()
	if err == nil {
		var boss bossMessages
		if json.Unmarshal(data, &boss) == nil {
			msgs = boss.Lines
		}
	}
	if len(msgs) == 0 {
		msgs = []string{"[INFO] build: all checks passed"}
	}
	return msgs
}

func New(msgs []string, rng *rand.Rand) Model {
	m := Model{
		msgs: msgs,
		rng:  rng,
	}
	m.bossLines = m.randomLines()
	return m
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

// Tick fires every 10 seconds.
func Tick() tea.Cmd {
	return tea.Tick(10*time.Second, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m.bossLines = m.randomLines()
		return m, Tick()
	}
	return m, nil
}

// Lines returns the log lines currently shown.
func (m Model) Lines() []string {
	return m.bossLines
}

func (m Model) View() string {
	header := "Pipeline Monitor: gridsnake/main\n================================\n"
	events := strings.Join(m.bossLines, "\n") + "\n"
	footer := "\n[Press 'b' to return]"
	content := lipgloss.JoinVertical(lipgloss.Left, header, events, buildHistogram(m.bossLines), footer)

	s := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Foreground(lipgloss.Color("10")).
		Padding(0, 0, 0, 3)
	return s.Render(content)
}

// randomLines picks up to shownLines distinct lines without touching msgs.
func (m Model) randomLines() []string {
	idx := m.rng.Perm(len(m.msgs))
	n := min(shownLines, len(idx))
	lines := make([]string, n)
	for i := range lines {
		lines[i] = m.msgs[idx[i]]
	}
	return lines
}

// category returns the bracketed tag a line starts with.
func category(line string) string {
	if !strings.HasPrefix(line, "[") {
		return ""
	}
	end := strings.IndexByte(line, ']')
	if end < 0 {
		return ""
	}
	return line[1:end]
}

// buildHistogram stacks one three column bar per category, each bar
// starting under the third letter of its label.
func buildHistogram(lines []string) string {
	counts := map[string]int{}
	for _, line := range lines {
		counts[category(line)]++
	}

	var labels strings.Builder
	positions := make(map[string]int, len(categories))
	for _, cat := range categories {
		label := "[" + cat + "]"
		positions[cat] = labels.Len() + 2
		labels.WriteString(label)
		labels.WriteString(strings.Repeat(" ", max(8-len(label), 1)))
	}
	template := strings.TrimRight(labels.String(), " ")

	rows := make([][]rune, histHeight)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", len(template)))
	}
	for _, cat := range categories {
		pos := positions[cat]
		for row := histHeight - min(counts[cat], histHeight); row < histHeight; row++ {
			for i := 0; i < 3 && pos+i < len(rows[row]); i++ {
				rows[row][pos+i] = '█'
			}
		}
	}

	var out strings.Builder
	for _, r := range rows {
		out.WriteString(string(r))
		out.WriteByte('\n')
	}
	out.WriteString(template)
	out.WriteByte('\n')
	return out.String()
}
