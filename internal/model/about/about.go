package about

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog/log"
	"github.com/vinser/gridsnake/internal/embeddata"
	"github.com/vinser/gridsnake/internal/render"
)

const glamourGutter = 2

type Model struct {
	width       int
	height      int
	startHeight int
	termWidth   int
	termHeight  int

	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

func New(width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	bytes, err := embeddata.ReadAboutMD()
	if err != nil {
		log.Error().Err(err).Msg("read about page")
		bytes = []byte("# Grid Snake")
	}

	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	vp.SetContent(glamContent(string(bytes), width, vp.Style.GetHorizontalFrameSize(), glamourGutter))

	return Model{
		width:       width,
		height:      height,
		startHeight: height,

		viewport: vp,
	}
}

// SetSize shrinks the viewport when the terminal is too low for it.
func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if m.startHeight > m.termHeight-5 {
		m.height = m.termHeight
		m.viewport.Height = max(m.termHeight-5, 1)
	} else {
		m.height = m.startHeight
		m.viewport.Height = m.startHeight
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "esc" {
		return m, closeAboutCmd()
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

const footer = "↑ ↓ — scroll, esc — back, q — quit"

func (m Model) View() string {
	return render.Frame{
		Title:      "About",
		Footer:     footer,
		Width:      m.width,
		Height:     m.height,
		TermWidth:  m.termWidth,
		TermHeight: m.termHeight,
	}.Render(m.viewport.View())
}

func glamContent(content string, width, frame, gutter int) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-frame-gutter),
	)
	if err != nil {
		return content
	}
	str, err := r.Render(content)
	if err != nil {
		return content
	}
	return str
}
