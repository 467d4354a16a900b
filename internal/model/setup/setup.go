package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/gridsnake/internal/state"
	"github.com/vinser/gridsnake/internal/style"
)

const width = 80

const (
	selectedSpriteSize = iota
	selectedMute
	selectedReset

	numSettings
)

type Model struct {
	spriteSize string // small, medium or large
	mute       bool
	reset      bool // clear the saved high score

	selectedSetting int
}

type SaveSettingsMsg struct {
	SpriteSize string
	Mute       bool
	Reset      bool
}

func saveSettingsCmd(spriteSize string, mute, reset bool) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			SpriteSize: spriteSize,
			Mute:       mute,
			Reset:      reset,
		}
	}
}

type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(spriteSize string, mute bool) Model {
	if !state.ValidSpriteSize(spriteSize) {
		spriteSize = state.SpriteDefault
	}
	return Model{
		spriteSize: spriteSize,
		mute:       mute,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, saveSettingsCmd(m.spriteSize, m.mute, m.reset)
		case "esc":
			return m, discardSettingsCmd()
		case "up":
			if m.selectedSetting > 0 {
				m.selectedSetting--
			}
		case "down":
			if m.selectedSetting < numSettings-1 {
				m.selectedSetting++
			}
		case "enter", " ":
			switch m.selectedSetting {
			case selectedSpriteSize:
				m.spriteSize = nextSpriteSize(m.spriteSize)
			case selectedMute:
				m.mute = !m.mute
			case selectedReset:
				m.reset = !m.reset
			}
		}
	}
	return m, nil
}

func nextSpriteSize(current string) string {
	switch current {
	case state.SpriteSmall:
		return state.SpriteMedium
	case state.SpriteMedium:
		return state.SpriteLarge
	case state.SpriteLarge:
		return state.SpriteSmall
	default:
		return state.SpriteDefault
	}
}

func (m Model) View() string {
	type option struct {
		label string
		value string
	}

	options := []option{
		{"Sprite size", m.spriteSize},
		{"Mute all sounds", fmt.Sprintf("%v", m.mute)},
		{"Reset high score", fmt.Sprintf("%v", m.reset)},
	}

	var b strings.Builder
	title := style.SetupTitle.Render("Settings")
	b.WriteString("\n" + centerText(title) + "\n\n")

	for i, opt := range options {
		prefix := "  "
		if i == m.selectedSetting {
			prefix = "➤ "
		}
		line := fmt.Sprintf("%s%s: %s", prefix, opt.label, opt.value)
		if i == m.selectedSetting {
			b.WriteString(centerText(style.SetupItemSelected.Render(line)))
		} else {
			b.WriteString(centerText(style.SetupItem.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n\n\n\n\n\n" + centerText("↑ ↓ — select, space — change, s — save, esc — cancel") + "\n")
	return b.String()
}

func centerText(text string) string {
	padding := (width - lipgloss.Width(text)) / 2
	return strings.Repeat(" ", max(padding, 0)) + text
}
