package setup

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/gridsnake/internal/state"
)

func press(m Model, keys ...string) (Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m, cmd = m.Update(msg)
	}
	return m, cmd
}

func TestSave(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want SaveSettingsMsg
	}{
		{"Unchanged", []string{"s"}, SaveSettingsMsg{SpriteSize: state.SpriteMedium}},
		{"Sprite cycles", []string{"enter", "enter", "s"}, SaveSettingsMsg{SpriteSize: state.SpriteSmall}},
		{"Mute", []string{"down", " ", "s"}, SaveSettingsMsg{SpriteSize: state.SpriteMedium, Mute: true}},
		{"Reset", []string{"down", "down", "down", "enter", "s"}, SaveSettingsMsg{SpriteSize: state.SpriteMedium, Reset: true}},
		{"Up stops at top", []string{"up", "enter", "s"}, SaveSettingsMsg{SpriteSize: state.SpriteLarge}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, cmd := press(New(state.SpriteMedium, false), tt.keys...)
			if cmd == nil {
				t.Fatal("no command")
			}
			if got := cmd(); got != tt.want {
				t.Errorf("cmd() = %+v; want %+v", got, tt.want)
			}
		})
	}
}

func TestDiscard(t *testing.T) {
	_, cmd := press(New(state.SpriteLarge, true), "enter", "esc")
	if cmd == nil || cmd() != (DiscardSettingsMsg{}) {
		t.Error("esc does not discard settings")
	}
}

func TestInvalidSpriteSize(t *testing.T) {
	m := New("huge", false)
	if !strings.Contains(m.View(), "Sprite size: medium") {
		t.Errorf("View() does not fall back to medium:\n%s", m.View())
	}
}
