package over

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want tea.Msg
	}{
		{"Enter", tea.KeyMsg{Type: tea.KeyEnter}, PlayAgainMsg{}},
		{"A", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, PlayAgainMsg{}},
		{"Esc", tea.KeyMsg{Type: tea.KeyEsc}, QuitGameMsg{}},
		{"Other", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(3, 10, false, nil, 40, 10)
			_, cmd := m.Update(tt.msg)
			if tt.want == nil {
				if cmd != nil {
					t.Errorf("unexpected command returning %T", cmd())
				}
				return
			}
			if cmd == nil || cmd() != tt.want {
				t.Errorf("command does not return %T", tt.want)
			}
		})
	}
}

func TestView(t *testing.T) {
	tests := []struct {
		name    string
		m       Model
		want    []string
		notWant string
	}{
		{
			"Regular",
			New(3, 10, false, nil, 40, 12),
			[]string{"Game Over!", "Your score: 3", "High Score: 10", "Press ENTER to play again."},
			"New High Score",
		},
		{
			"New high",
			New(11, 11, true, nil, 40, 12),
			[]string{"New High Score: 11", "Press ENTER to play again."},
			"not saved",
		},
		{
			"Save failed",
			New(11, 11, true, errors.New("disk full"), 40, 12),
			[]string{"New High Score: 11", "not saved"},
			"Your score",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := tt.m.View()
			for _, w := range tt.want {
				if !strings.Contains(view, w) {
					t.Errorf("View() missing %q:\n%s", w, view)
				}
			}
			if strings.Contains(view, tt.notWant) {
				t.Errorf("View() contains %q:\n%s", tt.notWant, view)
			}
		})
	}
}
