package about

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestEscCloses(t *testing.T) {
	m := New(60, 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || cmd() != (CloseAboutMsg{}) {
		t.Error("esc does not close the about page")
	}
}

func TestView(t *testing.T) {
	m := New(60, 10)
	view := m.View()
	if !strings.Contains(view, "About") {
		t.Errorf("View() has no title:\n%s", view)
	}
}

func TestSetSize(t *testing.T) {
	tests := []struct {
		name       string
		termHeight int
		want       int
	}{
		{"Tall terminal", 40, 10},
		{"Low terminal", 12, 7},
		{"Tiny terminal", 3, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(60, 10)
			m.SetSize(80, tt.termHeight)
			if m.viewport.Height != tt.want {
				t.Errorf("viewport height = %d; want %d", m.viewport.Height, tt.want)
			}
		})
	}
}
