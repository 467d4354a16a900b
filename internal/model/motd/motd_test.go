package motd

import (
	"math/rand"
	"strings"
	"testing"
	"time"
)

func TestLoadTips(t *testing.T) {
	tips := LoadTips()
	if len(tips) < 2 {
		t.Fatalf("LoadTips() returned %d tips", len(tips))
	}
	for _, tip := range tips {
		if strings.TrimSpace(tip) == "" {
			t.Error("empty tip")
		}
	}
}

func TestScroll(t *testing.T) {
	m := New([]string{"abc"}, 4, 1, time.Hour, rand.New(rand.NewSource(1)))
	want := []string{
		"    ",
		"   a",
		"  ab",
		" abc",
		"abc ",
		"bc  ",
		"c   ",
	}
	for i, w := range want {
		if got := m.Window(); got != w {
			t.Fatalf("step %d: Window() = %q; want %q", i, got, w)
		}
		m, _ = m.Update(TickMsg{})
	}
	// One full pass wraps the offset and counts the repeat.
	if m.offset != 0 || m.doneCount != 1 {
		t.Errorf("offset = %d, doneCount = %d; want 0, 1", m.offset, m.doneCount)
	}
	m, _ = m.Update(TickMsg{})
	if m.offset != 0 {
		t.Error("scrolling continued before the interval elapsed")
	}
}

func TestNewFallback(t *testing.T) {
	m := New(nil, 10, 1, time.Second, rand.New(rand.NewSource(1)))
	if m.Current() != fallbackTip {
		t.Errorf("Current() = %q; want %q", m.Current(), fallbackTip)
	}
}

func TestZeroWidth(t *testing.T) {
	m := New([]string{"abc"}, 0, 1, time.Second, rand.New(rand.NewSource(1)))
	if m.Window() != "" {
		t.Errorf("Window() = %q; want empty", m.Window())
	}
}
