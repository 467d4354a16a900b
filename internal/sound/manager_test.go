package sound

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
)

// The tests drive the mixer directly and never open an audio device.

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	mgr := newManager(beep.SampleRate(CommonSampleRate))
	if err := mgr.LoadSamples(); err != nil {
		t.Fatalf("LoadSamples() error: %v", err)
	}
	return mgr
}

func TestLoadSamples(t *testing.T) {
	mgr := newTestManager(t)
	sr := beep.SampleRate(CommonSampleRate)
	for name, notes := range effectNotes {
		var total time.Duration
		for _, n := range notes {
			total += n.dur
		}
		buf, ok := mgr.samples[name]
		if !ok {
			t.Errorf("sample %s not loaded", name)
			continue
		}
		if want := sr.N(total); buf.Len() < want-len(notes) || buf.Len() > want {
			t.Errorf("sample %s has %d frames; want about %d", name, buf.Len(), want)
		}
	}
}

func TestPlay(t *testing.T) {
	mgr := newTestManager(t)
	if err := mgr.Play(EAT); err != nil {
		t.Fatalf("Play(EAT) error: %v", err)
	}
	if mgr.mix.Len() != 1 {
		t.Errorf("mixer has %d streamers; want 1", mgr.mix.Len())
	}
	if err := mgr.Play("missing"); err == nil {
		t.Error("expected error for unknown sample")
	}
	var nilMgr *Manager
	if err := nilMgr.Play(EAT); err == nil {
		t.Error("expected error for nil manager")
	}
}

func TestPlayDrains(t *testing.T) {
	mgr := newTestManager(t)
	if err := mgr.Play(EAT); err != nil {
		t.Fatal(err)
	}
	// Drain the mixer as the audio device would.
	buf := make([][2]float64, 512)
	for i := 0; i < 100 && mgr.mix.Len() > 0; i++ {
		mgr.vol.Stream(buf)
	}
	if mgr.mix.Len() != 0 {
		t.Error("sample still in the mixer after it ended")
	}
}

func TestVolume(t *testing.T) {
	mgr := newTestManager(t)
	mgr.SetMasterVolume(-6)
	mgr.SetVolume(EAT, -4)
	if err := mgr.Play(EAT); err != nil {
		t.Fatal(err)
	}
	if mgr.vol.Volume != -6 {
		t.Errorf("master volume = %v; want -6", mgr.vol.Volume)
	}
	vol, ok := mgr.ctrl[EAT].Streamer.(*effects.Volume)
	if !ok {
		t.Fatalf("sample streamer is %T; want *effects.Volume", mgr.ctrl[EAT].Streamer)
	}
	if vol.Volume != -4 {
		t.Errorf("sample volume = %v; want -4", vol.Volume)
	}
}

func TestMute(t *testing.T) {
	mgr := newTestManager(t)
	mgr.Mute()
	if !mgr.Muted() {
		t.Fatal("Muted() = false after Mute()")
	}
	if err := mgr.Play(GAME_OVER); err != nil {
		t.Fatal(err)
	}
	if mgr.mix.Len() != 0 {
		t.Error("muted manager queued a sample")
	}
	if err := mgr.Play("missing"); err == nil {
		t.Error("muted manager accepted an unknown sample")
	}
	mgr.Unmute()
	if mgr.Muted() {
		t.Error("Muted() = true after Unmute()")
	}
}

func TestStopListed(t *testing.T) {
	mgr := newTestManager(t)
	mgr.Play(EAT)
	mgr.Play(EAT_LARGE)
	mgr.Play(START)
	eat := mgr.ctrl[EAT]
	mgr.StopListed(EAT, EAT_LARGE, GAME_OVER)
	if _, ok := mgr.ctrl[START]; !ok || len(mgr.ctrl) != 1 {
		t.Errorf("controls left = %v; want only start", mgr.ctrl)
	}
	if eat.Streamer != nil {
		t.Error("stopped sample is still playing")
	}
	buf := make([][2]float64, 16)
	mgr.vol.Stream(buf)
	if mgr.mix.Len() != 1 {
		t.Errorf("mixer has %d streamers after stop; want 1", mgr.mix.Len())
	}
	var nilMgr *Manager
	nilMgr.StopListed(EAT)
}

func TestStopAll(t *testing.T) {
	mgr := newTestManager(t)
	mgr.Play(EAT)
	mgr.Play(START)
	mgr.StopAll()
	if len(mgr.ctrl) != 0 {
		t.Errorf("%d controls left after StopAll()", len(mgr.ctrl))
	}
}
