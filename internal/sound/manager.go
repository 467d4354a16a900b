// Package sound manages playback of short synthesized effects with support for
// interrupting, master and per-sample volume, and muting.
package sound

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
)

// Sound names
const (
	START      = "start"
	EAT        = "eat"
	EAT_LARGE  = "eat_large"
	GAME_OVER  = "game_over"
	HIGH_SCORE = "high_score"
)

const CommonSampleRate = 44100 // Common sample rate for all sounds

// note is a single tone of an effect. A zero frequency is a rest.
type note struct {
	freq float64
	dur  time.Duration
}

var effectNotes = map[string][]note{
	START:      {{523.25, 60 * time.Millisecond}, {659.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}},
	EAT:        {{880, 40 * time.Millisecond}},
	EAT_LARGE:  {{880, 40 * time.Millisecond}, {1174.66, 40 * time.Millisecond}, {1760, 70 * time.Millisecond}},
	GAME_OVER:  {{392, 150 * time.Millisecond}, {0, 30 * time.Millisecond}, {311.13, 150 * time.Millisecond}, {0, 30 * time.Millisecond}, {261.63, 300 * time.Millisecond}},
	HIGH_SCORE: {{523.25, 90 * time.Millisecond}, {659.25, 90 * time.Millisecond}, {783.99, 90 * time.Millisecond}, {1046.5, 250 * time.Millisecond}},
}

// Manager controls synthesis and playback of sound effects.
type Manager struct {
	mu         sync.Mutex
	samples    map[string]*beep.Buffer
	ctrl       map[string]*beep.Ctrl
	mix        *beep.Mixer
	format     beep.Format
	muted      bool
	vol        *effects.Volume    // master volume
	sampleVols map[string]float64 // per-sample volume in dB
	backend    any
	pulseCtrl  *pulseControl
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 10)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, fmt.Errorf("sound: %w", err)
	}
	return mgr, nil
}

func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		samples:    make(map[string]*beep.Buffer),
		ctrl:       make(map[string]*beep.Ctrl),
		mix:        &beep.Mixer{},
		format:     beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
		sampleVols: make(map[string]float64),
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	return mgr
}

// LoadSamples synthesizes all effects into memory.
func (mgr *Manager) LoadSamples() error {
	for name, notes := range effectNotes {
		if err := mgr.synthesize(name, notes...); err != nil {
			return fmt.Errorf("sound: synthesize %s: %w", name, err)
		}
	}
	return nil
}

// synthesize renders a sequence of square wave notes into a named sample.
func (mgr *Manager) synthesize(name string, notes ...note) error {
	if len(notes) == 0 {
		return errors.New("no notes")
	}
	sr := mgr.format.SampleRate
	var streamers []beep.Streamer
	for _, n := range notes {
		samples := sr.N(n.dur)
		if n.freq == 0 {
			streamers = append(streamers, beep.Silence(samples))
			continue
		}
		tone, err := generators.SquareTone(sr, n.freq)
		if err != nil {
			return err
		}
		// Square waves are harsh at full scale.
		quiet := &effects.Volume{Streamer: tone, Base: 2, Volume: -3}
		streamers = append(streamers, beep.Take(samples, quiet))
	}
	buf := beep.NewBuffer(mgr.format)
	buf.Append(beep.Seq(streamers...))

	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.samples[name] = buf
	return nil
}

// SetMasterVolume sets the gain of the whole mix in dB.
func (mgr *Manager) SetMasterVolume(db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.vol.Volume = db
}

// SetVolume sets the gain of one sample in dB. It applies from the next Play.
func (mgr *Manager) SetVolume(name string, db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.sampleVols[name] = db
}

// Play stops current playback of the sample (if any) and plays it from the start.
// A muted manager only checks that the sample exists.
func (mgr *Manager) Play(name string) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	buf, ok := mgr.samples[name]
	if !ok {
		return errors.New("sample not loaded: " + name)
	}

	// Interrupt previous if exists
	if ctrl, exists := mgr.ctrl[name]; exists {
		ctrl.Streamer = nil
		delete(mgr.ctrl, name)
	}
	if mgr.muted {
		return nil
	}

	vol := &effects.Volume{
		Streamer: buf.Streamer(0, buf.Len()),
		Base:     2,
		Volume:   mgr.sampleVols[name], // 0 dB unless set
	}
	ctrl := &beep.Ctrl{Streamer: vol}
	mgr.mix.Add(ctrl)
	mgr.ctrl[name] = ctrl
	return nil
}

// StopListed stops playback of the named samples. Samples that are not
// playing are ignored.
func (mgr *Manager) StopListed(names ...string) {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for _, name := range names {
		if ctrl, ok := mgr.ctrl[name]; ok {
			ctrl.Streamer = nil // drained controls leave the mixer
			delete(mgr.ctrl, name)
		}
	}
}

// StopAll halts playback of all currently playing samples.
func (mgr *Manager) StopAll() {
	if mgr == nil {
		return
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	for name, ctrl := range mgr.ctrl {
		ctrl.Streamer = nil
		delete(mgr.ctrl, name)
	}
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = true
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.muted = false
}

func (mgr *Manager) Muted() bool {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	return mgr.muted
}

// Close stops the backend and frees resources.
func (mgr *Manager) Close() {
	if mgr == nil {
		return
	}
	mgr.StopAll()
	mgr.closeBackend()
}
