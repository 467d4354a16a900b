//go:build !linux

package sound

import (
	"sync"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

type pulseControl struct{}

// initBackend initializes the default beep speaker backend.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, bufferSize int) error {
	if err := speaker.Init(sampleRate, bufferSize); err != nil {
		return err
	}
	speaker.Play(&lockedStreamer{mu: &mgr.mu, s: mgr.vol})
	mgr.backend = sampleRate
	return nil
}

// closeBackend shuts down the speaker backend.
func (mgr *Manager) closeBackend() {
	if mgr.backend == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}

// lockedStreamer holds the manager lock while the speaker pulls samples.
type lockedStreamer struct {
	mu *sync.Mutex
	s  beep.Streamer
}

func (l *lockedStreamer) Stream(samples [][2]float64) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Stream(samples)
}

func (l *lockedStreamer) Err() error {
	return l.s.Err()
}
