//go:build linux

package sound

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep/v2"
	"github.com/jfreymuth/pulse"
)

type pulseBackend struct {
	client *pulse.Client
	stream *pulse.PlaybackStream
}

// pulseControl wraps a beep.Streamer and allows immediate stop
// by setting the stopped flag.
type pulseControl struct {
	streamer beep.Streamer
	stopped  atomic.Bool
}

func (pc *pulseControl) Stream(buf [][2]float64) (n int, ok bool) {
	if pc.stopped.Load() {
		for i := range buf {
			buf[i][0], buf[i][1] = 0, 0
		}
		return len(buf), true
	}
	return pc.streamer.Stream(buf)
}

func (pc *pulseControl) Err() error { return nil }

// beepToFloat32Func returns a func([]float32) (int, error) that pulls from a beep.Streamer.
// mu is held while streaming, the same lock guards the mixer on the UI side.
func beepToFloat32Func(ctrl *pulseControl, mu sync.Locker, channels int) func([]float32) (int, error) {
	buf := make([][2]float64, 512)
	return func(out []float32) (int, error) {
		frames := len(out) / channels
		if frames > len(buf) {
			frames = len(buf)
		}
		mu.Lock()
		n, ok := ctrl.Stream(buf[:frames])
		mu.Unlock()
		if !ok {
			return 0, pulse.EndOfData
		}
		idx := 0
		for i := 0; i < n; i++ {
			for ch := 0; ch < channels; ch++ {
				out[idx] = float32(buf[i][ch])
				idx++
			}
		}
		return idx, nil
	}
}

// initBackend initializes PulseAudio instead of beep/speaker.
func (mgr *Manager) initBackend(sampleRate beep.SampleRate, bufferSize int) error {
	client, err := pulse.NewClient(pulse.ClientApplicationName("gridsnake"))
	if err != nil {
		return err
	}

	ctrl := &pulseControl{streamer: mgr.vol}
	stream, err := client.NewPlayback(
		pulse.Float32Reader(beepToFloat32Func(ctrl, &mgr.mu, mgr.format.NumChannels)),
		pulse.PlaybackMono,
		pulse.PlaybackSampleRate(int(sampleRate)),
		pulse.PlaybackBufferSize(bufferSize),
		pulse.PlaybackLatency(0.03), // ~30ms latency for low delay
	)
	if err != nil {
		client.Close()
		return err
	}

	stream.Start()

	mgr.backend = &pulseBackend{client: client, stream: stream}
	mgr.pulseCtrl = ctrl
	return nil
}

// closeBackend silences and cleans up PulseAudio.
func (mgr *Manager) closeBackend() {
	if mgr.pulseCtrl != nil {
		mgr.pulseCtrl.stopped.Store(true)
	}
	if pb, ok := mgr.backend.(*pulseBackend); ok {
		pb.stream.Close()
		pb.client.Close()
	}
}
