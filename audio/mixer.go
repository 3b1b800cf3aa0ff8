package audio

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
)

// activeSound tracks a playing cue instance
type activeSound struct {
	buffer floatBuffer
	pos    int
	volume float64
}

type playRequest struct {
	cue    event.SoundCue
	volume float64
}

// Mixer sums active cues and writes s16le stereo PCM to its output on a fixed tick
type Mixer struct {
	output io.Writer
	cache  *soundCache
	tick   time.Duration

	playQueue chan playRequest
	stopChan  chan struct{}
	done      chan struct{}
	stopped   atomic.Bool

	// Accessed only by the mix goroutine
	active []activeSound

	played  atomic.Uint64
	dropped atomic.Uint64

	errChan chan error
}

func newMixer(out io.Writer, cache *soundCache) *Mixer {
	return &Mixer{
		output:    out,
		cache:     cache,
		tick:      parameter.AudioBufferDuration,
		playQueue: make(chan playRequest, parameter.AudioPlayQueueSize),
		stopChan:  make(chan struct{}),
		done:      make(chan struct{}),
		active:    make([]activeSound, 0, parameter.AudioMaxActive),
		errChan:   make(chan error, 1),
	}
}

// Start begins the mixing loop
func (m *Mixer) Start() {
	go m.loop()
}

// Stop signals the mixer to halt and waits for the loop to exit
func (m *Mixer) Stop() {
	if m.stopped.CompareAndSwap(false, true) {
		close(m.stopChan)
		<-m.done
	}
}

// Play queues a cue; a full queue drops the request
func (m *Mixer) Play(cue event.SoundCue, volume float64) {
	if m.stopped.Load() {
		return
	}
	select {
	case m.playQueue <- playRequest{cue: cue, volume: volume}:
	default:
		m.dropped.Add(1)
	}
}

// Errors returns the channel signalling a broken output pipe
func (m *Mixer) Errors() <-chan error {
	return m.errChan
}

func (m *Mixer) loop() {
	defer close(m.done)
	ticker := time.NewTicker(m.tick)
	defer ticker.Stop()

	samplesPerTick := parameter.AudioBufferSamples
	mixBuf := make([]float64, samplesPerTick)
	outBytes := make([]byte, samplesPerTick*parameter.AudioBytesPerFrame)

	for {
		select {
		case <-m.stopChan:
			return

		case req := <-m.playQueue:
			m.activate(req)
			m.drainQueue(4)

		case <-ticker.C:
			clear(mixBuf)
			m.active = m.mixActive(mixBuf, samplesPerTick)
			floatToBytes(mixBuf, outBytes)

			// Silence is written too, to keep the pipe alive
			if _, err := m.output.Write(outBytes); err != nil {
				select {
				case m.errChan <- fmt.Errorf("%w: %v", ErrPipeClosed, err):
				default:
				}
				return
			}
		}
	}
}

// activate starts a cue, cutting the oldest when too many overlap
func (m *Mixer) activate(req playRequest) {
	buf := m.cache.get(req.cue)
	if len(buf) == 0 {
		return
	}
	if len(m.active) >= parameter.AudioMaxActive {
		m.active = append(m.active[:0], m.active[1:]...)
		m.dropped.Add(1)
	}
	m.active = append(m.active, activeSound{buffer: buf, volume: req.volume})
	m.played.Add(1)
}

// drainQueue processes up to n additional queued requests
func (m *Mixer) drainQueue(n int) {
	for i := 0; i < n; i++ {
		select {
		case req := <-m.playQueue:
			m.activate(req)
		default:
			return
		}
	}
}

// mixActive mixes all active cues into buf, returns the ones still playing
func (m *Mixer) mixActive(buf []float64, samples int) []activeSound {
	remaining := m.active[:0]
	for i := range m.active {
		s := &m.active[i]
		for j := 0; j < samples && s.pos < len(s.buffer); j++ {
			buf[j] += s.buffer[s.pos] * s.volume
			s.pos++
		}
		if s.pos < len(s.buffer) {
			remaining = append(remaining, *s)
		}
	}
	return remaining
}

// floatToBytes converts float64 mono to interleaved stereo int16 LE bytes
// Applies soft limiting above 0.8 before the hard clip
func floatToBytes(in []float64, out []byte) {
	for i, v := range in {
		if v > 0.8 {
			v = 0.8 + 0.2*(1.0-1.0/(1.0+(v-0.8)*5.0))
		} else if v < -0.8 {
			v = -0.8 - 0.2*(1.0-1.0/(1.0+(-v-0.8)*5.0))
		}
		v = max(-1.0, min(1.0, v))

		i16 := int16(v * 32767)
		idx := i * parameter.AudioBytesPerFrame
		binary.LittleEndian.PutUint16(out[idx:], uint16(i16))   // L
		binary.LittleEndian.PutUint16(out[idx+2:], uint16(i16)) // R
	}
}

// Stats returns played and dropped counts
func (m *Mixer) Stats() (played, dropped uint64) {
	return m.played.Load(), m.dropped.Load()
}
