package engine

import (
	"sync"
	"time"

	"github.com/lixenwraith/shiptapper/parameter"
)

// FrameClock turns host timestamps into clamped frame deltas
// While paused the reference point is dropped, so resuming yields a zero first delta
type FrameClock struct {
	mu     sync.Mutex
	last   time.Time
	hasRef bool
}

func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Step returns the elapsed time since the previous Step, clamped to MaxFrameDelta
// The first Step after construction or Reset returns zero
func (fc *FrameClock) Step(now time.Time) time.Duration {
	fc.mu.Lock()
	defer fc.mu.Unlock()

	if !fc.hasRef {
		fc.last = now
		fc.hasRef = true
		return 0
	}
	dt := now.Sub(fc.last)
	fc.last = now
	return ClampDelta(dt)
}

// Reset drops the reference point so no time debt accrues across a pause
func (fc *FrameClock) Reset() {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	fc.hasRef = false
}

// ClampDelta bounds a delta to [0, MaxFrameDelta]
func ClampDelta(dt time.Duration) time.Duration {
	if dt < 0 {
		return 0
	}
	if dt > parameter.MaxFrameDelta {
		return parameter.MaxFrameDelta
	}
	return dt
}
