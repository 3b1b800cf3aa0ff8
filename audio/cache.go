package audio

import (
	"sync"

	"github.com/lixenwraith/shiptapper/event"
)

// soundCache stores rendered unity-gain cue buffers
type soundCache struct {
	mu    sync.RWMutex
	store [event.SoundCueCount]floatBuffer
	ready [event.SoundCueCount]bool
}

func newSoundCache() *soundCache {
	return &soundCache{}
}

// get returns the cached buffer, rendering it on first use
func (c *soundCache) get(cue event.SoundCue) floatBuffer {
	if cue >= event.SoundCueCount {
		return nil
	}

	c.mu.RLock()
	if c.ready[cue] {
		buf := c.store[cue]
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if c.ready[cue] {
		return c.store[cue]
	}

	buf := generateCue(cue)
	c.store[cue] = buf
	c.ready[cue] = true
	return buf
}

// preload renders the cues heard every few seconds in combat
func (c *soundCache) preload() {
	c.get(event.SoundCannon)
	c.get(event.SoundEnemyCannon)
	c.get(event.SoundHit)
}
