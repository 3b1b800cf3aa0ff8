package parameter

import "time"

// Event queue
const (
	// EventQueueSize must be a power of two
	EventQueueSize  = 1024
	EventBufferMask = EventQueueSize - 1
)

// Frame timing
const (
	// FrameUpdateInterval is the host frame period at the default 60 fps
	FrameUpdateInterval = time.Second / 60

	// MaxFrameDelta caps a single tick so a stalled host does not teleport entities
	MaxFrameDelta = 100 * time.Millisecond
)
