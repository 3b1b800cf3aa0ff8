package engine

import "github.com/lixenwraith/shiptapper/event"

// System is a per-tick update step; lower priority values run first
type System interface {
	Name() string
	Priority() int
	Update()
}

// EventHandler processes routed events
type EventHandler interface {
	// HandleEvent processes a single event during dispatch
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}
