package event

import (
	"sync/atomic"

	"github.com/lixenwraith/shiptapper/parameter"
)

// EventQueue is a lock-free MPSC ring buffer
// Push is safe from any goroutine; Consume must be called from a single consumer
// When full, the oldest unread events are overwritten
type EventQueue struct {
	events    [parameter.EventQueueSize]GameEvent
	published [parameter.EventQueueSize]atomic.Bool
	head      atomic.Uint64
	tail      atomic.Uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push claims a slot by CAS on tail, writes it, then marks it published
func (eq *EventQueue) Push(ev GameEvent) {
	for {
		tail := eq.tail.Load()
		next := tail + 1
		if !eq.tail.CompareAndSwap(tail, next) {
			continue
		}

		idx := tail & parameter.EventBufferMask
		eq.events[idx] = ev
		eq.published[idx].Store(true)

		head := eq.head.Load()
		if next-head > parameter.EventQueueSize {
			eq.head.CompareAndSwap(head, next-parameter.EventQueueSize)
		}
		return
	}
}

// Consume drains published events in FIFO order
// Stops at the first slot still being written; it is picked up on the next call
func (eq *EventQueue) Consume() []GameEvent {
	for {
		head := eq.head.Load()
		tail := eq.tail.Load()
		if tail == head {
			return nil
		}

		available := tail - head
		if available > parameter.EventQueueSize {
			available = parameter.EventQueueSize
			head = tail - parameter.EventQueueSize
		}

		out := make([]GameEvent, 0, available)
		for i := uint64(0); i < available; i++ {
			idx := (head + i) & parameter.EventBufferMask
			if !eq.published[idx].Load() {
				break
			}
			out = append(out, eq.events[idx])
			eq.published[idx].Store(false)
		}

		if eq.head.CompareAndSwap(head, head+uint64(len(out))) {
			if len(out) == 0 {
				return nil
			}
			return out
		}
	}
}

// Len returns the approximate number of pending events
func (eq *EventQueue) Len() int {
	head := eq.head.Load()
	tail := eq.tail.Load()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, parameter.EventQueueSize))
}
