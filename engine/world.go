package engine

import (
	"sync"

	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/event"
)

// World contains all entities, their components and the shared resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  *Resource

	systems []System
}

// NewWorld creates a world with empty stores around the given resources
func NewWorld(res *Resource) *World {
	return &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources:    res,
	}
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an unknown entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all {
		s.RemoveEntity(e)
	}
}

// Alive reports whether the entity still has a body
func (w *World) Alive(e core.Entity) bool {
	return e != core.NoEntity && w.Components.Body.HasEntity(e)
}

// Clear removes every component; entity IDs keep increasing so stale references never alias
func (w *World) Clear() {
	for _, s := range w.Components.all {
		s.ClearAllComponents()
	}
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in execution order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially in priority order
func (w *World) Update() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent emits a presentation event to the host outbox
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.Resources.Output.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber(),
	})
}

// PushContact queues a begin-contact pair for combat resolution
func (w *World) PushContact(a, b core.Entity) {
	w.Resources.Contacts.Push(event.GameEvent{
		Type:    event.EventContact,
		Payload: &event.ContactPayload{A: a, B: b},
		Frame:   w.Resources.Time.FrameNumber(),
	})
}
