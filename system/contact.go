package system

import (
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/physics"
)

// ContactSystem is the built-in contact detector; it queues begin-contact pairs
// alongside any pairs reported by an external detector
type ContactSystem struct {
	world   *engine.World
	tracker *physics.ContactTracker
	enabled bool
}

func NewContactSystem(world *engine.World) *ContactSystem {
	return &ContactSystem{
		world:   world,
		tracker: physics.NewContactTracker(),
		enabled: true,
	}
}

func (s *ContactSystem) Name() string {
	return "contact"
}

func (s *ContactSystem) Priority() int {
	return parameter.PriorityContact
}

// SetEnabled switches the built-in detector off when an external one reports contacts
func (s *ContactSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.tracker.Reset()
}

func (s *ContactSystem) Update() {
	if !s.enabled {
		return
	}
	w := s.world
	entities := w.Components.Body.GetAllEntities()
	bodies := make([]physics.Body, 0, len(entities))
	for _, e := range entities {
		if b, ok := w.Components.Body.GetComponent(e); ok {
			bodies = append(bodies, physics.Body{Entity: e, BodyComponent: b})
		}
	}

	for _, pair := range s.tracker.Detect(bodies) {
		w.PushContact(pair[0], pair[1])
	}
}
