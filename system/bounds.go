package system

import (
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/physics"
)

// BoundsSystem keeps ships inside the playable region
type BoundsSystem struct {
	world *engine.World
}

func NewBoundsSystem(world *engine.World) *BoundsSystem {
	return &BoundsSystem{world: world}
}

func (s *BoundsSystem) Name() string {
	return "bounds"
}

func (s *BoundsSystem) Priority() int {
	return parameter.PriorityBounds
}

func (s *BoundsSystem) Update() {
	w := s.world
	playable := w.Resources.Arena.Playable
	for _, e := range w.Components.Body.GetAllEntities() {
		body, ok := w.Components.Body.GetComponent(e)
		if !ok || !body.Category.Has(core.CategoryPlayer|core.CategoryEnemy) {
			continue
		}
		if physics.ClampToRect(&body, playable) {
			w.Components.Body.SetComponent(e, body)
		}
	}
}
