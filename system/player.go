package system

import (
	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// PlayerSystem turns the resolved movement vector into velocity and keeps the cannons aimed
type PlayerSystem struct {
	world *engine.World
}

func NewPlayerSystem(world *engine.World) *PlayerSystem {
	return &PlayerSystem{world: world}
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	w := s.world
	res := w.Resources.Player
	body, ok := w.Components.Body.GetComponent(res.Entity)
	if !ok {
		return
	}
	pc, _ := w.Components.Player.GetComponent(res.Entity)

	if res.Movement.IsZero() {
		body.Velocity = core.Vec2{}
	} else {
		dir := vmath.Normalize(res.Movement)
		body.Velocity = dir.Scale(res.ShipSpeed())
		pc.Heading = dir
	}
	pc.Facing = component.FacingFor(body.Velocity)

	if target, ok := w.Components.Body.GetComponent(res.Target); ok && res.Target != core.NoEntity {
		pc.FiringAngle = vmath.Angle(body.Position, target.Position)
		pc.HasFiringAngle = true
	}

	w.Components.Body.SetComponent(res.Entity, body)
	w.Components.Player.SetComponent(res.Entity, pc)
}

// AimAt points the cannons at an entity immediately
func (s *PlayerSystem) AimAt(target core.Entity) bool {
	w := s.world
	res := w.Resources.Player
	body, ok := w.Components.Body.GetComponent(res.Entity)
	if !ok {
		return false
	}
	tb, ok := w.Components.Body.GetComponent(target)
	if !ok {
		return false
	}
	pc, _ := w.Components.Player.GetComponent(res.Entity)
	pc.FiringAngle = vmath.Angle(body.Position, tb.Position)
	pc.HasFiringAngle = true
	w.Components.Player.SetComponent(res.Entity, pc)
	return true
}
