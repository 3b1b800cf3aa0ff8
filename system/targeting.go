package system

import (
	"math"

	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// TargetingSystem owns target selection and auto-fire state
// A target that is no longer live clears both the target and auto-fire
type TargetingSystem struct {
	world   *engine.World
	player  *PlayerSystem
	weapons *WeaponSystem
}

func NewTargetingSystem(world *engine.World, player *PlayerSystem, weapons *WeaponSystem) *TargetingSystem {
	return &TargetingSystem{world: world, player: player, weapons: weapons}
}

func (s *TargetingSystem) Name() string {
	return "targeting"
}

func (s *TargetingSystem) Priority() int {
	return parameter.PriorityTargeting
}

func (s *TargetingSystem) Update() {
	res := s.world.Resources.Player
	if res.Target == core.NoEntity {
		return
	}
	if !s.isEnemy(res.Target) {
		s.clear()
	}
}

// Select targets an enemy and turns auto-fire off
// Returns false and leaves the selection unchanged if e is not a live enemy
func (s *TargetingSystem) Select(e core.Entity) bool {
	if !s.isEnemy(e) {
		return false
	}
	res := s.world.Resources.Player
	res.Target = e
	res.AutoFire = false
	res.FireTimer = 0
	return true
}

// SelectAt targets the enemy whose hull contains pos, nearest center first
func (s *TargetingSystem) SelectAt(pos core.Vec2) (core.Entity, bool) {
	w := s.world
	best, bestDist := core.NoEntity, math.Inf(1)
	for _, e := range w.Components.Ship.GetAllEntities() {
		body, ok := w.Components.Body.GetComponent(e)
		if !ok || !vmath.RectContains(body.Bounds(), pos) {
			continue
		}
		if d := vmath.Distance(body.Position, pos); d < bestDist {
			best, bestDist = e, d
		}
	}
	if best == core.NoEntity {
		return core.NoEntity, false
	}
	return best, s.Select(best)
}

// Nearest returns the live enemy closest to the player
func (s *TargetingSystem) Nearest() (core.Entity, bool) {
	w := s.world
	origin, ok := playerPosition(w)
	if !ok {
		return core.NoEntity, false
	}
	best, bestDist := core.NoEntity, math.Inf(1)
	for _, e := range w.Components.Ship.GetAllEntities() {
		body, ok := w.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		if d := vmath.Distance(body.Position, origin); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != core.NoEntity
}

// ToggleAutoFire flips auto-fire, picking the nearest enemy when nothing is selected
// Turning it on with a target aims and fires immediately, then every reload interval
// Returns the new auto-fire state
func (s *TargetingSystem) ToggleAutoFire() bool {
	res := s.world.Resources.Player
	if !s.isEnemy(res.Target) {
		res.Target = core.NoEntity
		if e, ok := s.Nearest(); ok {
			res.Target = e
		}
	}

	res.AutoFire = !res.AutoFire
	res.FireTimer = 0
	if res.AutoFire && res.Target != core.NoEntity {
		s.player.AimAt(res.Target)
		s.weapons.FireVolley()
		res.FireTimer = res.ReloadInterval()
	}
	return res.AutoFire
}

// Clear drops the target and cancels auto-fire
func (s *TargetingSystem) clear() {
	res := s.world.Resources.Player
	res.Target = core.NoEntity
	res.AutoFire = false
	res.FireTimer = 0
}

func (s *TargetingSystem) isEnemy(e core.Entity) bool {
	if e == core.NoEntity {
		return false
	}
	ship, ok := s.world.Components.Ship.GetComponent(e)
	return ok && ship.HP > 0
}
