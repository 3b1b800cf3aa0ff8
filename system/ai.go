package system

import (
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// AISystem steers enemies by archetype and runs their fire cooldowns
type AISystem struct {
	world   *engine.World
	weapons *WeaponSystem
}

func NewAISystem(world *engine.World, weapons *WeaponSystem) *AISystem {
	return &AISystem{world: world, weapons: weapons}
}

func (s *AISystem) Name() string {
	return "ai"
}

func (s *AISystem) Priority() int {
	return parameter.PriorityAI
}

func (s *AISystem) Update() {
	w := s.world
	target, ok := playerPosition(w)
	if !ok {
		return
	}
	dt := w.Resources.Time.DeltaTime
	height := w.Resources.Arena.Height()
	baseSpeed := w.Resources.Player.Stats.ShipSpeed * parameter.SpeedUnitsPerStat

	for _, e := range w.Components.Ship.GetAllEntities() {
		ship, ok := w.Components.Ship.GetComponent(e)
		if !ok || ship.HP <= 0 {
			continue
		}
		body, ok := w.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		ai, _ := w.Components.EnemyAI.GetComponent(e)

		dist := vmath.Distance(body.Position, target)
		if ship.Archetype.Pursues() {
			body.Velocity = s.pursue(ship.Archetype, body.Position, target, dist, height, baseSpeed)
		} else {
			body.Velocity = s.patrol(&ai, body.Position, dist, height, baseSpeed)
		}
		ship.Facing = component.FacingFor(body.Velocity)

		ai.FireCooldown -= dt
		if ai.FireCooldown <= 0 {
			if dist < height*parameter.EnemyFiringRangeRatio {
				s.weapons.FireEnemyShot(e, ship.Archetype, body.Position, target)
			}
			ai.FireCooldown = s.nextReload()
		}

		w.Components.Body.SetComponent(e, body)
		w.Components.Ship.SetComponent(e, ship)
		w.Components.EnemyAI.SetComponent(e, ai)
	}
}

// pursue holds the standoff distance: approach when far, retreat when close, idle inside the tolerance band
func (s *AISystem) pursue(arch component.Archetype, pos, target core.Vec2, dist, height, baseSpeed float64) core.Vec2 {
	standoff := height * parameter.EnemyStandoffRatio
	approach, retreat := parameter.ChaserApproachSpeed, parameter.ChaserRetreatSpeed
	if arch == component.ArchetypeBoss {
		approach, retreat = parameter.BossApproachSpeed, parameter.BossRetreatSpeed
	}

	switch {
	case dist > standoff+parameter.EnemyStandoffTolerance:
		return vmath.MoveTowards(pos, target, approach*baseSpeed)
	case dist < standoff-parameter.EnemyStandoffTolerance:
		return vmath.MoveTowards(target, pos, retreat*baseSpeed)
	default:
		return core.Vec2{}
	}
}

// patrol holds position inside firing range, otherwise wanders between random points
func (s *AISystem) patrol(ai *component.EnemyAIComponent, pos core.Vec2, dist, height, baseSpeed float64) core.Vec2 {
	if dist <= height*parameter.EnemyFiringRangeRatio {
		ai.Engaging = true
		return core.Vec2{}
	}
	ai.Engaging = false

	w := s.world
	if !ai.HasPatrolTarget || vmath.Distance(pos, ai.PatrolTarget) < parameter.EnemyPatrolReach || ai.PatrolCooldown <= 0 {
		ai.PatrolTarget = vmath.RectRandomPoint(w.Resources.Arena.Playable, w.Resources.Rand)
		ai.HasPatrolTarget = true
		ai.PatrolCooldown = w.Resources.Rand.Duration(parameter.EnemyPatrolCooldownMin, parameter.EnemyPatrolCooldownMax)
	}
	ai.PatrolCooldown -= w.Resources.Time.DeltaTime
	return vmath.MoveTowards(pos, ai.PatrolTarget, parameter.StandardPatrolSpeed*baseSpeed)
}

// nextReload is U(3,5)s shortened per wave, floored at 2s
func (s *AISystem) nextReload() time.Duration {
	w := s.world
	base := w.Resources.Rand.Duration(parameter.EnemyReloadMin, parameter.EnemyReloadMax)
	reload := base - time.Duration(w.Resources.Game.Wave)*parameter.EnemyReloadWaveBonus
	return max(reload, parameter.EnemyReloadFloor)
}
