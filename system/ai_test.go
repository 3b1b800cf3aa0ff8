package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

func velocityOf(r *rig, e core.Entity) core.Vec2 {
	b, _ := r.world.Components.Body.GetComponent(e)
	return b.Velocity
}

func TestChaserKeepsStandoff(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 100))
	h := parameter.ArenaHeight
	standoff := h * parameter.EnemyStandoffRatio
	speed := parameter.PlayerShipSpeed * parameter.SpeedUnitsPerStat

	far := spawnEnemy(r.world, component.ArchetypeChaser, vec(200, 100+standoff+100), 1, "a")
	near := spawnEnemy(r.world, component.ArchetypeChaser, vec(200, 100+standoff-60), 1, "b")
	hold := spawnEnemy(r.world, component.ArchetypeChaser, vec(200, 100+standoff), 1, "c")
	boss := spawnEnemy(r.world, component.ArchetypeBoss, vec(200, 100+standoff+100), 1, "d")

	r.ai.Update()

	assert.InDelta(t, -parameter.ChaserApproachSpeed*speed, velocityOf(r, far).Y, 1e-6)
	assert.InDelta(t, parameter.ChaserRetreatSpeed*speed, velocityOf(r, near).Y, 1e-6)
	assert.True(t, velocityOf(r, hold).IsZero())
	assert.InDelta(t, -parameter.BossApproachSpeed*speed, velocityOf(r, boss).Y, 1e-6)
}

func TestStandardHoldsInRangeAndPatrolsOutside(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 100))
	rangeH := parameter.ArenaHeight * parameter.EnemyFiringRangeRatio

	inRange := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 100+rangeH-10), 1, "a")
	outside := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 100+rangeH+50), 1, "b")

	r.world.Resources.Time.Update(frame)
	r.ai.Update()

	assert.True(t, velocityOf(r, inRange).IsZero())
	ai, _ := r.world.Components.EnemyAI.GetComponent(inRange)
	assert.True(t, ai.Engaging)

	ai, _ = r.world.Components.EnemyAI.GetComponent(outside)
	assert.True(t, ai.HasPatrolTarget)
	assert.False(t, ai.Engaging)
	assert.True(t, vmath.RectContains(r.world.Resources.Arena.Playable, ai.PatrolTarget))
	assert.InDelta(t, parameter.StandardPatrolSpeed*parameter.PlayerShipSpeed*parameter.SpeedUnitsPerStat,
		velocityOf(r, outside).Len(), 1e-6)
	assert.Greater(t, ai.PatrolCooldown, parameter.EnemyPatrolCooldownMin-frame-time.Millisecond)
}

func TestEnemyFireCooldown(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 100))
	r.world.Resources.Game.Wave = 30

	e := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 150), 30, "a")
	far := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 650), 30, "b")
	for _, id := range []core.Entity{e, far} {
		ai, _ := r.world.Components.EnemyAI.GetComponent(id)
		ai.FireCooldown = time.Millisecond
		r.world.Components.EnemyAI.SetComponent(id, ai)
	}

	r.world.Resources.Time.Update(frame)
	r.ai.Update()

	assert.Equal(t, 1, r.world.Components.Projectile.CountEntities(), "only the ship in range fires")
	for _, id := range []core.Entity{e, far} {
		ai, _ := r.world.Components.EnemyAI.GetComponent(id)
		assert.Equal(t, parameter.EnemyReloadFloor, ai.FireCooldown, "wave 30 reload hits the floor")
	}
}

func TestFacingFollowsVelocity(t *testing.T) {
	assert.Equal(t, component.FacingLeft, component.FacingFor(vec(-1, 0)))
	assert.Equal(t, component.FacingRight, component.FacingFor(vec(1, 5)))
	assert.Equal(t, component.FacingRight, component.FacingFor(vec(0, 5)), "stationary ships face right")
}
