package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
)

func TestSelectRejectsNonEnemy(t *testing.T) {
	r := newRig(t, 1)
	player := r.arena(vec(200, 200))
	loot := SpawnLoot(r.world, component.LootGold, 50, vec(100, 100))

	assert.False(t, r.targeting.Select(player))
	assert.False(t, r.targeting.Select(loot))
	assert.False(t, r.targeting.Select(core.NoEntity))
	assert.Equal(t, core.NoEntity, r.world.Resources.Player.Target)
}

func TestSelectAtHitsHull(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	e := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 600), 1, "a")

	got, ok := r.targeting.SelectAt(vec(210, 605))
	require.True(t, ok)
	assert.Equal(t, e, got)

	_, ok = r.targeting.SelectAt(vec(50, 50))
	assert.False(t, ok)
	assert.Equal(t, e, r.world.Resources.Player.Target, "a miss keeps the selection")
}

func TestSelectCancelsAutoFire(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	a := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 600), 1, "a")
	b := spawnEnemy(r.world, component.ArchetypeStandard, vec(100, 500), 1, "b")

	require.True(t, r.targeting.Select(a))
	require.True(t, r.targeting.ToggleAutoFire())
	require.True(t, r.targeting.Select(b))
	assert.False(t, r.world.Resources.Player.AutoFire)
}

func TestToggleAutoFirePicksNearest(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 700), 1, "far")
	near := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 400), 1, "near")

	assert.True(t, r.targeting.ToggleAutoFire())
	assert.Equal(t, near, r.world.Resources.Player.Target)

	pc, _ := r.world.Components.Player.GetComponent(r.world.Resources.Player.Entity)
	assert.True(t, pc.HasFiringAngle)

	assert.False(t, r.targeting.ToggleAutoFire())
	assert.Equal(t, near, r.world.Resources.Player.Target, "toggling off keeps the target")
}

func TestToggleWithoutEnemiesFiresNothing(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))

	r.targeting.ToggleAutoFire()
	assert.Zero(t, r.world.Components.Projectile.CountEntities())
}

func TestStaleTargetClearsAutoFire(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	e := spawnEnemy(r.world, component.ArchetypeStandard, vec(200, 600), 1, "a")
	require.True(t, r.targeting.Select(e))
	require.True(t, r.targeting.ToggleAutoFire())

	r.world.DestroyEntity(e)
	r.targeting.Update()

	res := r.world.Resources.Player
	assert.Equal(t, core.NoEntity, res.Target)
	assert.False(t, res.AutoFire)
}
