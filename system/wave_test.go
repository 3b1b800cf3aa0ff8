package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
)

func TestComposeWave(t *testing.T) {
	tests := []struct {
		wave int
		want WaveComposition
	}{
		{1, WaveComposition{Enemies: 2, Obstacles: 1, Loot: 0}},
		{3, WaveComposition{Enemies: 4, Obstacles: 1, Loot: 1}},
		{5, WaveComposition{Enemies: 6, Obstacles: 2, Loot: 1}},
		{9, WaveComposition{Enemies: 10, Obstacles: 2, Loot: 2}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ComposeWave(tt.wave), "wave %d", tt.wave)
	}
}

func TestEveryThirdWaveHasBoss(t *testing.T) {
	for seed := uint64(1); seed <= 30; seed++ {
		r := newRig(t, seed)
		for _, wave := range []int{3, 6, 9, 12} {
			roster := r.wave.rollArchetypes(wave, 1+wave)
			assert.Contains(t, roster, component.ArchetypeBoss, "seed %d wave %d", seed, wave)
		}
	}
}

func TestStartNextWaveSpawnsComposition(t *testing.T) {
	r := newRig(t, 7)
	payload := r.wave.StartNextWave()

	game := r.world.Resources.Game
	assert.Equal(t, 1, game.Wave)
	assert.Equal(t, engine.PhaseInProgress, game.Phase)
	assert.Contains(t, game.Label, "Wave 1: ")
	assert.Equal(t, payload.Enemies, r.world.Components.Ship.CountEntities())
	assert.Equal(t, 1, r.world.Components.Obstacle.CountEntities())
	assert.True(t, r.world.Alive(r.world.Resources.Player.Entity))

	for _, e := range r.world.Components.Ship.GetAllEntities() {
		ship, _ := r.world.Components.Ship.GetComponent(e)
		assert.Equal(t, ship.Archetype.MaxHP(1), ship.HP)
		assert.NotEmpty(t, ship.Name)
	}
}

func TestStartNextWaveClearsPreviousEntities(t *testing.T) {
	r := newRig(t, 7)
	r.wave.StartNextWave()
	first := r.world.Resources.Player.Entity
	r.world.Resources.Player.AutoFire = true

	r.wave.StartNextWave()
	assert.False(t, r.world.Alive(first))
	assert.False(t, r.world.Resources.Player.AutoFire)
	assert.Equal(t, 2, r.world.Resources.Game.Wave)
}

func TestWaveClearedFiresOnce(t *testing.T) {
	r := newRig(t, 1)
	r.arena(r.world.Resources.Arena.Playable.Center())
	SpawnLoot(r.world, component.LootGold, 50, r.world.Resources.Arena.Playable.Center().Add(vec(100, 100)))

	r.step(frame)
	assert.False(t, r.world.Resources.Game.ClearedPending, "loot remains")

	for _, e := range r.world.Components.Loot.GetAllEntities() {
		r.world.DestroyEntity(e)
	}
	r.step(frame)
	require.True(t, r.world.Resources.Game.ClearedPending)
	assert.Equal(t, engine.PhaseCleared, r.world.Resources.Game.Phase)
	assert.Len(t, r.drain(event.EventWaveCleared), 1)

	r.world.Resources.Game.ClearedPending = false
	r.step(frame)
	assert.False(t, r.world.Resources.Game.ClearedPending)
	assert.Empty(t, r.drain(event.EventWaveCleared))
}

func TestWaveNotClearedWhenPlayerDead(t *testing.T) {
	r := newRig(t, 1)
	r.arena(r.world.Resources.Arena.Playable.Center())
	r.world.Resources.Player.Stats.HP = 0

	r.step(frame)
	assert.False(t, r.world.Resources.Game.ClearedPending)
	assert.Equal(t, engine.PhaseInProgress, r.world.Resources.Game.Phase)
}
