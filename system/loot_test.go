package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/event"
)

func TestGoldPickup(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	loot := SpawnLoot(r.world, component.LootGold, 50, vec(250, 300))

	r.loot.Collect(loot)

	assert.Equal(t, 50, r.world.Resources.Player.Stats.Gold)
	assert.False(t, r.world.Alive(loot))

	events := r.drain(event.EventLootCollected)
	require.Len(t, events, 1)
	p := events[0].Payload.(*event.LootCollectedPayload)
	assert.Equal(t, "gold", p.Kind)
	assert.Equal(t, 50, p.Value)
}

func TestCollectTwiceIsNoop(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	loot := SpawnLoot(r.world, component.LootGold, 50, vec(250, 300))

	r.loot.Collect(loot)
	r.loot.Collect(loot)
	assert.Equal(t, 50, r.world.Resources.Player.Stats.Gold)
}

func TestHealOverflowBecomesGold(t *testing.T) {
	tests := []struct {
		name             string
		hp, shield, heal int
		wantHP           int
		wantShield       int
		wantGold         int
	}{
		{"hull only", 200, 0, 50, 250, 0, 0},
		{"spills into shield", 280, 0, 50, 300, 30, 0},
		{"full overflow", 300, 300, 500, 300, 300, 25},
		{"partial shield", 300, 0, 520, 300, 300, 11},
		{"remainder under rate", 300, 300, 19, 300, 300, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRig(t, 1)
			r.arena(vec(200, 200))
			stats := &r.world.Resources.Player.Stats
			stats.HP, stats.Shield = tt.hp, tt.shield

			bonus := r.loot.Heal(tt.heal)

			assert.Equal(t, tt.wantHP, stats.HP)
			assert.Equal(t, tt.wantShield, stats.Shield)
			assert.Equal(t, tt.wantGold, bonus)
			assert.Equal(t, tt.wantGold, stats.Gold)
		})
	}
}

func TestHealEmitsText(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	r.loot.Heal(50)

	texts := r.drain(event.EventFloatingText)
	require.Len(t, texts, 1)
	p := texts[0].Payload.(*event.FloatingTextPayload)
	assert.Equal(t, "+50HP", p.Text)
	assert.Equal(t, event.ColorGreen, p.Color)
}

func TestFullRepairKit(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	stats := &r.world.Resources.Player.Stats
	stats.HP = 10

	r.loot.Collect(SpawnLoot(r.world, component.LootFullRepair, 0, vec(250, 300)))

	assert.Equal(t, stats.MaxHP, stats.HP)
	assert.Equal(t, stats.MaxShield, stats.Shield)
	// 600 healed into 290 hull and 300 shield, 10 left over
	assert.Equal(t, 0, stats.Gold)
}

func TestPlayerCollectsLootOnContact(t *testing.T) {
	r := newRig(t, 1)
	r.arena(vec(200, 200))
	SpawnLoot(r.world, component.LootGold, 50, vec(205, 205))

	r.step(frame)

	assert.Equal(t, 50, r.world.Resources.Player.Stats.Gold)
	assert.Zero(t, r.world.Components.Loot.CountEntities())
}
