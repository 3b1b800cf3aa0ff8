package system

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/names"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

const frame = 16 * time.Millisecond

func vec(x, y float64) core.Vec2 { return core.Vec2{X: x, Y: y} }

type rig struct {
	world     *engine.World
	wave      *WaveDirector
	weapons   *WeaponSystem
	ai        *AISystem
	combat    *CombatSystem
	loot      *LootSystem
	targeting *TargetingSystem
	cooldown  *CooldownSystem
	player    *PlayerSystem
}

func newRig(t *testing.T, seed uint64) *rig {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	res := engine.NewResource(core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight},
		component.DefaultPlayerStats(), vmath.NewFastRand(seed))
	w := engine.NewWorld(res)

	r := &rig{world: w}
	r.weapons = NewWeaponSystem(w)
	r.player = NewPlayerSystem(w)
	r.ai = NewAISystem(w, r.weapons)
	r.loot = NewLootSystem(w)
	r.combat = NewCombatSystem(w, engine.NewEventRouter(res.Contacts), r.loot, logger)
	r.targeting = NewTargetingSystem(w, r.player, r.weapons)
	r.cooldown = NewCooldownSystem(w, r.loot)
	r.wave = NewWaveDirector(w, names.Default(), logger)

	w.AddSystem(r.player)
	w.AddSystem(r.ai)
	w.AddSystem(NewMotionSystem(w))
	w.AddSystem(NewContactSystem(w))
	w.AddSystem(r.combat)
	w.AddSystem(r.targeting)
	w.AddSystem(r.weapons)
	w.AddSystem(r.cooldown)
	w.AddSystem(NewBoundsSystem(w))
	w.AddSystem(r.wave)
	return r
}

// arena places a player at pos with an empty wave in progress
func (r *rig) arena(pos core.Vec2) core.Entity {
	r.world.Resources.Game.Wave = 1
	r.world.Resources.Game.Phase = engine.PhaseInProgress
	return spawnPlayer(r.world, pos)
}

func (r *rig) step(dt time.Duration) {
	r.world.Resources.Time.Update(dt)
	r.world.Update()
}

func (r *rig) drain(t event.EventType) []event.GameEvent {
	var out []event.GameEvent
	for _, ev := range r.world.Resources.Output.Consume() {
		if ev.Type == t {
			out = append(out, ev)
		}
	}
	return out
}

func (r *rig) shot(side component.Side, functional bool, damage int, at core.Vec2) core.Entity {
	return spawnProjectile(r.world, component.ProjectileComponent{
		Side:       side,
		Functional: functional,
		Damage:     damage,
		Start:      at,
		End:        at,
		Travel:     time.Second,
	}, core.Size{W: 8, H: 8})
}
