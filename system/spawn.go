package system

import (
	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
)

// spawnPlayer creates the player ship and records it in the player resource
func spawnPlayer(w *engine.World, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Position: pos,
		Size:     core.Size{W: parameter.PlayerShipWidth, H: parameter.PlayerShipHeight},
		Category: core.CategoryPlayer,
	})
	w.Components.Player.SetComponent(e, component.PlayerComponent{})
	w.Resources.Player.Entity = e
	return e
}

// spawnEnemy creates an enemy ship with archetype-scaled hull and fresh AI state
func spawnEnemy(w *engine.World, arch component.Archetype, pos core.Vec2, wave int, name string) core.Entity {
	e := w.CreateEntity()
	hp := arch.MaxHP(wave)
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Position: pos,
		Size:     arch.Size(),
		Category: core.CategoryEnemy,
	})
	w.Components.Ship.SetComponent(e, component.ShipComponent{
		Archetype: arch,
		HP:        hp,
		MaxHP:     hp,
		Name:      name,
	})
	w.Components.EnemyAI.SetComponent(e, component.EnemyAIComponent{
		FireCooldown:   parameter.EnemyInitialFire,
		PatrolCooldown: parameter.EnemyInitialPatrol,
	})
	w.Components.Decoration.SetComponent(e, component.DecorationComponent{
		HealthRatio: 1,
		Label:       name,
	})
	return e
}

func spawnObstacle(w *engine.World, pos core.Vec2, size core.Size, variant int) core.Entity {
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Position: pos,
		Size:     size,
		Category: core.CategoryObstacle,
	})
	w.Components.Obstacle.SetComponent(e, component.ObstacleComponent{Variant: variant})
	return e
}

// SpawnLoot places a pickup at a position
func SpawnLoot(w *engine.World, kind component.LootKind, value int, pos core.Vec2) core.Entity {
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Position: pos,
		Size:     core.Size{W: parameter.LootSize, H: parameter.LootSize},
		Category: core.CategoryLoot,
	})
	w.Components.Loot.SetComponent(e, component.LootComponent{Kind: kind, Value: value})
	return e
}

func spawnProjectile(w *engine.World, p component.ProjectileComponent, size core.Size) core.Entity {
	cat := core.CategoryPlayerProjectile
	if p.Side == component.SideEnemy {
		cat = core.CategoryEnemyProjectile
	}
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Position: p.Start,
		Size:     size,
		Category: cat,
	})
	w.Components.Projectile.SetComponent(e, p)
	return e
}

// playerPosition returns the live player's position
func playerPosition(w *engine.World) (core.Vec2, bool) {
	b, ok := w.Components.Body.GetComponent(w.Resources.Player.Entity)
	if !ok {
		return core.Vec2{}, false
	}
	return b.Position, true
}
