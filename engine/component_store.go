package engine

import "github.com/lixenwraith/shiptapper/component"

// ComponentStore holds one typed store per component
type ComponentStore struct {
	Body       *Store[component.BodyComponent]
	Ship       *Store[component.ShipComponent]
	EnemyAI    *Store[component.EnemyAIComponent]
	Decoration *Store[component.DecorationComponent]
	Player     *Store[component.PlayerComponent]
	Projectile *Store[component.ProjectileComponent]
	Loot       *Store[component.LootComponent]
	Obstacle   *Store[component.ObstacleComponent]

	all []AnyStore
}

func newComponentStore() ComponentStore {
	cs := ComponentStore{
		Body:       NewStore[component.BodyComponent](),
		Ship:       NewStore[component.ShipComponent](),
		EnemyAI:    NewStore[component.EnemyAIComponent](),
		Decoration: NewStore[component.DecorationComponent](),
		Player:     NewStore[component.PlayerComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Loot:       NewStore[component.LootComponent](),
		Obstacle:   NewStore[component.ObstacleComponent](),
	}
	cs.all = []AnyStore{
		cs.Body, cs.Ship, cs.EnemyAI, cs.Decoration,
		cs.Player, cs.Projectile, cs.Loot, cs.Obstacle,
	}
	return cs
}
