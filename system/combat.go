package system

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// AccuracyMultiplier is the damage floor for a shot fired from dist
// It is 1 inside near, falls linearly to minMult at far, and stays at minMult beyond
func AccuracyMultiplier(dist, near, far, minMult float64) float64 {
	if dist <= near {
		return 1
	}
	if dist >= far {
		return minMult
	}
	progress := vmath.Clamp01(vmath.SafeRatio(dist-near, far-near))
	return 1 - (1-minMult)*progress
}

// HealthColor maps a hull fraction to the health-bar color, green to red
func HealthColor(ratio float64) event.Color {
	r := vmath.Clamp01(ratio)
	return event.Color{R: min(1, (1-r)*1.5), G: r}
}

// CombatSystem drains the contact queue once per tick and resolves each pair
// Player pickups are routed to LootSystem through the same router
type CombatSystem struct {
	world  *engine.World
	router *engine.EventRouter
	loot   *LootSystem
	logger *slog.Logger

	// resolved holds pair keys already handled in the current drain
	resolved map[[2]core.Entity]struct{}
}

func NewCombatSystem(world *engine.World, router *engine.EventRouter, loot *LootSystem, logger *slog.Logger) *CombatSystem {
	s := &CombatSystem{
		world:    world,
		router:   router,
		loot:     loot,
		logger:   logger,
		resolved: make(map[[2]core.Entity]struct{}),
	}
	router.Register(s)
	return s
}

func (s *CombatSystem) Name() string {
	return "combat"
}

func (s *CombatSystem) Priority() int {
	return parameter.PriorityCombat
}

func (s *CombatSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventContact}
}

func (s *CombatSystem) Update() {
	clear(s.resolved)
	s.router.DispatchAll()
}

func (s *CombatSystem) HandleEvent(ev event.GameEvent) {
	pair, ok := ev.Payload.(*event.ContactPayload)
	if !ok || pair == nil {
		return
	}
	key := pair.Key()
	if _, done := s.resolved[key]; done {
		return
	}
	s.resolved[key] = struct{}{}
	s.Resolve(pair.A, pair.B)
}

// Resolve classifies a contact pair independent of order and applies its outcome
// Pairs referencing removed entities are dropped
func (s *CombatSystem) Resolve(a, b core.Entity) {
	w := s.world
	ba, okA := w.Components.Body.GetComponent(a)
	bb, okB := w.Components.Body.GetComponent(b)
	if !okA || !okB {
		s.logger.Debug("stale contact dropped", "a", a, "b", b)
		return
	}
	ca, cb := ba.Category, bb.Category

	switch {
	case ca == core.CategoryEnemy && cb == core.CategoryPlayerProjectile:
		s.playerShotHit(a, b)
	case cb == core.CategoryEnemy && ca == core.CategoryPlayerProjectile:
		s.playerShotHit(b, a)

	case ca == core.CategoryPlayer && cb == core.CategoryEnemyProjectile:
		s.enemyShotHit(b)
	case cb == core.CategoryPlayer && ca == core.CategoryEnemyProjectile:
		s.enemyShotHit(a)

	case ca == core.CategoryObstacle && cb.Has(core.CategoryProjectile):
		s.shotBlocked(b, bb.Position)
	case cb == core.CategoryObstacle && ca.Has(core.CategoryProjectile):
		s.shotBlocked(a, ba.Position)

	case ca == core.CategoryPlayer && cb == core.CategoryLoot:
		s.loot.Collect(b)
	case cb == core.CategoryPlayer && ca == core.CategoryLoot:
		s.loot.Collect(a)
	}
}

func (s *CombatSystem) shotBlocked(shot core.Entity, pos core.Vec2) {
	s.world.DestroyEntity(shot)
	s.world.PushEvent(event.EventEffect, &event.EffectPayload{Kind: event.EffectSplash, Position: pos})
}

// playerShotHit consumes the shot; only a functional shot damages the enemy
func (s *CombatSystem) playerShotHit(enemy, shot core.Entity) {
	w := s.world
	ship, ok := w.Components.Ship.GetComponent(enemy)
	if !ok || ship.HP <= 0 {
		return
	}
	proj, ok := w.Components.Projectile.GetComponent(shot)
	if !ok {
		return
	}
	w.DestroyEntity(shot)

	if !proj.Functional || proj.Damage <= 0 {
		return
	}

	enemyBody, _ := w.Components.Body.GetComponent(enemy)
	playerPos, ok := playerPosition(w)
	if !ok {
		playerPos = proj.Start
	}
	damage, crit := s.rollDamage(proj.Damage, vmath.Distance(playerPos, enemyBody.Position))

	ship.HP -= damage
	ratio := float64(ship.HP) / float64(max(ship.MaxHP, 1))

	deco, _ := w.Components.Decoration.GetComponent(enemy)
	deco.HealthRatio = vmath.Clamp01(ratio)
	if ratio < parameter.FireThreshold {
		deco.Fire = true
	}
	if ratio < parameter.SmokeThreshold {
		deco.Smoke = true
	} else {
		deco.Smoke, deco.Fire = false, false
	}
	w.Components.Decoration.SetComponent(enemy, deco)

	color := event.ColorRed
	if crit {
		color = event.ColorOrange
	}
	w.PushEvent(event.EventFloatingText, &event.FloatingTextPayload{
		Text:     fmt.Sprintf("-%dHP", damage),
		Position: enemyBody.Position,
		Color:    color,
		Duration: floatingDuration(crit),
		Critical: crit,
	})
	w.PushEvent(event.EventEnemyHit, &event.EnemyHitPayload{
		Enemy:    enemy,
		Damage:   damage,
		Critical: crit,
		HP:       max(ship.HP, 0),
	})
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundHit})

	if ship.HP <= 0 {
		ship.HP = 0
		s.sink(enemy, ship, enemyBody)
		return
	}
	w.Components.Ship.SetComponent(enemy, ship)
}

// rollDamage applies accuracy falloff, a uniform roll above the floor, and criticals
func (s *CombatSystem) rollDamage(base int, dist float64) (int, bool) {
	w := s.world
	stats := &w.Resources.Player.Stats
	rng := w.Resources.Rand
	height := w.Resources.Arena.Height()

	critChance := stats.CritChance
	if dist < height*parameter.ProximityCritRatio {
		critChance = parameter.ProximityCritChance
	}
	crit := rng.Float64() <= critChance

	floor := AccuracyMultiplier(dist,
		height*parameter.AccuracyNearRatio,
		height*parameter.AccuracyFarRatio,
		stats.MinDamageMultiplier)
	damage := int(float64(base) * rng.Range(floor, 1))
	if crit {
		damage = int(float64(damage) * stats.CritDamageMultiplier)
	}
	return damage, crit
}

// sink removes a destroyed enemy and pays its reward at the player
func (s *CombatSystem) sink(enemy core.Entity, ship component.ShipComponent, body component.BodyComponent) {
	w := s.world
	w.DestroyEntity(enemy)

	reward := ship.Archetype.Reward()
	w.Resources.Player.Stats.Gold += reward

	anchor, ok := playerPosition(w)
	if !ok {
		anchor = body.Position
	}
	w.PushEvent(event.EventEffect, &event.EffectPayload{
		Kind:     event.EffectExplosion,
		Position: body.Position,
		Duration: parameter.ExplosionEffectDuration,
	})
	w.PushEvent(event.EventFloatingText, &event.FloatingTextPayload{
		Text:     fmt.Sprintf("$%d", reward),
		Position: anchor,
		Color:    event.ColorYellow,
		Duration: parameter.FloatingTextDuration,
	})
	w.PushEvent(event.EventEnemySunk, &event.EnemySunkPayload{
		Enemy:     enemy,
		Archetype: ship.Archetype.String(),
		Name:      ship.Name,
		Reward:    reward,
		Position:  body.Position,
	})
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundExplosion})
	s.logger.Debug("enemy sunk", "name", ship.Name, "archetype", ship.Archetype.String(), "reward", reward)
}

// enemyShotHit applies a shot to the shield then hull; the first drop to zero ends the run
func (s *CombatSystem) enemyShotHit(shot core.Entity) {
	w := s.world
	proj, ok := w.Components.Projectile.GetComponent(shot)
	if !ok {
		return
	}
	w.DestroyEntity(shot)

	game := w.Resources.Game
	if game.GameOver {
		return
	}
	stats := &w.Resources.Player.Stats
	lost := stats.AbsorbDamage(proj.Damage)

	pos, _ := playerPosition(w)
	w.PushEvent(event.EventFloatingText, &event.FloatingTextPayload{
		Text:     fmt.Sprintf("-%dHP", proj.Damage),
		Position: pos,
		Color:    event.ColorRed,
		Duration: parameter.FloatingTextDuration,
	})
	w.PushEvent(event.EventPlayerHit, &event.PlayerHitPayload{
		Damage: proj.Damage,
		HPLost: lost,
		HP:     stats.HP,
		Shield: stats.Shield,
	})
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundHit})

	if !stats.Alive() {
		game.GameOver = true
		game.GameOverPending = true
		w.PushEvent(event.EventGameOver, nil)
		w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundGameOver})
	}
}

func floatingDuration(critical bool) time.Duration {
	if critical {
		return parameter.FloatingTextCriticalDuration
	}
	return parameter.FloatingTextDuration
}
