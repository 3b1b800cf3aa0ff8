package sim

import (
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
)

// ShipView is an enemy ship as the renderer sees it
type ShipView struct {
	Entity    core.Entity
	Archetype component.Archetype
	Name      string
	Bounds    core.Rect
	Position  core.Vec2
	HP, MaxHP int
	Facing    component.Facing
	Smoke     bool
	Fire      bool
	Targeted  bool
}

// PlayerView is the player's ship
type PlayerView struct {
	Entity      core.Entity
	Bounds      core.Rect
	Position    core.Vec2
	Facing      component.Facing
	FiringAngle float64
}

// ProjectileView is one shot in flight or lingering
type ProjectileView struct {
	Entity     core.Entity
	Bounds     core.Rect
	Side       component.Side
	Functional bool
	Boss       bool
}

// LootView is a pickup on the water
type LootView struct {
	Entity core.Entity
	Bounds core.Rect
	Kind   component.LootKind
	Value  int
}

// ObstacleView is an island
type ObstacleView struct {
	Entity  core.Entity
	Bounds  core.Rect
	Variant int
}

// SkillView is the HUD state of one skill
type SkillView struct {
	Skill    component.Skill
	Ready    bool
	Active   bool
	Cooldown time.Duration
}

// Frame is a read-only snapshot for one render pass
type Frame struct {
	Arena    core.Size
	Playable core.Rect

	Wave     int
	Label    string
	Phase    engine.WavePhase
	GameOver bool
	Elapsed  time.Duration

	Stats    component.PlayerStats
	Skills   []SkillView
	AutoFire bool

	Player      *PlayerView
	Ships       []ShipView
	Projectiles []ProjectileView
	Loot        []LootView
	Obstacles   []ObstacleView

	// Target is the selected enemy, NoEntity when none
	Target         core.Entity
	TargetPosition core.Vec2

	// Events are the presentation events emitted since the previous Frame call
	Events []event.GameEvent
}

// Frame snapshots the world and drains pending presentation events through the registered handlers
func (s *Session) Frame() Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := s.world
	res := w.Resources
	f := Frame{
		Arena:    res.Arena.Size,
		Playable: res.Arena.Playable,
		Wave:     res.Game.Wave,
		Label:    res.Game.Label,
		Phase:    res.Game.Phase,
		GameOver: res.Game.GameOver,
		Elapsed:  res.Time.Elapsed,
		Stats:    res.Player.Stats,
		AutoFire: res.Player.AutoFire,
		Target:   core.NoEntity,
	}

	for i := component.Skill(0); i < component.SkillCount; i++ {
		st := res.Player.Skills[i]
		f.Skills = append(f.Skills, SkillView{Skill: i, Ready: st.Ready(), Active: st.IsActive(), Cooldown: st.Cooldown})
	}

	if body, ok := w.Components.Body.GetComponent(res.Player.Entity); ok {
		pc, _ := w.Components.Player.GetComponent(res.Player.Entity)
		f.Player = &PlayerView{
			Entity:      res.Player.Entity,
			Bounds:      body.Bounds(),
			Position:    body.Position,
			Facing:      pc.Facing,
			FiringAngle: s.weapons.FiringAngle(),
		}
	}

	for _, e := range w.Components.Ship.GetAllEntities() {
		ship, _ := w.Components.Ship.GetComponent(e)
		body, ok := w.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		deco, _ := w.Components.Decoration.GetComponent(e)
		f.Ships = append(f.Ships, ShipView{
			Entity:    e,
			Archetype: ship.Archetype,
			Name:      ship.Name,
			Bounds:    body.Bounds(),
			Position:  body.Position,
			HP:        ship.HP,
			MaxHP:     ship.MaxHP,
			Facing:    ship.Facing,
			Smoke:     deco.Smoke,
			Fire:      deco.Fire,
			Targeted:  e == res.Player.Target,
		})
		if e == res.Player.Target {
			f.Target = e
			f.TargetPosition = body.Position
		}
	}

	for _, e := range w.Components.Projectile.GetAllEntities() {
		p, _ := w.Components.Projectile.GetComponent(e)
		body, ok := w.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		f.Projectiles = append(f.Projectiles, ProjectileView{
			Entity:     e,
			Bounds:     body.Bounds(),
			Side:       p.Side,
			Functional: p.Functional,
			Boss:       p.Boss,
		})
	}

	for _, e := range w.Components.Loot.GetAllEntities() {
		l, _ := w.Components.Loot.GetComponent(e)
		body, ok := w.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		f.Loot = append(f.Loot, LootView{Entity: e, Bounds: body.Bounds(), Kind: l.Kind, Value: l.Value})
	}

	for _, e := range w.Components.Obstacle.GetAllEntities() {
		o, _ := w.Components.Obstacle.GetComponent(e)
		body, ok := w.Components.Body.GetComponent(e)
		if !ok {
			continue
		}
		f.Obstacles = append(f.Obstacles, ObstacleView{Entity: e, Bounds: body.Bounds(), Variant: o.Variant})
	}

	f.Events = s.output.DispatchAll()
	return f
}
