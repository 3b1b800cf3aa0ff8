package system

import (
	"math"
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// WeaponSystem spawns player volleys and enemy shots, and drives auto-fire
type WeaponSystem struct {
	world *engine.World
}

func NewWeaponSystem(world *engine.World) *WeaponSystem {
	return &WeaponSystem{world: world}
}

func (s *WeaponSystem) Name() string {
	return "weapon"
}

func (s *WeaponSystem) Priority() int {
	return parameter.PriorityWeapon
}

// Update counts down the auto-fire timer and fires a volley on expiry
func (s *WeaponSystem) Update() {
	player := s.world.Resources.Player
	if !player.AutoFire {
		return
	}
	if !s.world.Alive(player.Target) {
		return
	}
	player.FireTimer -= s.world.Resources.Time.DeltaTime
	if player.FireTimer > 0 {
		return
	}
	s.FireVolley()
	player.FireTimer += player.ReloadInterval()
	if player.FireTimer <= 0 {
		player.FireTimer = player.ReloadInterval()
	}
}

// FiringAngle returns the angle the player's cannons point at
func (s *WeaponSystem) FiringAngle() float64 {
	pc, ok := s.world.Components.Player.GetComponent(s.world.Resources.Player.Entity)
	if !ok {
		return math.Pi / 2
	}
	if pc.HasFiringAngle {
		return pc.FiringAngle
	}
	if !pc.Heading.IsZero() && !s.world.Resources.Player.Movement.IsZero() {
		return math.Atan2(pc.Heading.Y, pc.Heading.X)
	}
	return math.Pi / 2
}

// FireVolley fires CannonCount logical shots, each as VolleySubShots sub-projectiles
// Only the first sub-projectile of a shot carries damage
// Returns the number of projectiles spawned
func (s *WeaponSystem) FireVolley() int {
	w := s.world
	origin, ok := playerPosition(w)
	if !ok {
		return 0
	}
	stats := &w.Resources.Player.Stats
	rng := w.Resources.Rand
	base := s.FiringAngle()
	size := core.Size{W: parameter.PlayerShotSize, H: parameter.PlayerShotSize}

	spawned := 0
	for shot := 0; shot < stats.CannonCount; shot++ {
		for sub := 0; sub < parameter.VolleySubShots; sub++ {
			angle := base + rng.Range(-parameter.VolleyAngleSpread, parameter.VolleyAngleSpread)
			speed := parameter.VolleyBaseSpeed * rng.Range(parameter.VolleySpeedMultMin, parameter.VolleySpeedMultMax)
			curve := rng.Range(-parameter.VolleyCurveOffset, parameter.VolleyCurveOffset)

			displacement := vmath.Polar(angle, speed).Add(vmath.Polar(angle, curve).Perp())

			p := component.ProjectileComponent{
				Side:       component.SidePlayer,
				Functional: sub == 0,
				Mask:       core.CategoryEnemy | core.CategoryObstacle,
				Start:      origin,
				End:        origin.Add(displacement),
				Travel:     parameter.VolleyTravelDuration,
				Linger:     parameter.VolleyLingerDuration,
			}
			if p.Functional {
				p.Damage = stats.CannonballDamage()
			}
			spawnProjectile(w, p, size)
			spawned++
		}
	}

	w.PushEvent(event.EventShotFired, &event.ShotFiredPayload{
		Shooter: w.Resources.Player.Entity,
		Player:  true,
		Count:   stats.CannonCount,
	})
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundCannon})
	return spawned
}

// EnemyShotDamage rolls the damage of one enemy shot at a wave
func EnemyShotDamage(rng *vmath.FastRand, wave int, boss bool) int {
	damage := parameter.EnemyShotBaseDamage + int(float64(wave)*parameter.EnemyShotDamagePerWave)
	if boss {
		damage = int(float64(damage) * rng.Range(parameter.BossDamageMultMin, parameter.BossDamageMultMax))
		if rng.Chance(parameter.BossHeavyShotProb) {
			damage = int(float64(damage) * parameter.BossHeavyShotMult)
		}
	}
	return damage
}

// EnemyShotTravel is the flight time of an enemy shot; bosses shoot faster,
// others slow down with each wave down to half speed
func EnemyShotTravel(wave int, boss bool) time.Duration {
	mult := parameter.BossShotSpeedMult
	if !boss {
		mult = 1 - math.Min(parameter.EnemyShotSlowCap, float64(wave)*parameter.EnemyShotSlowPerWave)
	}
	return time.Duration(parameter.EnemyShotBaseDuration / mult * float64(time.Second))
}

// FireEnemyShot fires one shot from an enemy straight at a target point
func (s *WeaponSystem) FireEnemyShot(shooter core.Entity, arch component.Archetype, from, at core.Vec2) {
	w := s.world
	wave := w.Resources.Game.Wave
	boss := arch == component.ArchetypeBoss

	size := core.Size{W: parameter.EnemyShotSize, H: parameter.EnemyShotSize}
	if boss {
		size = core.Size{W: parameter.BossShotSize, H: parameter.BossShotSize}
	}

	angle := vmath.Angle(from, at)
	p := component.ProjectileComponent{
		Side:       component.SideEnemy,
		Functional: true,
		Damage:     EnemyShotDamage(w.Resources.Rand, wave, boss),
		Mask:       core.CategoryPlayer | core.CategoryObstacle,
		Boss:       boss,
		Start:      from,
		End:        from.Add(vmath.Polar(angle, parameter.EnemyShotDistance)),
		Travel:     EnemyShotTravel(wave, boss),
	}
	spawnProjectile(w, p, size)

	w.PushEvent(event.EventShotFired, &event.ShotFiredPayload{Shooter: shooter, Count: 1})
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundEnemyCannon})
}
