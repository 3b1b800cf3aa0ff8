package parameter

import "time"

// Enemy hit points: base + per-wave growth
const (
	EnemyBaseHP        = 100
	EnemyHPPerWave     = 20
	BossBaseHP         = 300
	BossHPPerWave      = 25
	EnemyInitialFire   = 3 * time.Second
	EnemyInitialPatrol = 3 * time.Second
)

// Distances as fractions of the arena height
const (
	// EnemyStandoffRatio is the preferred chaser/boss distance from the player
	EnemyStandoffRatio = 0.15

	// EnemyStandoffTolerance is the dead band around the standoff distance
	EnemyStandoffTolerance = 20.0

	// EnemyFiringRangeRatio is the range inside which enemies hold and fire
	EnemyFiringRangeRatio = 0.32

	// EnemyPatrolReach is the radius at which a patrol target counts as reached
	EnemyPatrolReach = 50.0
)

// Speeds as multipliers of the player's base ship speed
const (
	StandardPatrolSpeed = 0.3
	ChaserApproachSpeed = 0.4
	ChaserRetreatSpeed  = 0.2
	BossApproachSpeed   = 0.5
	BossRetreatSpeed    = 0.3
)

// Timers
const (
	EnemyPatrolCooldownMin = 7 * time.Second
	EnemyPatrolCooldownMax = 10 * time.Second

	EnemyReloadMin = 3 * time.Second
	EnemyReloadMax = 5 * time.Second

	// EnemyReloadWaveBonus is subtracted from the reload per wave number
	EnemyReloadWaveBonus = 100 * time.Millisecond

	// EnemyReloadFloor is the minimum reload after the wave bonus
	EnemyReloadFloor = 2 * time.Second
)
