package parameter

import "time"

// Player volley
const (
	// VolleySubShots is the visual sub-projectile count per logical shot; only the first carries damage
	VolleySubShots = 3

	VolleyBaseSpeed      = 1500.0
	VolleySpeedMultMin   = 0.4
	VolleySpeedMultMax   = 0.6
	VolleyAngleSpread    = 0.05
	VolleyCurveOffset    = 50.0
	VolleyTravelDuration = 2 * time.Second
	VolleyLingerDuration = 3 * time.Second
)

// Enemy shots
const (
	EnemyShotBaseDamage    = 20
	EnemyShotDamagePerWave = 2.0
	EnemyShotDistance      = 1000.0
	EnemyShotBaseDuration  = 3.2

	// Non-boss shots slow down per wave, capped at half speed
	EnemyShotSlowPerWave = 0.05
	EnemyShotSlowCap     = 0.5
	BossShotSpeedMult    = 1.1

	BossDamageMultMin  = 1.2
	BossDamageMultMax  = 1.5
	BossHeavyShotMult  = 1.5
	BossHeavyShotProb  = 0.25
)

// Accuracy falloff and criticals, as fractions of the arena height
const (
	AccuracyNearRatio = 0.20
	AccuracyFarRatio  = 0.45

	ProximityCritRatio  = 0.10
	ProximityCritChance = 0.85
)

// Damage-state visuals by remaining hull fraction
const (
	SmokeThreshold = 0.50
	FireThreshold  = 0.25
)

// Rewards
const (
	BossReward  = 500
	EnemyReward = 100
)

// Floating text durations
const (
	FloatingTextDuration         = 2 * time.Second
	FloatingTextCriticalDuration = 4 * time.Second
	ExplosionEffectDuration      = 500 * time.Millisecond
)
