package parameter

import "time"

// Player stat defaults
const (
	PlayerMaxHP               = 300
	PlayerMaxShield           = 300
	PlayerStartShield         = 0
	PlayerShipSpeed           = 1.5
	PlayerReloadSpeed         = 3 * time.Second
	PlayerCannonCount         = 1
	PlayerMinDamageMultiplier = 0.20
	PlayerCritChance          = 0.10
	PlayerCritDamage          = 1.25

	// Base damage per ammunition
	AmmoStandardDamage = 50
	AmmoHollowDamage   = 85
)

// Skills
const (
	SpeedBoostMultiplier = 1.1
	SpeedBoostDuration   = 5 * time.Second
	SpeedBoostCooldown   = 20 * time.Second

	RapidFireDivisor  = 2
	RapidFireDuration = 5 * time.Second
	RapidFireCooldown = 25 * time.Second

	RepairDronesHeal     = 100
	RepairDronesCooldown = 30 * time.Second
)

// Shipyard
const (
	ShipyardRepairCost = 350
)
