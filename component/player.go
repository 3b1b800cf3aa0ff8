package component

import (
	"time"

	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/parameter"
)

// PlayerComponent is the player ship's steering and aiming state
type PlayerComponent struct {
	// Heading is the last non-zero movement direction
	Heading core.Vec2
	Facing  Facing

	// FiringAngle tracks the selected target; HasFiringAngle is false until first aim
	FiringAngle    float64
	HasFiringAngle bool
}

// Ammunition selects the base damage of player shots
type Ammunition uint8

const (
	AmmoStandard Ammunition = iota
	AmmoHollow
)

func (a Ammunition) String() string {
	if a == AmmoHollow {
		return "hollow"
	}
	return "standard"
}

// Damage returns the base damage per functional shot
func (a Ammunition) Damage() int {
	if a == AmmoHollow {
		return parameter.AmmoHollowDamage
	}
	return parameter.AmmoStandardDamage
}

// PlayerStats is the authoritative player progression record
type PlayerStats struct {
	Gold int

	HP        int
	MaxHP     int
	Shield    int
	MaxShield int

	ShipSpeed   float64
	ReloadSpeed time.Duration
	CannonCount int

	MinDamageMultiplier  float64
	CritChance           float64
	CritDamageMultiplier float64

	Ammunition Ammunition
}

// DefaultPlayerStats returns the stats of a fresh run
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		HP:                   parameter.PlayerMaxHP,
		MaxHP:                parameter.PlayerMaxHP,
		Shield:               parameter.PlayerStartShield,
		MaxShield:            parameter.PlayerMaxShield,
		ShipSpeed:            parameter.PlayerShipSpeed,
		ReloadSpeed:          parameter.PlayerReloadSpeed,
		CannonCount:          parameter.PlayerCannonCount,
		MinDamageMultiplier:  parameter.PlayerMinDamageMultiplier,
		CritChance:           parameter.PlayerCritChance,
		CritDamageMultiplier: parameter.PlayerCritDamage,
		Ammunition:           AmmoStandard,
	}
}

// Alive reports whether the run continues
func (s *PlayerStats) Alive() bool {
	return s.HP > 0
}

// Clamp restores the stat invariants after external mutation
func (s *PlayerStats) Clamp() {
	if s.MaxHP < 1 {
		s.MaxHP = 1
	}
	if s.MaxShield < 0 {
		s.MaxShield = 0
	}
	s.HP = min(max(s.HP, 0), s.MaxHP)
	s.Shield = min(max(s.Shield, 0), s.MaxShield)
	if s.CannonCount < 1 {
		s.CannonCount = 1
	}
	s.MinDamageMultiplier = min(max(s.MinDamageMultiplier, 0), 1)
	s.CritChance = min(max(s.CritChance, 0), 1)
	if s.CritDamageMultiplier < 1 {
		s.CritDamageMultiplier = 1
	}
	if s.Gold < 0 {
		s.Gold = 0
	}
}

// AbsorbDamage depletes shield first and the remainder from HP, floored at zero
// Returns the HP actually lost
func (s *PlayerStats) AbsorbDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	absorbed := min(s.Shield, amount)
	s.Shield -= absorbed
	remaining := amount - absorbed

	lost := min(s.HP, remaining)
	s.HP -= lost
	return lost
}

// Heal fills HP, then shield, and converts the surplus into gold
// Returns the gold credited from the surplus
func (s *PlayerStats) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	toHP := min(s.MaxHP-s.HP, amount)
	s.HP += toHP
	amount -= toHP

	toShield := min(s.MaxShield-s.Shield, amount)
	s.Shield += toShield
	amount -= toShield

	bonus := amount / parameter.HealOverflowGoldRate
	s.Gold += bonus
	return bonus
}

// CannonballDamage is the base damage of one functional shot
func (s *PlayerStats) CannonballDamage() int {
	return s.Ammunition.Damage()
}
