package component

import (
	"time"

	"github.com/lixenwraith/shiptapper/parameter"
)

// Skill is a player ability with a cooldown
type Skill uint8

const (
	SkillSpeedBoost Skill = iota
	SkillRapidFire
	SkillRepairDrones
	SkillCount
)

func (s Skill) String() string {
	switch s {
	case SkillSpeedBoost:
		return "speed_boost"
	case SkillRapidFire:
		return "rapid_fire"
	case SkillRepairDrones:
		return "repair_drones"
	default:
		return "unknown"
	}
}

// Cooldown is the wait after activation before the skill is ready again
func (s Skill) Cooldown() time.Duration {
	switch s {
	case SkillSpeedBoost:
		return parameter.SpeedBoostCooldown
	case SkillRapidFire:
		return parameter.RapidFireCooldown
	case SkillRepairDrones:
		return parameter.RepairDronesCooldown
	default:
		return 0
	}
}

// Duration is how long the skill stays active; instant skills return zero
func (s Skill) Duration() time.Duration {
	switch s {
	case SkillSpeedBoost:
		return parameter.SpeedBoostDuration
	case SkillRapidFire:
		return parameter.RapidFireDuration
	default:
		return 0
	}
}

// SkillState tracks the remaining cooldown and active time of one skill
type SkillState struct {
	Cooldown time.Duration
	Active   time.Duration
}

// Ready reports whether the skill may be activated
func (s SkillState) Ready() bool {
	return s.Cooldown <= 0
}

// IsActive reports whether the skill's effect is running
func (s SkillState) IsActive() bool {
	return s.Active > 0
}
