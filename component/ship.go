package component

import (
	"time"

	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/parameter"
)

// Archetype is the behavioral class of a non-player ship
type Archetype uint8

const (
	ArchetypeStandard Archetype = iota
	ArchetypeChaser
	ArchetypeCaptain
	ArchetypeBoss
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeStandard:
		return "standard"
	case ArchetypeChaser:
		return "chaser"
	case ArchetypeCaptain:
		return "captain"
	case ArchetypeBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// Size returns the hull size for the archetype
func (a Archetype) Size() core.Size {
	switch a {
	case ArchetypeChaser:
		return core.Size{W: parameter.ChaserShipSize, H: parameter.ChaserShipSize}
	case ArchetypeCaptain:
		return core.Size{W: parameter.CaptainShipSize, H: parameter.CaptainShipSize}
	case ArchetypeBoss:
		return core.Size{W: parameter.BossShipSize, H: parameter.BossShipSize}
	default:
		return core.Size{W: parameter.StandardShipSize, H: parameter.StandardShipSize}
	}
}

// MaxHP returns the starting hull points for the archetype at a wave
func (a Archetype) MaxHP(wave int) int {
	if a == ArchetypeBoss {
		return parameter.BossBaseHP + parameter.BossHPPerWave*wave
	}
	return parameter.EnemyBaseHP + parameter.EnemyHPPerWave*wave
}

// Reward returns the gold paid when a ship of this archetype is sunk
func (a Archetype) Reward() int {
	if a == ArchetypeBoss {
		return parameter.BossReward
	}
	return parameter.EnemyReward
}

// Pursues reports whether the archetype keeps a standoff distance instead of patrolling
func (a Archetype) Pursues() bool {
	return a == ArchetypeChaser || a == ArchetypeBoss
}

// ShipComponent holds enemy hull state
// HP reaching zero removes the ship within the same resolution step
type ShipComponent struct {
	Archetype Archetype
	HP        int
	MaxHP     int
	Name      string
	Facing    Facing
}

// EnemyAIComponent is the per-enemy scratch state used by the AI controller
type EnemyAIComponent struct {
	FireCooldown time.Duration

	// Patrol state, used by non-pursuing archetypes
	PatrolTarget    core.Vec2
	HasPatrolTarget bool
	PatrolCooldown  time.Duration

	// Engaging is set while the ship holds position inside firing range
	Engaging bool
}

// DecorationComponent is the opaque presentation handle attached to an enemy
type DecorationComponent struct {
	HealthRatio float64
	Smoke       bool
	Fire        bool
	Label       string
}
