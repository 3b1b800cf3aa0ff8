package parameter

// System execution order; lower runs first within a tick
const (
	PriorityPlayer    = 10
	PriorityAI        = 20
	PriorityMotion    = 30
	PriorityContact   = 40
	PriorityCombat    = 50
	PriorityTargeting = 60
	PriorityWeapon    = 70
	PriorityCooldown  = 80
	PriorityBounds    = 90
	PriorityWave      = 100
)
