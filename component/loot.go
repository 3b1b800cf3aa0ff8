package component

// LootKind identifies what a pickup grants
type LootKind uint8

const (
	LootGold LootKind = iota
	LootBonusGold
	LootHealth
	LootFullRepair
)

func (k LootKind) String() string {
	switch k {
	case LootGold:
		return "gold"
	case LootBonusGold:
		return "gold_boss"
	case LootHealth:
		return "health"
	case LootFullRepair:
		return "repair_kit"
	default:
		return "unknown"
	}
}

// LootComponent is a pickup waiting for the player
type LootComponent struct {
	Kind  LootKind
	Value int
}

// ObstacleComponent marks an island; Variant selects its sprite
type ObstacleComponent struct {
	Variant int
}
