package parameter

// Loot
const (
	// LootGoldChance is the share of wave loot spawned as gold; the rest is health
	LootGoldChance = 0.7

	LootGoldValue   = 50
	LootHealthValue = 50

	// HealOverflowGoldRate converts surplus healing into gold, one coin per N units
	HealOverflowGoldRate = 20
)
