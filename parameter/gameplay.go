package parameter

// Arena defaults, in points with y growing upward
const (
	ArenaWidth  = 390.0
	ArenaHeight = 844.0

	// Playable region margins as fractions of the arena
	PlayableMarginLeft   = 0.08
	PlayableMarginRight  = 0.05
	PlayableMarginTop    = 0.20
	PlayableMarginBottom = 0.05

	// HUDSafeHeight is the reserved band at the top of the arena
	HUDSafeHeight = 120.0
)

// Placement
const (
	// PlacementMargin pads every spawn rectangle and the sampling range
	PlacementMargin = 20.0

	// PlacementMaxAttempts caps the resampling loop; the last sample wins on exhaustion
	PlacementMaxAttempts = 100
)

// Wave composition
const (
	// WaveBossInterval forces a boss on every Nth wave
	WaveBossInterval = 3

	// WaveBossRandomChance is the independent per-wave boss roll
	WaveBossRandomChance = 0.1

	// WaveChaserChance is the share of remaining enemies spawned as chasers
	WaveChaserChance = 0.3

	// WaveObstacleDivisor adds one obstacle per N waves
	WaveObstacleDivisor = 5

	// WaveLootDivisor and WaveLootFactor shape floor((1 + wave/3) * 0.7)
	WaveLootDivisor = 3
	WaveLootFactor  = 0.7

	// LevelNameCount is the number of generated wave names per session
	LevelNameCount = 100

	// EndlessLevelName labels waves beyond the generated list
	EndlessLevelName = "The Endless Sea"
)

// Entity sizes
const (
	PlayerShipWidth  = 36.0
	PlayerShipHeight = 36.0

	StandardShipSize = 40.0
	ChaserShipSize   = 42.0
	CaptainShipSize  = 40.0
	BossShipSize     = 62.0

	ObstacleWidth     = 64.0
	ObstacleHeight    = 56.0
	ObstacleScaleMin  = 0.9
	ObstacleScaleMax  = 1.1
	ObstacleVariants  = 4
	LootSize          = 20.0
	PlayerShotSize    = 8.0
	EnemyShotSize     = 9.0
	BossShotSize      = 12.0
	SpeedUnitsPerStat = 100.0
)
