package system

import (
	"log/slog"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/names"
	"github.com/lixenwraith/shiptapper/parameter"
)

// WaveComposition is the spawn plan derived from a wave number
type WaveComposition struct {
	Enemies   int
	Obstacles int
	Loot      int
}

// ComposeWave derives entity counts for a wave
func ComposeWave(wave int) WaveComposition {
	return WaveComposition{
		Enemies:   1 + wave,
		Obstacles: 1 + wave/parameter.WaveObstacleDivisor,
		Loot:      int(float64(1+wave/parameter.WaveLootDivisor) * parameter.WaveLootFactor),
	}
}

// WaveDirector owns the wave lifecycle: spawning a wave and detecting clearance
type WaveDirector struct {
	world  *engine.World
	names  *names.Generator
	levels []string
	logger *slog.Logger
}

func NewWaveDirector(world *engine.World, gen *names.Generator, logger *slog.Logger) *WaveDirector {
	return &WaveDirector{
		world:  world,
		names:  gen,
		levels: gen.LevelNames(world.Resources.Rand, parameter.LevelNameCount),
		logger: logger,
	}
}

func (s *WaveDirector) Name() string {
	return "wave"
}

func (s *WaveDirector) Priority() int {
	return parameter.PriorityWave
}

// Reset returns the director to wave zero
func (s *WaveDirector) Reset() {
	game := s.world.Resources.Game
	game.Wave = 0
	game.Phase = engine.PhaseIdle
	game.Label = ""
	game.GameOver = false
	game.ClearedPending = false
	game.GameOverPending = false
}

// StartNextWave clears the arena, advances the wave counter and spawns the next wave
func (s *WaveDirector) StartNextWave() event.WavePayload {
	w := s.world
	game := w.Resources.Game
	player := w.Resources.Player
	rng := w.Resources.Rand

	w.Clear()
	player.Entity = core.NoEntity
	player.Target = core.NoEntity
	player.AutoFire = false
	player.FireTimer = 0
	player.Movement = core.Vec2{}

	game.Phase = engine.PhaseSpawning
	game.Wave++
	game.Label = names.WaveLabel(s.levels, game.Wave)

	comp := ComposeWave(game.Wave)
	planner := NewPlanner(w.Resources.Arena, rng)

	for i := 0; i < comp.Obstacles; i++ {
		scale := rng.Range(parameter.ObstacleScaleMin, parameter.ObstacleScaleMax)
		size := core.Size{W: parameter.ObstacleWidth * scale, H: parameter.ObstacleHeight * scale}
		spawnObstacle(w, planner.FindPosition(size, RegionLower), size, rng.Intn(parameter.ObstacleVariants))
	}

	playerSize := core.Size{W: parameter.PlayerShipWidth, H: parameter.PlayerShipHeight}
	spawnPlayer(w, planner.FindPosition(playerSize, RegionLower))

	archetypes := s.rollArchetypes(game.Wave, comp.Enemies)
	boss := false
	for _, arch := range archetypes {
		if arch == component.ArchetypeBoss {
			boss = true
		}
		spawnEnemy(w, arch, planner.FindPosition(arch.Size(), RegionTopHalf), game.Wave, s.names.EnemyName(rng))
	}

	lootSize := core.Size{W: parameter.LootSize, H: parameter.LootSize}
	for i := 0; i < comp.Loot; i++ {
		kind, value := component.LootHealth, parameter.LootHealthValue
		if rng.Chance(parameter.LootGoldChance) {
			kind, value = component.LootGold, parameter.LootGoldValue
		}
		SpawnLoot(w, kind, value, planner.FindPosition(lootSize, RegionLower))
	}

	game.Phase = engine.PhaseInProgress
	game.ClearedPending = false

	payload := event.WavePayload{
		Wave:      game.Wave,
		Label:     game.Label,
		Enemies:   len(archetypes),
		Obstacles: comp.Obstacles,
		Loot:      comp.Loot,
		Boss:      boss,
	}
	if planner.Exhausted > 0 {
		s.logger.Debug("placement fell back to overlapping positions", "wave", game.Wave, "count", planner.Exhausted)
	}
	w.PushEvent(event.EventWaveStarted, &payload)
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundWaveStart})
	return payload
}

// rollArchetypes picks the enemy roster: a forced boss every third wave, an
// independent boss roll, then chasers and standards for the rest
func (s *WaveDirector) rollArchetypes(wave, count int) []component.Archetype {
	rng := s.world.Resources.Rand
	roster := make([]component.Archetype, 0, count+1)
	remaining := count

	if wave%parameter.WaveBossInterval == 0 {
		roster = append(roster, component.ArchetypeBoss)
		remaining--
	}
	if rng.Chance(parameter.WaveBossRandomChance) {
		roster = append(roster, component.ArchetypeBoss)
		remaining--
		s.logger.Debug("bonus boss rolled", "wave", wave)
	}
	for i := 0; i < remaining; i++ {
		if rng.Chance(parameter.WaveChaserChance) {
			roster = append(roster, component.ArchetypeChaser)
		} else {
			roster = append(roster, component.ArchetypeStandard)
		}
	}
	return roster
}

// Update detects clearance: no enemies, no loot, player alive
// The transition happens once per wave; the phase leaves InProgress immediately
func (s *WaveDirector) Update() {
	w := s.world
	game := w.Resources.Game
	if game.Phase != engine.PhaseInProgress || game.GameOver {
		return
	}
	if w.Components.Ship.CountEntities() > 0 || w.Components.Loot.CountEntities() > 0 {
		return
	}
	if !w.Resources.Player.Stats.Alive() {
		return
	}

	game.Phase = engine.PhaseCleared
	game.ClearedPending = true
	w.PushEvent(event.EventWaveCleared, &event.WavePayload{Wave: game.Wave, Label: game.Label})
}

// Levels returns the generated level names
func (s *WaveDirector) Levels() []string {
	return s.levels
}
