package event

// EventType represents the type of simulation event
type EventType int

const (
	// EventContact reports two bodies that began touching
	// Producer: ContactSystem, Session.ReportContact | Consumer: CombatSystem | Payload: *ContactPayload
	EventContact EventType = iota

	// === Presentation Events ===
	// Drained by the host through Session.Frame

	// EventFloatingText shows a transient label
	// Payload: *FloatingTextPayload
	EventFloatingText

	// EventEffect requests a one-shot visual effect at a position
	// Payload: *EffectPayload
	EventEffect

	// EventSound requests an audio cue
	// Payload: *SoundPayload
	EventSound

	// EventShotFired reports a volley or enemy shot
	// Payload: *ShotFiredPayload
	EventShotFired

	// EventEnemyHit reports damage dealt to an enemy
	// Payload: *EnemyHitPayload
	EventEnemyHit

	// EventEnemySunk reports an enemy destroyed and its reward paid
	// Payload: *EnemySunkPayload
	EventEnemySunk

	// EventPlayerHit reports damage absorbed by the player
	// Payload: *PlayerHitPayload
	EventPlayerHit

	// EventLootCollected reports a pickup applied to the player
	// Payload: *LootCollectedPayload
	EventLootCollected

	// EventWaveStarted reports a freshly spawned wave
	// Payload: *WavePayload
	EventWaveStarted

	// EventWaveCleared reports the clearance transition
	// Payload: *WavePayload
	EventWaveCleared

	// EventGameOver reports the terminal transition
	// Payload: nil
	EventGameOver
)

var eventNames = map[EventType]string{
	EventContact:       "contact",
	EventFloatingText:  "floating_text",
	EventEffect:        "effect",
	EventSound:         "sound",
	EventShotFired:     "shot_fired",
	EventEnemyHit:      "enemy_hit",
	EventEnemySunk:     "enemy_sunk",
	EventPlayerHit:     "player_hit",
	EventLootCollected: "loot_collected",
	EventWaveStarted:   "wave_started",
	EventWaveCleared:   "wave_cleared",
	EventGameOver:      "game_over",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a single queued event stamped with the frame it was emitted in
type GameEvent struct {
	Type    EventType
	Payload any
	Frame   int64
}
