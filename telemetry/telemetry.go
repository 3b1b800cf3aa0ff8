// Package telemetry counts gameplay outcomes from presentation events
//
// Instruments come from the global OpenTelemetry meter and are no-ops unless
// the host installs a provider. Totals are also kept in process for the run summary
package telemetry

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/lixenwraith/shiptapper/event"
)

const instrumentationName = "github.com/lixenwraith/shiptapper/telemetry"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Totals is a point-in-time copy of the in-process counters
type Totals struct {
	WavesCleared int64
	EnemiesSunk  int64
	BossesSunk   int64
	GoldEarned   int64
	ShotsFired   int64
	DamageTaken  int64
}

// Recorder is an event handler that feeds metric instruments
type Recorder struct {
	wavesCleared metric.Int64Counter
	enemiesSunk  metric.Int64Counter
	goldEarned   metric.Int64Counter
	shotsFired   metric.Int64Counter
	damageTaken  metric.Int64Counter

	waves, sunk, bosses, gold, shots, damage atomic.Int64
}

// NewRecorder creates the instruments on the global meter
func NewRecorder() (*Recorder, error) {
	m := meter()
	r := &Recorder{}
	var err error

	if r.wavesCleared, err = m.Int64Counter("shiptapper.waves.cleared",
		metric.WithDescription("Waves cleared")); err != nil {
		return nil, fmt.Errorf("create waves counter: %w", err)
	}
	if r.enemiesSunk, err = m.Int64Counter("shiptapper.enemies.sunk",
		metric.WithDescription("Enemy ships sunk")); err != nil {
		return nil, fmt.Errorf("create sunk counter: %w", err)
	}
	if r.goldEarned, err = m.Int64Counter("shiptapper.gold.earned",
		metric.WithDescription("Gold credited to the player"),
		metric.WithUnit("{gold}")); err != nil {
		return nil, fmt.Errorf("create gold counter: %w", err)
	}
	if r.shotsFired, err = m.Int64Counter("shiptapper.shots.fired",
		metric.WithDescription("Logical shots fired")); err != nil {
		return nil, fmt.Errorf("create shots counter: %w", err)
	}
	if r.damageTaken, err = m.Int64Counter("shiptapper.damage.taken",
		metric.WithDescription("Damage absorbed by the player")); err != nil {
		return nil, fmt.Errorf("create damage counter: %w", err)
	}
	return r, nil
}

func (r *Recorder) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWaveCleared,
		event.EventEnemySunk,
		event.EventLootCollected,
		event.EventShotFired,
		event.EventPlayerHit,
	}
}

func (r *Recorder) HandleEvent(ev event.GameEvent) {
	ctx := context.Background()
	switch ev.Type {
	case event.EventWaveCleared:
		r.waves.Add(1)
		r.wavesCleared.Add(ctx, 1)

	case event.EventEnemySunk:
		p, ok := ev.Payload.(*event.EnemySunkPayload)
		if !ok {
			return
		}
		r.sunk.Add(1)
		if p.Archetype == "boss" {
			r.bosses.Add(1)
		}
		r.enemiesSunk.Add(ctx, 1, metric.WithAttributes(attribute.String("archetype", p.Archetype)))
		r.addGold(ctx, p.Reward, "reward")

	case event.EventLootCollected:
		p, ok := ev.Payload.(*event.LootCollectedPayload)
		if !ok {
			return
		}
		if p.Kind == "gold" || p.Kind == "gold_boss" {
			r.addGold(ctx, p.Value, "loot")
		}
		r.addGold(ctx, p.BonusGold, "heal_overflow")

	case event.EventShotFired:
		p, ok := ev.Payload.(*event.ShotFiredPayload)
		if !ok {
			return
		}
		side := "enemy"
		if p.Player {
			side = "player"
			r.shots.Add(int64(p.Count))
		}
		r.shotsFired.Add(ctx, int64(p.Count), metric.WithAttributes(attribute.String("side", side)))

	case event.EventPlayerHit:
		p, ok := ev.Payload.(*event.PlayerHitPayload)
		if !ok {
			return
		}
		r.damage.Add(int64(p.Damage))
		r.damageTaken.Add(ctx, int64(p.Damage))
	}
}

func (r *Recorder) addGold(ctx context.Context, amount int, source string) {
	if amount <= 0 {
		return
	}
	r.gold.Add(int64(amount))
	r.goldEarned.Add(ctx, int64(amount), metric.WithAttributes(attribute.String("source", source)))
}

// Totals returns the counters accumulated since creation
func (r *Recorder) Totals() Totals {
	return Totals{
		WavesCleared: r.waves.Load(),
		EnemiesSunk:  r.sunk.Load(),
		BossesSunk:   r.bosses.Load(),
		GoldEarned:   r.gold.Load(),
		ShotsFired:   r.shots.Load(),
		DamageTaken:  r.damage.Load(),
	}
}
