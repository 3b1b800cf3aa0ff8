package system

import (
	"fmt"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/parameter"
)

// LootSystem applies pickups and routes all healing through the player stats
type LootSystem struct {
	world *engine.World
}

func NewLootSystem(world *engine.World) *LootSystem {
	return &LootSystem{world: world}
}

// Collect applies a pickup to the player and removes it; unknown entities are ignored
func (s *LootSystem) Collect(loot core.Entity) {
	w := s.world
	item, ok := w.Components.Loot.GetComponent(loot)
	if !ok {
		return
	}
	body, _ := w.Components.Body.GetComponent(loot)
	w.DestroyEntity(loot)

	stats := &w.Resources.Player.Stats
	bonus := 0
	switch item.Kind {
	case component.LootGold, component.LootBonusGold:
		stats.Gold += item.Value
		critical := item.Kind == component.LootBonusGold
		w.PushEvent(event.EventFloatingText, &event.FloatingTextPayload{
			Text:     fmt.Sprintf("$%d", item.Value),
			Position: body.Position,
			Color:    event.ColorYellow,
			Duration: floatingDuration(critical),
			Critical: critical,
		})
		w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundCoin})
	case component.LootHealth:
		bonus = s.Heal(item.Value)
	case component.LootFullRepair:
		bonus = s.Heal(stats.MaxHP + stats.MaxShield)
	}

	w.PushEvent(event.EventLootCollected, &event.LootCollectedPayload{
		Kind:      item.Kind.String(),
		Value:     item.Value,
		BonusGold: bonus,
	})
}

// Heal fills hull, then shield, and converts the surplus to gold
// Returns the bonus gold credited
func (s *LootSystem) Heal(amount int) int {
	w := s.world
	pos, _ := playerPosition(w)
	w.PushEvent(event.EventFloatingText, &event.FloatingTextPayload{
		Text:     fmt.Sprintf("+%dHP", amount),
		Position: pos,
		Color:    event.ColorGreen,
		Duration: parameter.FloatingTextDuration,
	})
	w.PushEvent(event.EventSound, &event.SoundPayload{Cue: event.SoundRepair})
	return w.Resources.Player.Stats.Heal(amount)
}
