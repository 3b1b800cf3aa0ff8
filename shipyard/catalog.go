package shipyard

import (
	"time"

	"github.com/lixenwraith/shiptapper/component"
)

// Section groups upgrades the way the shipyard screen lists them
type Section uint8

const (
	SectionGunnery Section = iota
	SectionOrdnance
	SectionCarpenter
	SectionShipyard
	SectionCount
)

func (s Section) String() string {
	switch s {
	case SectionGunnery:
		return "Gunnery"
	case SectionOrdnance:
		return "Ordnance"
	case SectionCarpenter:
		return "Carpenter"
	case SectionShipyard:
		return "Shipyard"
	default:
		return "unknown"
	}
}

// Upgrade is one purchasable improvement
// Offered only while its condition holds against the current stats
type Upgrade struct {
	ID          string
	Name        string
	Description string
	Section     Section
	Cost        int

	condition func(component.PlayerStats) bool
	apply     func(*component.PlayerStats)
}

// Offered reports whether the upgrade is listed for the given stats
func (u Upgrade) Offered(s component.PlayerStats) bool {
	return u.condition == nil || u.condition(s)
}

// Affordable reports whether the upgrade is offered and the gold covers it
func (u Upgrade) Affordable(s component.PlayerStats) bool {
	return u.Offered(s) && s.Gold >= u.Cost
}

var catalog = []Upgrade{
	{
		ID: "improve_ballast", Name: "Improve Ballast", Description: "+5% Min. Damage",
		Section: SectionGunnery, Cost: 300,
		condition: func(s component.PlayerStats) bool { return s.MinDamageMultiplier < 0.3 },
		apply:     func(s *component.PlayerStats) { s.MinDamageMultiplier += 0.05 },
	},
	{
		ID: "gunnery_tables", Name: "Gunnery Tables", Description: "+7% Min. Damage",
		Section: SectionGunnery, Cost: 700,
		condition: func(s component.PlayerStats) bool {
			return s.MinDamageMultiplier >= 0.3 && s.MinDamageMultiplier < 0.45
		},
		apply: func(s *component.PlayerStats) { s.MinDamageMultiplier += 0.07 },
	},
	{
		ID: "spot_weakness", Name: "Spot Weakness", Description: "+2% Crit Chance",
		Section: SectionGunnery, Cost: 450,
		condition: func(s component.PlayerStats) bool { return s.CritChance < 0.15 },
		apply:     func(s *component.PlayerStats) { s.CritChance += 0.02 },
	},
	{
		ID: "heavier_shot", Name: "Heavier Shot", Description: "+15% Crit Damage",
		Section: SectionGunnery, Cost: 600,
		condition: func(s component.PlayerStats) bool { return s.CritDamageMultiplier < 1.45 },
		apply:     func(s *component.PlayerStats) { s.CritDamageMultiplier += 0.15 },
	},
	{
		ID: "hollow_balls", Name: "Hollow Balls", Description: "High damage, lower accuracy.",
		Section: SectionOrdnance, Cost: 800,
		condition: func(s component.PlayerStats) bool { return s.Ammunition == component.AmmoStandard },
		apply:     func(s *component.PlayerStats) { s.Ammunition = component.AmmoHollow },
	},
	{
		ID: "efficient_crew", Name: "Efficient Crew", Description: "-0.25s Reload Time",
		Section: SectionOrdnance, Cost: 400,
		condition: func(s component.PlayerStats) bool { return s.ReloadSpeed > 2750*time.Millisecond },
		apply:     func(s *component.PlayerStats) { s.ReloadSpeed -= 250 * time.Millisecond },
	},
	{
		ID: "expert_loaders", Name: "Expert Loaders", Description: "-0.5s Reload Time",
		Section: SectionOrdnance, Cost: 1000,
		condition: func(s component.PlayerStats) bool {
			return s.ReloadSpeed <= 2750*time.Millisecond && s.ReloadSpeed > 2*time.Second
		},
		apply: func(s *component.PlayerStats) { s.ReloadSpeed -= 500 * time.Millisecond },
	},
	{
		ID: "add_gun_deck", Name: "Add Gun Deck", Description: "+1 Cannon",
		Section: SectionCarpenter, Cost: 1500,
		condition: func(s component.PlayerStats) bool { return s.CannonCount == 1 },
		apply:     func(s *component.PlayerStats) { s.CannonCount++ },
	},
	{
		ID: "add_second_deck", Name: "Add Second Deck", Description: "+1 Cannon",
		Section: SectionCarpenter, Cost: 3000,
		condition: func(s component.PlayerStats) bool { return s.CannonCount == 2 },
		apply:     func(s *component.PlayerStats) { s.CannonCount++ },
	},
	{
		ID: "streamline_hull", Name: "Streamline Hull", Description: "+0.2 Ship Speed",
		Section: SectionShipyard, Cost: 300,
		condition: func(s component.PlayerStats) bool { return s.ShipSpeed < 2.2 },
		apply:     func(s *component.PlayerStats) { s.ShipSpeed += 0.2 },
	},
	{
		ID: "larger_sails", Name: "Larger Sails", Description: "+0.3 Ship Speed",
		Section: SectionShipyard, Cost: 750,
		condition: func(s component.PlayerStats) bool { return s.ShipSpeed >= 2.2 && s.ShipSpeed < 2.5 },
		apply:     func(s *component.PlayerStats) { s.ShipSpeed += 0.3 },
	},
}

// Catalog returns every upgrade in display order
func Catalog() []Upgrade {
	out := make([]Upgrade, len(catalog))
	copy(out, catalog)
	return out
}

// Offers returns the upgrades currently listed for the stats, grouped by section order
func Offers(s component.PlayerStats) []Upgrade {
	var out []Upgrade
	for section := SectionGunnery; section < SectionCount; section++ {
		for _, u := range catalog {
			if u.Section == section && u.Offered(s) {
				out = append(out, u)
			}
		}
	}
	return out
}

// Lookup finds an upgrade by ID
func Lookup(id string) (Upgrade, bool) {
	for _, u := range catalog {
		if u.ID == id {
			return u, true
		}
	}
	return Upgrade{}, false
}
