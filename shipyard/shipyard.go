// Package shipyard sells upgrades and repairs between waves
package shipyard

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/parameter"
)

var (
	ErrUnknownUpgrade   = errors.New("unknown upgrade")
	ErrUnavailable      = errors.New("upgrade not available")
	ErrInsufficientGold = errors.New("insufficient gold")
	ErrNothingToRepair  = errors.New("ship is fully repaired")
)

// Purchase deducts the cost of an upgrade and applies it
func Purchase(s *component.PlayerStats, id string) error {
	u, ok := Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, id)
	}
	if !u.Offered(*s) {
		return fmt.Errorf("%s: %w", u.Name, ErrUnavailable)
	}
	if s.Gold < u.Cost {
		return fmt.Errorf("%s costs %d, have %d: %w", u.Name, u.Cost, s.Gold, ErrInsufficientGold)
	}
	s.Gold -= u.Cost
	u.apply(s)
	s.Clamp()
	return nil
}

// NeedsRepair reports whether hull or shield is below maximum
func NeedsRepair(s component.PlayerStats) bool {
	return s.HP < s.MaxHP || s.Shield < s.MaxShield
}

// Repair pays for a full repair and heals maxHP+maxShield
// Overflow converts to gold like any other heal; returns the bonus gold
func Repair(s *component.PlayerStats) (int, error) {
	if !NeedsRepair(*s) {
		return 0, ErrNothingToRepair
	}
	if s.Gold < parameter.ShipyardRepairCost {
		return 0, fmt.Errorf("repair costs %d, have %d: %w", parameter.ShipyardRepairCost, s.Gold, ErrInsufficientGold)
	}
	s.Gold -= parameter.ShipyardRepairCost
	return s.Heal(s.MaxHP + s.MaxShield), nil
}
