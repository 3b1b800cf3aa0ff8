package shipyard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/parameter"
)

func ids(us []Upgrade) []string {
	out := make([]string, 0, len(us))
	for _, u := range us {
		out = append(out, u.ID)
	}
	return out
}

func TestOffersForFreshShip(t *testing.T) {
	s := component.DefaultPlayerStats()
	assert.Equal(t, []string{
		"improve_ballast", "spot_weakness", "heavier_shot",
		"hollow_balls", "efficient_crew",
		"add_gun_deck",
		"streamline_hull",
	}, ids(Offers(s)))
}

func TestPurchaseAppliesAndDeducts(t *testing.T) {
	s := component.DefaultPlayerStats()
	s.Gold = 2000

	require.NoError(t, Purchase(&s, "add_gun_deck"))
	assert.Equal(t, 2, s.CannonCount)
	assert.Equal(t, 500, s.Gold)

	err := Purchase(&s, "add_gun_deck")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, ids(Offers(s)), "add_second_deck")
}

func TestPurchaseInsufficientGold(t *testing.T) {
	s := component.DefaultPlayerStats()
	s.Gold = 100

	err := Purchase(&s, "hollow_balls")
	assert.ErrorIs(t, err, ErrInsufficientGold)
	assert.Equal(t, 100, s.Gold)
	assert.Equal(t, component.AmmoStandard, s.Ammunition)
}

func TestPurchaseUnknown(t *testing.T) {
	s := component.DefaultPlayerStats()
	assert.ErrorIs(t, Purchase(&s, "kraken"), ErrUnknownUpgrade)
}

func TestUpgradeTiers(t *testing.T) {
	s := component.DefaultPlayerStats()
	s.Gold = 10000

	require.NoError(t, Purchase(&s, "efficient_crew"))
	assert.Equal(t, 2750*time.Millisecond, s.ReloadSpeed)
	assert.NotContains(t, ids(Offers(s)), "efficient_crew")
	require.NoError(t, Purchase(&s, "expert_loaders"))
	assert.Equal(t, 2250*time.Millisecond, s.ReloadSpeed)
	require.NoError(t, Purchase(&s, "expert_loaders"))
	assert.Equal(t, 1750*time.Millisecond, s.ReloadSpeed)
	assert.ErrorIs(t, Purchase(&s, "expert_loaders"), ErrUnavailable)

	for s.ShipSpeed < 2.2 {
		require.NoError(t, Purchase(&s, "streamline_hull"))
	}
	assert.Contains(t, ids(Offers(s)), "larger_sails")
}

func TestRepair(t *testing.T) {
	s := component.DefaultPlayerStats()
	s.Shield = s.MaxShield
	_, err := Repair(&s)
	assert.ErrorIs(t, err, ErrNothingToRepair)

	s.HP = 100
	s.Gold = 300
	_, err = Repair(&s)
	assert.ErrorIs(t, err, ErrInsufficientGold)
	assert.Equal(t, 100, s.HP)

	s.Gold = 400
	bonus, err := Repair(&s)
	require.NoError(t, err)
	assert.Equal(t, s.MaxHP, s.HP)
	assert.Equal(t, s.MaxShield, s.Shield)
	// 600 healed: 200 hull, 400 surplus
	assert.Equal(t, 20, bonus)
	assert.Equal(t, 70, s.Gold)
}

func TestRepairFillsShield(t *testing.T) {
	s := component.DefaultPlayerStats()
	s.Gold = parameter.ShipyardRepairCost
	require.True(t, NeedsRepair(s))

	_, err := Repair(&s)
	require.NoError(t, err)
	assert.Equal(t, s.MaxShield, s.Shield)
}

func TestSectionNames(t *testing.T) {
	assert.Equal(t, "Gunnery", SectionGunnery.String())
	assert.Equal(t, "Shipyard", SectionShipyard.String())
}
