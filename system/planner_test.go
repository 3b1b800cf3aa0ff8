package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

func TestPlannerPlacementsDoNotOverlap(t *testing.T) {
	arena := engine.NewArenaResource(core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight})
	for seed := uint64(1); seed <= 20; seed++ {
		p := NewPlanner(arena, vmath.NewFastRand(seed))
		size := core.Size{W: 40, H: 40}
		for i := 0; i < 8; i++ {
			p.FindPosition(size, RegionTopHalf)
			p.FindPosition(core.Size{W: 20, H: 20}, RegionLower)
		}
		if p.Exhausted > 0 {
			continue
		}
		occ := p.Occupied()
		for i := 0; i < len(occ); i++ {
			for j := i + 1; j < len(occ); j++ {
				assert.False(t, vmath.RectIntersects(occ[i], occ[j]), "seed %d: %v overlaps %v", seed, occ[i], occ[j])
			}
		}
	}
}

func TestPlannerTopHalfRange(t *testing.T) {
	arena := engine.NewArenaResource(core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight})
	p := NewPlanner(arena, vmath.NewFastRand(5))
	for i := 0; i < 5; i++ {
		pos := p.FindPosition(core.Size{W: 10, H: 10}, RegionTopHalf)
		assert.GreaterOrEqual(t, pos.Y, parameter.ArenaHeight/2)
		assert.LessOrEqual(t, pos.Y, arena.Playable.MaxY()-parameter.PlacementMargin)
		assert.GreaterOrEqual(t, pos.X, arena.Playable.MinX()+parameter.PlacementMargin)
		assert.LessOrEqual(t, pos.X, arena.Playable.MaxX()-parameter.PlacementMargin)
	}
}

func TestPlannerAvoidsHUD(t *testing.T) {
	arena := engine.NewArenaResource(core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight})
	p := NewPlanner(arena, vmath.NewFastRand(11))
	for i := 0; i < 10; i++ {
		pos := p.FindPosition(core.Size{W: 20, H: 20}, RegionLower)
		if p.Exhausted == 0 {
			frame := vmath.RectInset(vmath.RectCentered(pos, core.Size{W: 20, H: 20}), -parameter.PlacementMargin, -parameter.PlacementMargin)
			assert.False(t, vmath.RectIntersects(frame, arena.HUD))
		}
	}
}

func TestPlannerExhaustionAcceptsLastSample(t *testing.T) {
	arena := engine.NewArenaResource(core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight})
	p := NewPlanner(arena, vmath.NewFastRand(3))
	p.Reserve(core.Rect{X: 0, Y: 0, W: parameter.ArenaWidth, H: parameter.ArenaHeight})

	before := len(p.Occupied())
	p.FindPosition(core.Size{W: 10, H: 10}, RegionLower)
	assert.Equal(t, 1, p.Exhausted)
	assert.Len(t, p.Occupied(), before+1)
}
