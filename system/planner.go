package system

import (
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

// Region restricts where the planner samples
type Region uint8

const (
	// RegionLower samples from the playable floor up to the arena top; the HUD band stays excluded
	RegionLower Region = iota

	// RegionTopHalf samples from mid-arena up to the playable top, used for enemy spawns
	RegionTopHalf
)

// Planner finds non-overlapping spawn positions during one planning pass
// Placement is greedy and best-effort: after PlacementMaxAttempts samples the
// last one is accepted even if it overlaps
type Planner struct {
	arena    *engine.ArenaResource
	rng      *vmath.FastRand
	occupied []core.Rect

	// Exhausted counts placements that fell back to an overlapping sample
	Exhausted int
}

// NewPlanner starts a pass with the HUD band already occupied
func NewPlanner(arena *engine.ArenaResource, rng *vmath.FastRand) *Planner {
	return &Planner{
		arena:    arena,
		rng:      rng,
		occupied: []core.Rect{arena.HUD},
	}
}

// FindPosition samples a center for an object of the given size and reserves
// its margin-expanded rectangle
func (p *Planner) FindPosition(size core.Size, region Region) core.Vec2 {
	const margin = parameter.PlacementMargin
	playable := p.arena.Playable

	minX, maxX := playable.MinX()+margin, playable.MaxX()-margin
	var minY, maxY float64
	if region == RegionTopHalf {
		minY, maxY = p.arena.Size.H/2, playable.MaxY()-margin
	} else {
		minY, maxY = playable.MinY()+margin, p.arena.Size.H-margin
	}

	var pos core.Vec2
	var frame core.Rect
	for attempt := 0; attempt < parameter.PlacementMaxAttempts; attempt++ {
		pos = core.Vec2{X: p.rng.Range(minX, maxX), Y: p.rng.Range(minY, maxY)}
		frame = vmath.RectInset(vmath.RectCentered(pos, size), -margin, -margin)
		if !p.overlaps(frame) {
			p.occupied = append(p.occupied, frame)
			return pos
		}
	}

	p.Exhausted++
	p.occupied = append(p.occupied, frame)
	return pos
}

// Reserve marks a rectangle as occupied without sampling
func (p *Planner) Reserve(r core.Rect) {
	p.occupied = append(p.occupied, r)
}

// Occupied returns the rectangles reserved so far, HUD band first
func (p *Planner) Occupied() []core.Rect {
	out := make([]core.Rect, len(p.occupied))
	copy(out, p.occupied)
	return out
}

func (p *Planner) overlaps(r core.Rect) bool {
	for _, o := range p.occupied {
		if vmath.RectIntersects(r, o) {
			return true
		}
	}
	return false
}
