package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/vmath"
)

func newTestWorld() *World {
	res := NewResource(core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight},
		component.DefaultPlayerStats(), vmath.NewFastRand(1))
	return NewWorld(res)
}

func TestStoreOrderAndRemove(t *testing.T) {
	s := NewStore[int]()
	s.SetComponent(3, 30)
	s.SetComponent(1, 10)
	s.SetComponent(2, 20)
	s.SetComponent(1, 11)

	assert.Equal(t, []core.Entity{3, 1, 2}, s.GetAllEntities())
	v, ok := s.GetComponent(1)
	require.True(t, ok)
	assert.Equal(t, 11, v)

	s.RemoveEntity(1)
	s.RemoveEntity(99)
	assert.Equal(t, []core.Entity{3, 2}, s.GetAllEntities())
	assert.False(t, s.HasEntity(1))

	s.RemoveBatch([]core.Entity{3, 2})
	assert.Equal(t, 0, s.CountEntities())
}

func TestWorldDestroyEntityRemovesAllComponents(t *testing.T) {
	w := newTestWorld()
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{Category: core.CategoryEnemy})
	w.Components.Ship.SetComponent(e, component.ShipComponent{HP: 10})

	require.True(t, w.Alive(e))
	w.DestroyEntity(e)
	assert.False(t, w.Alive(e))
	assert.False(t, w.Components.Ship.HasEntity(e))

	// Stale destroy is a no-op
	w.DestroyEntity(e)
}

func TestWorldClearKeepsIDsMonotonic(t *testing.T) {
	w := newTestWorld()
	a := w.CreateEntity()
	w.Clear()
	b := w.CreateEntity()
	assert.Greater(t, b, a)
}

type orderSystem struct {
	name     string
	priority int
	log      *[]string
}

func (s *orderSystem) Name() string  { return s.name }
func (s *orderSystem) Priority() int { return s.priority }
func (s *orderSystem) Update()       { *s.log = append(*s.log, s.name) }

func TestWorldRunsSystemsByPriority(t *testing.T) {
	w := newTestWorld()
	var log []string
	w.AddSystem(&orderSystem{"late", 30, &log})
	w.AddSystem(&orderSystem{"early", 10, &log})
	w.AddSystem(&orderSystem{"mid", 20, &log})

	w.Update()
	assert.Equal(t, []string{"early", "mid", "late"}, log)
}

func TestFrameClock(t *testing.T) {
	fc := NewFrameClock()
	t0 := time.Unix(100, 0)

	assert.Equal(t, time.Duration(0), fc.Step(t0))
	assert.Equal(t, 16*time.Millisecond, fc.Step(t0.Add(16*time.Millisecond)))
	assert.Equal(t, parameter.MaxFrameDelta, fc.Step(t0.Add(5*time.Second)))

	fc.Reset()
	assert.Equal(t, time.Duration(0), fc.Step(t0.Add(time.Hour)))
}

func TestArenaRegions(t *testing.T) {
	a := NewArenaResource(core.Size{W: 400, H: 1000})
	assert.InDelta(t, 32, a.Playable.MinX(), 1e-9)
	assert.InDelta(t, 380, a.Playable.MaxX(), 1e-9)
	assert.InDelta(t, 50, a.Playable.MinY(), 1e-9)
	assert.InDelta(t, 800, a.Playable.MaxY(), 1e-9)
	assert.InDelta(t, 880, a.HUD.MinY(), 1e-9)
}

func TestReloadIntervalHalvedByRapidFire(t *testing.T) {
	p := &PlayerResource{Stats: component.DefaultPlayerStats()}
	assert.Equal(t, 3*time.Second, p.ReloadInterval())
	p.Skills[component.SkillRapidFire].Active = time.Second
	assert.Equal(t, 1500*time.Millisecond, p.ReloadInterval())
}
