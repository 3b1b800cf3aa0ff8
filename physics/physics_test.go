package physics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
)

func body(e core.Entity, x, y float64, cat core.Category) Body {
	return Body{Entity: e, BodyComponent: component.BodyComponent{
		Position: core.Vec2{X: x, Y: y},
		Size:     core.Size{W: 10, H: 10},
		Category: cat,
	}}
}

func TestIntegrate(t *testing.T) {
	p := Integrate(core.Vec2{X: 1, Y: 1}, core.Vec2{X: 10, Y: -20}, 500*time.Millisecond)
	assert.Equal(t, core.Vec2{X: 6, Y: -9}, p)
}

func TestClampToRectZeroesClampedAxis(t *testing.T) {
	b := component.BodyComponent{
		Position: core.Vec2{X: -5, Y: 50},
		Velocity: core.Vec2{X: -3, Y: 4},
	}
	moved := ClampToRect(&b, core.Rect{X: 0, Y: 0, W: 100, H: 100})
	require.True(t, moved)
	assert.Equal(t, core.Vec2{X: 0, Y: 50}, b.Position)
	assert.Equal(t, core.Vec2{X: 0, Y: 4}, b.Velocity)
}

func TestInteractsIsSymmetric(t *testing.T) {
	assert.True(t, Interacts(core.CategoryEnemy, core.CategoryPlayerProjectile))
	assert.True(t, Interacts(core.CategoryPlayerProjectile, core.CategoryEnemy))
	assert.True(t, Interacts(core.CategoryLoot, core.CategoryPlayer))
	assert.False(t, Interacts(core.CategoryEnemy, core.CategoryEnemyProjectile))
	assert.False(t, Interacts(core.CategoryEnemy, core.CategoryLoot))
}

func TestContactTrackerReportsBeginOnly(t *testing.T) {
	tr := NewContactTracker()
	bodies := []Body{
		body(1, 0, 0, core.CategoryEnemy),
		body(2, 5, 5, core.CategoryPlayerProjectile),
		body(3, 5, 5, core.CategoryEnemyProjectile),
	}

	began := tr.Detect(bodies)
	require.Len(t, began, 1)
	assert.Equal(t, [2]core.Entity{1, 2}, began[0])

	// Still overlapping: no repeat
	assert.Empty(t, tr.Detect(bodies))

	// Separate then touch again
	bodies[1].Position = core.Vec2{X: 100, Y: 100}
	assert.Empty(t, tr.Detect(bodies))
	bodies[1].Position = core.Vec2{X: 2, Y: 2}
	assert.Len(t, tr.Detect(bodies), 1)
}

func TestBlocked(t *testing.T) {
	obstacles := []core.Rect{{X: 40, Y: 40, W: 20, H: 20}}
	assert.True(t, Blocked(core.Vec2{X: 45, Y: 45}, core.Size{W: 10, H: 10}, obstacles))
	assert.False(t, Blocked(core.Vec2{X: 10, Y: 10}, core.Size{W: 10, H: 10}, obstacles))
}
