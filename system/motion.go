package system

import (
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/physics"
)

// MotionSystem integrates ship velocities and advances projectiles along their paths
type MotionSystem struct {
	world *engine.World
}

func NewMotionSystem(world *engine.World) *MotionSystem {
	return &MotionSystem{world: world}
}

func (s *MotionSystem) Name() string {
	return "motion"
}

func (s *MotionSystem) Priority() int {
	return parameter.PriorityMotion
}

func (s *MotionSystem) Update() {
	s.moveShips()
	s.moveProjectiles()
}

// moveShips integrates players and enemies; a step into an island is reverted
func (s *MotionSystem) moveShips() {
	w := s.world
	dt := w.Resources.Time.DeltaTime
	obstacles := s.obstacleRects()

	for _, e := range w.Components.Body.GetAllEntities() {
		body, ok := w.Components.Body.GetComponent(e)
		if !ok || !body.Category.Has(core.CategoryPlayer|core.CategoryEnemy) || body.Velocity.IsZero() {
			continue
		}
		next := physics.Integrate(body.Position, body.Velocity, dt)
		if physics.Blocked(next, body.Size, obstacles) {
			body.Velocity = core.Vec2{}
		} else {
			body.Position = next
		}
		w.Components.Body.SetComponent(e, body)
	}
}

// moveProjectiles advances each shot and destroys it once travel and linger have elapsed
func (s *MotionSystem) moveProjectiles() {
	w := s.world
	dt := w.Resources.Time.DeltaTime
	var expired []core.Entity

	for _, e := range w.Components.Projectile.GetAllEntities() {
		p, ok := w.Components.Projectile.GetComponent(e)
		if !ok {
			continue
		}
		p.Elapsed += dt
		if p.Expired() {
			expired = append(expired, e)
			continue
		}
		w.Components.Projectile.SetComponent(e, p)

		if body, ok := w.Components.Body.GetComponent(e); ok {
			body.Position = p.PositionAt()
			w.Components.Body.SetComponent(e, body)
		}
	}

	for _, e := range expired {
		w.DestroyEntity(e)
	}
}

func (s *MotionSystem) obstacleRects() []core.Rect {
	w := s.world
	entities := w.Components.Obstacle.GetAllEntities()
	rects := make([]core.Rect, 0, len(entities))
	for _, e := range entities {
		if b, ok := w.Components.Body.GetComponent(e); ok {
			rects = append(rects, b.Bounds())
		}
	}
	return rects
}
