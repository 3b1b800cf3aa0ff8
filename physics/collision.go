package physics

import (
	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/vmath"
)

// contactRules lists the category pairs that produce contacts; order within a pair is irrelevant
var contactRules = [...][2]core.Category{
	{core.CategoryEnemy, core.CategoryPlayerProjectile},
	{core.CategoryPlayer, core.CategoryEnemyProjectile},
	{core.CategoryPlayerProjectile, core.CategoryObstacle},
	{core.CategoryEnemyProjectile, core.CategoryObstacle},
	{core.CategoryPlayer, core.CategoryLoot},
}

// Interacts reports whether bodies of categories a and b generate contacts
func Interacts(a, b core.Category) bool {
	for _, r := range contactRules {
		if (a == r[0] && b == r[1]) || (a == r[1] && b == r[0]) {
			return true
		}
	}
	return false
}

// Overlaps reports whether two bodies' bounding rectangles intersect
func Overlaps(a, b component.BodyComponent) bool {
	return vmath.RectIntersects(a.Bounds(), b.Bounds())
}

// Body pairs an entity with its body for detection passes
type Body struct {
	Entity core.Entity
	component.BodyComponent
}

type pairKey [2]core.Entity

func keyOf(a, b core.Entity) pairKey {
	if a <= b {
		return pairKey{a, b}
	}
	return pairKey{b, a}
}

// ContactTracker reports begin-contact events: a pair is reported on the
// first frame its bodies overlap and again only after they separate
type ContactTracker struct {
	touching map[pairKey]struct{}
}

func NewContactTracker() *ContactTracker {
	return &ContactTracker{touching: make(map[pairKey]struct{})}
}

// Detect returns the pairs that began touching since the previous call
// Pairs whose bodies disappeared or separated are forgotten
func (t *ContactTracker) Detect(bodies []Body) [][2]core.Entity {
	var began [][2]core.Entity
	current := make(map[pairKey]struct{}, len(t.touching))

	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			a, b := bodies[i], bodies[j]
			if !Interacts(a.Category, b.Category) {
				continue
			}
			if !Overlaps(a.BodyComponent, b.BodyComponent) {
				continue
			}
			k := keyOf(a.Entity, b.Entity)
			current[k] = struct{}{}
			if _, seen := t.touching[k]; !seen {
				began = append(began, [2]core.Entity{a.Entity, b.Entity})
			}
		}
	}

	t.touching = current
	return began
}

// Reset forgets all tracked contacts
func (t *ContactTracker) Reset() {
	clear(t.touching)
}
