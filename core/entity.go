package core

// Entity is a unique identifier for a simulation entity
type Entity uint64

// NoEntity is never allocated; used as the empty reference
const NoEntity Entity = 0

// Category classifies a body for contact resolution
type Category uint8

const (
	CategoryNone             Category = 0
	CategoryPlayer           Category = 1 << 0
	CategoryEnemy            Category = 1 << 1
	CategoryPlayerProjectile Category = 1 << 2
	CategoryEnemyProjectile  Category = 1 << 3
	CategoryObstacle         Category = 1 << 4
	CategoryLoot             Category = 1 << 5
)

// CategoryProjectile matches either projectile side
const CategoryProjectile = CategoryPlayerProjectile | CategoryEnemyProjectile

// Has reports whether any bit of mask is set in c
func (c Category) Has(mask Category) bool {
	return c&mask != 0
}

func (c Category) String() string {
	switch c {
	case CategoryNone:
		return "none"
	case CategoryPlayer:
		return "player"
	case CategoryEnemy:
		return "enemy"
	case CategoryPlayerProjectile:
		return "player_projectile"
	case CategoryEnemyProjectile:
		return "enemy_projectile"
	case CategoryObstacle:
		return "obstacle"
	case CategoryLoot:
		return "loot"
	default:
		return "mixed"
	}
}
