package system

import (
	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/parameter"
)

// CooldownSystem decays skill cooldowns and active windows
type CooldownSystem struct {
	world *engine.World
	loot  *LootSystem
}

func NewCooldownSystem(world *engine.World, loot *LootSystem) *CooldownSystem {
	return &CooldownSystem{world: world, loot: loot}
}

func (s *CooldownSystem) Name() string {
	return "cooldown"
}

func (s *CooldownSystem) Priority() int {
	return parameter.PriorityCooldown
}

func (s *CooldownSystem) Update() {
	dt := s.world.Resources.Time.DeltaTime
	skills := &s.world.Resources.Player.Skills
	for i := range skills {
		skills[i].Cooldown = max(0, skills[i].Cooldown-dt)
		skills[i].Active = max(0, skills[i].Active-dt)
	}
}

// Activate starts a ready skill; returns false while it is cooling down
func (s *CooldownSystem) Activate(skill component.Skill) bool {
	if skill >= component.SkillCount {
		return false
	}
	res := s.world.Resources.Player
	state := &res.Skills[skill]
	if !state.Ready() || !res.Stats.Alive() {
		return false
	}

	state.Cooldown = skill.Cooldown()
	state.Active = skill.Duration()
	if skill == component.SkillRepairDrones {
		s.loot.Heal(parameter.RepairDronesHeal)
	}
	return true
}

// Reset makes every skill ready
func (s *CooldownSystem) Reset() {
	s.world.Resources.Player.Skills = [component.SkillCount]component.SkillState{}
}
