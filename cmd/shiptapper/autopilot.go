package main

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/shipyard"
	"github.com/lixenwraith/shiptapper/sim"
	"github.com/lixenwraith/shiptapper/vmath"
)

// runSummary is the outcome of a headless run
type runSummary struct {
	Ticks    int
	Wave     int
	Gold     int
	GameOver bool
}

// autopilot plays the game without a terminal: it keeps auto-fire on,
// sails for loot, uses skills when ready and shops between waves
type autopilot struct {
	session *sim.Session
	logger  *slog.Logger
}

// steer issues inputs for the latest frame
func (a *autopilot) steer(f sim.Frame) {
	if len(f.Ships) > 0 && !f.AutoFire {
		a.session.ToggleAutoFire()
	}

	for _, sk := range f.Skills {
		if !sk.Ready || !a.wants(sk.Skill, f) {
			continue
		}
		if err := a.session.ActivateSkill(sk.Skill); err != nil {
			a.logger.Debug("skill refused", "skill", sk.Skill.String(), "error", err)
		}
	}

	if f.Player == nil {
		return
	}
	move := core.Vec2{}
	best := -1.0
	for _, l := range f.Loot {
		d := vmath.Distance(f.Player.Position, l.Bounds.Center())
		if best < 0 || d < best {
			best = d
			move = l.Bounds.Center().Sub(f.Player.Position)
		}
	}
	a.session.SetMovement(move)
}

func (a *autopilot) wants(skill component.Skill, f sim.Frame) bool {
	if skill == component.SkillRepairDrones {
		return f.Stats.HP < f.Stats.MaxHP/2
	}
	return len(f.Ships) > 0
}

// shop repairs first, then buys the cheapest affordable upgrades until gold runs out
func (a *autopilot) shop() {
	err := a.session.UpdateStats(func(s *component.PlayerStats) error {
		if shipyard.NeedsRepair(*s) && s.HP < s.MaxHP {
			if bonus, err := shipyard.Repair(s); err == nil {
				a.logger.Debug("repaired", "bonus", bonus)
			}
		}
		for {
			offers := shipyard.Offers(*s)
			offers = slices.DeleteFunc(offers, func(u shipyard.Upgrade) bool { return !u.Affordable(*s) })
			if len(offers) == 0 {
				return nil
			}
			cheapest := slices.MinFunc(offers, func(x, y shipyard.Upgrade) int { return x.Cost - y.Cost })
			if err := shipyard.Purchase(s, cheapest.ID); err != nil {
				return err
			}
			a.logger.Info("upgrade purchased", "upgrade", cheapest.ID, "gold", s.Gold)
		}
	})
	if err != nil {
		a.logger.Warn("shopping failed", "error", err)
	}
}

// runHeadless plays until game over or the tick budget runs out
func runHeadless(session *sim.Session, host *gameHost, dt time.Duration, maxTicks int, logger *slog.Logger) (runSummary, error) {
	pilot := &autopilot{session: session, logger: logger}
	var summary runSummary

	session.StartGame()
	for summary.Ticks < maxTicks {
		if err := session.Tick(dt); err != nil {
			return summary, err
		}
		summary.Ticks++
		f := session.Frame()

		select {
		case <-host.gameOver:
			summary.GameOver = true
		case <-host.cleared:
			pilot.shop()
			if err := session.ResumeGame(); err != nil && !errors.Is(err, sim.ErrWaveInProgress) {
				return summary, err
			}
			continue
		default:
		}
		if summary.GameOver {
			break
		}
		pilot.steer(f)
	}

	summary.Wave, _ = session.Wave()
	summary.Gold = session.Stats().Gold
	return summary, nil
}
