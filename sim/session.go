// Package sim is the host-facing facade of the simulation core
package sim

import (
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/names"
	"github.com/lixenwraith/shiptapper/parameter"
	"github.com/lixenwraith/shiptapper/system"
	"github.com/lixenwraith/shiptapper/vmath"
)

var (
	ErrNilHost        = errors.New("sim: host is required")
	ErrTickInProgress = errors.New("sim: tick already in progress")
	ErrNotPaused      = errors.New("sim: stats can only change while paused")
	ErrWaveInProgress = errors.New("sim: wave still in progress")
	ErrGameOver       = errors.New("sim: game over")
	ErrUnknownSkill   = errors.New("sim: unknown skill")
	ErrSkillNotReady  = errors.New("sim: skill not ready")
	ErrNoPlayer       = errors.New("sim: no player ship")
)

// Options configures a session; zero fields take defaults
type Options struct {
	Arena core.Size
	Seed  uint64
	Stats component.PlayerStats
	Names *names.Generator

	// ExternalContacts disables the built-in contact detector; pairs then come only from ReportContact
	ExternalContacts bool

	// Handlers observe presentation events as Frame drains them
	Handlers []engine.EventHandler

	Logger *slog.Logger
}

// Session owns one world and its systems, and drives them from host ticks
//
// API methods are serialized by a mutex. Tick is additionally guarded
// against reentry: a tick started from inside a host callback is rejected
type Session struct {
	mu     sync.Mutex
	inTick atomic.Bool

	host   Host
	world  *engine.World
	clock  *engine.FrameClock
	output *engine.EventRouter
	runID  string
	logger *slog.Logger

	externalContacts bool

	wave      *system.WaveDirector
	player    *system.PlayerSystem
	weapons   *system.WeaponSystem
	targeting *system.TargetingSystem
	cooldown  *system.CooldownSystem
	loot      *system.LootSystem
	combat    *system.CombatSystem
	contact   *system.ContactSystem
}

// New builds a session in the idle phase; StartGame spawns the first wave
func New(host Host, opts Options) (*Session, error) {
	if host == nil {
		return nil, ErrNilHost
	}
	if opts.Arena.W <= 0 || opts.Arena.H <= 0 {
		opts.Arena = core.Size{W: parameter.ArenaWidth, H: parameter.ArenaHeight}
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	if opts.Stats.MaxHP == 0 {
		opts.Stats = component.DefaultPlayerStats()
	}
	opts.Stats.Clamp()
	if opts.Names == nil {
		opts.Names = names.Default()
	}

	runID := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("run", runID)

	res := engine.NewResource(opts.Arena, opts.Stats, vmath.NewFastRand(opts.Seed))
	w := engine.NewWorld(res)

	s := &Session{
		host:   host,
		world:  w,
		clock:  engine.NewFrameClock(),
		output: engine.NewEventRouter(res.Output),
		runID:  runID,
		logger: logger,

		externalContacts: opts.ExternalContacts,
	}
	for _, h := range opts.Handlers {
		s.output.Register(h)
	}

	s.weapons = system.NewWeaponSystem(w)
	s.player = system.NewPlayerSystem(w)
	s.loot = system.NewLootSystem(w)
	s.targeting = system.NewTargetingSystem(w, s.player, s.weapons)
	s.cooldown = system.NewCooldownSystem(w, s.loot)
	s.combat = system.NewCombatSystem(w, engine.NewEventRouter(res.Contacts), s.loot, logger)
	s.contact = system.NewContactSystem(w)
	s.contact.SetEnabled(!s.externalContacts)
	s.wave = system.NewWaveDirector(w, opts.Names, logger)

	w.AddSystem(s.player)
	w.AddSystem(system.NewAISystem(w, s.weapons))
	w.AddSystem(system.NewMotionSystem(w))
	w.AddSystem(s.contact)
	w.AddSystem(s.combat)
	w.AddSystem(s.targeting)
	w.AddSystem(s.weapons)
	w.AddSystem(s.cooldown)
	w.AddSystem(system.NewBoundsSystem(w))
	w.AddSystem(s.wave)

	logger.Info("session created", "seed", opts.Seed, "arena_w", opts.Arena.W, "arena_h", opts.Arena.H)
	return s, nil
}

// RunID identifies the session in logs
func (s *Session) RunID() string {
	return s.runID
}

// Levels returns the level names generated for this run
func (s *Session) Levels() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.wave.Levels()...)
}

// StartGame resets stats and skills, then spawns wave 1 and unpauses
func (s *Session) StartGame() {
	s.mu.Lock()
	res := s.world.Resources
	res.Player.Stats = res.Player.Defaults
	res.Player.Skills = [component.SkillCount]component.SkillState{}
	s.cooldown.Reset()
	s.wave.Reset()
	s.startWaveLocked()
	s.mu.Unlock()

	s.host.SetPaused(false)
}

// ResumeGame spawns the next wave after a clearance and unpauses
func (s *Session) ResumeGame() error {
	s.mu.Lock()
	game := s.world.Resources.Game
	if game.GameOver {
		s.mu.Unlock()
		return ErrGameOver
	}
	if game.Phase == engine.PhaseInProgress || game.Phase == engine.PhaseSpawning {
		s.mu.Unlock()
		return ErrWaveInProgress
	}
	s.startWaveLocked()
	s.mu.Unlock()

	s.host.SetPaused(false)
	return nil
}

func (s *Session) startWaveLocked() {
	s.clock.Reset()
	s.contact.SetEnabled(!s.externalContacts)
	p := s.wave.StartNextWave()
	s.logger.Info("wave started",
		"wave", p.Wave,
		"label", p.Label,
		"enemies", p.Enemies,
		"obstacles", p.Obstacles,
		"loot", p.Loot,
		"boss", p.Boss,
	)
}

// Tick advances the simulation by dt, clamped to the frame limit
// A paused host turns the tick into a no-op and drops the frame clock reference
func (s *Session) Tick(dt time.Duration) error {
	if !s.inTick.CompareAndSwap(false, true) {
		return ErrTickInProgress
	}
	defer s.inTick.Store(false)

	if s.host.Paused() {
		s.clock.Reset()
		return nil
	}
	s.run(engine.ClampDelta(dt))
	return nil
}

// Advance ticks using a wall-clock timestamp; the first call after a pause advances zero
func (s *Session) Advance(now time.Time) error {
	if !s.inTick.CompareAndSwap(false, true) {
		return ErrTickInProgress
	}
	defer s.inTick.Store(false)

	if s.host.Paused() {
		s.clock.Reset()
		return nil
	}
	s.run(s.clock.Step(now))
	return nil
}

// run executes one world update and then delivers pending host notifications
func (s *Session) run(dt time.Duration) {
	s.mu.Lock()
	res := s.world.Resources
	res.Time.Update(dt)
	s.world.Update()

	game := res.Game
	gameOver := game.GameOverPending
	cleared := game.ClearedPending && !gameOver
	game.GameOverPending = false
	game.ClearedPending = false
	if gameOver {
		s.logger.Info("game over", "wave", game.Wave, "gold", res.Player.Stats.Gold)
	} else if cleared {
		s.logger.Info("wave cleared", "wave", game.Wave, "gold", res.Player.Stats.Gold)
	}
	s.mu.Unlock()

	switch {
	case gameOver:
		s.host.SetPaused(true)
		s.host.OnGameOver()
	case cleared:
		s.host.SetPaused(true)
		s.host.OnWaveCleared()
	}
}

// ReportContact queues a begin-contact pair from an external detector
// Pairs naming removed entities resolve to no-ops
func (s *Session) ReportContact(a, b core.Entity) {
	s.world.PushContact(a, b)
}

// SetMovement sets the resolved movement input; a zero vector stops the ship
func (s *Session) SetMovement(v core.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.world.Resources.Player.Movement = v
}

// SelectTarget targets an enemy by entity
func (s *Session) SelectTarget(e core.Entity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targeting.Select(e)
}

// SelectAt targets the enemy under an arena point
func (s *Session) SelectAt(pos core.Vec2) (core.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targeting.SelectAt(pos)
}

// CycleTarget selects the next live enemy after the current target, by entity order
func (s *Session) CycleTarget() (core.Entity, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	enemies := s.world.Components.Ship.GetAllEntities()
	if len(enemies) == 0 {
		return core.NoEntity, false
	}
	current := s.world.Resources.Player.Target
	next := enemies[0]
	for i, e := range enemies {
		if e == current {
			next = enemies[(i+1)%len(enemies)]
			break
		}
	}
	return next, s.targeting.Select(next)
}

// ToggleAutoFire flips auto-fire and returns the new state
func (s *Session) ToggleAutoFire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.targeting.ToggleAutoFire()
}

// FireVolley fires one manual volley at the current firing angle
func (s *Session) FireVolley() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world.Resources.Game.GameOver {
		return 0, ErrGameOver
	}
	n := s.weapons.FireVolley()
	if n == 0 {
		return 0, ErrNoPlayer
	}
	return n, nil
}

// ActivateSkill triggers a skill if it is off cooldown
func (s *Session) ActivateSkill(skill component.Skill) error {
	if skill >= component.SkillCount {
		return ErrUnknownSkill
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.world.Resources.Game.GameOver {
		return ErrGameOver
	}
	if !s.cooldown.Activate(skill) {
		return ErrSkillNotReady
	}
	s.logger.Debug("skill activated", "skill", skill.String())
	return nil
}

// SpawnLoot places a pickup in the arena
func (s *Session) SpawnLoot(kind component.LootKind, value int, pos core.Vec2) core.Entity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return system.SpawnLoot(s.world, kind, value, pos)
}

// UpdateStats mutates the authoritative stats; only allowed while paused
func (s *Session) UpdateStats(fn func(*component.PlayerStats) error) error {
	if !s.host.Paused() {
		return ErrNotPaused
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := s.world.Resources.Player.Stats
	if err := fn(&stats); err != nil {
		return err
	}
	stats.Clamp()
	s.world.Resources.Player.Stats = stats
	return nil
}

// Stats returns a copy of the player stats
func (s *Session) Stats() component.PlayerStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Resources.Player.Stats
}

// Wave returns the current wave number and phase
func (s *Session) Wave() (int, engine.WavePhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	game := s.world.Resources.Game
	return game.Wave, game.Phase
}
