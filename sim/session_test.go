package sim

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lixenwraith/shiptapper/component"
	"github.com/lixenwraith/shiptapper/core"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/event"
	"github.com/lixenwraith/shiptapper/sim/mocks"
)

const frame = 16 * time.Millisecond

type recorder struct {
	seen []event.EventType
}

func (r *recorder) EventTypes() []event.EventType {
	return []event.EventType{event.EventWaveStarted, event.EventWaveCleared, event.EventGameOver}
}

func (r *recorder) HandleEvent(ev event.GameEvent) {
	r.seen = append(r.seen, ev.Type)
}

func newSession(t *testing.T, host Host, handlers ...engine.EventHandler) *Session {
	t.Helper()
	s, err := New(host, Options{
		Seed:             7,
		ExternalContacts: true,
		Handlers:         handlers,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	return s
}

// clearArena sinks every enemy and removes all loot
func clearArena(s *Session) {
	w := s.world
	for _, e := range w.Components.Ship.GetAllEntities() {
		w.DestroyEntity(e)
	}
	for _, e := range w.Components.Loot.GetAllEntities() {
		w.DestroyEntity(e)
	}
}

func enemyShot(s *Session, damage int) core.Entity {
	w := s.world
	pos := s.Frame().Player.Position
	e := w.CreateEntity()
	w.Components.Body.SetComponent(e, component.BodyComponent{
		Position: pos,
		Size:     core.Size{W: 9, H: 9},
		Category: core.CategoryEnemyProjectile,
	})
	w.Components.Projectile.SetComponent(e, component.ProjectileComponent{
		Side:       component.SideEnemy,
		Functional: true,
		Damage:     damage,
		Start:      pos,
		End:        pos,
		Travel:     time.Second,
	})
	return e
}

func TestNewRequiresHost(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNilHost)
}

func TestStartGameSpawnsFirstWave(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(false)

	rec := &recorder{}
	s := newSession(t, host, rec)
	s.StartGame()

	f := s.Frame()
	assert.Equal(t, 1, f.Wave)
	assert.Equal(t, engine.PhaseInProgress, f.Phase)
	assert.Len(t, f.Ships, 2)
	assert.Len(t, f.Obstacles, 1)
	assert.Empty(t, f.Loot)
	require.NotNil(t, f.Player)
	assert.Contains(t, f.Label, "Wave 1: ")
	assert.Equal(t, []event.EventType{event.EventWaveStarted}, rec.seen)
	assert.NotEmpty(t, f.Events)

	assert.Empty(t, s.Frame().Events, "events are drained once")
	assert.NotEmpty(t, s.RunID())
}

func TestPausedTickIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(false)
	host.EXPECT().Paused().Return(true).Times(3)

	s := newSession(t, host)
	s.StartGame()
	before := s.Frame()

	require.NoError(t, s.Tick(frame))
	require.NoError(t, s.Tick(time.Second))
	require.NoError(t, s.Advance(time.Now()))

	after := s.Frame()
	assert.Zero(t, after.Elapsed)
	assert.Equal(t, before.Ships, after.Ships)
}

func TestTickClampsDelta(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(false)
	host.EXPECT().Paused().Return(false).AnyTimes()

	s := newSession(t, host)
	s.StartGame()
	require.NoError(t, s.Tick(5*time.Second))
	assert.Equal(t, 100*time.Millisecond, s.Frame().Elapsed)
}

func TestAdvanceResetsAcrossPause(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(false)
	paused := false
	host.EXPECT().Paused().DoAndReturn(func() bool { return paused }).AnyTimes()

	s := newSession(t, host)
	s.StartGame()

	t0 := time.Now()
	require.NoError(t, s.Advance(t0))
	require.NoError(t, s.Advance(t0.Add(50*time.Millisecond)))
	assert.Equal(t, 50*time.Millisecond, s.Frame().Elapsed)

	paused = true
	require.NoError(t, s.Advance(t0.Add(10*time.Second)))
	paused = false
	require.NoError(t, s.Advance(t0.Add(20*time.Second)))
	assert.Equal(t, 50*time.Millisecond, s.Frame().Elapsed, "no time debt across a pause")

	require.NoError(t, s.Advance(t0.Add(20*time.Second+30*time.Millisecond)))
	assert.Equal(t, 80*time.Millisecond, s.Frame().Elapsed)
}

func TestReportContactFromDetectorGoroutine(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(gomock.Any()).AnyTimes()
	host.EXPECT().Paused().Return(false).AnyTimes()
	host.EXPECT().OnWaveCleared().AnyTimes()
	host.EXPECT().OnGameOver().AnyTimes()

	s := newSession(t, host)
	s.StartGame()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			// Unknown entities resolve to no-ops
			s.ReportContact(core.Entity(100000+i), core.Entity(200000+i))
		}
	}()
	for i := 0; i < 100; i++ {
		require.NoError(t, s.Tick(frame))
	}
	wg.Wait()
	require.NoError(t, s.Tick(frame))

	assert.NotZero(t, s.world.Resources.Time.FrameNumber())
}

func TestWaveClearedFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().Paused().Return(false).AnyTimes()
	gomock.InOrder(
		host.EXPECT().SetPaused(false),
		host.EXPECT().SetPaused(true),
		host.EXPECT().OnWaveCleared().Times(1),
	)

	s := newSession(t, host)
	s.StartGame()
	clearArena(s)

	for i := 0; i < 5; i++ {
		require.NoError(t, s.Tick(frame))
	}
	_, phase := s.Wave()
	assert.Equal(t, engine.PhaseCleared, phase)
}

func TestResumeGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().Paused().Return(false).AnyTimes()
	host.EXPECT().SetPaused(gomock.Any()).AnyTimes()
	host.EXPECT().OnWaveCleared()

	s := newSession(t, host)
	s.StartGame()
	assert.ErrorIs(t, s.ResumeGame(), ErrWaveInProgress)

	clearArena(s)
	require.NoError(t, s.Tick(frame))
	require.NoError(t, s.ResumeGame())

	wave, phase := s.Wave()
	assert.Equal(t, 2, wave)
	assert.Equal(t, engine.PhaseInProgress, phase)
	assert.Len(t, s.Frame().Ships, 3)
}

func TestGameOverFiresOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().Paused().Return(false).AnyTimes()
	gomock.InOrder(
		host.EXPECT().SetPaused(false),
		host.EXPECT().SetPaused(true),
		host.EXPECT().OnGameOver().Times(1),
	)

	s := newSession(t, host)
	s.StartGame()
	s.world.Resources.Player.Stats.HP = 10

	player := s.world.Resources.Player.Entity
	s.ReportContact(player, enemyShot(s, 50))
	s.ReportContact(enemyShot(s, 50), player)
	require.NoError(t, s.Tick(frame))

	s.ReportContact(player, enemyShot(s, 50))
	require.NoError(t, s.Tick(frame))

	assert.Zero(t, s.Stats().HP)
	assert.ErrorIs(t, s.ResumeGame(), ErrGameOver)
	_, err := s.FireVolley()
	assert.ErrorIs(t, err, ErrGameOver)
}

func TestTickIsNotReentrant(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().Paused().Return(false).AnyTimes()
	host.EXPECT().SetPaused(gomock.Any()).AnyTimes()

	s := newSession(t, host)
	host.EXPECT().OnWaveCleared().Do(func() {
		assert.ErrorIs(t, s.Tick(frame), ErrTickInProgress)
		assert.ErrorIs(t, s.Advance(time.Now()), ErrTickInProgress)
		// other API calls stay available from the callback
		assert.Equal(t, 1, s.Frame().Wave)
	})

	s.StartGame()
	clearArena(s)
	require.NoError(t, s.Tick(frame))
	require.NoError(t, s.Tick(frame), "guard is released after the tick")
}

func TestUpdateStatsRequiresPause(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	paused := false
	host.EXPECT().Paused().DoAndReturn(func() bool { return paused }).AnyTimes()

	s := newSession(t, host)
	grant := func(st *component.PlayerStats) error {
		st.Gold += 1000
		st.HP = 9999
		return nil
	}

	assert.ErrorIs(t, s.UpdateStats(grant), ErrNotPaused)
	assert.Zero(t, s.Stats().Gold)

	paused = true
	require.NoError(t, s.UpdateStats(grant))
	assert.Equal(t, 1000, s.Stats().Gold)
	assert.Equal(t, s.Stats().MaxHP, s.Stats().HP, "clamped to max")

	boom := errors.New("boom")
	err := s.UpdateStats(func(st *component.PlayerStats) error {
		st.Gold = 0
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1000, s.Stats().Gold, "failed updates are discarded")
}

func TestStartGameResetsStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().Paused().Return(true).AnyTimes()
	host.EXPECT().SetPaused(false).Times(2)

	s := newSession(t, host)
	s.StartGame()
	require.NoError(t, s.UpdateStats(func(st *component.PlayerStats) error {
		st.Gold = 5000
		st.CannonCount = 3
		return nil
	}))

	s.StartGame()
	assert.Equal(t, component.DefaultPlayerStats(), s.Stats())
	wave, _ := s.Wave()
	assert.Equal(t, 1, wave)
}

func TestTargetingAndSkills(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(false)

	s := newSession(t, host)
	s.StartGame()

	first, ok := s.CycleTarget()
	require.True(t, ok)
	second, ok := s.CycleTarget()
	require.True(t, ok)
	assert.NotEqual(t, first, second)
	third, _ := s.CycleTarget()
	assert.Equal(t, first, third)

	assert.True(t, s.ToggleAutoFire())
	f := s.Frame()
	assert.Equal(t, first, f.Target)
	assert.NotEmpty(t, f.Projectiles)

	require.NoError(t, s.ActivateSkill(component.SkillRapidFire))
	assert.ErrorIs(t, s.ActivateSkill(component.SkillRapidFire), ErrSkillNotReady)
	assert.ErrorIs(t, s.ActivateSkill(component.SkillCount), ErrUnknownSkill)
	assert.True(t, s.Frame().Skills[component.SkillRapidFire].Active)
}

func TestSpawnLootAndCollect(t *testing.T) {
	ctrl := gomock.NewController(t)
	host := mocks.NewMockHost(ctrl)
	host.EXPECT().SetPaused(false)
	host.EXPECT().Paused().Return(false).AnyTimes()

	s := newSession(t, host)
	s.StartGame()
	player := s.world.Resources.Player.Entity
	pos := s.Frame().Player.Position

	loot := s.SpawnLoot(component.LootBonusGold, 120, pos)
	s.ReportContact(loot, player)
	s.ReportContact(player, loot)
	require.NoError(t, s.Tick(frame))

	assert.Equal(t, 120, s.Stats().Gold)
	for _, ev := range s.Frame().Events {
		if ev.Type == event.EventFloatingText {
			assert.True(t, ev.Payload.(*event.FloatingTextPayload).Critical)
		}
	}
}
