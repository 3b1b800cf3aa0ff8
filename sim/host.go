package sim

//go:generate go tool mockgen -destination=./mocks/host_mock.go -package=mocks . Host

// Host is the application side of a session: it owns the pause flag and
// receives lifecycle notifications
//
// Callbacks run on the ticking goroutine after the session lock is released,
// so they may call back into the session, except Tick or Advance
type Host interface {
	// Paused is read at the top of every tick
	Paused() bool

	// SetPaused is written on wave clearance, game over, start and resume
	SetPaused(paused bool)

	// OnGameOver fires exactly once when the player's hull reaches zero
	OnGameOver()

	// OnWaveCleared fires exactly once per cleared wave
	OnWaveCleared()
}
