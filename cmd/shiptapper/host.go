package main

import "sync/atomic"

// gameHost owns the pause flag and turns session callbacks into channel signals
// the frame loop selects on
type gameHost struct {
	paused   atomic.Bool
	gameOver chan struct{}
	cleared  chan struct{}
}

func newGameHost() *gameHost {
	h := &gameHost{
		gameOver: make(chan struct{}, 1),
		cleared:  make(chan struct{}, 1),
	}
	h.paused.Store(true)
	return h
}

func (h *gameHost) Paused() bool     { return h.paused.Load() }
func (h *gameHost) SetPaused(p bool) { h.paused.Store(p) }
func (h *gameHost) OnGameOver()      { signal(h.gameOver) }
func (h *gameHost) OnWaveCleared()   { signal(h.cleared) }

// signal is a non-blocking send; a pending signal already covers this one
func signal(ch chan struct{}) {
	select {
	case ch <- struct{}{}:
	default:
	}
}
