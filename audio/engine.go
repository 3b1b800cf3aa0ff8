package audio

import (
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/lixenwraith/shiptapper/event"
)

// Engine plays sound cues through a system audio tool
// Without a usable backend it runs silent; playback failures never reach the game
type Engine struct {
	mu     sync.RWMutex // Protects config
	config Config
	cache  *soundCache
	mixer  *Mixer
	logger *slog.Logger

	backend *BackendConfig
	cmd     *exec.Cmd
	sink    io.WriteCloser

	running    atomic.Bool
	muted      atomic.Bool
	silentMode atomic.Bool

	wg sync.WaitGroup
}

// NewEngine creates an engine and pre-renders the combat cues
func NewEngine(cfg Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	e := &Engine{
		config: cfg,
		cache:  newSoundCache(),
		logger: logger.With("component", "audio"),
	}
	e.muted.Store(!cfg.Enabled)
	e.cache.preload()
	return e
}

// Start launches the backend and the mixer
// A missing backend is not an error: the engine enters silent mode
func (e *Engine) Start() error {
	if e.running.Load() {
		return ErrRunning
	}

	backend, err := DetectBackend()
	if err != nil {
		e.logger.Info("no audio backend, running silent")
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.backend = backend

	sink, err := e.openSink(backend)
	if err != nil {
		e.logger.Warn("audio backend failed to start, running silent", "backend", backend.Name, "error", err)
		e.silentMode.Store(true)
		e.running.Store(true)
		return nil
	}
	e.logger.Info("audio backend started", "backend", backend.Name)
	e.attach(sink)
	return nil
}

// openSink opens the device for OSS or spawns the player process for the rest
func (e *Engine) openSink(backend *BackendConfig) (io.WriteCloser, error) {
	if backend.Type == BackendOSS {
		return os.OpenFile(backend.Path, os.O_WRONLY, 0)
	}

	cmd := exec.Command(backend.Path, backend.Args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	if err := cmd.Start(); err != nil {
		stdin.Close()
		return nil, err
	}
	e.cmd = cmd

	e.wg.Add(1)
	go e.monitorProcess()
	return stdin, nil
}

// attach starts mixing into an opened sink
func (e *Engine) attach(sink io.WriteCloser) {
	e.sink = sink
	e.mixer = newMixer(sink, e.cache)
	e.mixer.Start()

	e.wg.Add(1)
	go e.monitorMixer()
	e.running.Store(true)
}

// monitorProcess watches for the player exiting
func (e *Engine) monitorProcess() {
	defer e.wg.Done()
	if err := e.cmd.Wait(); err != nil && e.running.Load() && !e.silentMode.Load() {
		e.logger.Warn("audio backend exited", "error", err)
		e.silentMode.Store(true)
	}
}

// monitorMixer watches for pipe errors
func (e *Engine) monitorMixer() {
	defer e.wg.Done()
	select {
	case err := <-e.mixer.Errors():
		e.logger.Warn("audio output failed", "error", err)
		e.silentMode.Store(true)
	case <-e.mixer.done:
	}
}

// Stop terminates the backend; safe to call more than once
func (e *Engine) Stop() {
	if !e.running.CompareAndSwap(true, false) {
		return
	}
	if e.mixer != nil {
		e.mixer.Stop()
	}
	if e.sink != nil {
		e.sink.Close()
	}
	if e.cmd != nil && e.cmd.Process != nil {
		e.cmd.Process.Kill()
	}
	e.wg.Wait()
}

// Play queues a cue; returns false when nothing will be heard
func (e *Engine) Play(cue event.SoundCue) bool {
	if !e.IsEnabled() || e.mixer == nil {
		return false
	}
	e.mu.RLock()
	vol := e.config.volume(cue)
	e.mu.RUnlock()

	e.mixer.Play(cue, vol)
	return true
}

// EventTypes subscribes the engine to sound requests
func (e *Engine) EventTypes() []event.EventType {
	return []event.EventType{event.EventSound}
}

// HandleEvent plays the cue carried by a sound event
func (e *Engine) HandleEvent(ev event.GameEvent) {
	if p, ok := ev.Payload.(*event.SoundPayload); ok {
		e.Play(p.Cue)
	}
}

// ToggleMute toggles mute state, returns true if sound is now on
func (e *Engine) ToggleMute() bool {
	muted := !e.muted.Load()
	e.muted.Store(muted)
	return !muted
}

func (e *Engine) IsMuted() bool {
	return e.muted.Load()
}

// IsEnabled returns true if running, unmuted and attached to a backend
func (e *Engine) IsEnabled() bool {
	return e.running.Load() && !e.muted.Load() && !e.silentMode.Load()
}

// IsRunning returns true if the engine is running, even in silent mode
func (e *Engine) IsRunning() bool {
	return e.running.Load()
}

// SetVolume updates master volume, clamped to 0.0-1.0
func (e *Engine) SetVolume(vol float64) {
	e.mu.Lock()
	e.config.MasterVolume = max(0, min(1, vol))
	e.mu.Unlock()
}

// Backend names the active backend, empty in silent mode
func (e *Engine) Backend() string {
	if e.backend == nil || e.silentMode.Load() {
		return ""
	}
	return e.backend.Name
}

// Stats returns played and dropped cue counts
func (e *Engine) Stats() (played, dropped uint64) {
	if e.mixer == nil {
		return 0, 0
	}
	return e.mixer.Stats()
}
