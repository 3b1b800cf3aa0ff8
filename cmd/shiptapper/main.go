package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/shiptapper/audio"
	"github.com/lixenwraith/shiptapper/config"
	"github.com/lixenwraith/shiptapper/engine"
	"github.com/lixenwraith/shiptapper/logging"
	"github.com/lixenwraith/shiptapper/sim"
	"github.com/lixenwraith/shiptapper/telemetry"
)

var (
	configPath = flag.String("config", "", "Path to a YAML config file")
	headless   = flag.Bool("headless", false, "Run the autopilot without a terminal UI")
	maxTicks   = flag.Int("ticks", 36000, "Tick budget for headless runs")
	seedFlag   = flag.Uint64("seed", 0, "RNG seed, overrides the config file")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}

	// A UI needs a terminal on both ends; anything else gets the autopilot
	interactive := !*headless && isTerminal(os.Stdin) && isTerminal(os.Stdout)

	writers, closeLog, err := logWriters(cfg.LogFile, interactive)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		return 1
	}
	defer closeLog()
	logs := logging.NewManager()
	logger := logs.Setup(cfg.LogLevel, writers...)
	slog.SetDefault(logger)

	recorder, err := telemetry.NewRecorder()
	if err != nil {
		logger.Error("telemetry unavailable", "error", err)
		return 1
	}
	handlers := []engine.EventHandler{recorder}

	var sound *audio.Engine
	if interactive {
		acfg := audio.DefaultConfig()
		acfg.Enabled = cfg.Audio.Enabled
		acfg.MasterVolume = cfg.Audio.Volume
		sound = audio.NewEngine(acfg, logger)
		if err := sound.Start(); err != nil {
			logger.Warn("audio start failed, continuing without audio", "error", err)
			sound = nil
		} else {
			defer sound.Stop()
			handlers = append(handlers, sound)
		}
	}

	host := newGameHost()
	session, err := sim.New(host, sim.Options{
		Arena:    cfg.ArenaSize(),
		Seed:     cfg.Seed,
		Stats:    cfg.PlayerStats(),
		Handlers: handlers,
		Logger:   logger,
	})
	if err != nil {
		logger.Error("session init failed", "error", err)
		return 1
	}

	if !interactive {
		summary, err := runHeadless(session, host, cfg.FrameInterval(), *maxTicks, logger)
		if err != nil {
			logger.Error("headless run failed", "error", err)
			return 1
		}
		logger.Info("run finished", "ticks", summary.Ticks, "wave", summary.Wave, "gold", summary.Gold, "game_over", summary.GameOver)
		for _, line := range formatTotals(summary.Wave, recorder.Totals()) {
			fmt.Println(line)
		}
		return 0
	}

	ui, err := newTUI(session, host, sound, recorder, cfg.ArenaSize(), cfg.FrameInterval(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		return 1
	}
	ui.run()
	return 0
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// logWriters opens the log file; headless runs also log to stderr
// The UI owns the terminal, so interactive runs with no file log nowhere
func logWriters(path string, interactive bool) ([]io.Writer, func(), error) {
	var writers []io.Writer
	closeFn := func() {}

	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, closeFn, err
			}
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, err
		}
		writers = append(writers, f)
		closeFn = func() { f.Close() }
	}
	if !interactive {
		writers = append(writers, os.Stderr)
	}
	return writers, closeFn, nil
}
