package main

import (
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/sketchbook/config"
	"github.com/pthm-cable/sketchbook/game"
)

func main() {
	// CLI flags
	sketch := flag.String("sketch", game.SketchPlayground, "Sketch to run: "+strings.Join(game.Sketches, ", "))
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	statsWindow := flag.Float64("stats-window", 0, "Stats window size in seconds (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	sound := flag.Bool("sound", false, "Play a pop for every firework burst")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "path", *configPath, "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	opts := game.Options{
		Sketch:         *sketch,
		Seed:           rngSeed,
		LogStats:       *logStats,
		StatsWindowSec: *statsWindow,
		OutputDir:      *outputDir,
		Headless:       *headless,
		Sound:          *sound,
	}

	if *headless {
		g, err := game.NewGameWithOptions(opts)
		if err != nil {
			slog.Error("failed to start sketch", "sketch", *sketch, "error", err)
			os.Exit(1)
		}
		defer g.Unload()

		slog.Info("starting headless sketch",
			"sketch", *sketch,
			"seed", rngSeed,
			"config", *configPath,
			"max_ticks", *maxTicks,
		)

		for {
			g.UpdateHeadless()

			if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
				slog.Info("max ticks reached", "tick", g.Tick())
				return
			}
		}
	}

	// Graphical mode
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Sketchbook - "+*sketch)
	if !rl.IsWindowReady() {
		slog.Error("failed to start sketch", "sketch", *sketch, "error", game.ErrNoSurface)
		os.Exit(1)
	}
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g, err := game.NewGameWithOptions(opts)
	if err != nil {
		rl.CloseWindow()
		slog.Error("failed to start sketch", "sketch", *sketch, "error", err)
		os.Exit(1)
	}

	slog.Info("starting sketch", "sketch", *sketch, "seed", rngSeed, "config", *configPath)

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && int(g.Tick()) >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Tick())
			break
		}
	}

	g.Unload()
	rl.CloseWindow()
}
