package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/faiface/beep"
	rl "github.com/gen2brain/raylib-go/raylib"
	_ "github.com/joho/godotenv/autoload"

	"github.com/pthm-cable/driftfield/background"
	"github.com/pthm-cable/driftfield/config"
	"github.com/pthm-cable/driftfield/driver"
	"github.com/pthm-cable/driftfield/prefs"
	"github.com/pthm-cable/driftfield/renderer"
	"github.com/pthm-cable/driftfield/scene"
	"github.com/pthm-cable/driftfield/sound"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without a window")
	logStats := flag.Bool("log-stats", false, "Output stats via slog")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Uint64("max-ticks", 0, "Stop after N frames (0 = unlimited)")
	pageName := flag.String("page", "home", "Page to open: home or workspace")
	hash := flag.String("hash", "", "Workspace file to open, e.g. #about")
	prefsPath := flag.String("prefs", "", "Preference database path (empty = use config, \"none\" = do not persist)")
	notify := flag.Bool("notify", false, "Show desktop notifications for subsystem failures")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	page, err := scene.ParsePage(*pageName)
	if err != nil {
		slog.Error("invalid page", "error", err)
		os.Exit(1)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var reporter scene.Reporter = scene.LogReporter{}
	if *notify {
		reporter = scene.MultiReporter{scene.LogReporter{}, scene.NotifyReporter{Title: cfg.Screen.Title}}
	}

	opts := scene.Options{
		Seed:      rngSeed,
		Page:      page,
		Hash:      *hash,
		LogStats:  *logStats,
		OutputDir: *outputDir,
		Sound:     openSpeaker(cfg, *headless),
		Reporter:  reporter,
	}

	path := cfg.Prefs.Path
	if *prefsPath != "" {
		path = *prefsPath
	}
	if path != "" && path != "none" {
		store, err := prefs.Open(path)
		if err != nil {
			slog.Warn("theme will not persist", "error", err)
		} else {
			defer store.Close()
			opts.Prefs = store
		}
	}

	if *headless {
		// Headless mode: the field draws into an in-memory surface
		region := &background.MemoryRegion{W: cfg.Screen.Width, H: cfg.Screen.Height}
		host := background.MapHost{cfg.Field.MountID: region}

		s, err := scene.New(ctx, cfg, host, nil, opts)
		if err != nil {
			slog.Error("failed to create scene", "error", err)
			os.Exit(1)
		}
		defer s.Unload()

		slog.Info("starting headless run",
			"seed", rngSeed,
			"page", page.String(),
			"max_ticks", *maxTicks,
		)

		var src driver.FrameSource = driver.NewTicker(cfg.Derived.HeadlessInterval)
		if *maxTicks > 0 {
			src = driver.Limit(src, *maxTicks)
		}
		d := driver.New(src, s.HeadlessFrame)
		if err := d.Run(ctx); err != nil {
			slog.Error("render loop failed", "error", err)
		}
		slog.Info("headless run finished", "frames", d.Frames())
		return
	}

	// Graphical mode
	if cfg.Screen.Resizable {
		rl.SetConfigFlags(rl.FlagWindowResizable)
	}
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.HideCursor()

	s, err := scene.New(ctx, cfg, renderer.NewWindowHost(cfg.Field.MountID), renderer.WindowSize{}, opts)
	if err != nil {
		slog.Error("failed to create scene", "error", err)
		os.Exit(1)
	}
	defer s.Unload()

	var src driver.FrameSource = renderer.WindowFrames{}
	if *maxTicks > 0 {
		src = driver.Limit(src, *maxTicks)
	}
	d := driver.New(src, s.Frame)
	if err := d.Run(ctx); err != nil {
		slog.Error("render loop failed", "error", err)
	}
}

// openSpeaker initializes audio output, or returns a silent output when
// sound is disabled or the device cannot be opened.
func openSpeaker(cfg *config.Config, headless bool) sound.Output {
	if !cfg.Sound.Enabled || headless {
		return sound.Discard{}
	}
	spk, err := sound.NewSpeaker(beep.SampleRate(cfg.Sound.SampleRate), time.Duration(cfg.Sound.BufferMs)*time.Millisecond)
	if err != nil {
		slog.Warn("sound disabled", "error", err)
		return sound.Discard{}
	}
	return spk
}
