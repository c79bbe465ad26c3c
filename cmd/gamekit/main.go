package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/gamekit/audio"
	"github.com/lixenwraith/gamekit/config"
	"github.com/lixenwraith/gamekit/engine"
	"github.com/lixenwraith/gamekit/input"
	"github.com/lixenwraith/gamekit/logger"
	"github.com/lixenwraith/gamekit/modifier"
	"github.com/lixenwraith/gamekit/seed"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write logs to the log directory")
	seedFlag    = flag.String("seed", "", "Seed token, overrides COMPILE_TIME_SEED")
	seedHexFlag = flag.String("seed-hex", "", "Exact seed in hex, as printed by a previous run")
	listFlag    = flag.Bool("list", false, "Print the active modifiers and exit")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fatal("%v", err)
	}
}

// run owns every deferred cleanup so the log file is closed before main exits
func run() error {
	if _, err := config.LoadDotEnv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if *debugFlag {
		cfg.Debug = true
	}

	log, closer, err := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Debug:  cfg.Debug,
		Dir:    cfg.LogDir,
	})
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer closer.Close()

	src, err := seedSource(cfg)
	if err != nil {
		log.WithError(err).Error("seed resolution failed")
		return err
	}
	runID := uuid.NewString()
	runLog := log.WithFields(logrus.Fields{
		"run":           runID,
		"seed":          src.Seed().String(),
		"deterministic": src.Deterministic(),
	})
	runLog.Info("run starting")

	if *listFlag {
		active, err := selectModifiers(engine.NewApp(), nil, src.Seed(), runLog)
		if err != nil {
			runLog.WithError(err).Error("modifier selection failed")
			return err
		}
		fmt.Printf("seed:   %s\nactive: %s\n", src.Seed(), active)
		return nil
	}

	if err := runScreen(cfg, src, runID, runLog); err != nil {
		runLog.WithError(err).Error("run failed")
		return err
	}
	runLog.Info("run finished")
	return nil
}

// seedSource resolves precedence: -seed-hex, -seed, linker token, COMPILE_TIME_SEED, entropy
func seedSource(cfg *config.Config) (*seed.Source, error) {
	if *seedHexFlag != "" {
		s, err := seed.ParseHex(*seedHexFlag)
		if err != nil {
			return nil, fmt.Errorf("-seed-hex: %w", err)
		}
		return seed.Fixed(s), nil
	}
	if *seedFlag != "" {
		return seed.NewSource(*seedFlag), nil
	}
	return seed.FromBuild(cfg.SeedToken), nil
}

// selectModifiers installs pointer tracking, applies the pool and installs the result
func selectModifiers(app *engine.App, cam input.Camera, s seed.Seed, log logrus.FieldLogger) (modifier.ActiveModifiers, error) {
	app.AddPlugins(input.MouseCoordsPlugin{Camera: cam})

	pool, err := buildPool(s)
	if err != nil {
		return modifier.ActiveModifiers{}, fmt.Errorf("build modifier pool: %w", err)
	}
	active := pool.WithLogger(log).Apply(app)
	app.AddPlugins(active)
	return active, nil
}

// startAudio returns a cue player, or nil when audio is disabled or unavailable
func startAudio(cfg *config.Config, log logrus.FieldLogger) *audio.CueManager {
	if !cfg.Audio {
		return nil
	}
	cues := audio.NewCueManager()
	if err := cues.Initialize(); err != nil {
		log.WithError(err).Warn("audio initialization failed, continuing without audio")
		return nil
	}
	return cues
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

// errCrashed marks a run that ended in a recovered panic
var errCrashed = errors.New("crashed")

// crashReport prints the panic and its stack; the caller turns it into an error
func crashReport(r any) {
	fmt.Fprintf(os.Stderr, "\n\x1b[31mGAMEKIT CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
}
