package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lane-racer/internal/config"
	"github.com/vovakirdan/lane-racer/internal/registry"
)

// loadConfig resolves the config file and applies the --fps override.
func loadConfig() (config.RacerConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagFPS > 0 {
		cfg.Screen.TickRate = flagFPS
	}
	return cfg, nil
}

// resolveSeed turns the --seed flag into a concrete seed.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// newLogger builds the process logger. Frontends that own the terminal pass
// quiet=true so nothing reaches stderr unless --log-file is set. The
// returned closer releases the log file.
func newLogger(prefix string, quiet bool) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	closer := func() {}
	switch {
	case flagLogFile != "":
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	case quiet:
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}

// signalContext returns a context cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// runFrontend plays one session on the given frontend and exits non-zero
// on startup or runtime failure.
func runFrontend(parent context.Context, frontendID string, maxTicks uint64) {
	if !registry.Exists(frontendID) {
		fmt.Fprintf(os.Stderr, "Error: unknown frontend %q\n", frontendID)
		fmt.Fprintln(os.Stderr, "Run 'racer list' to see available frontends.")
		os.Exit(1)
	}

	frontend, err := registry.Create(frontendID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating frontend: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger("racer", frontendID == "tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := resolveSeed()
	logger.Debug("starting", "frontend", frontendID, "seed", seed, "tick_rate", cfg.Screen.TickRate)

	ctx, stop := signalContext(parent)
	runErr := frontend.Run(ctx, registry.Session{
		Config:   cfg,
		Runtime:  cfg.Runtime(seed),
		Logger:   logger,
		MaxTicks: maxTicks,
	})
	stop()
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
