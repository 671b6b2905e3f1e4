// Command tickdown runs a countdown or count-up timer in the terminal.
//
// The timer ticks once per second and corrects itself against the wall
// clock, so a laptop that sleeps mid-run shows the right time on wake.
//
// Usage:
//
//	tickdown [flags]
//
// Flags:
//
//	-duration string    Timer duration: milliseconds or Go syntax like 90s, 25m
//	-format string      Display template, tokens Y M D h m s S (default "mm:ss")
//	-mode string        Direction: - (count down) or + (count up), plus aliases
//	-name string        Timer name used in logs and events
//	-config string      YAML defaults file
//	-location string    Time zone for the display (default: local)
//	-auto-record        Record a lap whenever the timer is stopped
//	-debug              Log every tick
//	-interactive        Run the command prompt
//	-tui                Run full screen
//	-chime              Play a sound when the full-screen timer ends (default true)
//	-event-log string   Write timer events to a .tlog file
//	-trace              Mirror timer events to stderr
//	-metrics-addr string  Serve Prometheus metrics on this address
//	-log-level string   Log level: debug, info, warn, error (default "info")
//
// Examples:
//
//	# Pomodoro
//	tickdown -duration 25m
//
//	# Stopwatch-style count up with hours, keeping an event log
//	tickdown -duration 2h -mode + -format hh:mm:ss -event-log run.tlog
//
//	# Full screen with a defaults file
//	tickdown -tui -config ~/.config/tickdown.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/tickdown/tickdown/cmd/tickdown/interactive"
	"github.com/tickdown/tickdown/cmd/tickdown/tui"
	"github.com/tickdown/tickdown/pkg/timer"
)

// Config holds the command configuration.
type Config struct {
	Duration    string
	Format      string
	Mode        string
	Name        string
	ConfigFile  string
	Location    string
	AutoRecord  bool
	Debug       bool
	Interactive bool
	TUI         bool
	Chime       bool
	EventLog    string
	Trace       bool
	MetricsAddr string
	LogLevel    string
}

var config Config

func init() {
	flag.StringVar(&config.Duration, "duration", "", "Timer duration: milliseconds or Go syntax like 90s, 25m")
	flag.StringVar(&config.Format, "format", "", "Display template, tokens Y M D h m s S (default \"mm:ss\")")
	flag.StringVar(&config.Mode, "mode", "", "Direction: - (count down) or + (count up), plus aliases")
	flag.StringVar(&config.Name, "name", "", "Timer name used in logs and events")
	flag.StringVar(&config.ConfigFile, "config", "", "YAML defaults file")
	flag.StringVar(&config.Location, "location", "", "Time zone for the display (default: local)")
	flag.BoolVar(&config.AutoRecord, "auto-record", false, "Record a lap whenever the timer is stopped")
	flag.BoolVar(&config.Debug, "debug", false, "Log every tick")
	flag.BoolVar(&config.Interactive, "interactive", false, "Run the command prompt")
	flag.BoolVar(&config.TUI, "tui", false, "Run full screen")
	flag.BoolVar(&config.Chime, "chime", true, "Play a sound when the full-screen timer ends")
	flag.StringVar(&config.EventLog, "event-log", "", "Write timer events to a .tlog file")
	flag.BoolVar(&config.Trace, "trace", false, "Mirror timer events to stderr")
	flag.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090)")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
}

func main() {
	flag.Parse()

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	if cfg.Interactive && cfg.TUI {
		return fmt.Errorf("-interactive and -tui are mutually exclusive")
	}

	level, err := parseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}

	defaults, overrides, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	// The prompt and the full screen take over the terminal.
	out := &switchWriter{w: os.Stderr}
	if cfg.TUI {
		out.Set(io.Discard)
	}
	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	events, err := newEventSink(cfg, logger, level)
	if err != nil {
		return err
	}
	defer func() {
		if err := events.Close(); err != nil {
			logger.Error("closing event sinks", "error", err)
		}
	}()

	overrides.Logger = logger
	overrides.EventLogger = events
	overrides.Metrics = timer.NewMetrics()

	t, err := timer.NewFactory(defaults).New(overrides)
	if err != nil {
		return err
	}

	if cfg.MetricsAddr != "" {
		srv, _, err := serveMetrics(cfg.MetricsAddr, t, logger)
		if err != nil {
			return err
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	switch {
	case cfg.Interactive:
		return runInteractive(ctx, t, out)
	case cfg.TUI:
		return runTUI(ctx, t, cfg.Chime, logger)
	default:
		return runPlain(ctx, t, os.Stdout)
	}
}

// buildOptions splits the configuration into file defaults and flag
// overrides. Flags win over the file.
func buildOptions(cfg Config) (defaults, overrides timer.Options, err error) {
	if cfg.ConfigFile != "" {
		defaults, err = timer.LoadOptions(cfg.ConfigFile)
		if err != nil {
			return timer.Options{}, timer.Options{}, err
		}
	}

	d, err := timer.ParseDuration(cfg.Duration)
	if err != nil {
		return timer.Options{}, timer.Options{}, err
	}
	if cfg.Mode != "" {
		if _, err := timer.ParseMode(cfg.Mode); err != nil {
			return timer.Options{}, timer.Options{}, err
		}
	}

	overrides = timer.Options{
		Duration:         d,
		Format:           cfg.Format,
		Mode:             cfg.Mode,
		Name:             cfg.Name,
		Debug:            cfg.Debug,
		AutoRecordOnStop: cfg.AutoRecord,
	}
	if cfg.Location != "" {
		loc, err := time.LoadLocation(cfg.Location)
		if err != nil {
			return timer.Options{}, timer.Options{}, fmt.Errorf("invalid location %q: %w", cfg.Location, err)
		}
		overrides.Location = loc
	}
	return defaults, overrides, nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid log level %q (use debug, info, warn, error)", s)
	}
	return level, nil
}

func runInteractive(ctx context.Context, t *timer.Timer, out *switchWriter) error {
	session, err := interactive.New(t)
	if err != nil {
		return err
	}
	out.Set(session.Stdout())
	defer out.Set(os.Stderr)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	session.Run(ctx, cancel)
	return nil
}

func runTUI(ctx context.Context, t *timer.Timer, withChime bool, logger *slog.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	var chime tui.Chime = tui.NoChime{}
	if withChime {
		c, err := tui.NewSpeakerChime()
		if err != nil {
			// Non-fatal, fall back to the terminal bell.
			logger.Warn("audio initialization failed", "error", err)
			c = tui.NewBell(screen)
		}
		chime = c
	}
	defer chime.Close()

	return tui.New(screen, t, chime).Run(ctx)
}
