package timer

import (
	"log/slog"
	"time"

	"github.com/tickdown/tickdown/pkg/clock"
	"github.com/tickdown/tickdown/pkg/datefmt"
	"github.com/tickdown/tickdown/pkg/log"
)

// DefaultName is the timer name used when none is configured.
const DefaultName = "timer"

// Options configures a Timer. Zero values mean "not set" and fall back to
// the defaults the options are merged onto.
type Options struct {
	// Duration is required and must be positive. It is floored to whole
	// seconds at construction.
	Duration time.Duration

	// Format is the datefmt template for the display.
	Format string

	// Mode is a mode alias, see ParseMode.
	Mode string

	// Debug enables per-tick operational logging.
	Debug bool

	// Name labels log records and events.
	Name string

	// AutoRecordOnStop records a lap whenever a running timer is stopped.
	AutoRecordOnStop bool

	// Location is the zone the display is rendered in. Defaults to time.Local.
	Location *time.Location

	// Clock drives ticks. Defaults to the system clock.
	Clock clock.Clock

	// Logger receives operational logs. Defaults to slog.Default().
	Logger *slog.Logger

	// EventLogger receives structured timer events.
	EventLogger log.Logger

	// Metrics collects counters, shared between timers when set.
	Metrics *Metrics
}

// DefaultOptions returns a fresh copy of the built-in defaults.
func DefaultOptions() Options {
	return Options{
		Format: datefmt.DefaultFormat,
		Mode:   "-",
		Name:   DefaultName,
	}
}

// Merge returns a copy of o with every non-zero field of over laid on top.
// Neither operand is modified.
func (o Options) Merge(over Options) Options {
	if over.Duration != 0 {
		o.Duration = over.Duration
	}
	if over.Format != "" {
		o.Format = over.Format
	}
	if over.Mode != "" {
		o.Mode = over.Mode
	}
	if over.Debug {
		o.Debug = true
	}
	if over.Name != "" {
		o.Name = over.Name
	}
	if over.AutoRecordOnStop {
		o.AutoRecordOnStop = true
	}
	if over.Location != nil {
		o.Location = over.Location
	}
	if over.Clock != nil {
		o.Clock = over.Clock
	}
	if over.Logger != nil {
		o.Logger = over.Logger
	}
	if over.EventLogger != nil {
		o.EventLogger = over.EventLogger
	}
	if over.Metrics != nil {
		o.Metrics = over.Metrics
	}
	return o
}

// Factory builds timers from an immutable defaults baseline.
type Factory struct {
	defaults Options
}

// NewFactory returns a factory whose baseline is DefaultOptions merged with
// defaults.
func NewFactory(defaults Options) *Factory {
	return &Factory{defaults: DefaultOptions().Merge(defaults)}
}

// Defaults returns a copy of the factory baseline.
func (f *Factory) Defaults() Options {
	return f.defaults
}

// Configure returns a new factory with o merged into the baseline. The
// receiver is left unchanged.
func (f *Factory) Configure(o Options) *Factory {
	return &Factory{defaults: f.defaults.Merge(o)}
}

// New creates a timer from the baseline merged with o.
func (f *Factory) New(o Options) (*Timer, error) {
	return newTimer(f.defaults.Merge(o))
}

// New creates a timer from DefaultOptions merged with o.
func New(o Options) (*Timer, error) {
	return newTimer(DefaultOptions().Merge(o))
}
