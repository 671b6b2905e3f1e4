package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes timer events to an slog.Logger.
// Useful for development when you want to see timer events in console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("timer_id", event.TimerID),
		slog.String("category", event.Category.String()),
	}
	if event.Name != "" {
		attrs = append(attrs, slog.String("name", event.Name))
	}

	switch {
	case event.Tick != nil:
		attrs = append(attrs,
			slog.Uint64("seq", event.Tick.Seq),
			slog.Duration("remaining", event.Tick.Remaining),
			slog.Duration("elapsed", event.Tick.Elapsed),
			slog.String("display", event.Tick.Display),
		)
	case event.StateChange != nil:
		attrs = append(attrs,
			slog.String("old_state", event.StateChange.OldState),
			slog.String("new_state", event.StateChange.NewState),
		)
		if event.StateChange.Reason != "" {
			attrs = append(attrs, slog.String("reason", event.StateChange.Reason))
		}
	case event.Lap != nil:
		attrs = append(attrs,
			slog.Int("index", event.Lap.Index),
			slog.String("display", event.Lap.Display),
		)
	case event.Drift != nil:
		attrs = append(attrs,
			slog.Time("expected", event.Drift.Expected),
			slog.Time("observed", event.Drift.Observed),
			slog.Duration("lost", event.Drift.Lost),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "timer", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
