package log

import (
	"github.com/sirupsen/logrus"
)

// LogrusAdapter writes timer events to a logrus logger at Debug level.
type LogrusAdapter struct {
	logger *logrus.Logger
}

// NewLogrusAdapter creates a LogrusAdapter. A nil logger uses the logrus
// standard logger.
func NewLogrusAdapter(logger *logrus.Logger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusAdapter{logger: logger}
}

// Log writes the event with its payload flattened into fields.
func (a *LogrusAdapter) Log(event Event) {
	fields := logrus.Fields{
		"timer_id": event.TimerID,
		"category": event.Category.String(),
	}
	if event.Name != "" {
		fields["name"] = event.Name
	}

	switch {
	case event.Tick != nil:
		fields["seq"] = event.Tick.Seq
		fields["remaining"] = event.Tick.Remaining
		fields["elapsed"] = event.Tick.Elapsed
		fields["display"] = event.Tick.Display
	case event.StateChange != nil:
		fields["old_state"] = event.StateChange.OldState
		fields["new_state"] = event.StateChange.NewState
		if event.StateChange.Reason != "" {
			fields["reason"] = event.StateChange.Reason
		}
	case event.Lap != nil:
		fields["index"] = event.Lap.Index
		fields["display"] = event.Lap.Display
	case event.Drift != nil:
		fields["lost"] = event.Drift.Lost
	}

	a.logger.WithTime(event.Timestamp).WithFields(fields).Debug("timer")
}

// Compile-time interface satisfaction check.
var _ Logger = (*LogrusAdapter)(nil)
