package timer

import (
	"fmt"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tickdown/tickdown/internal/logging"
	"github.com/tickdown/tickdown/pkg/clock"
	"github.com/tickdown/tickdown/pkg/datefmt"
	"github.com/tickdown/tickdown/pkg/log"
)

// tick is the scheduling period.
const tick = time.Second

// Snapshot is a consistent copy of a timer's observable state.
type Snapshot struct {
	ID        uuid.UUID
	Name      string
	Status    Status
	Mode      Mode
	Display   string
	Fields    datefmt.Fields
	Duration  time.Duration
	Remaining time.Duration
	Elapsed   time.Duration

	// Seq is the number of ticks processed in the current run.
	Seq uint64

	// Anchors, second-truncated. Zero until set.
	StartedAt    time.Time
	Deadline     time.Time
	PausedAt     time.Time
	LastObserved time.Time

	Laps []string
}

// Timer counts a fixed duration down (or up) in one-second ticks.
//
// All methods are safe for concurrent use. Tick callbacks run without the
// timer lock held and may call back into the timer.
type Timer struct {
	mu sync.Mutex

	id         uuid.UUID
	name       string
	duration   time.Duration
	format     string
	mode       Mode
	autoRecord bool
	loc        *time.Location
	zoneOffset time.Duration

	clock   clock.Clock
	logger  *logging.Logger
	events  log.Logger
	metrics *Metrics

	status    Status
	remaining time.Duration
	elapsed   time.Duration
	fields    datefmt.Fields
	laps      []string
	seq       uint64

	startedAt    time.Time
	deadline     time.Time
	pausedAt     time.Time
	lastObserved time.Time

	// handle is the single pending tick; gen invalidates ticks that were
	// already queued when the run was stopped or reset.
	handle clock.Timer
	gen    uint64
	run    *Completion
}

func newTimer(o Options) (*Timer, error) {
	logger := logging.New(o.Logger, o.Name, o.Debug)

	if o.Duration <= 0 {
		logger.Error("timer requires a positive duration", "duration", o.Duration)
		return nil, fmt.Errorf("%w: got %v", ErrMissingDuration, o.Duration)
	}
	mode, err := ParseMode(o.Mode)
	if err != nil {
		logger.Error("invalid mode", "mode", o.Mode)
		return nil, err
	}

	loc := o.Location
	if loc == nil {
		loc = time.Local
	}
	clk := o.Clock
	if clk == nil {
		clk = clock.Real{}
	}
	events := o.EventLogger
	if events == nil {
		events = log.NoopLogger{}
	}
	m := o.Metrics
	if m == nil {
		m = NewMetrics()
	}

	// Displayed values live on the wall clock of loc starting at its epoch
	// midnight, so the offset that matters is the one in effect in 1970.
	_, offset := time.Unix(0, 0).In(loc).Zone()

	t := &Timer{
		id:         uuid.New(),
		name:       o.Name,
		duration:   o.Duration.Truncate(tick),
		format:     o.Format,
		mode:       mode,
		autoRecord: o.AutoRecordOnStop,
		loc:        loc,
		zoneOffset: time.Duration(offset) * time.Second,
		clock:      clk,
		logger:     logger,
		events:     events,
		metrics:    m,
	}
	t.remaining = t.duration
	t.refreshLocked()

	logger.Log("timer created", "duration", t.duration, "mode", mode, "format", t.format)
	return t, nil
}

// Start begins a run and returns its completion signal. onTick, if non-nil,
// receives a snapshot after every tick. Panics raised by onTick are not
// recovered.
//
// Start is only valid in Prepared; use Reset to run a timer again.
func (t *Timer) Start(onTick func(Snapshot)) (*Completion, error) {
	t.mu.Lock()
	if t.status != Prepared {
		status := t.status
		t.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot start while %s", ErrInvalidState, status)
	}

	now := clock.TruncateSecond(t.clock.Now())
	t.status = Running
	t.startedAt = now.Add(tick)
	t.deadline = t.startedAt.Add(t.remaining)
	t.lastObserved = now
	t.seq = 0
	t.gen++
	gen := t.gen
	run := newCompletion()
	t.run = run
	t.handle = t.clock.AfterFunc(tick, func() { t.onTick(gen, onTick) })
	deadline := t.deadline
	t.mu.Unlock()

	t.logger.Log("timer started", "remaining", t.Remaining(), "deadline", deadline)
	t.emitState(Prepared, Running, "start")
	return run, nil
}

func (t *Timer) onTick(gen uint64, cb func(Snapshot)) {
	t.mu.Lock()
	if gen != t.gen {
		t.mu.Unlock()
		return
	}
	if t.status != Running {
		status := t.status
		run := t.detachLocked()
		t.mu.Unlock()
		run.interrupt(status)
		return
	}

	now := clock.TruncateSecond(t.clock.Now())
	t.lastObserved = now
	t.seq++

	var drift *log.DriftEvent
	expected := t.startedAt.Add(t.elapsed)
	if now.After(expected) {
		t.elapsed = now.Sub(t.startedAt) + tick
		t.remaining = t.duration - t.elapsed
		drift = &log.DriftEvent{Expected: expected, Observed: now, Lost: now.Sub(expected)}
	} else {
		t.remaining -= tick
		t.elapsed += tick
	}
	if t.remaining < 0 {
		t.remaining = 0
		t.elapsed = t.deadline.Sub(t.startedAt)
	}
	t.refreshLocked()
	finished := !now.Before(t.deadline.Add(-tick))
	snap := t.snapshotLocked()
	t.mu.Unlock()

	t.metrics.Ticks.Inc()
	if drift != nil {
		t.metrics.DriftCorrections.Inc()
		t.logger.Log("clock drift corrected", "expected", drift.Expected, "observed", drift.Observed, "lost", drift.Lost)
		t.emit(log.Event{Category: log.CategoryDrift, Drift: drift})
	}
	t.logger.Log("tick", "seq", snap.Seq, "elapsed", snap.Elapsed, "remaining", snap.Remaining)
	t.emit(log.Event{
		Category: log.CategoryTick,
		Tick: &log.TickEvent{
			Seq:       snap.Seq,
			Remaining: snap.Remaining,
			Elapsed:   snap.Elapsed,
			Display:   snap.Display,
		},
	})

	if cb != nil {
		cb(snap)
	}

	t.mu.Lock()
	// The callback may have stopped or reset the timer.
	if gen != t.gen || t.status != Running {
		t.mu.Unlock()
		return
	}
	if finished {
		t.cancelLocked()
		t.status = Finished
		run := t.detachLocked()
		t.mu.Unlock()

		t.metrics.Finished.Inc()
		t.logger.Log("timer finished", "elapsed", snap.Elapsed)
		t.emitState(Running, Finished, "deadline reached")
		run.resolve(Finished, nil)
		return
	}
	t.handle = t.clock.AfterFunc(tick, func() { t.onTick(gen, cb) })
	t.mu.Unlock()
}

// Stop pauses a running timer and resolves its completion negatively.
// On a timer that is not running it does nothing.
func (t *Timer) Stop() *Timer {
	t.mu.Lock()
	if t.status != Running {
		status := t.status
		t.mu.Unlock()
		t.logger.Log("stop ignored", "status", status)
		return t
	}

	t.cancelLocked()
	t.status = Paused
	t.pausedAt = clock.TruncateSecond(t.clock.Now())
	var lap *log.LapEvent
	if t.autoRecord {
		lap = t.recordLocked()
	}
	run := t.detachLocked()
	remaining := t.remaining
	t.mu.Unlock()

	t.metrics.Interrupted.Inc()
	t.logger.Log("timer stopped", "remaining", remaining)
	t.emitState(Running, Paused, "stop")
	if lap != nil {
		t.metrics.Laps.Inc()
		t.emit(log.Event{Category: log.CategoryLap, Lap: lap})
	}
	run.interrupt(Paused)
	return t
}

// Reset returns the timer to Prepared with the full duration remaining and
// no laps. A pending completion resolves negatively.
func (t *Timer) Reset() *Timer {
	t.mu.Lock()
	old := t.status
	t.cancelLocked()
	t.status = Prepared
	t.remaining = t.duration
	t.elapsed = 0
	t.laps = nil
	t.seq = 0
	t.startedAt = time.Time{}
	t.deadline = time.Time{}
	t.pausedAt = time.Time{}
	t.lastObserved = time.Time{}
	t.refreshLocked()
	run := t.detachLocked()
	t.mu.Unlock()

	if run != nil {
		t.metrics.Interrupted.Inc()
	}
	if old != Prepared {
		t.logger.Log("timer reset", "from", old)
		t.emitState(old, Prepared, "reset")
	}
	run.interrupt(Prepared)
	return t
}

// Record appends the current display to the lap list.
func (t *Timer) Record() *Timer {
	t.mu.Lock()
	lap := t.recordLocked()
	t.mu.Unlock()

	t.metrics.Laps.Inc()
	t.logger.Log("lap recorded", "index", lap.Index, "display", lap.Display)
	t.emit(log.Event{Category: log.CategoryLap, Lap: lap})
	return t
}

func (t *Timer) recordLocked() *log.LapEvent {
	display := datefmt.Render(t.fields, t.format)
	t.laps = append(t.laps, display)
	return &log.LapEvent{Index: len(t.laps) - 1, Display: display, Remaining: t.remaining}
}

// cancelLocked drops the pending tick and invalidates any tick already
// queued for execution.
func (t *Timer) cancelLocked() {
	if t.handle != nil {
		t.handle.Stop()
		t.handle = nil
	}
	t.gen++
}

func (t *Timer) detachLocked() *Completion {
	run := t.run
	t.run = nil
	return run
}

func (t *Timer) refreshLocked() {
	v := t.remaining
	if t.mode == Increasing {
		v = t.duration - t.remaining
	}
	at := time.UnixMilli(v.Milliseconds()).Add(-t.zoneOffset).In(t.loc)
	// A time.Time value is always accepted.
	t.fields, _ = datefmt.GetFields(at, t.format)
}

func (t *Timer) snapshotLocked() Snapshot {
	return Snapshot{
		ID:           t.id,
		Name:         t.name,
		Status:       t.status,
		Mode:         t.mode,
		Display:      datefmt.Render(t.fields, t.format),
		Fields:       maps.Clone(t.fields),
		Duration:     t.duration,
		Remaining:    t.remaining,
		Elapsed:      t.elapsed,
		Seq:          t.seq,
		StartedAt:    t.startedAt,
		Deadline:     t.deadline,
		PausedAt:     t.pausedAt,
		LastObserved: t.lastObserved,
		Laps:         slices.Clone(t.laps),
	}
}

func (t *Timer) emitState(from, to Status, reason string) {
	t.emit(log.Event{
		Category: log.CategoryState,
		StateChange: &log.StateChangeEvent{
			OldState: from.String(),
			NewState: to.String(),
			Reason:   reason,
		},
	})
}

func (t *Timer) emit(e log.Event) {
	e.Timestamp = t.clock.Now()
	e.TimerID = t.id.String()
	e.Name = t.name
	t.events.Log(e)
}

// Snapshot returns a consistent copy of the timer state.
func (t *Timer) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snapshotLocked()
}

// Display returns the formatted current value.
func (t *Timer) Display() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return datefmt.Render(t.fields, t.format)
}

// Fields returns a copy of the current formatted fields.
func (t *Timer) Fields() datefmt.Fields {
	t.mu.Lock()
	defer t.mu.Unlock()
	return maps.Clone(t.fields)
}

// Status returns the lifecycle state.
func (t *Timer) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Remaining returns the time left.
func (t *Timer) Remaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remaining
}

// Elapsed returns the time counted in the current run.
func (t *Timer) Elapsed() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.elapsed
}

// Laps returns a copy of the recorded laps.
func (t *Timer) Laps() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.laps)
}

// Duration returns the configured duration floored to whole seconds.
func (t *Timer) Duration() time.Duration { return t.duration }

// Format returns the display template.
func (t *Timer) Format() string { return t.format }

// Mode returns the display direction.
func (t *Timer) Mode() Mode { return t.mode }

// Debug reports whether per-tick logging is on.
func (t *Timer) Debug() bool { return t.logger.Debug() }

// Name returns the logging namespace.
func (t *Timer) Name() string { return t.name }

// ID returns the instance identifier carried on events.
func (t *Timer) ID() uuid.UUID { return t.id }

// Metrics returns the timer's collectors for registration.
func (t *Timer) Metrics() []prometheus.Collector { return t.metrics.Collectors() }
