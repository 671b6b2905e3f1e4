// Package timer implements a one-second countdown/count-up timer with
// wall-clock drift correction.
//
// # Lifecycle
//
//	PREPARED --Start--> RUNNING --last tick--> FINISHED
//	                    RUNNING --Stop------> PAUSED
//	PAUSED | FINISHED --Reset--> PREPARED
//
// Start returns a Completion that resolves exactly once: with FINISHED when
// the duration is used up, or with an error wrapping ErrInterrupted when the
// run is stopped or reset.
//
// # Drift Correction
//
// Every tick re-reads the clock. When more wall time has passed than the
// tick count accounts for (the host slept, the process was suspended),
// elapsed and remaining time are recomputed from the clock instead of being
// stepped by one second, so the display never lags behind reality.
//
// # Display
//
// Remaining time (or elapsed time in increasing mode) is rendered through a
// datefmt template on every tick. The value is placed on the wall clock of
// the configured location so that a zero duration renders as zero.
//
// # Defaults
//
// DefaultOptions and Factory provide immutable default baselines. Changing
// a Factory's defaults yields a new Factory; timers already built keep their
// configuration.
package timer
