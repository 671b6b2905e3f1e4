package log

import (
	"fmt"
	"strings"
	"time"
)

// Event represents one timer event.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred, as read from the timer's clock.
	Timestamp time.Time `cbor:"1,keyasint"`

	// TimerID uniquely identifies the timer instance (UUID).
	TimerID string `cbor:"2,keyasint"`

	// Name is the timer's logging namespace.
	Name string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Tick        *TickEvent        `cbor:"10,keyasint,omitempty"`
	StateChange *StateChangeEvent `cbor:"11,keyasint,omitempty"`
	Lap         *LapEvent         `cbor:"12,keyasint,omitempty"`
	Drift       *DriftEvent       `cbor:"13,keyasint,omitempty"`
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryTick indicates a completed tick.
	CategoryTick Category = 0
	// CategoryState indicates a status transition.
	CategoryState Category = 1
	// CategoryLap indicates a recorded lap.
	CategoryLap Category = 2
	// CategoryDrift indicates a wall-clock correction.
	CategoryDrift Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryTick:
		return "TICK"
	case CategoryState:
		return "STATE"
	case CategoryLap:
		return "LAP"
	case CategoryDrift:
		return "DRIFT"
	default:
		return "UNKNOWN"
	}
}

// ParseCategory parses a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(s) {
	case "tick":
		return CategoryTick, nil
	case "state":
		return CategoryState, nil
	case "lap":
		return CategoryLap, nil
	case "drift":
		return CategoryDrift, nil
	default:
		return 0, fmt.Errorf("unknown category: %s (use: tick, state, lap, drift)", s)
	}
}

// TickEvent captures the timer values after a tick.
type TickEvent struct {
	// Seq is the 1-based tick number within the run.
	Seq uint64 `cbor:"1,keyasint"`

	// Remaining is the time left, stored as nanoseconds.
	Remaining time.Duration `cbor:"2,keyasint"`

	// Elapsed is the time counted so far, stored as nanoseconds.
	Elapsed time.Duration `cbor:"3,keyasint"`

	// Display is the formatted value shown for this tick.
	Display string `cbor:"4,keyasint"`
}

// StateChangeEvent captures a status transition.
type StateChangeEvent struct {
	// OldState is the previous status.
	OldState string `cbor:"1,keyasint,omitempty"`

	// NewState is the new status.
	NewState string `cbor:"2,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"3,keyasint,omitempty"`
}

// LapEvent captures a recorded lap.
type LapEvent struct {
	// Index is the 0-based position in the lap list.
	Index int `cbor:"1,keyasint"`

	// Display is the recorded value.
	Display string `cbor:"2,keyasint"`

	// Remaining is the time left when recorded.
	Remaining time.Duration `cbor:"3,keyasint"`
}

// DriftEvent captures a wall-clock correction.
type DriftEvent struct {
	// Expected is when the tick was due according to the tick count.
	Expected time.Time `cbor:"1,keyasint"`

	// Observed is the (second-truncated) time actually read.
	Observed time.Time `cbor:"2,keyasint"`

	// Lost is the time that passed without ticks.
	Lost time.Duration `cbor:"3,keyasint"`
}
