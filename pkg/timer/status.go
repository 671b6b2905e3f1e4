package timer

// Status is the lifecycle state of a Timer.
type Status uint8

const (
	// Prepared is the initial state, and the state after Reset.
	Prepared Status = iota

	// Running indicates ticks are being scheduled.
	Running

	// Paused indicates the run was stopped before the deadline.
	Paused

	// Finished indicates the duration was used up.
	Finished
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Prepared:
		return "PREPARED"
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	case Finished:
		return "FINISHED"
	default:
		return "UNKNOWN"
	}
}
