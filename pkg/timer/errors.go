package timer

import "errors"

// Timer errors.
var (
	ErrMissingDuration = errors.New("missing required duration option")
	ErrInvalidMode     = errors.New("invalid mode")
	ErrInvalidState    = errors.New("invalid timer state")
	ErrInterrupted     = errors.New("timer interrupted")
	ErrInvalidOptions  = errors.New("invalid timer options")
)
