package timer

import (
	"fmt"
	"strings"
)

// Mode selects the display direction.
type Mode uint8

const (
	// Decreasing displays the remaining time, counting down.
	Decreasing Mode = iota

	// Increasing displays the elapsed time, counting up.
	Increasing
)

// modeAliases maps every accepted spelling to its mode.
var modeAliases = map[string]Mode{
	"-":          Decreasing,
	"dec":        Decreasing,
	"decrese":    Decreasing,
	"reduce":     Decreasing,
	"desc":       Decreasing,
	"decreasing": Decreasing,

	"+":          Increasing,
	"inc":        Increasing,
	"increse":    Increasing,
	"plus":       Increasing,
	"asc":        Increasing,
	"increasing": Increasing,
}

// ParseMode resolves a mode alias. The empty string selects Decreasing.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return Decreasing, nil
	}
	if m, ok := modeAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return m, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// String returns the canonical mode name.
func (m Mode) String() string {
	switch m {
	case Decreasing:
		return "decreasing"
	case Increasing:
		return "increasing"
	default:
		return "unknown"
	}
}

// Symbol returns "-" or "+".
func (m Mode) Symbol() string {
	if m == Increasing {
		return "+"
	}
	return "-"
}
