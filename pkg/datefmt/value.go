package datefmt

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"
)

// ErrInvalidInput is returned for values that do not represent a time.
var ErrInvalidInput = errors.New("invalid time value")

// toTime converts the accepted value kinds to a time.Time. Numbers are epoch
// milliseconds and durations are offsets from epoch zero, both in UTC.
func toTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidInput)
		}
		return *v, nil
	case time.Duration:
		return time.UnixMilli(0).UTC().Add(v), nil
	case string:
		t, err := cast.StringToDateInDefaultLocation(v, time.UTC)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidInput, v)
		}
		return t, nil
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		ms, err := cast.ToInt64E(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return time.UnixMilli(ms).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidInput, value)
	}
}
