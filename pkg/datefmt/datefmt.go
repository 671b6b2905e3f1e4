package datefmt

import (
	"strconv"
	"strings"
	"time"
)

// DefaultFormat is the template used when none is configured.
const DefaultFormat = "mm:ss"

// Field identifies one date/time component of a template.
type Field uint8

const (
	// Year is the year distance from epoch zero (token Y).
	Year Field = iota
	// Month is the month distance from epoch zero (token M).
	Month
	// Date is the day-of-month distance from epoch zero (token D).
	Date
	// Hour is the hour of day (token h).
	Hour
	// Minute is the minute of hour (token m).
	Minute
	// Second is the second of minute (token s).
	Second
	// Millisecond is the millisecond of second (token S).
	Millisecond

	numFields
)

// tokens maps each field to its template letter, in substitution order.
var tokens = [numFields]byte{'Y', 'M', 'D', 'h', 'm', 's', 'S'}

var fieldNames = [numFields]string{"year", "month", "date", "hour", "minute", "second", "millisecond"}

// AllFields lists the fields in substitution order.
func AllFields() []Field {
	return []Field{Year, Month, Date, Hour, Minute, Second, Millisecond}
}

// Token returns the template letter of the field.
func (f Field) Token() byte {
	if f >= numFields {
		return 0
	}
	return tokens[f]
}

// String returns the field name.
func (f Field) String() string {
	if f >= numFields {
		return "unknown"
	}
	return fieldNames[f]
}

// Fields maps the fields present in a template to their rendered values.
type Fields map[Field]string

// Get returns the rendered value of f and whether the template contained it.
func (fs Fields) Get(f Field) (string, bool) {
	v, ok := fs[f]
	return v, ok
}

// GetFields computes the rendered value of every field whose token appears
// in format. See the package documentation for accepted values.
func GetFields(value any, format string) (Fields, error) {
	t, err := toTime(value)
	if err != nil {
		return nil, err
	}
	return fieldsOf(t, format), nil
}

// ToString renders value through format. Value is either anything accepted
// by GetFields or a Fields computed earlier for the same format.
func ToString(value any, format string) (string, error) {
	if fields, ok := value.(Fields); ok {
		return Render(fields, format), nil
	}

	fields, err := GetFields(value, format)
	if err != nil {
		return "", err
	}
	return Render(fields, format), nil
}

// Render substitutes the leftmost run of each token in format with the
// matching entry of fields. Runs without an entry are left as they are.
func Render(fields Fields, format string) string {
	out := format
	for f := Field(0); f < numFields; f++ {
		v, ok := fields[f]
		if !ok {
			continue
		}
		start, end := firstRun(out, tokens[f])
		if start < 0 {
			continue
		}
		out = out[:start] + v + out[end:]
	}
	return out
}

func fieldsOf(t time.Time, format string) Fields {
	base := time.Date(1970, time.January, 1, 0, 0, 0, 0, t.Location())

	raw := [numFields]int{
		Year:        t.Year() - base.Year(),
		Month:       int(t.Month()) - int(base.Month()),
		Date:        t.Day() - base.Day(),
		Hour:        t.Hour(),
		Minute:      t.Minute(),
		Second:      t.Second(),
		Millisecond: t.Nanosecond() / int(time.Millisecond),
	}

	fields := make(Fields, numFields)
	for f := Field(0); f < numFields; f++ {
		start, end := firstRun(format, tokens[f])
		if start < 0 {
			continue
		}
		fields[f] = pad(raw[f], end-start)
	}
	return fields
}

// pad left-pads n with zeros to width, keeping wider values intact.
func pad(n, width int) string {
	s := strconv.Itoa(n)
	if width >= len(s) {
		return strings.Repeat("0", width-len(s)) + s
	}
	return s
}

// firstRun returns the bounds of the first run of letter in s, or -1, -1.
func firstRun(s string, letter byte) (int, int) {
	start := strings.IndexByte(s, letter)
	if start < 0 {
		return -1, -1
	}
	end := start + 1
	for end < len(s) && s[end] == letter {
		end++
	}
	return start, end
}
