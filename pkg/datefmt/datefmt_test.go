package datefmt

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStringDurations(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		format string
		want   string
	}{
		{"ten seconds", 10 * time.Second, "mm:ss", "00:10"},
		{"minute and half", 90 * time.Second, "mm:ss", "01:30"},
		{"epoch millis", int64(9000), "mm:ss", "00:09"},
		{"int millis", 61000, "m:s", "1:1"},
		{"float millis", 1500.0, "ss.SSS", "01.500"},
		{"hours", 3*time.Hour + 4*time.Minute + 5*time.Second, "hh:mm:ss", "03:04:05"},
		{"day rollover", 26 * time.Hour, "D hh", "1 02"},
		{"wider than run", 75 * time.Minute, "m", "15"},
		{"overflow kept", 45 * time.Second, "s", "45"},
		{"long run pads", 7 * time.Second, "ssss", "0007"},
		{"literal passthrough", 5 * time.Second, "[ss] left", "[05] left"},
		{"no tokens", 5 * time.Second, "--:--", "--:--"},
		{"year distance", 366 * 24 * time.Hour, "YYYY-MM-DD", "0001-00-01"},
		{"zero", time.Duration(0), "hh:mm:ss", "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToString(tt.value, tt.format)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetFieldsOnlyTemplateTokens(t *testing.T) {
	fields, err := GetFields(90*time.Second, "mm:ss")
	require.NoError(t, err)

	assert.Equal(t, Fields{Minute: "01", Second: "30"}, fields)

	_, ok := fields.Get(Hour)
	assert.False(t, ok)
}

func TestGetFieldsFirstRunSetsWidth(t *testing.T) {
	// Only the leftmost run of a token counts.
	fields, err := GetFields(5*time.Second, "s and sss")
	require.NoError(t, err)
	assert.Equal(t, "5", fields[Second])

	out := Render(fields, "s and sss")
	assert.Equal(t, "5 and sss", out)
}

func TestPaddingLaw(t *testing.T) {
	for _, n := range []int{0, 7, 42, 123, 98765} {
		for width := 1; width <= 6; width++ {
			s := pad(n, width)
			digits := len(strconv.Itoa(n))

			want := width
			if digits > width {
				want = digits
			}
			assert.Len(t, s, want, "pad(%d, %d)", n, width)
			if width >= digits {
				assert.Equal(t, strconv.Itoa(n), trimZeros(s), "pad(%d, %d)", n, width)
			} else {
				assert.Equal(t, strconv.Itoa(n), s)
			}
		}
	}
}

func trimZeros(s string) string {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	return s
}

func TestFieldsRoundTrip(t *testing.T) {
	values := []any{
		int64(0),
		int64(3723004),
		59 * time.Second,
		49*time.Hour + 59*time.Minute,
		time.Date(1971, 2, 3, 4, 5, 6, 7e6, time.UTC),
		"1970-01-02T03:04:05Z",
	}
	formats := []string{"mm:ss", "hh:mm:ss", "Y-M-D h:m:s.S", "DD days", "SSS", "no tokens"}

	for _, v := range values {
		for _, f := range formats {
			fields, err := GetFields(v, f)
			require.NoError(t, err)

			viaFields, err := ToString(fields, f)
			require.NoError(t, err)

			direct, err := ToString(v, f)
			require.NoError(t, err)

			assert.Equal(t, direct, viaFields, "value %v format %q", v, f)
		}
	}
}

func TestRenderKeepsMissingClasses(t *testing.T) {
	out := Render(Fields{Second: "09"}, "hh:mm:ss")
	assert.Equal(t, "hh:mm:09", out)

	assert.Equal(t, "mm:ss", Render(nil, "mm:ss"))
}

func TestLocationRelativeEpoch(t *testing.T) {
	// Epoch zero is taken in the value's own location, so a duration placed
	// on the local wall clock renders without the zone offset.
	zone := time.FixedZone("UTC-5", -5*3600)
	local := time.Date(1970, 1, 1, 0, 0, 0, 0, zone).Add(65 * time.Minute)

	got, err := ToString(local, "YY MM DD hh:mm")
	require.NoError(t, err)
	assert.Equal(t, "00 00 00 01:05", got)
}

func TestStringValues(t *testing.T) {
	got, err := ToString("1970-01-01T00:02:03Z", "mm:ss")
	require.NoError(t, err)
	assert.Equal(t, "02:03", got)

	got, err = ToString("1970-01-01 01:00:00", "hh")
	require.NoError(t, err)
	assert.Equal(t, "01", got)
}

func TestInvalidInput(t *testing.T) {
	var nilTime *time.Time

	for _, v := range []any{nil, true, struct{}{}, []int{1}, "not a date", nilTime} {
		_, err := GetFields(v, "mm:ss")
		assert.True(t, errors.Is(err, ErrInvalidInput), "value %#v: err = %v", v, err)

		_, err = ToString(v, "mm:ss")
		assert.True(t, errors.Is(err, ErrInvalidInput), "value %#v: err = %v", v, err)
	}
}

func TestFieldNames(t *testing.T) {
	want := map[Field]string{
		Year: "year", Month: "month", Date: "date", Hour: "hour",
		Minute: "minute", Second: "second", Millisecond: "millisecond",
	}
	for f, name := range want {
		assert.Equal(t, name, f.String())
	}
	assert.Equal(t, "unknown", Field(99).String())
	assert.Equal(t, byte('S'), Millisecond.Token())
	assert.Len(t, AllFields(), 7)
}
