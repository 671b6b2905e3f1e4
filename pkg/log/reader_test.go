package log

import (
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilteredReaderByCategory(t *testing.T) {
	path := writeEvents(t, sampleEvents())

	cat := CategoryTick
	reader, err := NewFilteredReader(path, Filter{Category: &cat})
	require.NoError(t, err)
	defer reader.Close()

	event, err := reader.Next()
	require.NoError(t, err)
	assert.Equal(t, CategoryTick, event.Category)

	_, err = reader.Next()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestFilterMatches(t *testing.T) {
	events := sampleEvents()
	start := events[1].Timestamp
	end := events[3].Timestamp

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"empty", Filter{}, 4},
		{"timer id", Filter{TimerID: "timer-b"}, 1},
		{"name", Filter{Name: "kitchen"}, 3},
		{"time window", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"no match", Filter{TimerID: "nope"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := 0
			for _, e := range events {
				if tt.filter.Matches(e) {
					n++
				}
			}
			assert.Equal(t, tt.want, n)
		})
	}
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent.tlog"))
	assert.Error(t, err)
}

func TestReaderEmptyFile(t *testing.T) {
	path := writeEvents(t, nil)

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, got)

}
