package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEvents() []Event {
	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	return []Event{
		{
			Timestamp:   base,
			TimerID:     "timer-a",
			Name:        "kitchen",
			Category:    CategoryState,
			StateChange: &StateChangeEvent{OldState: "PREPARED", NewState: "RUNNING"},
		},
		{
			Timestamp: base.Add(time.Second),
			TimerID:   "timer-a",
			Name:      "kitchen",
			Category:  CategoryTick,
			Tick:      &TickEvent{Seq: 1, Remaining: 9 * time.Second, Elapsed: time.Second, Display: "00:09"},
		},
		{
			Timestamp: base.Add(6 * time.Second),
			TimerID:   "timer-a",
			Name:      "kitchen",
			Category:  CategoryDrift,
			Drift: &DriftEvent{
				Expected: base.Add(2 * time.Second),
				Observed: base.Add(6 * time.Second),
				Lost:     4 * time.Second,
			},
		},
		{
			Timestamp: base.Add(7 * time.Second),
			TimerID:   "timer-b",
			Name:      "oven",
			Category:  CategoryLap,
			Lap:       &LapEvent{Index: 0, Display: "00:03", Remaining: 3 * time.Second},
		},
	}
}

func writeEvents(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timer"+FileExtension)

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	for _, e := range events {
		logger.Log(e)
	}
	require.NoError(t, logger.Close())
	return path
}

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.tlog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestFileLoggerRoundTrip(t *testing.T) {
	events := sampleEvents()
	path := writeEvents(t, events)

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, len(events))

	for i := range events {
		assert.Equal(t, events[i].Category, got[i].Category)
		assert.True(t, events[i].Timestamp.Equal(got[i].Timestamp))
	}
	require.NotNil(t, got[2].Drift)
	assert.Equal(t, 4*time.Second, got[2].Drift.Lost)
	require.NotNil(t, got[3].Lap)
	assert.Equal(t, "00:03", got[3].Lap.Display)
}

func TestFileLoggerAppends(t *testing.T) {
	events := sampleEvents()
	path := writeEvents(t, events[:2])

	logger, err := NewFileLogger(path)
	require.NoError(t, err)
	logger.Log(events[2])
	require.NoError(t, logger.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestFileLoggerCloseTwiceAndLogAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "closed.tlog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())

	logger.Log(sampleEvents()[0])

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
	assert.Zero(t, logger.Dropped())
}

func TestFileLoggerConcurrent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "concurrent.tlog")
	logger, err := NewFileLogger(path)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, e := range sampleEvents() {
				logger.Log(e)
			}
		}()
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	got, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, got, 8*len(sampleEvents()))
}

func TestFileLoggerBadPath(t *testing.T) {
	_, err := NewFileLogger(filepath.Join(t.TempDir(), "missing", "dir", "x.tlog"))
	assert.Error(t, err)
}
