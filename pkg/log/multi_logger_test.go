package log_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tickdown/tickdown/pkg/log"
	"github.com/tickdown/tickdown/pkg/log/mocks"
)

func TestMultiLoggerFansOut(t *testing.T) {
	a := mocks.NewMockLogger(t)
	b := mocks.NewMockLogger(t)

	event := log.Event{
		Timestamp: time.Now(),
		TimerID:   "timer-a",
		Category:  log.CategoryLap,
		Lap:       &log.LapEvent{Display: "00:05"},
	}
	a.EXPECT().Log(event).Return().Once()
	b.EXPECT().Log(event).Return().Once()

	log.NewMultiLogger(a, nil, b).Log(event)
}

type closingLogger struct {
	log.NoopLogger
	err    error
	closed bool
}

func (c *closingLogger) Close() error {
	c.closed = true
	return c.err
}

func TestMultiLoggerCloseAggregatesErrors(t *testing.T) {
	errA := errors.New("disk full")
	errB := errors.New("bad handle")

	a := &closingLogger{err: errA}
	b := &closingLogger{}
	c := &closingLogger{err: errB}
	m := log.NewMultiLogger(a, b, mocks.NewMockLogger(t), c)

	err := m.Close()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errA))
	assert.True(t, errors.Is(err, errB))
	assert.True(t, a.closed && b.closed && c.closed)
}

func TestMultiLoggerCloseFileLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "multi.tlog")
	file, err := log.NewFileLogger(path)
	require.NoError(t, err)

	recorder := mocks.NewMockLogger(t)
	recorder.EXPECT().Log(mock.Anything).Return().Times(2)

	m := log.NewMultiLogger(file, recorder)
	m.Log(log.Event{TimerID: "x", Category: log.CategoryTick, Tick: &log.TickEvent{Seq: 1}})
	m.Log(log.Event{TimerID: "x", Category: log.CategoryTick, Tick: &log.TickEvent{Seq: 2}})
	require.NoError(t, m.Close())

	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	events, err := reader.ReadAll()
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
