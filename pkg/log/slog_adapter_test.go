package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSlogAdapterWritesAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	adapter := NewSlogAdapter(logger)

	for _, e := range sampleEvents() {
		adapter.Log(e)
	}

	out := buf.String()
	assert.Contains(t, out, "timer_id=timer-a")
	assert.Contains(t, out, "category=TICK")
	assert.Contains(t, out, "display=00:09")
	assert.Contains(t, out, "new_state=RUNNING")
	assert.Contains(t, out, "lost=4s")
	assert.Contains(t, out, "name=oven")
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	NewSlogAdapter(logger).Log(sampleEvents()[0])
	assert.Empty(t, buf.String())
}

func TestLogrusAdapterWritesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{DisableColors: true})

	adapter := NewLogrusAdapter(logger)
	for _, e := range sampleEvents() {
		adapter.Log(e)
	}

	out := buf.String()
	assert.Contains(t, out, "timer_id=timer-a")
	assert.Contains(t, out, "category=LAP")
	assert.Contains(t, out, "display=\"00:03\"")
	assert.Contains(t, out, "old_state=PREPARED")
}

func TestLogrusAdapterDefaultsToStandardLogger(t *testing.T) {
	adapter := NewLogrusAdapter(nil)
	assert.Same(t, logrus.StandardLogger(), adapter.logger)
}
