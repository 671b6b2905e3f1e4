package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tickdown/tickdown/pkg/clock"
	"github.com/tickdown/tickdown/pkg/log"
	"github.com/tickdown/tickdown/pkg/timer"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestBuildOptionsFlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tickdown.yaml")
	require.NoError(t, os.WriteFile(path, []byte("duration: 25m\nformat: hh:mm:ss\nname: pomodoro\n"), 0o600))

	defaults, overrides, err := buildOptions(Config{
		ConfigFile: path,
		Duration:   "5000",
		Mode:       "asc",
		Location:   "UTC",
	})
	require.NoError(t, err)
	assert.Equal(t, 25*time.Minute, defaults.Duration)
	assert.Equal(t, 5*time.Second, overrides.Duration)
	assert.Equal(t, time.UTC, overrides.Location)

	tm, err := timer.NewFactory(defaults).New(overrides)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, tm.Duration())
	assert.Equal(t, "hh:mm:ss", tm.Format())
	assert.Equal(t, "pomodoro", tm.Name())
	assert.Equal(t, timer.Increasing, tm.Mode())
}

func TestBuildOptionsErrors(t *testing.T) {
	for _, cfg := range []Config{
		{Duration: "soon"},
		{Duration: "1s", Mode: "sideways"},
		{Duration: "1s", Location: "Nowhere/Special"},
		{ConfigFile: filepath.Join(t.TempDir(), "missing.yaml")},
	} {
		_, _, err := buildOptions(cfg)
		assert.Error(t, err, "%+v", cfg)
	}
}

func TestParseLevel(t *testing.T) {
	level, err := parseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = parseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = parseLevel("loud")
	assert.Error(t, err)
}

func TestRunRejectsConflictingFrontEnds(t *testing.T) {
	err := run(Config{Duration: "1s", Interactive: true, TUI: true, LogLevel: "info"})
	assert.Error(t, err)
}

func newPlainTimer(t *testing.T, o timer.Options) (*timer.Timer, *clock.Fake) {
	t.Helper()
	clk := clock.NewFake(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC))
	o.Clock = clk
	o.Location = time.UTC
	tm, err := timer.New(o)
	require.NoError(t, err)
	return tm, clk
}

func TestRunPlainFinishes(t *testing.T) {
	tm, clk := newPlainTimer(t, timer.Options{Duration: 3 * time.Second, Format: "ss"})
	out := &syncBuffer{}

	done := make(chan error, 1)
	go func() { done <- runPlain(context.Background(), tm, out) }()

	require.Eventually(t, func() bool { return tm.Status() == timer.Running }, time.Second, time.Millisecond)
	clk.Advance(3 * time.Second)

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runPlain did not return")
	}
	assert.Equal(t, "03\n02\n01\n00\nDone.\n", out.String())
}

func TestRunPlainCanceled(t *testing.T) {
	tm, clk := newPlainTimer(t, timer.Options{Duration: 10 * time.Second, AutoRecordOnStop: true})
	out := &syncBuffer{}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- runPlain(ctx, tm, out) }()

	require.Eventually(t, func() bool { return tm.Status() == timer.Running }, time.Second, time.Millisecond)
	clk.Advance(3 * time.Second)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("runPlain did not return")
	}
	assert.Equal(t, timer.Paused, tm.Status())
	assert.Contains(t, out.String(), "Laps:\n   1. 00:07\n")
	assert.True(t, strings.HasSuffix(out.String(), "Stopped at 00:07\n"))
}

func TestSwitchWriter(t *testing.T) {
	var a, b bytes.Buffer
	w := &switchWriter{w: &a}

	_, _ = io.WriteString(w, "one")
	w.Set(&b)
	_, _ = io.WriteString(w, "two")

	assert.Equal(t, "one", a.String())
	assert.Equal(t, "two", b.String())
}

func TestNewEventSinkWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run"+log.FileExtension)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sink, err := newEventSink(Config{EventLog: path}, logger, slog.LevelInfo)
	require.NoError(t, err)

	tm, clk := newPlainTimer(t, timer.Options{Duration: 2 * time.Second, EventLogger: sink})
	_, err = tm.Start(nil)
	require.NoError(t, err)
	clk.Advance(2 * time.Second)
	require.NoError(t, sink.Close())

	reader, err := log.NewReader(path)
	require.NoError(t, err)
	defer reader.Close()
	events, err := reader.ReadAll()
	require.NoError(t, err)

	// start, two ticks, finish
	require.Len(t, events, 4)
	assert.Equal(t, log.CategoryState, events[0].Category)
	assert.Equal(t, "FINISHED", events[3].StateChange.NewState)
}

func TestNewEventSinkBadPath(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err := newEventSink(Config{EventLog: filepath.Join(t.TempDir(), "no", "such", "dir.tlog")}, logger, slog.LevelInfo)
	assert.Error(t, err)
}

func TestServeMetrics(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tm, clk := newPlainTimer(t, timer.Options{Duration: 5 * time.Second})
	_, err := tm.Start(nil)
	require.NoError(t, err)
	clk.Advance(2 * time.Second)

	srv, addr, err := serveMetrics("127.0.0.1:0", tm, logger)
	require.NoError(t, err)
	defer srv.Close()

	resp, err := http.Get("http://" + addr + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "tickdown_timer_ticks_total 2")
	assert.Contains(t, string(body), "go_goroutines")
}
