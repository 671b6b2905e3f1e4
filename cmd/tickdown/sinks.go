package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/tickdown/tickdown/pkg/log"
	"github.com/tickdown/tickdown/pkg/timer"
)

// newEventSink assembles the event sinks selected by cfg.
func newEventSink(cfg Config, logger *slog.Logger, level slog.Level) (*log.MultiLogger, error) {
	var sinks []log.Logger

	if cfg.EventLog != "" {
		fl, err := log.NewFileLogger(cfg.EventLog)
		if err != nil {
			return nil, fmt.Errorf("failed to open event log: %w", err)
		}
		sinks = append(sinks, fl)
	}
	if level <= slog.LevelDebug {
		sinks = append(sinks, log.NewSlogAdapter(logger))
	}
	if cfg.Trace {
		tl := logrus.New()
		tl.SetOutput(os.Stderr)
		tl.SetLevel(logrus.DebugLevel)
		tl.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		sinks = append(sinks, log.NewLogrusAdapter(tl))
	}

	return log.NewMultiLogger(sinks...), nil
}

// serveMetrics exposes the timer counters plus the Go runtime collectors
// and returns the server with its bound address.
func serveMetrics(addr string, t *timer.Timer, logger *slog.Logger) (*http.Server, string, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(t.Metrics()...)
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, "", fmt.Errorf("metrics listener: %w", err)
	}

	srv := &http.Server{Handler: mux}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", "error", err)
		}
	}()
	bound := ln.Addr().String()
	logger.Info("serving metrics", "addr", bound)
	return srv, bound, nil
}
