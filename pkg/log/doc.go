// Package log provides structured event capture for timers.
//
// This package defines the Logger interface and Event types for recording
// what a timer did: state transitions, ticks, drift corrections and laps.
// It is separate from operational logging (slog); event capture gives a
// complete machine-readable trace for debugging and analysis.
//
// # Basic Usage
//
// Applications configure capture by providing a Logger implementation:
//
//	// For development: log to console via slog
//	opts.EventLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to a binary file
//	opts.EventLogger, _ = log.NewFileLogger("/var/log/tickdown/kitchen.tlog")
//
//	// Both: use MultiLogger
//	opts.EventLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// Hosts that already standardise on logrus can use NewLogrusAdapter.
//
// # File Format
//
// Log files use CBOR encoding with the .tlog extension. The tickdown-log CLI
// provides viewing and statistics.
package log
