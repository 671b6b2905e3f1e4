package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/tickdown/tickdown/pkg/timer"
)

// runPlain prints one line per tick until the timer finishes or ctx is
// canceled, then prints the laps.
func runPlain(ctx context.Context, t *timer.Timer, out io.Writer) error {
	fmt.Fprintln(out, t.Display())

	run, err := t.Start(func(s timer.Snapshot) {
		fmt.Fprintln(out, s.Display)
	})
	if err != nil {
		return err
	}

	select {
	case <-run.Done():
	case <-ctx.Done():
		t.Stop()
		<-run.Done()
	}

	if laps := t.Laps(); len(laps) > 0 {
		fmt.Fprintln(out, "Laps:")
		for i, lap := range laps {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, lap)
		}
	}

	res := run.Result()
	if res.Err != nil {
		fmt.Fprintf(out, "Stopped at %s\n", t.Display())
		return nil
	}
	fmt.Fprintln(out, "Done.")
	return nil
}

// switchWriter forwards writes to a replaceable destination.
type switchWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *switchWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Set replaces the destination.
func (s *switchWriter) Set(w io.Writer) {
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}
