// Package interactive provides the interactive command-line interface
// for tickdown.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"

	"github.com/tickdown/tickdown/pkg/timer"
)

// Session drives one timer from a readline prompt.
type Session struct {
	timer *timer.Timer
	rl    *readline.Instance
	out   io.Writer

	mu    sync.Mutex
	ticks bool
}

// New creates a new interactive session for t.
func New(t *timer.Timer) (*Session, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "tickdown> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newSession(t, rl.Stdout())
	s.rl = rl
	return s, nil
}

func newSession(t *timer.Timer, out io.Writer) *Session {
	return &Session{timer: t, out: out, ticks: true}
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Session) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Session) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.Execute(line); quit {
			cancel()
			return
		}
	}
}

// Execute runs one command line and reports whether the session should end.
func (s *Session) Execute(line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "start", "s":
		s.cmdStart()

	case "stop", "p":
		s.cmdStop()

	case "reset", "r":
		s.timer.Reset()
		fmt.Fprintf(s.out, "Reset to %s\n", s.timer.Display())

	case "record", "lap", "l":
		s.timer.Record()
		laps := s.timer.Laps()
		fmt.Fprintf(s.out, "Lap %d: %s\n", len(laps), laps[len(laps)-1])

	case "laps":
		s.cmdLaps()

	case "status", "st":
		s.cmdStatus()

	case "ticks":
		s.cmdTicks(args)

	case "quit", "exit", "q":
		s.timer.Stop()
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Session) printHelp() {
	fmt.Fprintln(s.out, `
Timer Commands:
  start              - Start the timer (from PREPARED)
  stop               - Stop a running timer
  reset              - Return to the full duration and clear laps
  lap                - Record the current display
  laps               - List recorded laps
  status             - Show timer status
  ticks on|off       - Show or hide per-second output

  General:
    help             - Show this help
    quit             - Exit`)
}

func (s *Session) cmdStart() {
	run, err := s.timer.Start(s.onTick)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Started %s (%s)\n", s.timer.Display(), s.timer.Mode())

	go func() {
		<-run.Done()
		res := run.Result()
		if res.Err != nil {
			fmt.Fprintf(s.out, "Run ended: %s\n", res.Status)
			return
		}
		fmt.Fprintln(s.out, "Timer finished!")
	}()
}

func (s *Session) cmdStop() {
	if s.timer.Status() != timer.Running {
		fmt.Fprintf(s.out, "Not running (status: %s)\n", s.timer.Status())
		return
	}
	s.timer.Stop()
	fmt.Fprintf(s.out, "Stopped at %s\n", s.timer.Display())
}

func (s *Session) cmdLaps() {
	laps := s.timer.Laps()
	if len(laps) == 0 {
		fmt.Fprintln(s.out, "No laps recorded")
		return
	}
	for i, lap := range laps {
		fmt.Fprintf(s.out, "  %2d. %s\n", i+1, lap)
	}
}

func (s *Session) cmdStatus() {
	snap := s.timer.Snapshot()
	fmt.Fprintf(s.out, "Timer:     %s (%s)\n", snap.Name, snap.ID)
	fmt.Fprintf(s.out, "Status:    %s\n", snap.Status)
	fmt.Fprintf(s.out, "Display:   %s\n", snap.Display)
	fmt.Fprintf(s.out, "Mode:      %s\n", snap.Mode)
	fmt.Fprintf(s.out, "Remaining: %s of %s\n", snap.Remaining, snap.Duration)
	fmt.Fprintf(s.out, "Laps:      %d\n", len(snap.Laps))
	if !snap.Deadline.IsZero() {
		fmt.Fprintf(s.out, "Deadline:  %s\n", snap.Deadline.Format("15:04:05"))
	}
}

func (s *Session) cmdTicks(args []string) {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		fmt.Fprintln(s.out, "Usage: ticks on|off")
		return
	}
	s.mu.Lock()
	s.ticks = args[0] == "on"
	s.mu.Unlock()
}

func (s *Session) onTick(snap timer.Snapshot) {
	s.mu.Lock()
	show := s.ticks
	s.mu.Unlock()
	if show {
		fmt.Fprintf(s.out, "  %s\n", snap.Display)
	}
}
