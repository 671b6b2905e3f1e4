// Package commands implements the tickdown-log CLI commands.
package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/tickdown/tickdown/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Name     string
	Category *log.Category
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [timer:id] name CATEGORY
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	name := event.Name
	if name == "" {
		name = "-"
	}
	fmt.Fprintf(w, "%s [timer:%s] %s %s\n", ts, shortenTimerID(event.TimerID), name, event.Category)

	switch {
	case event.Tick != nil:
		fmt.Fprintf(w, "  #%d %s  remaining=%s elapsed=%s\n",
			event.Tick.Seq, event.Tick.Display, event.Tick.Remaining, event.Tick.Elapsed)
	case event.StateChange != nil:
		formatStateChangeDetails(w, event.StateChange)
	case event.Lap != nil:
		fmt.Fprintf(w, "  Lap %d: %s (remaining %s)\n", event.Lap.Index+1, event.Lap.Display, event.Lap.Remaining)
	case event.Drift != nil:
		fmt.Fprintf(w, "  Expected: %s\n", event.Drift.Expected.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "  Observed: %s\n", event.Drift.Observed.UTC().Format(time.RFC3339))
		fmt.Fprintf(w, "  Lost:     %s\n", event.Drift.Lost)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenTimerID returns the first 8 characters of the timer ID.
func shortenTimerID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatStateChangeDetails(w io.Writer, sc *log.StateChangeEvent) {
	if sc.OldState != "" {
		fmt.Fprintf(w, "  %s -> %s\n", sc.OldState, sc.NewState)
	} else {
		fmt.Fprintf(w, "  -> %s\n", sc.NewState)
	}
	if sc.Reason != "" {
		fmt.Fprintf(w, "  Reason: %s\n", sc.Reason)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return log.ParseCategory(s)
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		Name:     filter.Name,
		Category: filter.Category,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event)
	}

	return nil
}
