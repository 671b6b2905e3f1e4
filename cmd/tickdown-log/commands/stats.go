package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/tickdown/tickdown/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents      int
	EventsByCategory map[log.Category]int
	Timers           map[string]*TimerStats
	TimeRange        struct {
		Start time.Time
		End   time.Time
	}
}

// TimerStats holds statistics for a single timer instance.
type TimerStats struct {
	Name      string
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Ticks     int
	Laps      int
	Drifts    int
	Lost      time.Duration
	LastState string
}

// CollectStats reads every event in path.
func CollectStats(path string) (*Stats, error) {
	reader, err := log.NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByCategory: make(map[log.Category]int),
		Timers:           make(map[string]*TimerStats),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByCategory[event.Category]++

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		ts, ok := stats.Timers[event.TimerID]
		if !ok {
			ts = &TimerStats{
				Name:      event.Name,
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Timers[event.TimerID] = ts
		}
		ts.Events++
		if event.Timestamp.After(ts.LastSeen) {
			ts.LastSeen = event.Timestamp
		}

		switch {
		case event.Tick != nil:
			ts.Ticks++
		case event.Lap != nil:
			ts.Laps++
		case event.Drift != nil:
			ts.Drifts++
			ts.Lost += event.Drift.Lost
		case event.StateChange != nil:
			ts.LastState = event.StateChange.NewState
		}
	}

	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	stats, err := CollectStats(path)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Timer Event Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryTick, log.CategoryState, log.CategoryLap, log.CategoryDrift} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-8s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Timers: %d\n", len(stats.Timers))
	if len(stats.Timers) == 0 {
		return
	}

	type timerInfo struct {
		id    string
		stats *TimerStats
	}
	timers := make([]timerInfo, 0, len(stats.Timers))
	for id, ts := range stats.Timers {
		timers = append(timers, timerInfo{id, ts})
	}
	sort.Slice(timers, func(i, j int) bool {
		return timers[i].stats.FirstSeen.Before(timers[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, t := range timers {
		span := t.stats.LastSeen.Sub(t.stats.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] %s: %d events, span %s\n", shortenTimerID(t.id), t.stats.Name, t.stats.Events, span)
		fmt.Fprintf(w, "           Ticks: %d  Laps: %d\n", t.stats.Ticks, t.stats.Laps)
		if t.stats.Drifts > 0 {
			fmt.Fprintf(w, "           Drift corrections: %d (lost %s)\n", t.stats.Drifts, t.stats.Lost)
		}
		if t.stats.LastState != "" {
			fmt.Fprintf(w, "           Last state: %s\n", t.stats.LastState)
		}
	}
}
