// Package tui renders a timer full screen with tcell.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/tickdown/tickdown/pkg/timer"
)

// maxLaps is the number of most recent laps shown.
const maxLaps = 5

const helpLine = "space start/stop   r reset   l lap   q quit"

type tickEvent struct {
	snap timer.Snapshot
}

type doneEvent struct {
	result timer.Result
}

// App is a full-screen timer host.
type App struct {
	screen tcell.Screen
	timer  *timer.Timer
	chime  Chime
	status string
}

// New creates an App on an initialized screen.
func New(screen tcell.Screen, t *timer.Timer, chime Chime) *App {
	if chime == nil {
		chime = NoChime{}
	}
	return &App{screen: screen, timer: t, chime: chime}
}

// Run processes input and timer events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case <-ctx.Done():
			a.timer.Stop()
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !a.handleKey(ev.Key(), ev.Rune()) {
					return nil
				}
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventInterrupt:
				a.handleInterrupt(ev.Data())
			}
			a.draw()
		}
	}
}

// handleKey applies a key press and reports whether to keep running.
func (a *App) handleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.timer.Stop()
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	switch r {
	case 'q':
		a.timer.Stop()
		return false
	case ' ':
		a.toggle()
	case 'r':
		a.timer.Reset()
		a.status = ""
	case 'l':
		a.timer.Record()
	}
	return true
}

func (a *App) toggle() {
	switch a.timer.Status() {
	case timer.Running:
		a.timer.Stop()
	case timer.Prepared:
		a.start()
	default:
		a.status = "press r to reset"
	}
}

func (a *App) start() {
	run, err := a.timer.Start(func(s timer.Snapshot) {
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(tickEvent{snap: s}))
	})
	if err != nil {
		a.status = err.Error()
		return
	}
	a.status = ""

	go func() {
		<-run.Done()
		_ = a.screen.PostEvent(tcell.NewEventInterrupt(doneEvent{result: run.Result()}))
	}()
}

func (a *App) handleInterrupt(data any) {
	done, ok := data.(doneEvent)
	if !ok {
		return
	}
	if done.result.Err != nil {
		a.status = fmt.Sprintf("stopped (%s)", done.result.Status)
		return
	}
	a.status = "time's up!"
	a.chime.Play()
}

// layout returns the screen lines, top to bottom.
func (a *App) layout() []string {
	snap := a.timer.Snapshot()

	lines := []string{fmt.Sprintf("%s  [%s]", snap.Name, snap.Status), ""}
	lines = append(lines, bigText(snap.Display)...)
	lines = append(lines, "", a.status, "")

	if len(snap.Laps) > 0 {
		first := max(0, len(snap.Laps)-maxLaps)
		for i := first; i < len(snap.Laps); i++ {
			lines = append(lines, fmt.Sprintf("lap %d  %s", i+1, snap.Laps[i]))
		}
		lines = append(lines, "")
	}
	return append(lines, helpLine)
}

func (a *App) draw() {
	a.screen.Clear()

	lines := a.layout()
	w, h := a.screen.Size()
	y := max(0, (h-len(lines))/2)
	for _, line := range lines {
		if y >= h {
			break
		}
		runes := []rune(line)
		x := max(0, (w-len(runes))/2)
		for _, r := range runes {
			if x >= w {
				break
			}
			a.screen.SetContent(x, y, r, nil, a.style())
			x++
		}
		y++
	}
	a.screen.Show()
}

func (a *App) style() tcell.Style {
	switch a.timer.Status() {
	case timer.Running:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case timer.Paused:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case timer.Finished:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	default:
		return tcell.StyleDefault
	}
}
