package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// Chime plays the completion sound.
type Chime interface {
	Play()
	Close()
}

// NoChime is a silent Chime.
type NoChime struct{}

func (NoChime) Play()  {}
func (NoChime) Close() {}

// Bell rings the terminal bell.
type Bell struct {
	screen tcell.Screen
}

// NewBell creates a Bell on screen.
func NewBell(screen tcell.Screen) *Bell {
	return &Bell{screen: screen}
}

func (b *Bell) Play()  { _ = b.screen.Beep() }
func (b *Bell) Close() {}

const sampleRate = beep.SampleRate(44100)

// chimeParts are the tone and pause lengths of the chime; a zero frequency
// is a pause.
var chimeParts = []struct {
	freq float64
	d    time.Duration
}{
	{880, 150 * time.Millisecond},
	{0, 50 * time.Millisecond},
	{660, 300 * time.Millisecond},
}

// newChimeStreamer returns the chime as a finite stream.
func newChimeStreamer() (beep.Streamer, error) {
	parts := make([]beep.Streamer, 0, len(chimeParts))
	for _, p := range chimeParts {
		n := sampleRate.N(p.d)
		if p.freq == 0 {
			parts = append(parts, beep.Silence(n))
			continue
		}
		tone, err := generators.SineTone(sampleRate, p.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(n, tone))
	}
	return beep.Seq(parts...), nil
}
