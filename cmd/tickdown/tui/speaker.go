//go:build audio

package tui

import (
	"time"

	"github.com/gopxl/beep/speaker"
)

// SpeakerChime plays the chime through the default audio device.
type SpeakerChime struct{}

// NewSpeakerChime initializes the speaker.
func NewSpeakerChime() (Chime, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	return &SpeakerChime{}, nil
}

// Play queues the chime without blocking.
func (c *SpeakerChime) Play() {
	s, err := newChimeStreamer()
	if err != nil {
		return
	}
	speaker.Play(s)
}

// Close releases the audio device.
func (c *SpeakerChime) Close() {
	speaker.Close()
}
