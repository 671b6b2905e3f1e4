//go:build !audio

package tui

import "errors"

// NewSpeakerChime reports that audio output was not compiled in.
func NewSpeakerChime() (Chime, error) {
	return nil, errors.New("built without audio support (rebuild with -tags audio)")
}
