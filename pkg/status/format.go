package status

import (
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/state"
)

// Frame is what one redraw shows.
type Frame struct {
	Char  byte
	Green bool
	Blue  bool
}

// Capture reads the current frame from shared state.
func Capture(s *state.Shared) Frame {
	return Frame{
		Char:  s.LastChar(),
		Green: s.LED(state.Green),
		Blue:  s.LED(state.Blue),
	}
}

// OnOff returns the label for an LED state.
func OnOff(on bool) string {
	if on {
		return "ON"
	}
	return "OFF"
}

// changed lists the LEDs whose state differs between two frames.
func changed(prev, next Frame) (green, blue bool) {
	return prev.Green != next.Green, prev.Blue != next.Blue
}
