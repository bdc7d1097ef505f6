// Package button handles the two push-buttons.
//
// Both buttons share one falling-edge interrupt callback and one debounce
// clock: after any accepted press, every press on either button is dropped
// until the window has passed. A quick press of A followed by B therefore
// swallows B.
package button

import (
	"time"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/state"
)

// Button identifies which input fired.
type Button uint8

const (
	A Button = iota
	B
)

func (b Button) String() string {
	switch b {
	case A:
		return "A"
	case B:
		return "B"
	default:
		return "?"
	}
}

// LED returns the LED a button toggles.
func (b Button) LED() state.LED {
	if b == A {
		return state.Green
	}
	return state.Blue
}

// Output is a physical LED pin. machine.Pin satisfies it.
type Output interface {
	Set(high bool)
}

// Controller applies debounced button presses to the shared state.
type Controller struct {
	state  *state.Shared
	window uint32 // microseconds
	pins   [2]Output
}

// New creates a controller. green and blue may be nil when no physical LED
// is attached.
func New(s *state.Shared, window time.Duration, green, blue Output) *Controller {
	c := &Controller{
		state:  s,
		window: uint32(window.Microseconds()),
	}
	c.pins[state.Green] = green
	c.pins[state.Blue] = blue

	// Put the clock one full window in the past so a press right at boot counts.
	s.SetLastAccepted(-c.window)
	return c
}

// OnInterrupt handles one edge. now is microseconds since boot; the
// subtraction wraps, matching the 32-bit hardware timer.
//
// Runs in interrupt context: no blocking, no allocation, no drawing.
func (c *Controller) OnInterrupt(which Button, now uint32) {
	if now-c.state.LastAccepted() < c.window {
		return
	}
	c.state.SetLastAccepted(now)

	led := which.LED()
	on := c.state.ToggleLED(led)
	if pin := c.pins[led]; pin != nil {
		pin.Set(on)
	}
	c.state.MarkDirty()
}
