// Package state holds the values shared between the button interrupt and the
// main loop.
//
// Everything the interrupt touches is a single atomic word, so neither side
// ever takes a lock. The last received character is only read and written by
// the main loop.
package state

import (
	"sync/atomic"
)

// LED identifies one of the two button-controlled LEDs.
type LED uint8

const (
	Green LED = iota
	Blue
)

func (l LED) String() string {
	switch l {
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Shared is the state crossing the interrupt boundary.
type Shared struct {
	leds [2]atomic.Bool

	// Debounce clock: low 32 bits of microseconds since boot of the last
	// accepted button event.
	lastAccepted atomic.Uint32

	// Dirty flag as a change counter. MarkDirty bumps it, the panel records
	// the value it drew. A mark racing a redraw leaves the counter ahead of
	// the recorded value, so it is picked up on the next pass.
	changes atomic.Uint32
	drawn   atomic.Uint32

	lastChar byte
}

// New returns state with both LEDs off and the display marked dirty, so the
// first pass of the main loop draws the panel.
func New() *Shared {
	s := &Shared{}
	s.MarkDirty()
	return s
}

// LED reports whether l is on.
func (s *Shared) LED(l LED) bool {
	return s.leds[l].Load()
}

// ToggleLED flips l and returns the new value. Only the interrupt handler
// calls this.
func (s *Shared) ToggleLED(l LED) bool {
	for {
		old := s.leds[l].Load()
		if s.leds[l].CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// LastAccepted returns the debounce clock.
func (s *Shared) LastAccepted() uint32 {
	return s.lastAccepted.Load()
}

// SetLastAccepted stores the debounce clock.
func (s *Shared) SetLastAccepted(us uint32) {
	s.lastAccepted.Store(us)
}

// MarkDirty requests a status redraw.
func (s *Shared) MarkDirty() {
	s.changes.Add(1)
}

// Dirty reports whether a redraw is pending.
func (s *Shared) Dirty() bool {
	return s.changes.Load() != s.drawn.Load()
}

// Snapshot returns the change count a redraw starting now will cover.
func (s *Shared) Snapshot() uint32 {
	return s.changes.Load()
}

// Clean records that everything up to snapshot has been drawn.
func (s *Shared) Clean(snapshot uint32) {
	s.drawn.Store(snapshot)
}

// LastChar returns the most recently received serial byte, 0 before any.
func (s *Shared) LastChar() byte {
	return s.lastChar
}

// SetLastChar replaces the last received serial byte.
func (s *Shared) SetLastChar(c byte) {
	s.lastChar = c
}
