// Package serial reads characters from the USB serial port and shows digits
// on the LED matrix.
package serial

import (
	"log/slog"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/glyph"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/matrix"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/state"
)

// Port is a non-blocking byte source. machine.Serial satisfies it.
type Port interface {
	Buffered() int
	ReadByte() (byte, error)
}

// Renderer draws a glyph on the LED matrix.
type Renderer interface {
	Render(g glyph.Glyph, c matrix.Color)
}

// Dispatcher maps received characters to glyphs.
type Dispatcher struct {
	serial   Port
	renderer Renderer
	state    *state.Shared
	color    matrix.Color
	logger   *slog.Logger
}

func NewDispatcher(serial Port, renderer Renderer, s *state.Shared, color matrix.Color, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		serial:   serial,
		renderer: renderer,
		state:    s,
		color:    color,
		logger:   logger,
	}
}

// PollOnce handles at most one received byte and returns immediately when
// none is waiting.
//
// Digits are drawn, anything else blanks the matrix. Either way the raw byte
// becomes the last character shown on the status panel.
func (d *Dispatcher) PollOnce() {
	in, ok := d.read()
	if !ok {
		return
	}

	index := glyph.ForChar(in)
	d.renderer.Render(glyph.Lookup(index), d.color)
	d.state.SetLastChar(in)
	d.state.MarkDirty()

	d.logger.Debug("received", "char", string(rune(in)), "glyph", index)
}

func (d *Dispatcher) read() (byte, bool) {
	if d.serial.Buffered() == 0 {
		return 0, false
	}

	in, err := d.serial.ReadByte()
	if err != nil {
		return 0, false
	}
	return in, true
}
