// Package status draws the status panel on the SSD1306.
//
// The panel shows the last character received on serial and the state of
// the two button-controlled LEDs. It is redrawn in full whenever the shared
// dirty flag is set, alternating between a light and a dark frame on every
// redraw.
package status

import (
	"image/color"
	"log/slog"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/state"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// Display dimensions
	screenWidth  = 128
	screenHeight = 64

	// Border rectangle
	borderX = 3
	borderY = 3
	borderW = 122
	borderH = 58

	// Text positions are the top-left of an 8px text cell.
	labelX   = 8
	valueX   = 90
	rowChar  = 10
	rowGreen = 29
	rowBlue  = 48

	// tinyfont draws from the baseline.
	textAscent = 8
)

// Colors for monochrome display
var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
)

var font = &proggy.TinySZ8pt7b

// Screen is a buffered monochrome display. *ssd1306.Device satisfies it.
type Screen interface {
	drivers.Displayer
	ClearBuffer()
}

// Panel redraws the status screen from shared state.
type Panel struct {
	screen   Screen
	state    *state.Shared
	logger   *slog.Logger
	inverted bool
	last     Frame
}

// New creates a panel. screen may be nil when the display is compiled out;
// the dirty flag is still consumed.
func New(screen Screen, s *state.Shared, logger *slog.Logger) *Panel {
	return &Panel{
		screen: screen,
		state:  s,
		logger: logger,
	}
}

// Inverted reports whether the last redraw used the light frame.
func (p *Panel) Inverted() bool {
	return p.inverted
}

// MaybeRefresh redraws the panel if anything changed since the last redraw.
// Call it from the main loop only.
func (p *Panel) MaybeRefresh() {
	if !p.state.Dirty() {
		return
	}

	snap := p.state.Snapshot()
	frame := Capture(p.state)
	p.report(frame)

	if p.screen != nil {
		p.draw(frame)
		if err := p.screen.Display(); err != nil {
			p.logger.Error("display flush failed", "err", err)
		}
	}

	p.state.Clean(snap)
}

// report logs LED transitions since the previous redraw.
func (p *Panel) report(frame Frame) {
	green, blue := changed(p.last, frame)
	if green {
		p.logger.Info("button A pressed", "led", state.Green, "state", OnOff(frame.Green))
	}
	if blue {
		p.logger.Info("button B pressed", "led", state.Blue, "state", OnOff(frame.Blue))
	}
	p.last = frame
}

func (p *Panel) draw(f Frame) {
	p.inverted = !p.inverted

	p.screen.ClearBuffer()
	if p.inverted {
		// Light frame: white margin, black body.
		tinydraw.FilledRectangle(p.screen, 0, 0, screenWidth, screenHeight, white)
		tinydraw.FilledRectangle(p.screen, borderX, borderY, borderW, borderH, black)
	} else {
		tinydraw.Rectangle(p.screen, borderX, borderY, borderW, borderH, white)
	}

	p.text(labelX, rowChar, "CHARACTER:")
	if f.Char != 0 {
		tinyfont.DrawChar(p.screen, font, valueX, rowChar+textAscent, rune(f.Char), white)
	}
	p.text(labelX, rowGreen, "GREEN LED:")
	p.text(valueX, rowGreen, OnOff(f.Green))
	p.text(labelX, rowBlue, "BLUE LED:")
	p.text(valueX, rowBlue, OnOff(f.Blue))
}

func (p *Panel) text(x, y int16, s string) {
	tinyfont.WriteLine(p.screen, font, x, y+textAscent, s, white)
}
