//go:build tinygo

// Package board owns the RP2040 pins: the two status LEDs, the two buttons
// and the WS2812 data line.
package board

import (
	"fmt"
	"machine"
	"runtime/interrupt"
	"time"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/button"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/matrix"

	"tinygo.org/x/drivers/ws2812"
)

// Board is the configured hardware.
type Board struct {
	GreenLED machine.Pin
	BlueLED  machine.Pin
	Matrix   *Chain

	buttonA machine.Pin
	buttonB machine.Pin
	boot    time.Time
}

// Configure sets up every pin the firmware uses. LEDs start off.
func Configure() (*Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	b := &Board{
		GreenLED: machine.Pin(config.GreenLEDPin),
		BlueLED:  machine.Pin(config.BlueLEDPin),
		buttonA:  machine.Pin(config.ButtonAPin),
		buttonB:  machine.Pin(config.ButtonBPin),
		boot:     time.Now(),
	}

	for _, led := range []machine.Pin{b.GreenLED, b.BlueLED} {
		led.Configure(machine.PinConfig{Mode: machine.PinOutput})
		led.Low()
	}
	for _, btn := range []machine.Pin{b.buttonA, b.buttonB} {
		btn.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	}

	data := machine.Pin(config.MatrixPin)
	data.Configure(machine.PinConfig{Mode: machine.PinOutput})
	b.Matrix = &Chain{dev: ws2812.New(data)}

	return b, nil
}

// Micros returns the low 32 bits of microseconds since Configure.
func (b *Board) Micros() uint32 {
	return uint32(time.Since(b.boot).Microseconds())
}

// ListenButtons routes falling edges on both buttons into c. One callback
// serves both pins; the pin that fired picks the button.
func (b *Board) ListenButtons(c *button.Controller) error {
	handler := func(p machine.Pin) {
		which := button.A
		if p != b.buttonA {
			which = button.B
		}
		c.OnInterrupt(which, b.Micros())
	}

	for _, btn := range []machine.Pin{b.buttonA, b.buttonB} {
		if err := btn.SetInterrupt(machine.PinFalling, handler); err != nil {
			return fmt.Errorf("button interrupt on GPIO%d: %w", btn, err)
		}
	}
	return nil
}

// Chain feeds packed words to the WS2812 matrix.
type Chain struct {
	dev ws2812.Device
}

// PutBlocking sends one LED word (G, R, B bytes, MSB first). Interrupts are
// held off for the word so the bit timing stays intact.
func (c *Chain) PutBlocking(word uint32) {
	g, r, b := matrix.Unpack(word)

	state := interrupt.Disable()
	c.dev.WriteByte(g)
	c.dev.WriteByte(r)
	c.dev.WriteByte(b)
	interrupt.Restore(state)
}
