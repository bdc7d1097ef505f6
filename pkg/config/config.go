// Package config defines the board wiring and the fixed tuning values.
// Everything here is a compile-time constant; there is nothing to load or
// save at runtime.
//
// Pin numbers are GPIO numbers on the RP2040 (BitDogLab layout). They are
// plain integers so this package builds on the host; pkg/board turns them
// into machine.Pin values.
package config

import (
	"errors"
	"time"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/matrix"
)

// LED matrix
const (
	MatrixPin    = 7
	MatrixPixels = 25
)

// Button-controlled LEDs
const (
	GreenLEDPin = 11
	BlueLEDPin  = 12
)

// Buttons, pulled up at rest, pressed on the falling edge.
const (
	ButtonAPin = 5
	ButtonBPin = 6

	// DebounceWindow is the minimum time between accepted presses,
	// counted across both buttons.
	DebounceWindow = 300 * time.Millisecond
)

// Status display (SSD1306 on I2C1)
const (
	I2CSDAPin     = 14
	I2CSCLPin     = 15
	I2CFrequency  = 100000 // 100kHz
	DisplayAddr   = 0x3C
	DisplayWidth  = 128
	DisplayHeight = 64
)

// USB serial log level: -4 debug, 0 info.
const LogLevel = 0

// DigitColor is the color digits are drawn in on the matrix.
var DigitColor = matrix.Blue

// Errors
var (
	ErrPinConflict = errors.New("pin assigned twice")
)

// Pins returns every GPIO the firmware claims.
func Pins() []uint8 {
	return []uint8{
		MatrixPin,
		GreenLEDPin,
		BlueLEDPin,
		ButtonAPin,
		ButtonBPin,
		I2CSDAPin,
		I2CSCLPin,
	}
}

// Validate checks that no GPIO is used twice.
func Validate() error {
	var seen [32]bool
	for _, p := range Pins() {
		if seen[p] {
			return ErrPinConflict
		}
		seen[p] = true
	}
	return nil
}
