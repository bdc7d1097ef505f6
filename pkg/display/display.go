//go:build tinygo && !nodisplay

// Package display brings up the SSD1306 OLED that shows the status panel.
//
// To build without the display (saves the driver and its frame buffer), use:
//
//	tinygo build -tags=nodisplay -target=pico -o firmware.uf2 .
package display

import (
	"fmt"
	"log/slog"
	"machine"
	"time"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/status"

	"tinygo.org/x/drivers/ssd1306"
)

// NewScreen configures I2C1 and the SSD1306 and returns a blank screen.
// Returns nil if the bus cannot be configured; the panel then runs headless.
func NewScreen(logger *slog.Logger) status.Screen {
	i2c := machine.I2C1
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: config.I2CFrequency,
		SCL:       machine.Pin(config.I2CSCLPin),
		SDA:       machine.Pin(config.I2CSDAPin),
	}); err != nil {
		logger.Error("display disabled", "err", fmt.Errorf("i2c configure: %w", err))
		return nil
	}

	// Small delay for bus stabilization
	time.Sleep(10 * time.Millisecond)

	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: config.DisplayAddr,
		Width:   config.DisplayWidth,
		Height:  config.DisplayHeight,
	})

	// The panel starts with every pixel off.
	dev.ClearBuffer()
	dev.ClearDisplay()

	logger.Info("display ready", "addr", config.DisplayAddr)
	return dev
}
