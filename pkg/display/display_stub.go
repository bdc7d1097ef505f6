//go:build !tinygo || nodisplay

// Package display provides a no-op stub when built with the nodisplay tag
// or off-target. This saves memory by excluding the SSD1306 driver.
package display

import (
	"log/slog"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/status"
)

// NewScreen returns nil; the status panel then only consumes its dirty flag.
func NewScreen(logger *slog.Logger) status.Screen {
	logger.Info("display compiled out")
	return nil
}
