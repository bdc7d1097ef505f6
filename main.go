//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/board"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/button"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/config"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/display"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/matrix"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/state"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/status"
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/serial"
)

// INTERRUPT DUTIES
//   button edge -> debounce -> toggle LED -> mark dirty
//
// MAIN LOOP DUTIES
//   serial byte -> matrix glyph -> mark dirty
//   dirty -> redraw status panel

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.Level(config.LogLevel),
	}))

	hw, err := board.Configure()
	if err != nil {
		halt(logger, err)
	}

	shared := state.New()
	buttons := button.New(shared, config.DebounceWindow, hw.GreenLED, hw.BlueLED)
	input := serial.NewDispatcher(machine.Serial, matrix.New(hw.Matrix), shared, config.DigitColor, logger)
	panel := status.New(display.NewScreen(logger), shared, logger)

	if err := hw.ListenButtons(buttons); err != nil {
		halt(logger, err)
	}
	logger.Info("ready", "debounce", config.DebounceWindow.String())

	for {
		input.PollOnce()
		panel.MaybeRefresh()
	}
}

func halt(logger *slog.Logger, err error) {
	for {
		logger.Error("halted", "err", err)
		time.Sleep(time.Second)
	}
}
