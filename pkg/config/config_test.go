package config

import (
	"testing"
	"time"

	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/glyph"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
}

func TestPinsInRange(t *testing.T) {
	for _, p := range Pins() {
		if p > 29 {
			t.Errorf("GPIO %d does not exist on the RP2040", p)
		}
	}
}

func TestMatrixMatchesGlyph(t *testing.T) {
	if MatrixPixels != glyph.Cells {
		t.Errorf("Expected %d pixels, got %d", glyph.Cells, MatrixPixels)
	}
}

func TestDebounceWindow(t *testing.T) {
	if DebounceWindow.Microseconds() != 300000 {
		t.Errorf("Expected 300000us, got %d", DebounceWindow.Microseconds())
	}
	if DebounceWindow < time.Millisecond {
		t.Error("DebounceWindow too short to suppress bounce")
	}
}

func TestDigitColorIsBlue(t *testing.T) {
	if DigitColor.R != 0 || DigitColor.G != 0 || DigitColor.B != 1 {
		t.Errorf("Expected blue, got %+v", DigitColor)
	}
}
