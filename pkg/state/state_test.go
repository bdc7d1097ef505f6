package state

import "testing"

func TestNewStartsDirty(t *testing.T) {
	s := New()
	if !s.Dirty() {
		t.Error("expected new state to be dirty")
	}
	if s.LED(Green) || s.LED(Blue) {
		t.Error("expected both LEDs off")
	}
	if s.LastChar() != 0 {
		t.Errorf("expected no last char, got %q", s.LastChar())
	}
}

func TestToggleLED(t *testing.T) {
	s := New()

	if on := s.ToggleLED(Blue); !on {
		t.Error("first toggle: expected on")
	}
	if s.LED(Green) {
		t.Error("toggling blue changed green")
	}
	if on := s.ToggleLED(Blue); on {
		t.Error("second toggle: expected off")
	}
}

func TestCleanClearsDirty(t *testing.T) {
	s := New()

	s.Clean(s.Snapshot())
	if s.Dirty() {
		t.Fatal("expected clean after Clean")
	}

	s.MarkDirty()
	s.MarkDirty()
	if !s.Dirty() {
		t.Fatal("expected dirty after MarkDirty")
	}
	s.Clean(s.Snapshot())
	if s.Dirty() {
		t.Error("expected a single Clean to cover several marks")
	}
}

func TestMarkDuringRedrawSurvives(t *testing.T) {
	s := New()

	snap := s.Snapshot()
	s.MarkDirty() // arrives while the panel is drawing
	s.Clean(snap)

	if !s.Dirty() {
		t.Error("mark made during a redraw was lost")
	}
}

func TestLEDString(t *testing.T) {
	if Green.String() != "green" || Blue.String() != "blue" {
		t.Errorf("unexpected names: %s %s", Green, Blue)
	}
}
