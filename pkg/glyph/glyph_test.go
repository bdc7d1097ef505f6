package glyph

import "testing"

func TestLookupLitCells(t *testing.T) {
	testCases := []struct {
		index int
		lit   int
	}{
		{0, 12},
		{1, 7},
		{2, 11},
		{3, 11},
		{4, 9},
		{5, 11},
		{6, 12},
		{7, 7},
		{8, 13},
		{9, 12},
		{Clear, 0},
	}

	for _, tc := range testCases {
		g := Lookup(tc.index)
		got := 0
		for i := range g {
			switch g[i] {
			case 0:
			case 1:
				got++
			default:
				t.Fatalf("glyph %d cell %d: expected 0 or 1, got %v", tc.index, i, g[i])
			}
		}
		if got != tc.lit {
			t.Errorf("glyph %d: expected %d lit cells, got %d", tc.index, tc.lit, got)
		}
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	g := Lookup(8)
	for i := range g {
		g[i] = 0
	}

	if !Lookup(8).Lit(1) {
		t.Error("mutating a returned glyph changed the table")
	}
}

func TestSevenRows(t *testing.T) {
	want := [Cells]bool{
		false, true, true, true, false,
		false, true, false, false, false,
		false, false, false, true, false,
		false, true, false, false, false,
		false, false, false, true, false,
	}

	g := Lookup(7)
	for i := range want {
		if g.Lit(i) != want[i] {
			t.Errorf("cell %d: expected lit=%v", i, want[i])
		}
	}
}

func TestForChar(t *testing.T) {
	testCases := []struct {
		c    byte
		want int
	}{
		{'0', 0},
		{'5', 5},
		{'9', 9},
		{'x', Clear},
		{'/', Clear}, // one below '0'
		{':', Clear}, // one above '9'
		{' ', Clear},
		{'\n', Clear},
		{0xFF, Clear},
	}

	for _, tc := range testCases {
		if got := ForChar(tc.c); got != tc.want {
			t.Errorf("ForChar(%q): expected %d, got %d", tc.c, tc.want, got)
		}
	}
}
