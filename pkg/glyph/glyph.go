// Package glyph holds the 5x5 digit masks shown on the LED matrix.
//
// Masks are stored row-major in logical index order. The matrix chain is
// wired serpentine, so the rows look mirrored here; the renderer undoes that
// by emitting cells in reverse. Index 10 is the blank mask used to switch
// the matrix off.
package glyph

const (
	Width  = 5
	Height = 5
	Cells  = Width * Height

	// Clear is the index of the blank mask.
	Clear = 10
	// Count is the number of masks in the table (digits 0-9 plus Clear).
	Count = Clear + 1
)

// Glyph is one 5x5 mask. Each cell is either 0 (off) or 1 (full intensity).
type Glyph [Cells]float32

// Lookup returns the mask for a digit (0-9) or Clear.
// Callers must pass a validated index; anything outside 0..10 panics.
func Lookup(index int) Glyph {
	return table[index]
}

// ForChar maps a received character to a table index.
// '0'..'9' map to their digit, every other byte maps to Clear.
func ForChar(c byte) int {
	if c >= '0' && c <= '9' {
		return int(c - '0')
	}
	return Clear
}

// Lit reports whether cell i is on.
func (g Glyph) Lit(i int) bool {
	return g[i] != 0
}
