// Package matrix drives the 5x5 WS2812 LED matrix.
//
// The chain is fed one 32-bit word per LED:
//
//	[G:8][R:8][B:8][0:8]  (MSB to LSB)
//
// and the first word sent lands on the LED wired as cell 24, so glyphs are
// emitted in reverse index order.
package matrix

import (
	"github.com/tuffrabit/tinygo-glyphpad-rp2040/pkg/glyph"
)

// Color is an RGB triple with each channel in [0, 1].
type Color struct {
	R, G, B float32
}

// Blue is the color digits are drawn in.
var Blue = Color{B: 1}

// WordWriter accepts packed LED words. PutBlocking may stall until the
// peripheral has room for the word.
type WordWriter interface {
	PutBlocking(word uint32)
}

// Pack converts a color to the word layout the LED chain expects.
func Pack(c Color) uint32 {
	return uint32(channel(c.G))<<24 | uint32(channel(c.R))<<16 | uint32(channel(c.B))<<8
}

// Unpack splits a packed word into the bytes in wire order (G, R, B).
func Unpack(word uint32) (g, r, b byte) {
	return byte(word >> 24), byte(word >> 16), byte(word >> 8)
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v * 255)
}

// Words returns the words for a glyph in the order they are sent.
func Words(g glyph.Glyph, c Color) [glyph.Cells]uint32 {
	var out [glyph.Cells]uint32
	for i := range out {
		cell := g[glyph.Cells-1-i]
		out[i] = Pack(Color{R: c.R * cell, G: c.G * cell, B: c.B * cell})
	}
	return out
}

// Renderer pushes glyphs to the LED chain.
type Renderer struct {
	out WordWriter
}

// New creates a renderer writing to w.
func New(w WordWriter) *Renderer {
	return &Renderer{out: w}
}

// Render draws g in color c. It returns once all 25 words were accepted.
func (r *Renderer) Render(g glyph.Glyph, c Color) {
	words := Words(g, c)
	for _, w := range words {
		r.out.PutBlocking(w)
	}
}
