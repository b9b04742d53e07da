package render

import (
	"image/color"

	"sparse-life/internal/viewport"
)

// Palette returns the colors for the viewport frame values: empty, alive,
// and tracked boundary.
func Palette() []color.RGBA {
	palette := make([]color.RGBA, 3)
	palette[viewport.CellEmpty] = color.RGBA{R: 12, G: 12, B: 16, A: 255}
	palette[viewport.CellAlive] = color.RGBA{R: 235, G: 235, B: 240, A: 255}
	palette[viewport.CellBoundary] = color.RGBA{R: 40, G: 70, B: 110, A: 255}
	return palette
}

// fillPaletteRGBA converts cell values into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black. Values past
// the end of the palette use its last entry.
func fillPaletteRGBA(buf []byte, cells []uint8, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}

	last := len(palette) - 1
	for i, c := range cells {
		idx := min(int(c), last)
		base := i * 4
		col := palette[idx]
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
