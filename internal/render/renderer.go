//go:build ebiten

package render

import (
	"image/color"

	"sparse-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads a viewport frame into a single image, one pixel per
// cell, and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{}
	gp.resize(w, h)
	return gp
}

func (gp *GridPainter) resize(w, h int) {
	gp.w, gp.h = w, h
	gp.buf = make([]byte, 4*w*h)
	if gp.img != nil {
		gp.img.Deallocate()
	}
	gp.img = ebiten.NewImage(w, h)
}

// Blit uploads the frame into the painter image and draws it at scale
// pixels per cell. The painter follows frame size changes.
func (gp *GridPainter) Blit(dst *ebiten.Image, frame *core.ByteGrid, palette []color.RGBA, scale int) {
	if frame.W != gp.w || frame.H != gp.h {
		gp.resize(frame.W, frame.H)
	}
	fillPaletteRGBA(gp.buf, frame.Cells(), palette)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
