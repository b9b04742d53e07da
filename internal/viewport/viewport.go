package viewport

import (
	"sparse-life/internal/core"
	"sparse-life/pkg/sims/life"
)

// Frame values written by the viewport.
const (
	CellEmpty    uint8 = 0
	CellAlive    uint8 = 1
	CellBoundary uint8 = 2
)

const (
	// MinCellSize and MaxCellSize bound the on-screen size of one cell.
	MinCellSize = 1
	MaxCellSize = 32
)

// Viewport maps a window of the unbounded plane onto a fixed raster. It
// implements core.Renderer: Draw paints changed cells, ClearViewport wipes
// the frame and Present marks the frame complete.
type Viewport struct {
	pxW, pxH int
	cellSize int
	origin   life.Loc

	frame        *core.ByteGrid
	showBoundary bool
	frames       int
	dirty        bool
}

var _ core.Renderer = (*Viewport)(nil)

// New returns a viewport covering pxW×pxH pixels with the given cell size,
// centered on the origin of the plane.
func New(pxW, pxH, cellSize int) *Viewport {
	v := &Viewport{pxW: max(pxW, 1), pxH: max(pxH, 1), cellSize: clampCellSize(cellSize)}
	cols, rows := v.grid()
	v.frame = core.NewByteGrid(cols, rows)
	v.origin = life.Loc{X: -(cols / 2), Y: -(rows / 2)}
	return v
}

func clampCellSize(size int) int {
	return min(max(size, MinCellSize), MaxCellSize)
}

func (v *Viewport) grid() (int, int) {
	return max(v.pxW/v.cellSize, 1), max(v.pxH/v.cellSize, 1)
}

// Size reports the visible area in cells.
func (v *Viewport) Size() core.Size { return core.Size{W: v.frame.W, H: v.frame.H} }

// PixelSize reports the area covered in pixels.
func (v *Viewport) PixelSize() (int, int) { return v.pxW, v.pxH }

// CellSize reports the on-screen size of one cell in pixels.
func (v *Viewport) CellSize() int { return v.cellSize }

// Origin returns the plane coordinate shown in the top-left corner.
func (v *Viewport) Origin() life.Loc { return v.origin }

// Center returns the plane coordinate at the middle of the view.
func (v *Viewport) Center() life.Loc {
	return life.Loc{X: v.origin.X + v.frame.W/2, Y: v.origin.Y + v.frame.H/2}
}

// Frame exposes the raster the viewport paints into.
func (v *Viewport) Frame() *core.ByteGrid { return v.frame }

// Frames reports how many frames have been presented.
func (v *Viewport) Frames() int { return v.frames }

// Dirty reports whether the frame changed since the last Present.
func (v *Viewport) Dirty() bool { return v.dirty }

// ShowBoundary reports whether tracked dead cells are highlighted.
func (v *Viewport) ShowBoundary() bool { return v.showBoundary }

// SetShowBoundary toggles highlighting of tracked dead cells. Call Redraw
// afterwards to repaint.
func (v *Viewport) SetShowBoundary(on bool) { v.showBoundary = on }

// Draw paints a changed cell if it is visible.
func (v *Viewport) Draw(x, y int, state uint8) {
	col, row := x-v.origin.X, y-v.origin.Y
	if !v.frame.InBounds(col, row) {
		return
	}
	val := CellEmpty
	if state == 1 {
		val = CellAlive
	}
	v.frame.Set(col, row, val)
	v.dirty = true
}

// ClearViewport wipes the frame.
func (v *Viewport) ClearViewport() {
	v.frame.Clear()
	v.dirty = true
}

// Present marks the current frame as shown.
func (v *Viewport) Present() {
	v.frames++
	v.dirty = false
}

// Redraw repaints the whole frame from the simulation. Needed after panning,
// resizing, or toggling the boundary highlight; ordinary ticks only need
// Draw.
func (v *Viewport) Redraw(sim *life.Simulation) {
	v.ClearViewport()
	sim.Each(func(l life.Loc, c life.Cell) {
		col, row := l.X-v.origin.X, l.Y-v.origin.Y
		if !v.frame.InBounds(col, row) {
			return
		}
		switch {
		case c.Curr == 1:
			v.frame.Set(col, row, CellAlive)
		case v.showBoundary:
			v.frame.Set(col, row, CellBoundary)
		}
	})
}

// Pan shifts the view by (dx, dy) cells.
func (v *Viewport) Pan(dx, dy int) {
	v.origin = v.origin.Add(life.Loc{X: dx, Y: dy})
}

// CenterOn moves the view so l is in the middle.
func (v *Viewport) CenterOn(l life.Loc) {
	v.origin = life.Loc{X: l.X - v.frame.W/2, Y: l.Y - v.frame.H/2}
}

// ResizeCell changes the cell size by delta pixels, keeping the center
// coordinate fixed. It reports whether the size changed.
func (v *Viewport) ResizeCell(delta int) bool {
	size := clampCellSize(v.cellSize + delta)
	if size == v.cellSize {
		return false
	}
	center := v.Center()
	v.cellSize = size
	v.frame.Resize(v.grid())
	v.CenterOn(center)
	return true
}

// SetCellSize sets the cell size directly, keeping the center fixed.
func (v *Viewport) SetCellSize(size int) bool {
	return v.ResizeCell(clampCellSize(size) - v.cellSize)
}

// SetPixelSize changes the covered area, keeping the center fixed.
func (v *Viewport) SetPixelSize(pxW, pxH int) {
	pxW, pxH = max(pxW, 1), max(pxH, 1)
	if pxW == v.pxW && pxH == v.pxH {
		return
	}
	center := v.Center()
	v.pxW, v.pxH = pxW, pxH
	v.frame.Resize(v.grid())
	v.CenterOn(center)
}

// ScreenToWorld converts a pixel position to the plane coordinate under it.
// ok is false outside the covered area.
func (v *Viewport) ScreenToWorld(px, py int) (life.Loc, bool) {
	if px < 0 || py < 0 {
		return life.Loc{}, false
	}
	col, row := px/v.cellSize, py/v.cellSize
	if !v.frame.InBounds(col, row) {
		return life.Loc{}, false
	}
	return life.Loc{X: v.origin.X + col, Y: v.origin.Y + row}, true
}

// WorldToScreen returns the top-left pixel of l. ok is false when l is not
// visible.
func (v *Viewport) WorldToScreen(l life.Loc) (int, int, bool) {
	col, row := l.X-v.origin.X, l.Y-v.origin.Y
	if !v.frame.InBounds(col, row) {
		return 0, 0, false
	}
	return col * v.cellSize, row * v.cellSize, true
}
