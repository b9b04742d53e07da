package core

// Size describes the dimensions of a raster, in cells.
type Size struct {
	W int
	H int
}

// Sim defines the minimal contract a frontend drives.
type Sim interface {
	Name() string
	Reset(seed int64)
	Step()
}

// Renderer receives per-cell state changes and frame boundaries. Every
// method must return without blocking.
type Renderer interface {
	Draw(x, y int, state uint8)
	ClearViewport()
	Present()
}
