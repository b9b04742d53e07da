package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 6}}
	buf := make([]byte, 12)
	fillPaletteRGBA(buf, []uint8{0, 1, 5}, palette)
	want := []byte{1, 2, 3, 4, 9, 8, 7, 6, 9, 8, 7, 6}
	if !slices.Equal(buf, want) {
		t.Fatalf("buf = %v, expected %v", buf, want)
	}

	fillPaletteRGBA(buf, []uint8{0, 1, 2}, nil)
	if !slices.Equal(buf, make([]byte, 12)) {
		t.Fatalf("empty palette should clear, got %v", buf)
	}
}

func TestPaletteCoversFrameValues(t *testing.T) {
	p := Palette()
	if len(p) != 3 {
		t.Fatalf("palette has %d entries", len(p))
	}
	if p[0] == p[1] || p[1] == p[2] || p[0] == p[2] {
		t.Fatal("frame values must be distinguishable")
	}
}
