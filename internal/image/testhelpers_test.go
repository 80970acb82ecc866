package image

import (
	"image"
	"image/color"
	"testing"
)

// newCanvas returns a w x h NRGBA filled with c.
func newCanvas(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// fillRect paints r on img with c.
func fillRect(img *image.NRGBA, r image.Rectangle, c color.NRGBA) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

func assertSize(t *testing.T, img image.Image, w, h int) {
	t.Helper()
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		t.Fatalf("size = %dx%d, want %dx%d", b.Dx(), b.Dy(), w, h)
	}
	if b.Min != (image.Point{}) {
		t.Errorf("bounds origin = %v, want (0,0)", b.Min)
	}
}

var (
	red  = color.NRGBA{R: 200, G: 20, B: 20, A: 255}
	blue = color.NRGBA{R: 10, G: 40, B: 220, A: 255}
)
