package image

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestTrimCentredSquare(t *testing.T) {
	src := newCanvas(500, 500, White)
	fillRect(src, image.Rect(100, 100, 400, 400), red)

	got := Trim(src, 0)
	assertSize(t, got, 300, 300)

	c := color.NRGBAModel.Convert(got.At(0, 0)).(color.NRGBA)
	if c != red {
		t.Errorf("corner pixel = %v, want %v", c, red)
	}
}

func TestTrimBorder(t *testing.T) {
	tests := []struct {
		name    string
		content image.Rectangle
		percent float64
		wantW   int
		wantH   int
	}{
		{"no border", image.Rect(10, 10, 60, 40), 0, 50, 30},
		{"ten percent of shorter side", image.Rect(10, 10, 60, 40), 10, 56, 36},
		{"rounds half up", image.Rect(0, 0, 25, 25), 10, 31, 31},
		{"negative treated as zero", image.Rect(0, 0, 20, 20), -5, 20, 20},
		{"single pixel", image.Rect(7, 3, 8, 4), 0, 1, 1},
		{"single pixel with border", image.Rect(7, 3, 8, 4), 100, 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := newCanvas(80, 80, White)
			fillRect(src, tt.content, blue)

			got := Trim(src, tt.percent)
			assertSize(t, got, tt.wantW, tt.wantH)

			border := (tt.wantW - tt.content.Dx()) / 2
			if border > 0 {
				c := color.NRGBAModel.Convert(got.At(0, 0)).(color.NRGBA)
				if c != White {
					t.Errorf("border pixel = %v, want white", c)
				}
			}
			c := color.NRGBAModel.Convert(got.At(border, border)).(color.NRGBA)
			if c != blue {
				t.Errorf("content pixel = %v, want %v", c, blue)
			}
		})
	}
}

func TestTrimAllWhiteIsNoop(t *testing.T) {
	src := newCanvas(40, 30, White)

	got := Trim(src, 5)
	assertSize(t, got, 40, 30)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("Trim() changed the pixels of an all-white image")
	}
}

func TestTrimIdempotent(t *testing.T) {
	src := newCanvas(120, 90, White)
	fillRect(src, image.Rect(20, 15, 70, 80), red)
	fillRect(src, image.Rect(60, 30, 100, 40), blue)

	once := Trim(src, 0)
	twice := Trim(once, 0)

	if once.Bounds() != twice.Bounds() {
		t.Fatalf("second trim bounds = %v, want %v", twice.Bounds(), once.Bounds())
	}
	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("second trim changed pixels")
	}
}

func TestTrimTransparentMargin(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 50, 50)) // fully transparent
	fillRect(src, image.Rect(10, 20, 30, 25), blue)

	got := Trim(src, 0)
	assertSize(t, got, 20, 5)

	_, _, _, a := got.At(0, 0).RGBA()
	if a != 0xffff {
		t.Errorf("trimmed pixel alpha = %#x, want opaque", a)
	}
}

func TestTrimFullyTransparentFlattensToWhite(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 16, 16))

	got := Trim(src, 0)
	assertSize(t, got, 16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if c := got.NRGBAAt(x, y); c != White {
				t.Fatalf("pixel (%d,%d) = %v, want opaque white", x, y, c)
			}
		}
	}
}

func TestTrimWhiteOnTransparentIsOpaque(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	fillRect(src, image.Rect(20, 20, 80, 80), White)

	got := Trim(src, 0)
	assertSize(t, got, 100, 100)
	if c := got.NRGBAAt(0, 0); c != White {
		t.Errorf("corner = %v, want opaque white", c)
	}
	if c := got.NRGBAAt(50, 50); c != White {
		t.Errorf("centre = %v, want opaque white", c)
	}
}

func TestTrimOffsetBounds(t *testing.T) {
	base := newCanvas(60, 60, White)
	fillRect(base, image.Rect(30, 30, 40, 35), red)
	sub := base.SubImage(image.Rect(20, 20, 60, 60))

	got := Trim(sub, 0)
	assertSize(t, got, 10, 5)
}

func TestFlattenPreservesOpaque(t *testing.T) {
	src := newCanvas(8, 8, red)
	fillRect(src, image.Rect(2, 2, 4, 4), blue)

	got := Flatten(src)
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Error("Flatten() altered an opaque image")
	}
}

func TestFlattenHalfTransparent(t *testing.T) {
	src := newCanvas(1, 1, color.NRGBA{R: 0, G: 0, B: 0, A: 128})

	got := Flatten(src).NRGBAAt(0, 0)
	if got.A != 0xff {
		t.Fatalf("alpha = %d, want 255", got.A)
	}
	// Half black over white lands near mid-grey.
	if got.R < 120 || got.R > 135 {
		t.Errorf("R = %d, want ~127", got.R)
	}
}

func TestContentBounds(t *testing.T) {
	img := newCanvas(20, 20, White)
	if _, ok := ContentBounds(img); ok {
		t.Fatal("ContentBounds() ok = true for all-white image")
	}

	img.SetNRGBA(3, 17, red)
	img.SetNRGBA(12, 4, red)
	r, ok := ContentBounds(img)
	if !ok {
		t.Fatal("ContentBounds() ok = false")
	}
	if want := image.Rect(3, 4, 13, 18); r != want {
		t.Errorf("ContentBounds() = %v, want %v", r, want)
	}
}

func TestBorderSize(t *testing.T) {
	tests := []struct {
		w, h    int
		percent float64
		want    int
	}{
		{300, 300, 0, 0},
		{300, 200, 10, 20},
		{15, 40, 10, 2},
		{1, 1, 100, 1},
		{100, 100, -3, 0},
	}
	for _, tt := range tests {
		if got := BorderSize(tt.w, tt.h, tt.percent); got != tt.want {
			t.Errorf("BorderSize(%d, %d, %v) = %d, want %d", tt.w, tt.h, tt.percent, got, tt.want)
		}
	}
}
