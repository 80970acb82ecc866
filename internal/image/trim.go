package image

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// White is the reference background that Trim removes.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Flatten composites img over an opaque white canvas of the same size.
// Transparent regions become pure white; opaque images come back with
// identical pixels. The result is rebased so its bounds start at (0,0).
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// ContentBounds returns the smallest rectangle enclosing every pixel of an
// opaque image whose colour differs from pure white. ok is false when the
// image is entirely white.
func ContentBounds(img *image.NRGBA) (r image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			i := (x - b.Min.X) * 4
			if row[i] == 0xff && row[i+1] == 0xff && row[i+2] == 0xff {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}

	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// BorderSize is the white padding Trim adds around content of the given
// size: round(min(width, height) * percent / 100), never negative.
func BorderSize(width, height int, percent float64) int {
	if percent <= 0 {
		return 0
	}
	return int(math.Round(float64(min(width, height)) * percent / 100))
}

// Trim removes the uniform white margin around the subject of img.
//
// Images with transparency are flattened onto white first, so transparent
// margins are trimmed like white ones. The content is then cropped to its
// bounding box and padded with borderPercent of its shorter side in solid
// white. An image that flattens to pure white is returned flattened but
// uncropped. The result is always opaque.
func Trim(img image.Image, borderPercent float64) *image.NRGBA {
	flat := Flatten(img)
	r, ok := ContentBounds(flat)
	if !ok {
		return flat
	}

	border := BorderSize(r.Dx(), r.Dy(), borderPercent)
	dst := image.NewNRGBA(image.Rect(0, 0, r.Dx()+2*border, r.Dy()+2*border))
	if border > 0 {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(White), image.Point{}, draw.Src)
	}
	inner := image.Rect(border, border, border+r.Dx(), border+r.Dy())
	draw.Draw(dst, inner, flat, r.Min, draw.Src)
	return dst
}
