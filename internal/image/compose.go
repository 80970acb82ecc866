package image

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"
)

// DefaultContentRatio is the share of an adaptive icon foreground canvas
// occupied by content. Launchers mask the outer part of the layer, so
// content kept inside 68% of the canvas survives every mask shape.
const DefaultContentRatio = 0.68

// ContentSize returns floor(canvas * ratio).
func ContentSize(canvas int, ratio float64) (int, error) {
	if !(ratio > 0 && ratio <= 1) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidRatio, ratio)
	}
	if canvas <= 0 {
		return 0, fmt.Errorf("%w: canvas %d", ErrInvalidDimensions, canvas)
	}
	// The epsilon keeps exact products such as 25*0.68 = 17 from flooring to 16.
	n := int(math.Floor(float64(canvas)*ratio + 1e-9))
	if n <= 0 {
		return 0, fmt.Errorf("%w: canvas %d leaves no room for content at ratio %v", ErrInvalidDimensions, canvas, ratio)
	}
	return n, nil
}

// ComposeForeground renders an adaptive icon foreground layer: img is
// cover-fitted to ContentSize(canvas, ratio) and pasted centred on a fully
// transparent canvas x canvas image at offset floor((canvas-content)/2).
func ComposeForeground(img image.Image, canvas int, ratio float64, f Filter) (*image.NRGBA, error) {
	content, err := ContentSize(canvas, ratio)
	if err != nil {
		return nil, err
	}

	fitted, err := CoverFit(img, content, content, f)
	if err != nil {
		return nil, err
	}

	dst := image.NewNRGBA(image.Rect(0, 0, canvas, canvas))
	off := (canvas - content) / 2
	draw.Copy(dst, image.Pt(off, off), fitted, fitted.Bounds(), draw.Src, nil)
	return dst, nil
}

// ComposeLegacy renders a full-bleed square legacy launcher icon. The round
// variant uses the same pixels; launchers apply the circular mask.
func ComposeLegacy(img image.Image, size int, f Filter) (*image.NRGBA, error) {
	return CoverFit(img, size, size, f)
}
