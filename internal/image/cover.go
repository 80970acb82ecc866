package image

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// Geometry errors.
var (
	// ErrInvalidDimensions is returned when a target or source size is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidRatio is returned when a content ratio is outside (0, 1].
	ErrInvalidRatio = errors.New("image: content ratio out of range")
)

// Cover describes how a source is scaled and cropped to cover a target.
type Cover struct {
	Scale            float64 // uniform factor applied to both axes
	ScaledW, ScaledH int     // size after scaling
	Left, Top        int     // crop origin inside the scaled image
}

// CoverGeometry computes cover-fit geometry for a srcW x srcH source and a
// w x h target. The scale is the smallest uniform factor for which the
// scaled source covers the target on both axes; the excess is split evenly
// with the odd pixel going to the right/bottom.
func CoverGeometry(srcW, srcH, w, h int) (Cover, error) {
	if srcW <= 0 || srcH <= 0 || w <= 0 || h <= 0 {
		return Cover{}, fmt.Errorf("%w: cover %dx%d to %dx%d", ErrInvalidDimensions, srcW, srcH, w, h)
	}

	scale := math.Max(float64(w)/float64(srcW), float64(h)/float64(srcH))

	// Float error can leave one axis a pixel short of the target.
	sw := max(int(float64(srcW)*scale), w)
	sh := max(int(float64(srcH)*scale), h)

	return Cover{
		Scale:   scale,
		ScaledW: sw,
		ScaledH: sh,
		Left:    (sw - w) / 2,
		Top:     (sh - h) / 2,
	}, nil
}

// CoverFit scales img uniformly so it fills a w x h rectangle and
// center-crops the excess, like CSS background-size: cover. The result is
// exactly w x h; content is never letterboxed.
func CoverFit(img image.Image, w, h int, f Filter) (*image.NRGBA, error) {
	b := img.Bounds()
	g, err := CoverGeometry(b.Dx(), b.Dy(), w, h)
	if err != nil {
		return nil, err
	}

	scaled := f.Resize(img, g.ScaledW, g.ScaledH)
	if g.ScaledW == w && g.ScaledH == h {
		return scaled, nil
	}
	return imaging.Crop(scaled, image.Rect(g.Left, g.Top, g.Left+w, g.Top+h)), nil
}
