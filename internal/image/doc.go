// Package image implements the raster geometry behind launcher icon
// generation.
//
// The operations compose into the icon pipeline:
//   - Flatten / Trim: remove the white (or transparent) margin around a subject
//   - CoverFit: uniform scale plus center-crop to an exact target size
//   - ComposeForeground: adaptive icon layer, content centred on transparency
//   - ComposeLegacy: full-bleed square icon
//
// Every operation returns a new *image.NRGBA (or the unchanged input) and
// never modifies its argument. Resampling goes through Filter, backed by
// github.com/disintegration/imaging and golang.org/x/image/draw.
package image
