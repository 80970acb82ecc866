package droidicon

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	intImage "github.com/gogpu/droidicon/internal/image"
)

// Result lists the icons written by Run, in write order.
type Result struct {
	Icons []RenderedIcon
}

// Run derives launcher icons from the image at source and writes them under
// outputRoot, one folder per density:
//
//	outputRoot/<label>/ic_launcher.png
//	outputRoot/<label>/ic_launcher_round.png
//	outputRoot/<label>/ic_launcher_foreground.png
//
// The source is loaded and decoded before anything is written; a missing
// or undecodable source fails with ErrSourceNotFound or ErrDecode and leaves
// the filesystem untouched. Densities are processed in table order. The
// first encode or write failure stops the run with ErrEncodeOrWrite; the
// returned Result still lists the icons written before it.
func Run(source, outputRoot string, opts ...Option) (*Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if source == "" {
		return nil, fmt.Errorf("%w: empty source path", ErrInvalidOptions)
	}
	if outputRoot == "" {
		return nil, fmt.Errorf("%w: empty output root", ErrInvalidOptions)
	}

	src, err := load(source)
	if err != nil {
		return nil, err
	}

	base := src
	if o.trim {
		base = intImage.Trim(src, o.borderPercent)
		Logger().Debug("trimmed source",
			"from", src.Bounds().Size(), "to", base.Bounds().Size(),
			"border_percent", o.borderPercent)
	}

	res := &Result{}
	for _, d := range o.densities {
		if err := renderDensity(res, base, outputRoot, d, &o); err != nil {
			return res, err
		}
	}

	Logger().Info("icons generated", "count", len(res.Icons), "root", outputRoot)
	return res, nil
}

// load opens and decodes the source image.
func load(path string) (image.Image, error) {
	f, err := intImage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrSourceNotFound, path, err)
	}
	defer func() { _ = f.Close() }()

	img, format, err := intImage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %s: empty %s image", ErrDecode, path, format)
	}

	Logger().Debug("loaded source", "path", path, "format", format, "size", b.Size())
	return img, nil
}

// renderDensity writes every enabled icon family for one density bucket.
func renderDensity(res *Result, base image.Image, root string, d DensitySpec, o *options) error {
	dir := filepath.Join(root, d.Label)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrEncodeOrWrite, dir, err)
	}

	if o.families.Has(FamilyLegacy) {
		icon, err := intImage.ComposeLegacy(base, d.Size, o.filter)
		if err != nil {
			return fmt.Errorf("%w: render %s legacy: %w", ErrEncodeOrWrite, d.Label, err)
		}
		data, err := intImage.EncodePNGBytes(icon)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEncodeOrWrite, filepath.Join(dir, RoleLegacy.FileName()), err)
		}
		// The round icon is the same bytes under a second name.
		for _, role := range []Role{RoleLegacy, RoleLegacyRound} {
			if err := writeIcon(res, dir, d, role, data); err != nil {
				return err
			}
		}
	}

	if o.families.Has(FamilyForeground) {
		icon, err := intImage.ComposeForeground(base, d.Size, o.contentRatio, o.filter)
		if err != nil {
			return fmt.Errorf("%w: render %s foreground: %w", ErrEncodeOrWrite, d.Label, err)
		}
		data, err := intImage.EncodePNGBytes(icon)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrEncodeOrWrite, filepath.Join(dir, RoleForeground.FileName()), err)
		}
		if err := writeIcon(res, dir, d, RoleForeground, data); err != nil {
			return err
		}
	}
	return nil
}

func writeIcon(res *Result, dir string, d DensitySpec, role Role, data []byte) error {
	path := filepath.Join(dir, role.FileName())
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodeOrWrite, path, err)
	}
	res.Icons = append(res.Icons, RenderedIcon{Role: role, Density: d, Path: path})
	Logger().Info("wrote icon", "role", role, "density", d.Label, "size", d.Size, "path", path)
	return nil
}
