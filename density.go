package droidicon

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DensitySpec is one Android density bucket: the resource folder it writes
// to and the edge length in pixels of the icons placed there.
type DensitySpec struct {
	Label string `yaml:"label"`
	Size  int    `yaml:"size"`
}

// String returns "label (NxN)".
func (d DensitySpec) String() string {
	return fmt.Sprintf("%s (%dx%d)", d.Label, d.Size, d.Size)
}

// DefaultDensities returns the five launcher icon buckets, mdpi through
// xxxhdpi. A fresh slice is returned on every call.
func DefaultDensities() []DensitySpec {
	return []DensitySpec{
		{Label: "mipmap-mdpi", Size: 48},
		{Label: "mipmap-hdpi", Size: 72},
		{Label: "mipmap-xhdpi", Size: 96},
		{Label: "mipmap-xxhdpi", Size: 144},
		{Label: "mipmap-xxxhdpi", Size: 192},
	}
}

// ValidateDensities checks a density table: at least one entry, labels
// non-empty, unique and usable as a single directory name, sizes positive
// and strictly increasing.
func ValidateDensities(ds []DensitySpec) error {
	if len(ds) == 0 {
		return fmt.Errorf("%w: no densities", ErrInvalidOptions)
	}

	seen := make(map[string]bool, len(ds))
	prev := 0
	for i, d := range ds {
		switch {
		case d.Label == "":
			return fmt.Errorf("%w: density %d has no label", ErrInvalidOptions, i)
		case d.Label == "." || d.Label == ".." || strings.ContainsAny(d.Label, `/\`) || filepath.Base(d.Label) != d.Label:
			return fmt.Errorf("%w: density label %q is not a folder name", ErrInvalidOptions, d.Label)
		case seen[d.Label]:
			return fmt.Errorf("%w: duplicate density label %q", ErrInvalidOptions, d.Label)
		case d.Size <= 0:
			return fmt.Errorf("%w: density %s has size %d", ErrInvalidOptions, d.Label, d.Size)
		case d.Size <= prev:
			return fmt.Errorf("%w: density %s size %d does not exceed previous %d", ErrInvalidOptions, d.Label, d.Size, prev)
		}
		seen[d.Label] = true
		prev = d.Size
	}
	return nil
}
