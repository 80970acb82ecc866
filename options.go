package droidicon

import (
	"fmt"
	"slices"

	intImage "github.com/gogpu/droidicon/internal/image"
)

// Option configures a Run.
// Use functional options to depart from the Android defaults.
//
// Example:
//
//	// Defaults: five densities, both families, trimmed, 68% content
//	res, err := droidicon.Run("icon.jpeg", "android/app/src/main/res")
//
//	// Foreground layers only, 5% white border around the trimmed subject
//	res, err := droidicon.Run("icon.png", "res",
//	    droidicon.WithFamilies(droidicon.FamilyForeground),
//	    droidicon.WithBorderPercent(5))
type Option func(*options)

// options holds the configuration assembled from Option values.
type options struct {
	densities     []DensitySpec
	families      Family
	borderPercent float64
	contentRatio  float64
	filterName    string
	filter        intImage.Filter
	trim          bool
}

// defaultOptions returns the configuration used when no Option is given.
func defaultOptions() options {
	return options{
		densities:    DefaultDensities(),
		families:     FamilyAll,
		contentRatio: intImage.DefaultContentRatio,
		filterName:   intImage.FilterLanczos.String(),
		trim:         true,
	}
}

func (o *options) validate() error {
	if err := ValidateDensities(o.densities); err != nil {
		return err
	}
	if o.families&FamilyAll == 0 {
		return fmt.Errorf("%w: no icon family selected", ErrInvalidOptions)
	}
	if o.borderPercent < 0 {
		return fmt.Errorf("%w: border percent %v is negative", ErrInvalidOptions, o.borderPercent)
	}
	if !(o.contentRatio > 0 && o.contentRatio <= 1) {
		return fmt.Errorf("%w: content ratio %v outside (0, 1]", ErrInvalidOptions, o.contentRatio)
	}
	f, err := intImage.ParseFilter(o.filterName)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}
	o.filter = f
	if o.families.Has(FamilyForeground) {
		// The smallest bucket must leave room for at least one content pixel.
		if _, err := intImage.ContentSize(o.densities[0].Size, o.contentRatio); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
		}
	}
	return nil
}

// WithDensities replaces the density table. The table is copied.
func WithDensities(ds []DensitySpec) Option {
	return func(o *options) {
		o.densities = slices.Clone(ds)
	}
}

// WithFamilies selects which icon families are generated.
func WithFamilies(f Family) Option {
	return func(o *options) {
		o.families = f
	}
}

// WithBorderPercent pads the trimmed subject with white, sized as a
// percentage of its shorter side. The default is 0.
func WithBorderPercent(p float64) Option {
	return func(o *options) {
		o.borderPercent = p
	}
}

// WithContentRatio sets the share of the foreground canvas covered by
// content. The default is 0.68.
func WithContentRatio(r float64) Option {
	return func(o *options) {
		o.contentRatio = r
	}
}

// WithFilter selects the resampling filter by name: "lanczos" (default),
// "catmullrom" or "bilinear".
func WithFilter(name string) Option {
	return func(o *options) {
		o.filterName = name
	}
}

// WithTrim enables or disables white margin trimming. Without trimming the
// source is cover-fitted as is.
func WithTrim(enabled bool) Option {
	return func(o *options) {
		o.trim = enabled
	}
}
