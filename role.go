package droidicon

import (
	"fmt"
	"strings"
)

// Role identifies which launcher asset a rendered icon is.
type Role uint8

const (
	// RoleLegacy is the full-bleed square icon for launchers without
	// adaptive icon support.
	RoleLegacy Role = iota

	// RoleLegacyRound is the legacy icon registered as the round variant.
	// It carries the same pixels as RoleLegacy; launchers apply the mask.
	RoleLegacyRound

	// RoleForeground is the adaptive icon foreground layer.
	RoleForeground
)

// String returns a short name for the role.
func (r Role) String() string {
	switch r {
	case RoleLegacy:
		return "legacy"
	case RoleLegacyRound:
		return "legacy_round"
	case RoleForeground:
		return "adaptive_foreground"
	default:
		return "unknown"
	}
}

// FileName returns the resource file name Android expects for the role.
func (r Role) FileName() string {
	switch r {
	case RoleLegacy:
		return "ic_launcher.png"
	case RoleLegacyRound:
		return "ic_launcher_round.png"
	case RoleForeground:
		return "ic_launcher_foreground.png"
	default:
		return ""
	}
}

// RenderedIcon records one icon file written by Run.
type RenderedIcon struct {
	Role    Role
	Density DensitySpec
	Path    string
}

// Family is a set of icon families to generate.
type Family uint8

const (
	// FamilyLegacy produces ic_launcher.png and ic_launcher_round.png.
	FamilyLegacy Family = 1 << iota

	// FamilyForeground produces ic_launcher_foreground.png.
	FamilyForeground

	// FamilyAll produces every icon family.
	FamilyAll = FamilyLegacy | FamilyForeground
)

// Has reports whether every family in other is part of f.
func (f Family) Has(other Family) bool {
	return f&other == other
}

// String returns the families as a comma separated list.
func (f Family) String() string {
	var names []string
	if f.Has(FamilyLegacy) {
		names = append(names, "legacy")
	}
	if f.Has(FamilyForeground) {
		names = append(names, "foreground")
	}
	return strings.Join(names, ",")
}

// ParseFamilies parses family names ("legacy", "foreground", "all").
// Each element may itself be a comma separated list.
func ParseFamilies(names ...string) (Family, error) {
	var f Family
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			switch strings.ToLower(strings.TrimSpace(part)) {
			case "":
			case "legacy":
				f |= FamilyLegacy
			case "foreground", "adaptive":
				f |= FamilyForeground
			case "all":
				f |= FamilyAll
			default:
				return 0, fmt.Errorf("%w: unknown icon family %q", ErrInvalidOptions, part)
			}
		}
	}
	if f == 0 {
		return 0, fmt.Errorf("%w: no icon family selected", ErrInvalidOptions)
	}
	return f, nil
}
