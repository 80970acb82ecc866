package droidicon

import (
	"errors"
	"testing"
)

func TestDefaultDensities(t *testing.T) {
	want := []DensitySpec{
		{"mipmap-mdpi", 48},
		{"mipmap-hdpi", 72},
		{"mipmap-xhdpi", 96},
		{"mipmap-xxhdpi", 144},
		{"mipmap-xxxhdpi", 192},
	}
	got := DefaultDensities()
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("density %d = %v, want %v", i, got[i], want[i])
		}
	}
	if err := ValidateDensities(got); err != nil {
		t.Errorf("ValidateDensities(defaults) = %v", err)
	}

	// Callers may modify the returned table freely.
	got[0].Size = 1
	if DefaultDensities()[0].Size != 48 {
		t.Error("DefaultDensities() shares its backing array")
	}
}

func TestValidateDensities(t *testing.T) {
	tests := []struct {
		name string
		ds   []DensitySpec
	}{
		{"empty", nil},
		{"missing label", []DensitySpec{{"", 48}}},
		{"path label", []DensitySpec{{"res/mipmap-mdpi", 48}}},
		{"dot label", []DensitySpec{{"..", 48}}},
		{"duplicate label", []DensitySpec{{"a", 48}, {"a", 72}}},
		{"zero size", []DensitySpec{{"a", 0}}},
		{"negative size", []DensitySpec{{"a", -48}}},
		{"equal sizes", []DensitySpec{{"a", 48}, {"b", 48}}},
		{"decreasing", []DensitySpec{{"a", 96}, {"b", 72}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateDensities(tt.ds); !errors.Is(err, ErrInvalidOptions) {
				t.Errorf("ValidateDensities() = %v, want ErrInvalidOptions", err)
			}
		})
	}
}

func TestDensitySpecString(t *testing.T) {
	if got := (DensitySpec{"mipmap-hdpi", 72}).String(); got != "mipmap-hdpi (72x72)" {
		t.Errorf("String() = %q", got)
	}
}
