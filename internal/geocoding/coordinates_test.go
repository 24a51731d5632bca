package geocoding

import (
	"errors"
	"testing"
)

func TestParseCoordinates_Valid(t *testing.T) {
	tests := []struct {
		input   string
		lat     float64
		lon     float64
	}{
		{"28.61, 77.20", 28.61, 77.20},
		{"28.61,77.20", 28.61, 77.20},
		{"  -33.86 ,  151.20  ", -33.86, 151.20},
		{"-90, -180", -90, -180},
		{"90, 180", 90, 180},
		{"0, 0", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lat, lon, err := ParseCoordinates(tt.input)
			if err != nil {
				t.Fatalf("ParseCoordinates(%q) error = %v", tt.input, err)
			}
			if lat != tt.lat || lon != tt.lon {
				t.Errorf("ParseCoordinates(%q) = (%v, %v), want (%v, %v)",
					tt.input, lat, lon, tt.lat, tt.lon)
			}
		})
	}
}

func TestParseCoordinates_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing comma", "28.61 77.20"},
		{"empty", ""},
		{"latitude not numeric", "abc, 77.20"},
		{"longitude not numeric", "28.61, xyz"},
		{"latitude out of range", "200, 50"},
		{"latitude below range", "-90.1, 0"},
		{"longitude out of range", "0, 180.5"},
		{"longitude below range", "0, -181"},
		{"extra comma", "1, 2, 3"},
		{"only comma", ","},
		{"nan pair", "nan, nan"},
		{"nan latitude", "NaN, 77.20"},
		{"nan longitude", "28.61, nan"},
		{"infinite latitude", "+Inf, 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseCoordinates(tt.input)
			if err == nil {
				t.Fatalf("ParseCoordinates(%q) expected error", tt.input)
			}
			if !errors.Is(err, ErrInvalidCoordinates) {
				t.Errorf("ParseCoordinates(%q) error = %v, want ErrInvalidCoordinates", tt.input, err)
			}
		})
	}
}
