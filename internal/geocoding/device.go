package geocoding

import (
	"errors"
	"fmt"
)

// ErrDeviceUnavailable is returned when no device coordinates are
// configured.
var ErrDeviceUnavailable = errors.New("device location unavailable")

// DeviceLocation returns a Location for device-reported coordinates.
// The pair bypasses geocoding and coordinate-text parsing entirely; it
// only has to be present and in range.
func DeviceLocation(lat, lon float64, configured bool) (*Location, error) {
	if !configured {
		return nil, ErrDeviceUnavailable
	}
	// Negated form so NaN fails the range check too.
	if !(lat >= -90 && lat <= 90) || !(lon >= -180 && lon <= 180) {
		return nil, fmt.Errorf("%w: (%v, %v)", ErrInvalidCoordinates, lat, lon)
	}
	return &Location{
		Latitude:  lat,
		Longitude: lon,
		Name:      fmt.Sprintf("%.4f, %.4f", lat, lon),
	}, nil
}
