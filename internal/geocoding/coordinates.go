package geocoding

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidCoordinates is returned for coordinate text that does not
// parse to an in-range latitude/longitude pair.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// ParseCoordinates parses a string of the form "<lat>, <lon>". The
// input is split on the first comma, both halves are trimmed and
// parsed as decimal numbers, and the values must satisfy
// lat in [-90, 90] and lon in [-180, 180].
func ParseCoordinates(s string) (lat, lon float64, err error) {
	parts := strings.SplitN(s, ",", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: expected \"lat, lon\"", ErrInvalidCoordinates)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude is not a number", ErrInvalidCoordinates)
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude is not a number", ErrInvalidCoordinates)
	}

	// Negated form so NaN fails the range check too.
	if !(lat >= -90 && lat <= 90) {
		return 0, 0, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinates, lat)
	}
	if !(lon >= -180 && lon <= 180) {
		return 0, 0, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinates, lon)
	}

	return lat, lon, nil
}
