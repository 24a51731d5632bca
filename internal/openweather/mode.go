package openweather

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned by ParseMode for unknown mode tags.
var ErrInvalidMode = errors.New("invalid fetch mode")

// Mode selects which provider endpoint a fetch targets.
type Mode int

const (
	// ModeCurrent fetches current conditions.
	ModeCurrent Mode = iota
	// ModeForecast fetches the 5-day / 3-hour forecast.
	ModeForecast
)

// ParseMode converts a mode tag to a Mode. Anything other than
// "current" or "forecast" is rejected.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "current":
		return ModeCurrent, nil
	case "forecast":
		return ModeForecast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCurrent:
		return "current"
	case ModeForecast:
		return "forecast"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// endpoint returns the provider path for the mode.
func (m Mode) endpoint() (string, error) {
	switch m {
	case ModeCurrent:
		return "/weather", nil
	case ModeForecast:
		return "/forecast", nil
	default:
		return "", fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
}
