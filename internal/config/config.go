package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shrivastava03/weather-terminal/internal/database"
)

// Config holds runtime configuration for the application. Everything
// is read from the environment (optionally seeded from a .env file).
type Config struct {
	// APIKey is the OpenWeatherMap access credential.
	APIKey string

	// DBPath is the location of the SQLite history database.
	DBPath string

	// HTTPTimeout bounds each call to the geocoding and weather
	// providers.
	HTTPTimeout time.Duration

	// DebugLog is an optional file path for diagnostic logging. The
	// TUI owns the terminal, so logs never go to stderr while running.
	DebugLog string

	// Device-reported coordinates for the "Device Location" input
	// mode. Both must be set for the mode to be available.
	deviceLat    float64
	deviceLon    float64
	deviceLatSet bool
	deviceLonSet bool
}

// Load reads configuration from the environment with sensible
// defaults. A missing .env file is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:   os.Getenv("OPENWEATHER_API_KEY"),
		DBPath:   getenvDefault("WEATHER_DB_PATH", database.DefaultPath()),
		DebugLog: os.Getenv("WEATHER_DEBUG_LOG"),
	}

	timeoutStr := getenvDefault("WEATHER_HTTP_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WEATHER_HTTP_TIMEOUT: %w", err)
	}
	cfg.HTTPTimeout = timeout

	cfg.deviceLat, cfg.deviceLatSet, err = getenvFloat("WEATHER_DEVICE_LAT")
	if err != nil {
		return nil, err
	}
	cfg.deviceLon, cfg.deviceLonSet, err = getenvFloat("WEATHER_DEVICE_LON")
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// DeviceCoordinates returns the configured device coordinates, if any.
func (c *Config) DeviceCoordinates() (lat, lon float64, ok bool) {
	if !c.deviceLatSet || !c.deviceLonSet {
		return 0, 0, false
	}
	return c.deviceLat, c.deviceLon, true
}

// SetDeviceCoordinates overrides the device coordinates. Used by tests
// and by flag handling in the command layer.
func (c *Config) SetDeviceCoordinates(lat, lon float64) {
	c.deviceLat, c.deviceLatSet = lat, true
	c.deviceLon, c.deviceLonSet = lon, true
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvFloat(key string) (float64, bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return 0, false, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return f, true, nil
}
