package models

import "time"

// TimeLayout is the canonical storage format for record timestamps.
const TimeLayout = "2006-01-02 15:04:05"

// WeatherRecord is one persisted weather observation tied to a location
// and timestamp. The ID is assigned by the store on creation and never
// changes; every other field may be overwritten by an update.
type WeatherRecord struct {
	ID            int64     `json:"id"`
	Location      string    `json:"location"`       // User-supplied label, free-form
	ObservedAt    time.Time `json:"observed_at"`
	Temperature   float64   `json:"temperature"`    // Celsius
	Condition     string    `json:"condition"`      // e.g. "scattered clouds"
	Humidity      int       `json:"humidity"`       // percent
	WindSpeed     float64   `json:"wind_speed"`     // m/s
	WindDirection string    `json:"wind_direction"` // compass name, e.g. "North-Northeast"
}
