package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/shrivastava03/weather-terminal/internal/geocoding"
	"github.com/shrivastava03/weather-terminal/internal/models"
	"github.com/shrivastava03/weather-terminal/internal/openweather"
	"github.com/shrivastava03/weather-terminal/internal/records"
)

// Message types for async operations

// errMsg is a message type for errors
type errMsg struct {
	err error
}

// resolvedMsg is sent when location resolution completes
type resolvedMsg struct {
	location *geocoding.Location
	label    string // user-supplied label for the queried place
	err      error
}

// weatherMsg is sent when weather data has been fetched. The forecast
// is best-effort: a nil forecast with a nil err means current
// conditions arrived but the forecast call failed.
type weatherMsg struct {
	current  *openweather.CurrentConditions
	forecast *openweather.Forecast
	err      error
}

// recordSavedMsg is sent when a lookup has been persisted
type recordSavedMsg struct {
	id  int64
	err error
}

// historyLoadedMsg is sent when the history has been read
type historyLoadedMsg struct {
	records []models.WeatherRecord
	err     error
}

// recordDeletedMsg is sent when a delete completes
type recordDeletedMsg struct {
	id       int64
	affected bool
	err      error
}

// recordUpdatedMsg is sent when an update completes
type recordUpdatedMsg struct {
	id       int64
	affected bool
	err      error
}

// resolveLocation resolves user input to coordinates in the background
func resolveLocation(geocoder *geocoding.Geocoder, mode InputMode, query string, devLat, devLon float64, devOK bool) tea.Cmd {
	return func() tea.Msg {
		switch mode {
		case ModeCoordinates:
			lat, lon, err := geocoding.ParseCoordinates(query)
			if err != nil {
				return resolvedMsg{err: err}
			}
			return resolvedMsg{
				location: &geocoding.Location{Latitude: lat, Longitude: lon, Name: query},
				label:    query,
			}

		case ModeDevice:
			loc, err := geocoding.DeviceLocation(devLat, devLon, devOK)
			if err != nil {
				return resolvedMsg{err: err}
			}
			return resolvedMsg{location: loc, label: "Device Location"}

		default:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			loc, err := geocoder.Geocode(ctx, query)
			return resolvedMsg{location: loc, label: query, err: err}
		}
	}
}

// fetchWeather fetches current conditions and the forecast for a
// location. A failed forecast call degrades to "no forecast" rather
// than failing the lookup.
func fetchWeather(client *openweather.Client, lat, lon float64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		current, err := client.Current(ctx, lat, lon)
		if err != nil {
			return weatherMsg{err: err}
		}

		forecast, err := client.Forecast(ctx, lat, lon)
		if err != nil {
			forecast = nil
		}

		return weatherMsg{current: current, forecast: forecast}
	}
}

// saveRecord persists a successful lookup
func saveRecord(repo *records.Repository, label string, current *openweather.CurrentConditions) tea.Cmd {
	return func() tea.Msg {
		id, err := repo.Create(
			label,
			current.Temperature,
			current.Condition,
			current.Humidity,
			current.WindSpeed,
			current.WindDirection(),
		)
		return recordSavedMsg{id: id, err: err}
	}
}

// loadHistory reads all saved records
func loadHistory(repo *records.Repository) tea.Cmd {
	return func() tea.Msg {
		recs, err := repo.List()
		return historyLoadedMsg{records: recs, err: err}
	}
}

// deleteRecord removes a record by id
func deleteRecord(repo *records.Repository, id int64) tea.Cmd {
	return func() tea.Msg {
		affected, err := repo.Delete(id)
		return recordDeletedMsg{id: id, affected: affected, err: err}
	}
}

// updateRecord re-resolves a new location, re-fetches current
// conditions, and overwrites the record. The update is gated on a
// successful fetch; any failure leaves the row untouched.
func updateRecord(geocoder *geocoding.Geocoder, client *openweather.Client, repo *records.Repository, id int64, newLocation string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		loc, err := geocoder.Geocode(ctx, newLocation)
		if err != nil {
			return recordUpdatedMsg{id: id, err: err}
		}

		current, err := client.Current(ctx, loc.Latitude, loc.Longitude)
		if err != nil {
			return recordUpdatedMsg{id: id, err: err}
		}

		affected, err := repo.Update(
			id,
			newLocation,
			time.Now(),
			current.Temperature,
			current.Condition,
			current.Humidity,
			current.WindSpeed,
			current.WindDirection(),
		)
		return recordUpdatedMsg{id: id, affected: affected, err: err}
	}
}
