package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const currentPayload = `{
	"main": {"temp": 31.84, "humidity": 42},
	"weather": [{"description": "scattered clouds"}, {"description": "haze"}],
	"wind": {"speed": 3.6, "deg": 250}
}`

const forecastPayload = `{
	"list": [
		{"dt_txt": "2026-08-30 12:00:00", "main": {"temp": 30.0}, "weather": [{"description": "clear sky"}]},
		{"dt_txt": "2026-08-30 15:00:00", "main": {"temp": 32.0}, "weather": [{"description": "clear sky"}]},
		{"dt_txt": "2026-08-31 12:00:00", "main": {"temp": 28.0}, "weather": [{"description": "light rain"}]}
	]
}`

func TestNewClient(t *testing.T) {
	c := NewClient("test-key", 0)
	if c == nil {
		t.Fatal("NewClient() returned nil")
	}
	if c.baseURL != "https://api.openweathermap.org/data/2.5" {
		t.Errorf("baseURL = %s, want https://api.openweathermap.org/data/2.5", c.baseURL)
	}
	if c.httpClient.Timeout != 30*time.Second {
		t.Errorf("default timeout = %v, want 30s", c.httpClient.Timeout)
	}
}

func TestClient_Current(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/weather" {
			t.Errorf("path = %s, want /weather", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("appid") != "test-key" {
			t.Errorf("appid = %q, want test-key", q.Get("appid"))
		}
		if q.Get("units") != "metric" {
			t.Errorf("units = %q, want metric", q.Get("units"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(currentPayload))
	}))
	defer server.Close()

	c := NewClient("test-key", 0)
	c.baseURL = server.URL

	current, err := c.Current(context.Background(), 28.61, 77.20)
	if err != nil {
		t.Fatalf("Current() error = %v", err)
	}

	if current.Temperature != 31.84 {
		t.Errorf("Temperature = %v, want 31.84", current.Temperature)
	}
	// Compound condition value unwraps to the first element
	if current.Condition != "scattered clouds" {
		t.Errorf("Condition = %q, want 'scattered clouds'", current.Condition)
	}
	if current.Humidity != 42 {
		t.Errorf("Humidity = %d, want 42", current.Humidity)
	}
	if current.WindSpeed != 3.6 {
		t.Errorf("WindSpeed = %v, want 3.6", current.WindSpeed)
	}
	if current.WindDirection() != "West-Southwest" {
		t.Errorf("WindDirection() = %q, want 'West-Southwest'", current.WindDirection())
	}
}

func TestClient_Forecast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/forecast" {
			t.Errorf("path = %s, want /forecast", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(forecastPayload))
	}))
	defer server.Close()

	c := NewClient("test-key", 0)
	c.baseURL = server.URL

	forecast, err := c.Forecast(context.Background(), 28.61, 77.20)
	if err != nil {
		t.Fatalf("Forecast() error = %v", err)
	}

	if len(forecast.Entries) != 3 {
		t.Fatalf("len(Entries) = %d, want 3", len(forecast.Entries))
	}

	first := forecast.Entries[0]
	if first.Temperature != 30.0 {
		t.Errorf("Temperature = %v, want 30.0", first.Temperature)
	}
	if first.Condition != "clear sky" {
		t.Errorf("Condition = %q, want 'clear sky'", first.Condition)
	}
	if got := first.Timestamp.Format("2006-01-02 15:04:05"); got != "2026-08-30 12:00:00" {
		t.Errorf("Timestamp = %q, want '2026-08-30 12:00:00'", got)
	}
}

func TestClient_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{"401 unauthorized", http.StatusUnauthorized},
		{"404 not found", http.StatusNotFound},
		{"500 server error", http.StatusInternalServerError},
		{"503 unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			c := NewClient("test-key", 0)
			c.baseURL = server.URL

			_, err := c.Current(context.Background(), 28.61, 77.20)
			if !errors.Is(err, ErrUnavailable) {
				t.Errorf("Current() error = %v, want ErrUnavailable", err)
			}
		})
	}
}

func TestClient_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c := NewClient("test-key", 0)
	c.baseURL = server.URL

	_, err := c.Forecast(context.Background(), 28.61, 77.20)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("Forecast() error = %v, want ErrUnavailable", err)
	}
}
