package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// ErrUnavailable is returned for any transport failure or non-success
// status from the weather provider. Callers treat it as "no data
// available" and skip downstream persistence and display.
var ErrUnavailable = errors.New("weather provider unavailable")

// Client fetches weather data from the OpenWeatherMap API in metric
// units.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new OpenWeatherMap client.
func NewClient(apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL: defaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// CurrentConditions holds current weather for a coordinate pair.
type CurrentConditions struct {
	Temperature float64 // Celsius
	Condition   string  // sky-condition description
	Humidity    int     // percent
	WindSpeed   float64 // m/s
	WindDegrees float64 // raw compass degrees
}

// WindDirection returns the wind direction as a compass name.
func (c CurrentConditions) WindDirection() string {
	return DegreesToCompass(c.WindDegrees)
}

// ForecastEntry is one 3-hour forecast point.
type ForecastEntry struct {
	Timestamp   time.Time // UTC
	Temperature float64   // Celsius
	Condition   string
}

// Forecast is a time-ordered sequence of 3-hour entries spanning up to
// 5 days.
type Forecast struct {
	Entries []ForecastEntry
}

// currentResponse mirrors the provider's current-weather payload.
type currentResponse struct {
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   float64 `json:"deg"`
	} `json:"wind"`
}

// forecastResponse mirrors the provider's 5-day forecast payload.
type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Current retrieves current conditions for a coordinate pair.
func (c *Client) Current(ctx context.Context, lat, lon float64) (*CurrentConditions, error) {
	var payload currentResponse
	if err := c.get(ctx, ModeCurrent, lat, lon, &payload); err != nil {
		return nil, err
	}

	return &CurrentConditions{
		Temperature: payload.Main.Temp,
		Condition:   firstDescription(descriptions(payload.Weather)),
		Humidity:    payload.Main.Humidity,
		WindSpeed:   payload.Wind.Speed,
		WindDegrees: payload.Wind.Deg,
	}, nil
}

// Forecast retrieves the 5-day / 3-hour forecast for a coordinate
// pair.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	var payload forecastResponse
	if err := c.get(ctx, ModeForecast, lat, lon, &payload); err != nil {
		return nil, err
	}

	forecast := &Forecast{
		Entries: make([]ForecastEntry, 0, len(payload.List)),
	}
	for _, item := range payload.List {
		ts, err := time.Parse("2006-01-02 15:04:05", item.DtTxt)
		if err != nil {
			return nil, fmt.Errorf("parsing forecast timestamp %q: %w", item.DtTxt, err)
		}
		forecast.Entries = append(forecast.Entries, ForecastEntry{
			Timestamp:   ts,
			Temperature: item.Main.Temp,
			Condition:   firstDescription(descriptions(item.Weather)),
		})
	}

	return forecast, nil
}

// get performs a provider request for the given mode.
func (c *Client) get(ctx context.Context, mode Mode, lat, lon float64, out any) error {
	path, err := mode.endpoint()
	if err != nil {
		return err
	}

	params := url.Values{}
	params.Set("lat", fmt.Sprintf("%f", lat))
	params.Set("lon", fmt.Sprintf("%f", lon))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

func descriptions(items []struct {
	Description string `json:"description"`
}) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.Description
	}
	return out
}

// firstDescription unwraps the provider's compound condition value:
// when given a list, the first element is taken.
func firstDescription(descs []string) string {
	if len(descs) == 0 {
		return ""
	}
	return descs[0]
}
