package ui

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"

	"github.com/shrivastava03/weather-terminal/internal/models"
	"github.com/shrivastava03/weather-terminal/internal/openweather"
)

// trendMetric selects which history column is being charted.
type trendMetric int

const (
	metricTemperature trendMetric = iota
	metricHumidity
	metricWindSpeed
)

func (m trendMetric) label() string {
	switch m {
	case metricTemperature:
		return "Temperature (°C)"
	case metricHumidity:
		return "Humidity (%)"
	case metricWindSpeed:
		return "Wind Speed (m/s)"
	default:
		return ""
	}
}

// next cycles to the following metric.
func (m trendMetric) next() trendMetric {
	return (m + 1) % 3
}

func (m trendMetric) value(rec models.WeatherRecord) float64 {
	switch m {
	case metricTemperature:
		return rec.Temperature
	case metricHumidity:
		return float64(rec.Humidity)
	case metricWindSpeed:
		return rec.WindSpeed
	default:
		return 0
	}
}

// renderForecastChart draws the 5-day temperature trend.
func renderForecastChart(summaries []openweather.DaySummary, width, height int) string {
	if len(summaries) < 2 {
		return mutedStyle.Render("Not enough forecast data to chart")
	}

	chart := timeserieslinechart.New(width, height)
	for _, s := range summaries {
		day, err := time.Parse("2006-01-02", s.Date)
		if err != nil {
			continue
		}
		chart.Push(timeserieslinechart.TimePoint{Time: day, Value: s.Temperature})
	}
	chart.DrawBraille()

	return chartStyle.Render(chart.View())
}

// renderHistoryChart draws a trend of one metric over the saved
// records, in observation order.
func renderHistoryChart(recs []models.WeatherRecord, metric trendMetric, width, height int) string {
	if len(recs) < 2 {
		return mutedStyle.Render("Not enough history to chart")
	}

	chart := timeserieslinechart.New(width, height)
	for _, rec := range recs {
		chart.Push(timeserieslinechart.TimePoint{Time: rec.ObservedAt, Value: metric.value(rec)})
	}
	chart.DrawBraille()

	return chartStyle.Render(chart.View())
}
