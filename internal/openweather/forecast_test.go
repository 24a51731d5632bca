package openweather

import (
	"fmt"
	"testing"
	"time"
)

// entriesForDay builds 3-hour entries for one calendar day.
func entriesForDay(day string, temps []float64, conditions []string) []ForecastEntry {
	entries := make([]ForecastEntry, len(temps))
	for i := range temps {
		ts, _ := time.Parse("2006-01-02 15:04:05", fmt.Sprintf("%s %02d:00:00", day, i*3))
		entries[i] = ForecastEntry{
			Timestamp:   ts,
			Temperature: temps[i],
			Condition:   conditions[i%len(conditions)],
		}
	}
	return entries
}

func TestSummarizeForecast_AverageTemperature(t *testing.T) {
	f := &Forecast{
		Entries: entriesForDay("2026-08-30",
			[]float64{10, 12, 14, 16, 18, 20, 22, 24},
			[]string{"clear sky"}),
	}

	summaries := SummarizeForecast(f)
	if len(summaries) != 1 {
		t.Fatalf("len(summaries) = %d, want 1", len(summaries))
	}

	if summaries[0].Date != "2026-08-30" {
		t.Errorf("Date = %q, want 2026-08-30", summaries[0].Date)
	}
	if summaries[0].Temperature != 15.5 {
		t.Errorf("Temperature = %v, want 15.5", summaries[0].Temperature)
	}
}

func TestSummarizeForecast_RoundsToTwoDecimals(t *testing.T) {
	f := &Forecast{
		Entries: entriesForDay("2026-08-30",
			[]float64{10, 10, 11},
			[]string{"mist"}),
	}

	summaries := SummarizeForecast(f)
	// 31/3 = 10.333... rounds to 10.33
	if summaries[0].Temperature != 10.33 {
		t.Errorf("Temperature = %v, want 10.33", summaries[0].Temperature)
	}
}

func TestSummarizeForecast_MostFrequentCondition(t *testing.T) {
	f := &Forecast{
		Entries: entriesForDay("2026-08-30",
			[]float64{10, 10, 10, 10, 10, 10},
			[]string{"rain", "clear sky", "rain"}),
	}

	summaries := SummarizeForecast(f)
	if summaries[0].Condition != "rain" {
		t.Errorf("Condition = %q, want 'rain'", summaries[0].Condition)
	}
}

func TestSummarizeForecast_TieGoesToFirstEncountered(t *testing.T) {
	// "overcast" and "drizzle" both appear twice; "overcast" is seen
	// first in entry order.
	f := &Forecast{
		Entries: entriesForDay("2026-08-30",
			[]float64{10, 10, 10, 10},
			[]string{"overcast", "drizzle", "overcast", "drizzle"}),
	}

	summaries := SummarizeForecast(f)
	if summaries[0].Condition != "overcast" {
		t.Errorf("Condition = %q, want 'overcast'", summaries[0].Condition)
	}
}

func TestSummarizeForecast_CapsAtFiveDays(t *testing.T) {
	var entries []ForecastEntry
	for day := 1; day <= 6; day++ {
		entries = append(entries, entriesForDay(
			fmt.Sprintf("2026-09-%02d", day),
			[]float64{15, 16},
			[]string{"clear sky"})...)
	}

	summaries := SummarizeForecast(&Forecast{Entries: entries})
	if len(summaries) != 5 {
		t.Fatalf("len(summaries) = %d, want 5", len(summaries))
	}
	if summaries[0].Date != "2026-09-01" {
		t.Errorf("first Date = %q, want 2026-09-01", summaries[0].Date)
	}
	if summaries[4].Date != "2026-09-05" {
		t.Errorf("last Date = %q, want 2026-09-05", summaries[4].Date)
	}
}

func TestSummarizeForecast_Empty(t *testing.T) {
	if got := SummarizeForecast(nil); got != nil {
		t.Errorf("SummarizeForecast(nil) = %v, want nil", got)
	}
	if got := SummarizeForecast(&Forecast{}); got != nil {
		t.Errorf("SummarizeForecast(empty) = %v, want nil", got)
	}
}
