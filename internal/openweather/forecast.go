package openweather

import "math"

// maxSummaryDays caps forecast summaries at 5 calendar days.
const maxSummaryDays = 5

// DaySummary condenses one calendar date of 3-hour forecast entries.
type DaySummary struct {
	Date        string  // YYYY-MM-DD
	Temperature float64 // arithmetic mean, rounded to 2 decimals
	Condition   string  // most frequent description for the date
}

// SummarizeForecast groups forecast entries by calendar date and
// summarizes each of the first 5 distinct dates encountered: mean
// temperature rounded to 2 decimal places and the most frequent
// sky-condition description (ties broken by first encountered).
func SummarizeForecast(f *Forecast) []DaySummary {
	if f == nil || len(f.Entries) == 0 {
		return nil
	}

	var dates []string
	byDate := make(map[string][]ForecastEntry)
	for _, entry := range f.Entries {
		date := entry.Timestamp.Format("2006-01-02")
		if _, seen := byDate[date]; !seen {
			dates = append(dates, date)
		}
		byDate[date] = append(byDate[date], entry)
	}

	if len(dates) > maxSummaryDays {
		dates = dates[:maxSummaryDays]
	}

	summaries := make([]DaySummary, 0, len(dates))
	for _, date := range dates {
		entries := byDate[date]

		var sum float64
		counts := make(map[string]int)
		for _, e := range entries {
			sum += e.Temperature
			counts[e.Condition]++
		}

		// Most frequent description; ties go to the one encountered
		// first in entry order.
		max := 0
		for _, n := range counts {
			if n > max {
				max = n
			}
		}
		best := entries[0].Condition
		for _, e := range entries {
			if counts[e.Condition] == max {
				best = e.Condition
				break
			}
		}

		summaries = append(summaries, DaySummary{
			Date:        date,
			Temperature: round2(sum / float64(len(entries))),
			Condition:   best,
		})
	}

	return summaries
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
