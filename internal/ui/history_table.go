package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/shrivastava03/weather-terminal/internal/models"
)

// createHistoryTable builds the history tab's table from records
func createHistoryTable(recs []models.WeatherRecord, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Id", Width: 4},
		{Title: "Location", Width: 22},
		{Title: "Date & Time", Width: 19},
		{Title: "Temp °C", Width: 8},
		{Title: "Condition", Width: 18},
		{Title: "Hum %", Width: 6},
		{Title: "Wind m/s", Width: 8},
		{Title: "Direction", Width: 16},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(historyRows(recs)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorBorder).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorBorder).
		Bold(false)
	t.SetStyles(s)
	if width > 0 {
		t.SetWidth(width)
	}

	return t
}

// historyRows converts records to table rows
func historyRows(recs []models.WeatherRecord) []table.Row {
	rows := make([]table.Row, len(recs))
	for i, rec := range recs {
		rows[i] = table.Row{
			strconv.FormatInt(rec.ID, 10),
			rec.Location,
			rec.ObservedAt.Format(models.TimeLayout),
			fmt.Sprintf("%.1f", rec.Temperature),
			rec.Condition,
			strconv.Itoa(rec.Humidity),
			fmt.Sprintf("%.1f", rec.WindSpeed),
			rec.WindDirection,
		}
	}
	return rows
}

// selectedRecordID returns the id of the currently selected row, or
// false when the table is empty.
func selectedRecordID(t table.Model) (int64, bool) {
	row := t.SelectedRow()
	if len(row) == 0 {
		return 0, false
	}
	id, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
