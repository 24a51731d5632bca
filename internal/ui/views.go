package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.state {
	case StateModeSelect:
		return m.viewModeSelect()
	case StateInput:
		return m.viewInput()
	case StateLoading:
		return m.viewLoading()
	case StateDisplay:
		return m.viewDisplay()
	case StateHistory:
		return m.viewHistory()
	case StateUpdateInput:
		return m.viewUpdateInput()
	case StateError:
		return m.viewError()
	}

	return ""
}

// viewModeSelect renders the input mode selection screen
func (m Model) viewModeSelect() string {
	title := titleStyle.Render("☀ Weather Terminal")
	subtitle := mutedStyle.Render("Current conditions, 5-day forecast & lookup history")

	help := helpStyle.Render("↑/↓: Navigate • Enter: Select • H: History • Q: Quit")

	sections := []string{title, subtitle, "", m.modeList.View()}
	if m.status != "" {
		sections = append(sections, "", m.status)
	}
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewInput renders the location entry screen
func (m Model) viewInput() string {
	title := titleStyle.Render("☀ Weather Terminal")
	subtitle := mutedStyle.Render(m.inputMode.String())

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(64).
		Render(m.locationInput.View())

	help := helpStyle.Render("Enter: Look up • Esc: Back • Ctrl+C: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		inputBox,
		"",
		help,
	)
}

// viewLoading renders the loading view
func (m Model) viewLoading() string {
	return fmt.Sprintf("\n %s Working...\n", m.spinner.View())
}

// viewDisplay renders current conditions and the forecast
func (m Model) viewDisplay() string {
	if m.current == nil {
		return mutedStyle.Render("No weather data available")
	}

	var sections []string

	header := titleStyle.Render(fmt.Sprintf("☀ Current Weather - %s", m.label))
	sections = append(sections, header)

	if m.location != nil {
		coords := mutedStyle.Render(fmt.Sprintf("📍 %s (%.4f, %.4f)",
			m.location.Name, m.location.Latitude, m.location.Longitude))
		sections = append(sections, coords)
	}

	sections = append(sections, "", m.renderCurrentCards())

	if len(m.summaries) > 0 {
		sections = append(sections,
			sectionHeaderStyle.Render("📅 5-DAY FORECAST"),
			m.renderForecastList(),
			renderForecastChart(m.summaries, 60, 10),
		)
	}

	if m.status != "" {
		sections = append(sections, "", m.status)
	}

	help := helpStyle.Render("S: New search • H: History • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderCurrentCards renders the current conditions as weather cards
func (m Model) renderCurrentCards() string {
	cur := m.current

	temp := cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render("🌡 Temperature"),
		valueStyle.Render(fmt.Sprintf("%.1f °C", cur.Temperature)),
	))
	cond := cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render("☁ Condition"),
		valueStyle.Render(cur.Condition),
	))
	humidity := cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render("💧 Humidity"),
		valueStyle.Render(fmt.Sprintf("%d %%", cur.Humidity)),
	))
	wind := cardStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		cardTitleStyle.Render("🌬 Wind"),
		valueStyle.Render(fmt.Sprintf("%.1f m/s, %s (%.0f°)",
			cur.WindSpeed, cur.WindDirection(), cur.WindDegrees)),
	))

	return lipgloss.JoinHorizontal(lipgloss.Top, temp, cond, humidity, wind)
}

// renderForecastList renders one line per forecast day
func (m Model) renderForecastList() string {
	var lines []string
	for _, s := range m.summaries {
		lines = append(lines, fmt.Sprintf("%s  %s  %s",
			labelStyle.Render(s.Date),
			valueStyle.Render(fmt.Sprintf("🌡 %.2f°C", s.Temperature)),
			mutedStyle.Render(s.Condition)))
	}
	return strings.Join(lines, "\n")
}

// viewHistory renders the history tab
func (m Model) viewHistory() string {
	title := titleStyle.Render("📜 Weather History")

	var sections []string
	sections = append(sections, title)

	if len(m.records) == 0 {
		sections = append(sections, "", mutedStyle.Render("No history records found."))
	} else {
		sections = append(sections,
			"",
			m.historyTable.View(),
			sectionHeaderStyle.Render(fmt.Sprintf("📊 TREND - %s", m.chartMetric.label())),
			renderHistoryChart(m.records, m.chartMetric, 60, 10),
		)
	}

	if m.status != "" {
		sections = append(sections, "", m.status)
	}

	help := helpStyle.Render("↑/↓: Navigate • U: Update • D: Delete • C: Chart metric • S/Esc: Back • Q: Quit")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewUpdateInput renders the record update prompt
func (m Model) viewUpdateInput() string {
	title := titleStyle.Render(fmt.Sprintf("✎ Update Record %d", m.updateTarget))
	subtitle := mutedStyle.Render("The record is overwritten with fresh conditions for the new location")

	inputBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(64).
		Render(m.updateInput.View())

	help := helpStyle.Render("Enter: Update • Esc: Back • Ctrl+C: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		subtitle,
		"",
		inputBox,
		"",
		help,
	)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorMsg string
	if m.err != nil {
		errorMsg = m.err.Error()
	} else {
		errorMsg = "An unknown error occurred"
	}

	help := helpStyle.Render("Press any key to go back • Ctrl+C: Quit")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		"",
		errorMsg,
		"",
		help,
	)
}
