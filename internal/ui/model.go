package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shrivastava03/weather-terminal/internal/config"
	"github.com/shrivastava03/weather-terminal/internal/geocoding"
	"github.com/shrivastava03/weather-terminal/internal/models"
	"github.com/shrivastava03/weather-terminal/internal/openweather"
	"github.com/shrivastava03/weather-terminal/internal/records"
)

// AppState represents the current state of the application
type AppState int

const (
	StateModeSelect  AppState = iota // Choose an input mode
	StateInput                       // Enter a location
	StateLoading                     // Resolving/fetching/updating
	StateDisplay                     // Show current weather + forecast
	StateHistory                     // History tab
	StateUpdateInput                 // Enter a new location for a record
	StateError                       // Error state
)

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error
	status string // transient notice shown under the active view

	cfg *config.Config

	// Collaborators
	geocoder      *geocoding.Geocoder
	weatherClient *openweather.Client
	repo          *records.Repository

	// Home tab
	modeList      list.Model
	inputMode     InputMode
	locationInput textinput.Model
	spinner       spinner.Model

	// Lookup results
	label     string
	location  *geocoding.Location
	current   *openweather.CurrentConditions
	summaries []openweather.DaySummary

	// History tab
	records      []models.WeatherRecord
	historyTable table.Model
	updateInput  textinput.Model
	updateTarget int64
	chartMetric  trendMetric
}

// NewModel creates a new application model
func NewModel(cfg *config.Config) Model {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 60

	ui := textinput.New()
	ui.Placeholder = "Enter the new location..."
	ui.CharLimit = 100
	ui.Width = 60

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorPrimary)

	return Model{
		state:         StateModeSelect,
		cfg:           cfg,
		geocoder:      geocoding.NewGeocoder(cfg.HTTPTimeout),
		weatherClient: openweather.NewClient(cfg.APIKey, cfg.HTTPTimeout),
		repo:          records.NewRepository(cfg.DBPath),
		modeList:      createModeList(60, 16),
		locationInput: ti,
		updateInput:   ui,
		spinner:       s,
	}
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	// Handle window size
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.modeList.SetSize(msg.Width-4, 16)
		m.historyTable.SetWidth(msg.Width - 4)
		return m, nil
	}

	// Handle custom messages
	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case resolvedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.label = msg.label
		m.location = msg.location
		return m, fetchWeather(m.weatherClient, msg.location.Latitude, msg.location.Longitude)

	case weatherMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.current = msg.current
		m.summaries = openweather.SummarizeForecast(msg.forecast)
		m.status = ""
		m.state = StateDisplay
		// Persist the successful lookup
		return m, saveRecord(m.repo, m.label, msg.current)

	case recordSavedMsg:
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("✗ Not saved to history: %v", msg.err))
		} else {
			m.status = successStyle.Render(fmt.Sprintf("✓ Saved to history (record %d)", msg.id))
		}
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.records = msg.records
		m.historyTable = createHistoryTable(msg.records, m.width-4, 10)
		m.state = StateHistory
		return m, nil

	case recordDeletedMsg:
		switch {
		case msg.err != nil:
			m.status = errorStyle.Render(fmt.Sprintf("✗ Delete failed: %v", msg.err))
		case !msg.affected:
			m.status = errorStyle.Render(fmt.Sprintf("✗ No record with id %d", msg.id))
		default:
			m.status = successStyle.Render(fmt.Sprintf("✓ Record %d deleted", msg.id))
		}
		return m, loadHistory(m.repo)

	case recordUpdatedMsg:
		switch {
		case msg.err != nil:
			m.status = errorStyle.Render(fmt.Sprintf("✗ Update failed: %v", msg.err))
		case !msg.affected:
			m.status = errorStyle.Render(fmt.Sprintf("✗ No record with id %d", msg.id))
		default:
			m.status = successStyle.Render(fmt.Sprintf("✓ Record %d updated", msg.id))
		}
		return m, loadHistory(m.repo)
	}

	// Handle keyboard input
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// Ctrl+C always quits
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.state {
		case StateModeSelect:
			return m.handleModeSelect(keyMsg)

		case StateInput:
			return m.handleLocationInput(keyMsg)

		case StateDisplay:
			return m.handleDisplay(keyMsg)

		case StateHistory:
			return m.handleHistory(keyMsg)

		case StateUpdateInput:
			return m.handleUpdateInput(keyMsg)

		case StateError:
			// Any key returns to the input mode selection
			m.state = StateModeSelect
			m.err = nil
			return m, nil
		}
	}

	return m, nil
}

// handleModeSelect handles keyboard input on the mode selection screen
func (m Model) handleModeSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "h":
		m.status = ""
		m.state = StateLoading
		return m, loadHistory(m.repo)
	}

	if msg.Type == tea.KeyEnter {
		item, ok := m.modeList.SelectedItem().(modeItem)
		if !ok {
			return m, nil
		}
		m.inputMode = item.mode
		m.status = ""

		if m.inputMode == ModeDevice {
			devLat, devLon, devOK := m.cfg.DeviceCoordinates()
			m.state = StateLoading
			return m, resolveLocation(m.geocoder, m.inputMode, "", devLat, devLon, devOK)
		}

		m.locationInput.Placeholder = m.inputMode.Prompt()
		m.locationInput.SetValue("")
		m.locationInput.Focus()
		m.state = StateInput
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.modeList, cmd = m.modeList.Update(msg)
	return m, cmd
}

// handleLocationInput handles keyboard input on the location entry screen
func (m Model) handleLocationInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = StateModeSelect
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		query := m.locationInput.Value()
		if query == "" {
			return m, nil
		}
		m.state = StateLoading
		devLat, devLon, devOK := m.cfg.DeviceCoordinates()
		return m, resolveLocation(m.geocoder, m.inputMode, query, devLat, devLon, devOK)
	}

	var cmd tea.Cmd
	m.locationInput, cmd = m.locationInput.Update(msg)
	return m, cmd
}

// handleDisplay handles keyboard input on the weather display
func (m Model) handleDisplay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s":
		m.resetLookup()
		m.state = StateModeSelect
		return m, nil
	case "h":
		m.status = ""
		m.state = StateLoading
		return m, loadHistory(m.repo)
	}
	return m, nil
}

// handleHistory handles keyboard input on the history tab
func (m Model) handleHistory(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "s", "esc":
		m.resetLookup()
		m.state = StateModeSelect
		return m, nil
	case "c":
		m.chartMetric = m.chartMetric.next()
		return m, nil
	case "d":
		if id, ok := selectedRecordID(m.historyTable); ok {
			return m, deleteRecord(m.repo, id)
		}
		return m, nil
	case "u":
		if id, ok := selectedRecordID(m.historyTable); ok {
			m.updateTarget = id
			m.updateInput.SetValue("")
			m.updateInput.Focus()
			m.state = StateUpdateInput
			return m, textinput.Blink
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.historyTable, cmd = m.historyTable.Update(msg)
	return m, cmd
}

// handleUpdateInput handles keyboard input when entering a new
// location for a record
func (m Model) handleUpdateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.state = StateHistory
		return m, nil
	}

	if msg.Type == tea.KeyEnter {
		newLocation := m.updateInput.Value()
		if newLocation == "" {
			return m, nil
		}
		m.state = StateLoading
		return m, updateRecord(m.geocoder, m.weatherClient, m.repo, m.updateTarget, newLocation)
	}

	var cmd tea.Cmd
	m.updateInput, cmd = m.updateInput.Update(msg)
	return m, cmd
}

// resetLookup clears the current lookup so a fresh search starts clean
func (m *Model) resetLookup() {
	m.label = ""
	m.location = nil
	m.current = nil
	m.summaries = nil
	m.status = ""
	m.err = nil
}
