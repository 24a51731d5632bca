package ui

import (
	"github.com/charmbracelet/bubbles/list"
)

// InputMode selects how the user identifies a location.
type InputMode int

const (
	ModeCity InputMode = iota
	ModePostal
	ModeLandmark
	ModeCoordinates
	ModeDevice
)

// inputModes lists the selectable modes in display order.
var inputModes = []InputMode{ModeCity, ModePostal, ModeLandmark, ModeCoordinates, ModeDevice}

func (m InputMode) String() string {
	switch m {
	case ModeCity:
		return "City/Town"
	case ModePostal:
		return "Zip Code/Postal Code"
	case ModeLandmark:
		return "Landmark"
	case ModeCoordinates:
		return "GPS Coordinates"
	case ModeDevice:
		return "Device Location"
	default:
		return "Unknown"
	}
}

// Prompt returns the placeholder text for the mode's input field.
func (m InputMode) Prompt() string {
	switch m {
	case ModeCity:
		return "Enter a city or town (e.g. New Delhi)..."
	case ModePostal:
		return "Enter a zip or postal code (e.g. 110001)..."
	case ModeLandmark:
		return "Enter a landmark (e.g. Eiffel Tower)..."
	case ModeCoordinates:
		return "Enter coordinates as lat, lon (e.g. 28.61, 77.20)..."
	default:
		return ""
	}
}

// modeItem wraps an InputMode for use in a list
type modeItem struct {
	mode InputMode
}

// FilterValue implements list.Item
func (i modeItem) FilterValue() string {
	return i.mode.String()
}

// Title implements list.DefaultItem
func (i modeItem) Title() string {
	return i.mode.String()
}

// Description implements list.DefaultItem
func (i modeItem) Description() string {
	switch i.mode {
	case ModeCoordinates:
		return "Skip geocoding, use a raw lat/lon pair"
	case ModeDevice:
		return "Use coordinates configured for this device"
	default:
		return "Resolved via geocoding"
	}
}

// createModeList creates a list.Model of input modes
func createModeList(width, height int) list.Model {
	items := make([]list.Item, len(inputModes))
	for i, mode := range inputModes {
		items[i] = modeItem{mode: mode}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "How do you want to enter the location?"
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowStatusBar(false)

	return l
}
