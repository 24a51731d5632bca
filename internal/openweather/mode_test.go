package openweather

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input   string
		want    Mode
		wantErr bool
	}{
		{"current", ModeCurrent, false},
		{"forecast", ModeForecast, false},
		{"Current", 0, true},
		{"hourly", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			mode, err := ParseMode(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidMode) {
					t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMode(%q) error = %v", tt.input, err)
			}
			if mode != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, mode, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	if ModeCurrent.String() != "current" {
		t.Errorf("ModeCurrent.String() = %q, want 'current'", ModeCurrent.String())
	}
	if ModeForecast.String() != "forecast" {
		t.Errorf("ModeForecast.String() = %q, want 'forecast'", ModeForecast.String())
	}
}

func TestMode_EndpointRejectsUnknown(t *testing.T) {
	if _, err := Mode(42).endpoint(); !errors.Is(err, ErrInvalidMode) {
		t.Errorf("Mode(42).endpoint() error = %v, want ErrInvalidMode", err)
	}
}
