package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shrivastava03/weather-terminal/internal/config"
	"github.com/shrivastava03/weather-terminal/internal/database"
	"github.com/shrivastava03/weather-terminal/internal/ui"
)

var (
	dbPath    string
	apiKey    string
	debugLog  string
	deviceLat float64
	deviceLon float64
)

var rootCmd = &cobra.Command{
	Use:   "weather-terminal",
	Short: "Personal weather lookup and history log for the terminal",
	Long: `weather-terminal looks up current conditions and a 5-day forecast for a
location (city, postal code, landmark, coordinates, or configured device
location), renders them in a TUI, and keeps a local SQLite history of
past lookups that can be listed, updated, and deleted.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&dbPath, "db", "", "path to the history database (default data/weather-terminal.db)")
	rootCmd.Flags().StringVar(&apiKey, "api-key", "", "OpenWeatherMap API key (default $OPENWEATHER_API_KEY)")
	rootCmd.Flags().StringVar(&debugLog, "debug-log", "", "write diagnostic logs to this file")
	rootCmd.Flags().Float64Var(&deviceLat, "device-lat", 0, "device latitude for the Device Location mode (default $WEATHER_DEVICE_LAT)")
	rootCmd.Flags().Float64Var(&deviceLon, "device-lon", 0, "device longitude for the Device Location mode (default $WEATHER_DEVICE_LON)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}
	if apiKey != "" {
		cfg.APIKey = apiKey
	}
	if debugLog != "" {
		cfg.DebugLog = debugLog
	}
	// Both coordinates must be given for the override to apply.
	if cmd.Flags().Changed("device-lat") && cmd.Flags().Changed("device-lon") {
		cfg.SetDeviceCoordinates(deviceLat, deviceLon)
	}

	if err := setupLogging(cfg.DebugLog); err != nil {
		return err
	}

	if err := database.EnsureSchema(cfg.DBPath); err != nil {
		return fmt.Errorf("preparing history database: %w", err)
	}

	slog.Info("starting", "db", cfg.DBPath)

	p := tea.NewProgram(ui.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running application: %w", err)
	}

	return nil
}

// setupLogging directs slog to a file, or discards it. The TUI owns
// the terminal, so nothing may log to stdout/stderr while it runs.
func setupLogging(path string) error {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, nil)))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
