package database

import (
	"database/sql"
	"path/filepath"
	"testing"
)

func TestDefaultPath(t *testing.T) {
	expected := filepath.Join("data", "weather-terminal.db")
	if got := DefaultPath(); got != expected {
		t.Errorf("DefaultPath() = %v, want %v", got, expected)
	}
}

func TestEnsureSchema_Persistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// 1. Initialize schema
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("First EnsureSchema failed: %v", err)
	}

	// 2. Insert a record
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	_, err = db.Exec(`INSERT INTO weather_data (Location, Date_and_Time, Avg_Temperature_in_degree_C, Sky_Condition, Humidity_in_percentage, Wind_Speed_in_mps, Wind_Direction)
		VALUES ('Test City', '2026-08-30 12:00:00', 21.5, 'clear sky', 40, 3.1, 'North')`)
	db.Close()
	if err != nil {
		t.Fatalf("Failed to insert record: %v", err)
	}

	// 3. Initialize schema again (should not drop the table)
	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("Second EnsureSchema failed: %v", err)
	}

	// 4. Verify record still exists
	db, err = sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM weather_data WHERE Location = 'Test City'").Scan(&count); err != nil {
		t.Fatalf("Failed to query record: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected 1 record, got %d. Data was likely lost due to table drop.", count)
	}
}

func TestEnsureSchema_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	if err := EnsureSchema(dbPath); err != nil {
		t.Fatalf("EnsureSchema failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM weather_data").Scan(&count); err != nil {
		t.Fatalf("weather_data table missing: %v", err)
	}
}
