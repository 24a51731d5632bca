package records

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/shrivastava03/weather-terminal/internal/database"
	"github.com/shrivastava03/weather-terminal/internal/models"
)

// Repository handles persistence for weather history records. Each
// operation opens and closes its own connection; there is no shared
// handle to guard.
type Repository struct {
	dbPath string
}

// NewRepository creates a repository backed by the database at dbPath.
func NewRepository(dbPath string) *Repository {
	return &Repository{dbPath: dbPath}
}

// open ensures the schema exists and opens a connection. Callers must
// close the returned handle.
func (r *Repository) open() (*sql.DB, error) {
	if err := database.EnsureSchema(r.dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", r.dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return db, nil
}

// Create inserts a new record stamped with the current time and
// returns its assigned id. Ids are monotonic and never reused, even
// after deletes.
func (r *Repository) Create(location string, temperature float64, condition string, humidity int, windSpeed float64, windDirection string) (int64, error) {
	db, err := r.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.Exec(`
		INSERT INTO weather_data (Location, Date_and_Time, Avg_Temperature_in_degree_C, Sky_Condition, Humidity_in_percentage, Wind_Speed_in_mps, Wind_Direction)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		location,
		time.Now().Format(models.TimeLayout),
		temperature,
		condition,
		humidity,
		windSpeed,
		windDirection,
	)
	if err != nil {
		return 0, fmt.Errorf("creating record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return id, nil
}

// List retrieves every record, all columns, in insertion order. An
// empty history yields an empty slice.
func (r *Repository) List() ([]models.WeatherRecord, error) {
	db, err := r.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT Id, Location, Date_and_Time, Avg_Temperature_in_degree_C, Sky_Condition, Humidity_in_percentage, Wind_Speed_in_mps, Wind_Direction FROM weather_data ORDER BY Id")
	if err != nil {
		return nil, fmt.Errorf("querying records: %w", err)
	}
	defer rows.Close()

	records := make([]models.WeatherRecord, 0)
	for rows.Next() {
		var rec models.WeatherRecord
		var observedAt string

		if err := rows.Scan(&rec.ID, &rec.Location, &observedAt, &rec.Temperature, &rec.Condition, &rec.Humidity, &rec.WindSpeed, &rec.WindDirection); err != nil {
			return nil, fmt.Errorf("scanning record: %w", err)
		}

		rec.ObservedAt, err = time.ParseInLocation(models.TimeLayout, observedAt, time.Local)
		if err != nil {
			return nil, fmt.Errorf("parsing record timestamp %q: %w", observedAt, err)
		}

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating records: %w", err)
	}

	return records, nil
}

// Update overwrites all seven data fields of the record matching id.
// It reports whether a row was affected; an unknown id is not an
// error.
func (r *Repository) Update(id int64, location string, observedAt time.Time, temperature float64, condition string, humidity int, windSpeed float64, windDirection string) (bool, error) {
	db, err := r.open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	res, err := db.Exec(`
		UPDATE weather_data
		SET Location = ?, Date_and_Time = ?, Avg_Temperature_in_degree_C = ?, Sky_Condition = ?, Humidity_in_percentage = ?, Wind_Speed_in_mps = ?, Wind_Direction = ?
		WHERE Id = ?`,
		location,
		observedAt.Format(models.TimeLayout),
		temperature,
		condition,
		humidity,
		windSpeed,
		windDirection,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("updating record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting affected rows: %w", err)
	}

	return affected > 0, nil
}

// Delete removes the record matching id and reports whether a row was
// affected.
func (r *Repository) Delete(id int64) (bool, error) {
	db, err := r.open()
	if err != nil {
		return false, err
	}
	defer db.Close()

	res, err := db.Exec("DELETE FROM weather_data WHERE Id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("getting affected rows: %w", err)
	}

	return affected > 0, nil
}
