package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"flightsite/internal/models"
)

// Pilot is a stored pilot profile
type Pilot struct {
	ID        int64
	Handle    string
	Name      string
	Bio       string
	CreatedAt time.Time
}

// Store persists pilots, flights, and precomputed stats snapshots in sqlite
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS pilots (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	handle     TEXT NOT NULL UNIQUE,
	name       TEXT NOT NULL DEFAULT '',
	bio        TEXT NOT NULL DEFAULT '',
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS flights (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	pilot_id          INTEGER NOT NULL REFERENCES pilots(id) ON DELETE CASCADE,
	flight_date       TEXT NOT NULL,
	from_icao         TEXT NOT NULL,
	to_icao           TEXT NOT NULL,
	from_lat          REAL,
	from_lon          REAL,
	to_lat            REAL,
	to_lon            REAL,
	aircraft_type     TEXT NOT NULL DEFAULT '',
	remarks           TEXT NOT NULL DEFAULT '',
	total_time        REAL NOT NULL DEFAULT 0,
	pic_time          REAL NOT NULL DEFAULT 0,
	sic_time          REAL NOT NULL DEFAULT 0,
	dual_time         REAL NOT NULL DEFAULT 0,
	night_time        REAL NOT NULL DEFAULT 0,
	xc_time           REAL NOT NULL DEFAULT 0,
	xc_night_time     REAL NOT NULL DEFAULT 0,
	instrument_time   REAL NOT NULL DEFAULT 0,
	instrument_sim    REAL NOT NULL DEFAULT 0,
	instrument_actual REAL NOT NULL DEFAULT 0,
	day_landings      INTEGER NOT NULL DEFAULT 0,
	night_landings    INTEGER NOT NULL DEFAULT 0,
	day_takeoffs      INTEGER NOT NULL DEFAULT 0,
	night_takeoffs    INTEGER NOT NULL DEFAULT 0,
	approaches        INTEGER NOT NULL DEFAULT 0,
	holds             INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_flights_pilot_date ON flights(pilot_id, flight_date);

CREATE TABLE IF NOT EXISTS stats_snapshots (
	pilot_id     INTEGER PRIMARY KEY REFERENCES pilots(id) ON DELETE CASCADE,
	generated_at TEXT NOT NULL,
	bundle       TEXT NOT NULL
);
`

// Open opens (and if needed creates) the sqlite database at path
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// sqlite handles one writer at a time
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// UpsertPilot creates a pilot by handle or updates name/bio, returning the
// row. Empty name/bio arguments leave the stored values untouched so a
// re-import without them does not wipe the profile.
func (s *Store) UpsertPilot(ctx context.Context, handle, name, bio string) (*Pilot, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO pilots (handle, name, bio, created_at) VALUES (?, ?, ?, ?)
		ON CONFLICT(handle) DO UPDATE SET
			name = CASE WHEN excluded.name != '' THEN excluded.name ELSE pilots.name END,
			bio  = CASE WHEN excluded.bio  != '' THEN excluded.bio  ELSE pilots.bio  END`,
		handle, name, bio, now)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert pilot %q: %w", handle, err)
	}
	return s.GetPilot(ctx, handle)
}

// GetPilot fetches a pilot by handle
func (s *Store) GetPilot(ctx context.Context, handle string) (*Pilot, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, handle, name, bio, created_at FROM pilots WHERE handle = ?`, handle)

	var p Pilot
	var createdAt string
	if err := row.Scan(&p.ID, &p.Handle, &p.Name, &p.Bio, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch pilot %q: %w", handle, err)
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}

// ReplaceFlights atomically replaces a pilot's entire logbook
func (s *Store) ReplaceFlights(ctx context.Context, pilotID int64, flights []models.FlightRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM flights WHERE pilot_id = ?`, pilotID); err != nil {
		return fmt.Errorf("failed to clear flights: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO flights (
			pilot_id, flight_date, from_icao, to_icao,
			from_lat, from_lon, to_lat, to_lon,
			aircraft_type, remarks,
			total_time, pic_time, sic_time, dual_time, night_time,
			xc_time, xc_night_time, instrument_time, instrument_sim, instrument_actual,
			day_landings, night_landings, day_takeoffs, night_takeoffs, approaches, holds
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range flights {
		fromLat, fromLon := coordValues(f.FromCoords)
		toLat, toLon := coordValues(f.ToCoords)
		_, err := stmt.ExecContext(ctx,
			pilotID, f.Date.Format("2006-01-02"), f.From, f.To,
			fromLat, fromLon, toLat, toLon,
			f.AircraftType, f.Remarks,
			f.TotalTime, f.PICTime, f.SICTime, f.DualTime, f.NightTime,
			f.XCTime, f.XCNightTime, f.InstrumentTime, f.InstrumentSim, f.InstrumentActual,
			f.DayLandings, f.NightLandings, f.DayTakeoffs, f.NightTakeoffs, f.Approaches, f.Holds)
		if err != nil {
			return fmt.Errorf("failed to insert flight %s %s-%s: %w",
				f.Date.Format("2006-01-02"), f.From, f.To, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit flights: %w", err)
	}
	return nil
}

// LoadFlights returns a pilot's logbook ordered by date ascending
func (s *Store) LoadFlights(ctx context.Context, pilotID int64) ([]models.FlightRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT flight_date, from_icao, to_icao,
			from_lat, from_lon, to_lat, to_lon,
			aircraft_type, remarks,
			total_time, pic_time, sic_time, dual_time, night_time,
			xc_time, xc_night_time, instrument_time, instrument_sim, instrument_actual,
			day_landings, night_landings, day_takeoffs, night_takeoffs, approaches, holds
		FROM flights WHERE pilot_id = ? ORDER BY flight_date ASC, id ASC`, pilotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query flights: %w", err)
	}
	defer rows.Close()

	var flights []models.FlightRecord
	for rows.Next() {
		var f models.FlightRecord
		var date string
		var fromLat, fromLon, toLat, toLon sql.NullFloat64
		err := rows.Scan(&date, &f.From, &f.To,
			&fromLat, &fromLon, &toLat, &toLon,
			&f.AircraftType, &f.Remarks,
			&f.TotalTime, &f.PICTime, &f.SICTime, &f.DualTime, &f.NightTime,
			&f.XCTime, &f.XCNightTime, &f.InstrumentTime, &f.InstrumentSim, &f.InstrumentActual,
			&f.DayLandings, &f.NightLandings, &f.DayTakeoffs, &f.NightTakeoffs, &f.Approaches, &f.Holds)
		if err != nil {
			return nil, fmt.Errorf("failed to scan flight: %w", err)
		}
		f.Date, err = time.Parse("2006-01-02", date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse flight date %q: %w", date, err)
		}
		f.FromCoords = coordPointer(fromLat, fromLon)
		f.ToCoords = coordPointer(toLat, toLon)
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

// SaveBundle stores the precomputed stats bundle for a pilot
func (s *Store) SaveBundle(ctx context.Context, pilotID int64, bundle *models.StatsBundle) error {
	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode stats bundle: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO stats_snapshots (pilot_id, generated_at, bundle) VALUES (?, ?, ?)
		ON CONFLICT(pilot_id) DO UPDATE SET generated_at = excluded.generated_at, bundle = excluded.bundle`,
		pilotID, bundle.GeneratedAt.UTC().Format(time.RFC3339), string(data))
	if err != nil {
		return fmt.Errorf("failed to save stats bundle: %w", err)
	}
	return nil
}

// LoadBundle fetches the stored stats bundle for a pilot, nil when absent
func (s *Store) LoadBundle(ctx context.Context, pilotID int64) (*models.StatsBundle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT bundle FROM stats_snapshots WHERE pilot_id = ?`, pilotID)

	var data string
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stats bundle: %w", err)
	}
	var bundle models.StatsBundle
	if err := json.Unmarshal([]byte(data), &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode stats bundle: %w", err)
	}
	return &bundle, nil
}

func coordValues(c *models.Coordinates) (sql.NullFloat64, sql.NullFloat64) {
	if c == nil {
		return sql.NullFloat64{}, sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: c.Lat, Valid: true}, sql.NullFloat64{Float64: c.Lon, Valid: true}
}

func coordPointer(lat, lon sql.NullFloat64) *models.Coordinates {
	if !lat.Valid || !lon.Valid {
		return nil
	}
	return &models.Coordinates{Lat: lat.Float64, Lon: lon.Float64}
}
