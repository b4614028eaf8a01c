package database

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite handle behind the fleet repository.
type DB struct {
	db *sql.DB
}

// New creates and initializes a new database connection.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// optimizeSQLite applies pragmas suited to a small single-writer service.
func optimizeSQLite(db *sql.DB) error {
	// WAL mode allows concurrent reads while the evaluation task writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA synchronous=NORMAL"); err != nil {
		return fmt.Errorf("failed to set synchronous mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA busy_timeout=5000"); err != nil {
		return fmt.Errorf("failed to set busy timeout: %w", err)
	}

	return nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// Fleet returns the fleet repository backed by this connection.
func (d *DB) Fleet() FleetRepository {
	return &fleetRepository{db: d.db}
}

// initSchema creates the database schema if it doesn't exist.
func (d *DB) initSchema() error {
	schema := `CREATE TABLE IF NOT EXISTS aircraft (
		tail_number TEXT PRIMARY KEY,
		model TEXT NOT NULL,
		category TEXT NOT NULL,
		total_flight_hours REAL NOT NULL,
		total_flight_cycles INTEGER NOT NULL,
		last_check_type TEXT NOT NULL,
		flight_hours_since_check REAL NOT NULL,
		flight_cycles_since_check REAL NOT NULL,
		last_check_date TEXT NOT NULL,
		last_d_check_date TEXT NOT NULL,
		daily_flight_hours REAL NOT NULL,
		state TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`

	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_aircraft_category ON aircraft(category)`,
		`CREATE INDEX IF NOT EXISTS idx_aircraft_state ON aircraft(state)`,
	}

	if _, err := d.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create aircraft table: %w", err)
	}

	for _, idx := range indexes {
		if _, err := d.db.Exec(idx); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}
