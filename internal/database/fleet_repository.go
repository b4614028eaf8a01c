package database

import (
	"database/sql"
	"errors"
	"fmt"

	"fleetmaint/internal/models"
)

// ErrAircraftNotFound is returned when a tail number has no row.
var ErrAircraftNotFound = errors.New("aircraft not found")

// FleetRepository defines the interface for fleet snapshot storage.
type FleetRepository interface {
	Replace(fleet []models.AircraftSnapshot) error
	List() ([]models.AircraftSnapshot, error)
	Get(tailNumber string) (models.AircraftSnapshot, error)
	Count() (int, error)
}

type fleetRepository struct {
	db *sql.DB
}

// NewFleetRepository creates a fleet repository over an existing handle.
func NewFleetRepository(db *sql.DB) FleetRepository {
	return &fleetRepository{db: db}
}

const aircraftColumns = `tail_number, model, category, total_flight_hours,
	total_flight_cycles, last_check_type, flight_hours_since_check,
	flight_cycles_since_check, last_check_date, last_d_check_date,
	daily_flight_hours, state`

// Replace swaps the stored fleet for the given snapshot set in a single
// transaction, so readers never observe a half-written fleet.
func (r *fleetRepository) Replace(fleet []models.AircraftSnapshot) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM aircraft`); err != nil {
		return fmt.Errorf("failed to clear fleet: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO aircraft (` + aircraftColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, ac := range fleet {
		if _, err := stmt.Exec(
			ac.TailNumber,
			ac.Model,
			string(ac.Category),
			ac.TotalFlightHours,
			ac.TotalFlightCycles,
			string(ac.LastCheckType),
			ac.FlightHoursSinceCheck,
			ac.FlightCyclesSinceCheck,
			ac.LastCheckDate,
			ac.LastDCheckDate,
			ac.DailyFlightHours,
			string(ac.State),
		); err != nil {
			return fmt.Errorf("failed to insert aircraft %s: %w", ac.TailNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// List returns the full fleet ordered by tail number.
func (r *fleetRepository) List() ([]models.AircraftSnapshot, error) {
	rows, err := r.db.Query(`SELECT ` + aircraftColumns + ` FROM aircraft ORDER BY tail_number`)
	if err != nil {
		return nil, fmt.Errorf("failed to query fleet: %w", err)
	}
	defer rows.Close()

	var fleet []models.AircraftSnapshot
	for rows.Next() {
		ac, err := scanAircraft(rows)
		if err != nil {
			return nil, err
		}
		fleet = append(fleet, ac)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fleet rows: %w", err)
	}

	return fleet, nil
}

// Get returns one aircraft by tail number.
func (r *fleetRepository) Get(tailNumber string) (models.AircraftSnapshot, error) {
	row := r.db.QueryRow(`SELECT `+aircraftColumns+` FROM aircraft WHERE tail_number = ?`, tailNumber)
	ac, err := scanAircraft(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AircraftSnapshot{}, fmt.Errorf("%w: %s", ErrAircraftNotFound, tailNumber)
	}
	return ac, err
}

// Count returns the number of stored aircraft.
func (r *fleetRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM aircraft`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count aircraft: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAircraft(row rowScanner) (models.AircraftSnapshot, error) {
	var ac models.AircraftSnapshot
	var category, checkType, state string
	err := row.Scan(
		&ac.TailNumber,
		&ac.Model,
		&category,
		&ac.TotalFlightHours,
		&ac.TotalFlightCycles,
		&checkType,
		&ac.FlightHoursSinceCheck,
		&ac.FlightCyclesSinceCheck,
		&ac.LastCheckDate,
		&ac.LastDCheckDate,
		&ac.DailyFlightHours,
		&state,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ac, err
		}
		return ac, fmt.Errorf("failed to scan aircraft row: %w", err)
	}
	ac.Category = models.BodyCategory(category)
	ac.LastCheckType = models.CheckType(checkType)
	ac.State = models.OperationalState(state)
	return ac, nil
}
