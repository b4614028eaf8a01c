package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetmaint/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "fleet_test.db")

	db, err := New(dbPath)
	require.NoError(t, err)
	require.NotNil(t, db)

	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func testFleet() []models.AircraftSnapshot {
	return []models.AircraftSnapshot{
		{
			TailNumber:             "TC-JJA42",
			Model:                  "Boeing 777-300ER",
			Category:               models.CategoryWide,
			TotalFlightHours:       42000,
			TotalFlightCycles:      5600,
			LastCheckType:          models.CheckA,
			FlightHoursSinceCheck:  520,
			FlightCyclesSinceCheck: 340,
			LastCheckDate:          "2025-11-01",
			LastDCheckDate:         "2022-06-15",
			DailyFlightHours:       12.5,
			State:                  models.StateActive,
		},
		{
			TailNumber:             "TC-JPB17",
			Model:                  "Airbus A320-200",
			Category:               models.CategoryNarrow,
			TotalFlightHours:       18700,
			TotalFlightCycles:      8100,
			LastCheckType:          models.CheckB,
			FlightHoursSinceCheck:  310,
			FlightCyclesSinceCheck: 190,
			LastCheckDate:          "2025-09-20",
			LastDCheckDate:         "2021-02-10",
			DailyFlightHours:       7.8,
			State:                  models.StateInMaintenance,
		},
	}
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	assert.NotNil(t, db.Fleet())
}

func TestFleetRepository_ReplaceAndList(t *testing.T) {
	repo := setupTestDB(t).Fleet()

	require.NoError(t, repo.Replace(testFleet()))

	fleet, err := repo.List()
	require.NoError(t, err)
	require.Len(t, fleet, 2)
	assert.Equal(t, testFleet(), fleet)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestFleetRepository_ReplaceOverwrites(t *testing.T) {
	repo := setupTestDB(t).Fleet()

	require.NoError(t, repo.Replace(testFleet()))
	require.NoError(t, repo.Replace(testFleet()[:1]))

	fleet, err := repo.List()
	require.NoError(t, err)
	assert.Len(t, fleet, 1)
	assert.Equal(t, "TC-JJA42", fleet[0].TailNumber)
}

func TestFleetRepository_Get(t *testing.T) {
	repo := setupTestDB(t).Fleet()
	require.NoError(t, repo.Replace(testFleet()))

	ac, err := repo.Get("TC-JPB17")
	require.NoError(t, err)
	assert.Equal(t, "Airbus A320-200", ac.Model)
	assert.Equal(t, models.StateInMaintenance, ac.State)

	_, err = repo.Get("TC-XXX00")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAircraftNotFound)
}

func TestFleetRepository_EmptyList(t *testing.T) {
	repo := setupTestDB(t).Fleet()

	fleet, err := repo.List()
	require.NoError(t, err)
	assert.Empty(t, fleet)

	count, err := repo.Count()
	require.NoError(t, err)
	assert.Zero(t, count)
}
