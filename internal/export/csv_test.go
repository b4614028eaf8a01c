package export

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/models"
	"fleetmaint/internal/tasks"
)

func exportFixture(t *testing.T) []tasks.EvaluationResult {
	t.Helper()

	ac := models.AircraftSnapshot{
		TailNumber:             "TC-JJK25",
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
	}

	referenceDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	statuses, err := maintenance.NewDefaultCalculator().Evaluate(ac, nil, false, referenceDate)
	require.NoError(t, err)

	criticalType, critical, ok := maintenance.MostCritical(statuses)
	require.True(t, ok)

	return []tasks.EvaluationResult{{
		Aircraft:     ac,
		Statuses:     statuses,
		CriticalType: criticalType,
		Critical:     critical,
	}}
}

func TestWriteFleetCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFleetCSV(&buf, exportFixture(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, fleetHeader, records[0])
	row := records[1]
	assert.Equal(t, "TC-JJK25", row[0])
	assert.Equal(t, "Boeing 777-300ER", row[1])
	assert.Equal(t, "WIDE", row[2])
	assert.Equal(t, "42000", row[3])
	assert.Equal(t, "520", row[6])
	assert.Equal(t, "12.5", row[10])
	assert.Equal(t, "ACTIVE", row[11])
}

func TestWriteMaintenanceCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMaintenanceCSV(&buf, exportFixture(t)))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)

	header := records[0]
	assert.Equal(t, "a_check_percent", header[2])
	assert.Equal(t, "d_check_remaining_days", header[13])
	assert.Equal(t, "critical_check", header[14])
	assert.Equal(t, "findings", header[15])

	row := records[1]
	assert.Equal(t, "TC-JJK25", row[0])
	assert.Equal(t, "86.7", row[2])
	assert.Equal(t, "WARNING", row[3])
	assert.Equal(t, "6", row[4])
	assert.Equal(t, "A", row[14])
	assert.Empty(t, row[15])
}

func TestFindingsCell(t *testing.T) {
	statuses := map[models.CheckType]models.MaintenanceStatus{
		models.CheckA: {CheckType: models.CheckA},
		models.CheckC: {
			CheckType: models.CheckC,
			Finding: models.NonRoutineFinding{
				Present:   true,
				Kind:      models.FindingCorrosion,
				ExtraDays: 2,
			},
		},
		models.CheckD: {
			CheckType: models.CheckD,
			Finding: models.NonRoutineFinding{
				Present:   true,
				Kind:      models.FindingFatigueCrack,
				ExtraDays: 3,
			},
		},
	}

	cell := findingsCell(statuses)
	assert.Equal(t, "C:CORROSION(+2d);D:FATIGUE_CRACK(+3d)", cell)
	assert.True(t, strings.HasPrefix(cell, "C:"))
}
