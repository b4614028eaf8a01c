package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/models"
	"fleetmaint/internal/tasks"
)

func reportFixture(t *testing.T, applyStochastic bool) tasks.EvaluationResult {
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
	statuses, err := maintenance.NewDefaultCalculator().Evaluate(ac, nil, applyStochastic, referenceDate)
	require.NoError(t, err)

	criticalType, critical, ok := maintenance.MostCritical(statuses)
	require.True(t, ok)

	return tasks.EvaluationResult{
		Aircraft:     ac,
		Statuses:     statuses,
		CriticalType: criticalType,
		Critical:     critical,
	}
}

func TestGenerate(t *testing.T) {
	out := Generate(reportFixture(t, false))

	assert.Contains(t, out, "AIRCRAFT MAINTENANCE STATUS REPORT")
	assert.Contains(t, out, "Registration   : TC-JJK25")
	assert.Contains(t, out, "Aircraft Type  : Boeing 777-300ER")
	assert.Contains(t, out, "Total FH       : 42000 hours")
	assert.Contains(t, out, "MOST URGENT CHECK: A")
	assert.Contains(t, out, "WARNING (86.7% utilized)")
	assert.Contains(t, out, "Days Until Due : 6")
	assert.Contains(t, out, "Due Date       : 2026-01-07")
	assert.Contains(t, out, "none detected in simulation")

	// One line per check tier.
	for _, ct := range models.CheckTypes {
		assert.Contains(t, out, string(ct)+"-check")
	}
}

func TestGenerate_ListsFindings(t *testing.T) {
	result := reportFixture(t, false)

	status := result.Statuses[models.CheckC]
	status.Finding = models.NonRoutineFinding{
		Present:     true,
		Kind:        models.FindingCorrosion,
		ExtraDays:   2,
		Description: "Corrosion found on structural inspection",
	}
	result.Statuses[models.CheckC] = status

	out := Generate(result)
	assert.Contains(t, out, "C-check: CORROSION (+2 days)")
	assert.NotContains(t, out, "none detected")
	assert.Equal(t, 1, strings.Count(out, "CORROSION"))
}
