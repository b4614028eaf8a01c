package maintenance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fleetmaint/internal/models"
)

func fleetInMaintenance(wide, narrow, activeWide int) []models.AircraftSnapshot {
	var fleet []models.AircraftSnapshot
	for i := 0; i < wide; i++ {
		fleet = append(fleet, models.AircraftSnapshot{
			TailNumber: fmt.Sprintf("TC-W%02d", i),
			Category:   models.CategoryWide,
			State:      models.StateInMaintenance,
		})
	}
	for i := 0; i < narrow; i++ {
		fleet = append(fleet, models.AircraftSnapshot{
			TailNumber: fmt.Sprintf("TC-N%02d", i),
			Category:   models.CategoryNarrow,
			State:      models.StateInMaintenance,
		})
	}
	for i := 0; i < activeWide; i++ {
		fleet = append(fleet, models.AircraftSnapshot{
			TailNumber: fmt.Sprintf("TC-A%02d", i),
			Category:   models.CategoryWide,
			State:      models.StateActive,
		})
	}
	return fleet
}

func TestComputeHangarState_Counts(t *testing.T) {
	state := ComputeHangarState(fleetInMaintenance(2, 3, 4), DefaultHangarCapacity())

	assert.Equal(t, 2, state.WideBodyCount)
	assert.Equal(t, 3, state.NarrowBodyCount)
	assert.Equal(t, 5, state.TotalCount)
	assert.Equal(t, 3, state.WideBodyAvailable)
	assert.Equal(t, 9, state.NarrowBodyAvailable)
	assert.InDelta(t, 33.3, state.UtilizationPercent, 0.01)
	assert.False(t, state.IsFull)
}

func TestComputeHangarState_CargoCountsAsWideBody(t *testing.T) {
	fleet := []models.AircraftSnapshot{
		{TailNumber: "TC-LJA10", Category: models.CategoryCargo, State: models.StateInMaintenance},
	}
	state := ComputeHangarState(fleet, DefaultHangarCapacity())
	assert.Equal(t, 1, state.WideBodyCount)
	assert.Equal(t, 0, state.NarrowBodyCount)
}

// Pins the fullness rule: wide-body exhaustion alone makes the hangar full.
func TestComputeHangarState_FullOnWideBodyExhaustion(t *testing.T) {
	state := ComputeHangarState(fleetInMaintenance(5, 0, 0), DefaultHangarCapacity())

	assert.True(t, state.IsFull)
	assert.Equal(t, 0, state.WideBodyAvailable)

	available, reason := Availability(state, models.CategoryWide)
	assert.False(t, available)
	assert.Contains(t, reason, "capacity full")
	assert.Contains(t, reason, "5/5")
}

// Pins the fullness rule: narrow-body congestion does not by itself set
// IsFull, though narrow-body availability is exhausted.
func TestComputeHangarState_NarrowCongestionDoesNotSetFull(t *testing.T) {
	state := ComputeHangarState(fleetInMaintenance(0, 12, 0), DefaultHangarCapacity())

	assert.False(t, state.IsFull)

	available, reason := Availability(state, models.CategoryNarrow)
	assert.False(t, available)
	assert.Contains(t, reason, "narrow-body hangar capacity full")
}

// Pins the fullness rule: reaching total capacity sets IsFull even with a
// wide-body bay free.
func TestComputeHangarState_FullOnTotalCapacity(t *testing.T) {
	state := ComputeHangarState(fleetInMaintenance(3, 12, 0), DefaultHangarCapacity())

	assert.Equal(t, 15, state.TotalCount)
	assert.True(t, state.IsFull)
	assert.InDelta(t, 100.0, state.UtilizationPercent, 0.01)
}

func TestAvailability_SlotsFree(t *testing.T) {
	state := ComputeHangarState(fleetInMaintenance(1, 2, 0), DefaultHangarCapacity())

	available, reason := Availability(state, models.CategoryWide)
	assert.True(t, available)
	assert.Contains(t, reason, "4 free")

	available, reason = Availability(state, models.CategoryCargo)
	assert.True(t, available)
	assert.Contains(t, reason, "wide-body")

	available, reason = Availability(state, models.CategoryNarrow)
	assert.True(t, available)
	assert.Contains(t, reason, "10 free")
}

func TestComputeHangarState_IgnoresActiveAircraft(t *testing.T) {
	state := ComputeHangarState(fleetInMaintenance(0, 0, 6), DefaultHangarCapacity())
	assert.Zero(t, state.TotalCount)
	assert.False(t, state.IsFull)
}
