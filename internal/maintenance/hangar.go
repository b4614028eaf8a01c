package maintenance

import (
	"fmt"
	"math"

	"fleetmaint/internal/models"
)

// HangarCapacity is the fixed ceiling on simultaneous base-maintenance
// visits per body category. Process-wide configuration; the tracker itself
// holds no state between calls.
type HangarCapacity struct {
	WideBody   int
	NarrowBody int
	Total      int
}

// DefaultHangarCapacity reflects the reference facilities: 5 wide-body bays,
// 12 narrow-body bays, 15 aircraft total.
func DefaultHangarCapacity() HangarCapacity {
	return HangarCapacity{WideBody: 5, NarrowBody: 12, Total: 15}
}

// ComputeHangarState aggregates the fleet-wide occupancy snapshot: aircraft
// currently in maintenance are counted by body category (cargo counts as
// wide-body) against the configured capacities.
//
// IsFull applies the stricter of the two fullness rules: the hangar is full
// when the wide-body bays are exhausted OR total occupancy reaches total
// capacity. Narrow-body congestion alone does not set IsFull; deferral
// decisions gate on wide-body bays, which drive heavy-check throughput.
func ComputeHangarState(fleet []models.AircraftSnapshot, capacity HangarCapacity) models.HangarState {
	var wide, narrow int
	for _, ac := range fleet {
		if ac.State != models.StateInMaintenance {
			continue
		}
		if ac.IsWideBody() {
			wide++
		} else {
			narrow++
		}
	}
	total := wide + narrow

	utilization := 0.0
	if capacity.Total > 0 {
		utilization = float64(total) / float64(capacity.Total) * 100
	}

	return models.HangarState{
		WideBodyCount:       wide,
		NarrowBodyCount:     narrow,
		TotalCount:          total,
		WideBodyCapacity:    capacity.WideBody,
		NarrowBodyCapacity:  capacity.NarrowBody,
		TotalCapacity:       capacity.Total,
		WideBodyAvailable:   capacity.WideBody - wide,
		NarrowBodyAvailable: capacity.NarrowBody - narrow,
		UtilizationPercent:  math.Round(utilization*10) / 10,
		IsFull:              wide >= capacity.WideBody || total >= capacity.Total,
	}
}

// Availability answers a point-in-time slot query for one aircraft category.
// Wide-body and cargo aircraft compete for wide-body bays; everything else
// checks narrow-body bays. The reason string names the constraint involved.
func Availability(state models.HangarState, category models.BodyCategory) (bool, string) {
	if category == models.CategoryWide || category == models.CategoryCargo {
		if state.WideBodyAvailable <= 0 {
			return false, fmt.Sprintf("wide-body hangar capacity full (%d/%d)",
				state.WideBodyCapacity, state.WideBodyCapacity)
		}
		return true, fmt.Sprintf("wide-body slot available (%d free)", state.WideBodyAvailable)
	}
	if state.NarrowBodyAvailable <= 0 {
		return false, fmt.Sprintf("narrow-body hangar capacity full (%d/%d)",
			state.NarrowBodyCapacity, state.NarrowBodyCapacity)
	}
	return true, fmt.Sprintf("narrow-body slot available (%d free)", state.NarrowBodyAvailable)
}
