package fleet

import "fleetmaint/internal/models"

// Summary aggregates fleet-wide statistics for the dashboard and reports.
type Summary struct {
	TotalAircraft    int     `json:"total_aircraft"`
	Active           int     `json:"active"`
	InMaintenance    int     `json:"in_maintenance"`
	NarrowBody       int     `json:"narrow_body"`
	WideBody         int     `json:"wide_body"`
	Cargo            int     `json:"cargo"`
	TotalFlightHours float64 `json:"total_flight_hours"`
	DistinctModels   int     `json:"distinct_models"`
}

// Summarize computes fleet-wide counts from a snapshot set.
func Summarize(fleet []models.AircraftSnapshot) Summary {
	s := Summary{TotalAircraft: len(fleet)}
	seenModels := make(map[string]bool)

	for _, ac := range fleet {
		switch ac.State {
		case models.StateInMaintenance:
			s.InMaintenance++
		default:
			s.Active++
		}
		switch ac.Category {
		case models.CategoryNarrow:
			s.NarrowBody++
		case models.CategoryWide:
			s.WideBody++
		case models.CategoryCargo:
			s.Cargo++
		}
		s.TotalFlightHours += ac.TotalFlightHours
		seenModels[ac.Model] = true
	}

	s.DistinctModels = len(seenModels)
	return s
}
