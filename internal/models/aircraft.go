package models

// BodyCategory groups aircraft by fuselage width, which determines the
// hangar bay they occupy during base maintenance.
type BodyCategory string

const (
	CategoryNarrow BodyCategory = "NARROW"
	CategoryWide   BodyCategory = "WIDE"
	CategoryCargo  BodyCategory = "CARGO"
)

// OperationalState is the current disposition of an airframe.
type OperationalState string

const (
	StateActive        OperationalState = "ACTIVE"
	StateInMaintenance OperationalState = "IN_MAINTENANCE"
)

// AircraftSnapshot is a point-in-time view of one airframe's usage counters.
// It is supplied by the fleet data layer and is read-only to the maintenance
// calculator. Dates are ISO strings (YYYY-MM-DD) as delivered by the data
// source; the calculator parses them against its reference date.
type AircraftSnapshot struct {
	TailNumber             string           `json:"tail_number"`
	Model                  string           `json:"model"`
	Category               BodyCategory     `json:"category"`
	TotalFlightHours       float64          `json:"total_flight_hours"`
	TotalFlightCycles      int              `json:"total_flight_cycles"`
	LastCheckType          CheckType        `json:"last_check_type"`
	FlightHoursSinceCheck  float64          `json:"flight_hours_since_check"`
	FlightCyclesSinceCheck float64          `json:"flight_cycles_since_check"`
	LastCheckDate          string           `json:"last_check_date"`
	LastDCheckDate         string           `json:"last_d_check_date"`
	DailyFlightHours       float64          `json:"daily_flight_hours"`
	State                  OperationalState `json:"state"`
}

// IsWideBody reports whether the airframe occupies a wide-body hangar bay.
// Cargo freighters count as wide-body for hangar purposes.
func (a AircraftSnapshot) IsWideBody() bool {
	return a.Category == CategoryWide || a.Category == CategoryCargo
}
