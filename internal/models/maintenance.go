package models

// CheckType is one of the four regulatory maintenance tiers.
type CheckType string

const (
	CheckA CheckType = "A"
	CheckB CheckType = "B"
	CheckC CheckType = "C"
	CheckD CheckType = "D"
)

// CheckTypes lists all check tiers in their fixed evaluation order.
// Iteration order matters: the critical selector breaks progress ties by
// first occurrence in this order.
var CheckTypes = []CheckType{CheckA, CheckB, CheckC, CheckD}

// Severity classifies how close a check is to (or past) its due point.
type Severity string

const (
	SeverityOK       Severity = "OK"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
	SeverityDeferred Severity = "DEFERRED"
)

// FindingKind is the category of a non-routine finding discovered during a check.
type FindingKind string

const (
	FindingNone             FindingKind = "NONE"
	FindingCorrosion        FindingKind = "CORROSION"
	FindingFatigueCrack     FindingKind = "FATIGUE_CRACK"
	FindingSystemFailure    FindingKind = "SYSTEM_FAILURE"
	FindingStructuralDamage FindingKind = "STRUCTURAL_DAMAGE"
)

// NonRoutineFinding is an unplanned defect discovered during a check that
// extends its duration. It is produced fresh on every evaluation and is
// deterministic for a given seed key.
type NonRoutineFinding struct {
	Present     bool        `json:"present"`
	Kind        FindingKind `json:"kind"`
	ExtraDays   int         `json:"extra_days"`
	Description string      `json:"description"`
}

// CheckLimit is the static threshold row for one check tier. Exactly the
// limits appropriate to the tier are non-nil: A carries flight hours and
// cycles, B and D carry elapsed days, C carries flight hours and days.
type CheckLimit struct {
	FlightHourLimit  *float64 `json:"flight_hour_limit,omitempty"`
	FlightCycleLimit *float64 `json:"flight_cycle_limit,omitempty"`
	ElapsedDayLimit  *int     `json:"elapsed_day_limit,omitempty"`
	BaseDurationDays int      `json:"base_duration_days"`
	Description      string   `json:"description"`
}

// MaintenanceStatus is the computed state of one check tier for one aircraft.
type MaintenanceStatus struct {
	CheckType             CheckType         `json:"check_type"`
	Description           string            `json:"description"`
	RemainingFlightHours  *float64          `json:"remaining_flight_hours,omitempty"`
	RemainingFlightCycles *float64          `json:"remaining_flight_cycles,omitempty"`
	RemainingDays         int               `json:"remaining_days"`
	ProgressPercent       float64           `json:"progress_percent"`
	Severity              Severity          `json:"severity"`
	ActionRequired        bool              `json:"action_required"`
	ProjectedDueDate      string            `json:"projected_due_date"`
	BaseDurationDays      int               `json:"base_duration_days"`
	AdjustedDurationDays  int               `json:"adjusted_duration_days"`
	Finding               NonRoutineFinding `json:"finding"`
	Deferred              bool              `json:"deferred"`
	DeferralReason        string            `json:"deferral_reason,omitempty"`
}

// HangarState is the fleet-wide hangar occupancy aggregate, recomputed from
// the full fleet snapshot on each evaluation pass. Capacity fields carry the
// configured ceilings so availability reasons can cite them.
type HangarState struct {
	WideBodyCount       int     `json:"wide_body_count"`
	NarrowBodyCount     int     `json:"narrow_body_count"`
	TotalCount          int     `json:"total_count"`
	WideBodyCapacity    int     `json:"wide_body_capacity"`
	NarrowBodyCapacity  int     `json:"narrow_body_capacity"`
	TotalCapacity       int     `json:"total_capacity"`
	WideBodyAvailable   int     `json:"wide_body_available"`
	NarrowBodyAvailable int     `json:"narrow_body_available"`
	UtilizationPercent  float64 `json:"utilization_percent"`
	IsFull              bool    `json:"is_full"`
}
