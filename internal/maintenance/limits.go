package maintenance

import (
	"fmt"

	"fleetmaint/internal/models"
)

// Default check intervals per EASA/FAA practice:
// A: 600 FH or 400 FC (whichever first), B: 180 days (phased/block),
// C: 6000 FH or 24 months, D: 6 years (structural overhaul).
func defaultLimits() map[models.CheckType]models.CheckLimit {
	return map[models.CheckType]models.CheckLimit{
		models.CheckA: {
			FlightHourLimit:  f64(600),
			FlightCycleLimit: f64(400),
			BaseDurationDays: 1,
			Description:      "Light Maintenance Check",
		},
		models.CheckB: {
			ElapsedDayLimit:  iptr(180),
			BaseDurationDays: 3,
			Description:      "Phased/Block Check",
		},
		models.CheckC: {
			FlightHourLimit:  f64(6000),
			ElapsedDayLimit:  iptr(730),
			BaseDurationDays: 7,
			Description:      "Heavy Base Maintenance",
		},
		models.CheckD: {
			ElapsedDayLimit:  iptr(2190),
			BaseDurationDays: 30,
			Description:      "Structural Overhaul (Heavy)",
		},
	}
}

func f64(v float64) *float64 { return &v }
func iptr(v int) *int        { return &v }

// LimitRegistry is the static table of per-check thresholds. Rows are loaded
// once at startup and never mutated afterwards.
type LimitRegistry struct {
	limits map[models.CheckType]models.CheckLimit
}

// NewLimitRegistry returns a registry with the default A/B/C/D rows.
func NewLimitRegistry() *LimitRegistry {
	return &LimitRegistry{limits: defaultLimits()}
}

// NewLimitRegistryWith returns a registry with the default rows, replaced by
// any overrides supplied for specific check types. Deployments override rows
// through configuration without touching the calculator.
func NewLimitRegistryWith(overrides map[models.CheckType]models.CheckLimit) *LimitRegistry {
	limits := defaultLimits()
	for ct, lim := range overrides {
		limits[ct] = lim
	}
	return &LimitRegistry{limits: limits}
}

// LimitsFor looks up the threshold row for a check type. Requests for a code
// outside A/B/C/D fail with ErrUnknownCheckType.
func (r *LimitRegistry) LimitsFor(checkType models.CheckType) (models.CheckLimit, error) {
	lim, ok := r.limits[checkType]
	if !ok {
		return models.CheckLimit{}, fmt.Errorf("%w: %q", ErrUnknownCheckType, checkType)
	}
	return lim, nil
}
