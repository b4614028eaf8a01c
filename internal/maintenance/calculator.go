package maintenance

import (
	"fmt"
	"math"
	"time"

	"fleetmaint/internal/models"
)

// DateLayout is the wire format for all maintenance dates.
const DateLayout = "2006-01-02"

// farFutureDays is the ETA sentinel for aircraft with a zero or negative
// daily flight-hour rate: the check is not projectable, not an error.
const farFutureDays = 999

// Progress thresholds above which a check demands planning action. Heavier
// checks trigger earlier because they need more lead time.
var actionThresholds = map[models.CheckType]float64{
	models.CheckA: 90,
	models.CheckB: 90,
	models.CheckC: 85,
	models.CheckD: 80,
}

// Progress thresholds above which a hangar slot is required. Only C and D
// checks are hangar-bound.
var deferralThresholds = map[models.CheckType]float64{
	models.CheckC: 85,
	models.CheckD: 80,
}

// Calculator computes per-aircraft maintenance statuses against all four
// check tiers. It owns no persistent state: every Evaluate call is a pure
// computation over its inputs, so concurrent evaluations of different
// aircraft need no coordination.
type Calculator struct {
	limits   *LimitRegistry
	findings *FindingGenerator
}

// NewCalculator wires a calculator from its limit registry and finding
// generator.
func NewCalculator(limits *LimitRegistry, findings *FindingGenerator) *Calculator {
	return &Calculator{limits: limits, findings: findings}
}

// NewDefaultCalculator returns a calculator with default limits and
// stochastic parameters.
func NewDefaultCalculator() *Calculator {
	return NewCalculator(NewLimitRegistry(), NewFindingGenerator(DefaultStochasticParams()))
}

// Evaluate computes the status of all four check tiers for one aircraft as
// of referenceDate. When hangar is non-nil, C and D checks past their
// deferral threshold are checked against slot availability and marked
// deferred when the aircraft's category has no free bay. When
// applyStochastic is false every check carries an absent finding.
//
// A failure computing any check aborts the whole evaluation; no partial
// result map is returned.
func (c *Calculator) Evaluate(
	ac models.AircraftSnapshot,
	hangar *models.HangarState,
	applyStochastic bool,
	referenceDate time.Time,
) (map[models.CheckType]models.MaintenanceStatus, error) {
	if err := validateSnapshot(ac); err != nil {
		return nil, err
	}

	lastCheck, err := time.Parse(DateLayout, ac.LastCheckDate)
	if err != nil {
		return nil, fmt.Errorf("%w: last_check_date %q", ErrInvalidDateFormat, ac.LastCheckDate)
	}
	lastDCheck, err := time.Parse(DateLayout, ac.LastDCheckDate)
	if err != nil {
		return nil, fmt.Errorf("%w: last_d_check_date %q", ErrInvalidDateFormat, ac.LastDCheckDate)
	}

	daysSinceCheck := daysBetween(lastCheck, referenceDate)
	daysSinceDCheck := daysBetween(lastDCheck, referenceDate)

	results := make(map[models.CheckType]models.MaintenanceStatus, len(models.CheckTypes))
	for _, ct := range models.CheckTypes {
		lim, err := c.limits.LimitsFor(ct)
		if err != nil {
			return nil, err
		}

		var status models.MaintenanceStatus
		switch ct {
		case models.CheckA:
			status, err = c.evaluateA(ac, lim)
		case models.CheckB:
			status, err = c.evaluateElapsed(ct, lim, daysSinceCheck)
		case models.CheckC:
			status, err = c.evaluateC(ac, lim, daysSinceCheck)
		case models.CheckD:
			status, err = c.evaluateElapsed(ct, lim, daysSinceDCheck)
		}
		if err != nil {
			return nil, fmt.Errorf("check %s: %w", ct, err)
		}

		status.CheckType = ct
		status.Description = lim.Description
		status.BaseDurationDays = lim.BaseDurationDays

		finding := absentFinding()
		if applyStochastic {
			finding = c.findings.Generate(ac.TailNumber + string(ct))
		}
		status.Finding = finding
		status.AdjustedDurationDays = lim.BaseDurationDays + finding.ExtraDays

		status.ProjectedDueDate = referenceDate.AddDate(0, 0, status.RemainingDays).Format(DateLayout)

		if hangar != nil {
			applyDeferral(&status, *hangar, ac.Category)
		}

		results[ct] = status
	}

	return results, nil
}

// evaluateA computes the A-check status from flight hours and cycles since
// the last check: progress is the worse of the two utilizations, and the ETA
// projects remaining hours over the average daily rate.
func (c *Calculator) evaluateA(ac models.AircraftSnapshot, lim models.CheckLimit) (models.MaintenanceStatus, error) {
	if lim.FlightHourLimit == nil || lim.FlightCycleLimit == nil {
		return models.MaintenanceStatus{}, fmt.Errorf("flight hour and cycle limits are required")
	}

	fhRemaining := *lim.FlightHourLimit - ac.FlightHoursSinceCheck
	fcRemaining := *lim.FlightCycleLimit - ac.FlightCyclesSinceCheck
	progress := math.Max(
		ac.FlightHoursSinceCheck / *lim.FlightHourLimit,
		ac.FlightCyclesSinceCheck / *lim.FlightCycleLimit,
	) * 100

	// A zero or negative daily rate yields the far-future sentinel rather
	// than a division fault.
	remainingDays := farFutureDays
	if ac.DailyFlightHours > 0 {
		remainingDays = int(fhRemaining / ac.DailyFlightHours)
	}

	return models.MaintenanceStatus{
		RemainingFlightHours:  f64(round1(fhRemaining)),
		RemainingFlightCycles: f64(round1(fcRemaining)),
		RemainingDays:         remainingDays,
		ProgressPercent:       round1(math.Min(progress, 100)),
		Severity:              Classify(progress),
		ActionRequired:        progress >= actionThresholds[models.CheckA],
	}, nil
}

// evaluateElapsed covers the purely calendar-driven tiers (B and D).
func (c *Calculator) evaluateElapsed(ct models.CheckType, lim models.CheckLimit, daysUsed int) (models.MaintenanceStatus, error) {
	if lim.ElapsedDayLimit == nil {
		return models.MaintenanceStatus{}, fmt.Errorf("elapsed day limit is required")
	}
	dayLimit := *lim.ElapsedDayLimit

	progress := math.Min(float64(daysUsed)/float64(dayLimit)*100, 100)

	return models.MaintenanceStatus{
		RemainingDays:   max(0, dayLimit-daysUsed),
		ProgressPercent: round1(progress),
		Severity:        Classify(progress),
		ActionRequired:  progress >= actionThresholds[ct],
	}, nil
}

// evaluateC combines a flight-hour dimension with the calendar one. The
// snapshot does not carry a dedicated C-check flight-hour counter, so the
// A-check usage doubled stands in for accumulation since the last heavy
// check. This is a deliberate approximation carried over from the source
// data model; do not "fix" it without changing the data source.
func (c *Calculator) evaluateC(ac models.AircraftSnapshot, lim models.CheckLimit, daysUsed int) (models.MaintenanceStatus, error) {
	if lim.FlightHourLimit == nil || lim.ElapsedDayLimit == nil {
		return models.MaintenanceStatus{}, fmt.Errorf("flight hour and elapsed day limits are required")
	}
	fhLimit := *lim.FlightHourLimit
	dayLimit := *lim.ElapsedDayLimit

	fhUsed := ac.FlightHoursSinceCheck * 2
	fhRemaining := math.Max(0, fhLimit-fhUsed)
	fhProgress := math.Min(fhUsed/fhLimit*100, 100)
	daysProgress := math.Min(float64(daysUsed)/float64(dayLimit)*100, 100)
	progress := math.Max(fhProgress, daysProgress)

	return models.MaintenanceStatus{
		RemainingFlightHours: f64(round1(fhRemaining)),
		RemainingDays:        max(0, dayLimit-daysUsed),
		ProgressPercent:      round1(progress),
		Severity:             Classify(progress),
		ActionRequired:       progress >= actionThresholds[models.CheckC],
	}, nil
}

// applyDeferral marks a hangar-bound check deferred when it is past its
// deferral threshold and no slot is free for the aircraft's category. A
// deferral overrides the progress-based severity.
func applyDeferral(status *models.MaintenanceStatus, hangar models.HangarState, category models.BodyCategory) {
	threshold, bound := deferralThresholds[status.CheckType]
	if !bound || status.ProgressPercent < threshold {
		return
	}
	available, reason := Availability(hangar, category)
	if available {
		return
	}
	status.Deferred = true
	status.DeferralReason = reason
	status.Severity = models.SeverityDeferred
}

// validateSnapshot rejects snapshots with absent required attributes before
// any calculation touches them.
func validateSnapshot(ac models.AircraftSnapshot) error {
	switch {
	case ac.TailNumber == "":
		return fmt.Errorf("%w: tail_number", ErrMissingField)
	case ac.Category == "":
		return fmt.Errorf("%w: category", ErrMissingField)
	case ac.LastCheckDate == "":
		return fmt.Errorf("%w: last_check_date", ErrMissingField)
	case ac.LastDCheckDate == "":
		return fmt.Errorf("%w: last_d_check_date", ErrMissingField)
	}
	return nil
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
