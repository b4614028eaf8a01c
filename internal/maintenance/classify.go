package maintenance

import "fleetmaint/internal/models"

// Classify maps a progress percentage to a severity level:
//
//	progress >= 90        -> CRITICAL
//	75 <= progress < 90   -> WARNING
//	progress < 75         -> OK
//
// Boundary values belong to the higher tier. Purely a function of the
// current value; no hysteresis, no history.
func Classify(progress float64) models.Severity {
	switch {
	case progress >= 90:
		return models.SeverityCritical
	case progress >= 75:
		return models.SeverityWarning
	default:
		return models.SeverityOK
	}
}
