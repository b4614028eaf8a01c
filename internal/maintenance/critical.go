package maintenance

import "fleetmaint/internal/models"

// MostCritical reports the check with the highest progress percentage. Ties
// keep the first check encountered in the fixed A, B, C, D order, so the
// result is deterministic for identical inputs.
//
// Selection is literally by raw progress magnitude, not by severity tier: a
// deferred check outranks a critical one only when its progress is higher.
// Returns ok=false for an empty status map.
func MostCritical(statuses map[models.CheckType]models.MaintenanceStatus) (models.CheckType, models.MaintenanceStatus, bool) {
	var (
		criticalType models.CheckType
		critical     models.MaintenanceStatus
		found        bool
	)
	for _, ct := range models.CheckTypes {
		status, ok := statuses[ct]
		if !ok {
			continue
		}
		if !found || status.ProgressPercent > critical.ProgressPercent {
			criticalType = ct
			critical = status
			found = true
		}
	}
	return criticalType, critical, found
}

// CheckFinding pairs a check tier with the non-routine finding it surfaced.
type CheckFinding struct {
	CheckType models.CheckType         `json:"check_type"`
	Finding   models.NonRoutineFinding `json:"finding"`
}

// Findings lists the present non-routine findings in fixed A, B, C, D order.
func Findings(statuses map[models.CheckType]models.MaintenanceStatus) []CheckFinding {
	var findings []CheckFinding
	for _, ct := range models.CheckTypes {
		status, ok := statuses[ct]
		if !ok || !status.Finding.Present {
			continue
		}
		findings = append(findings, CheckFinding{CheckType: ct, Finding: status.Finding})
	}
	return findings
}
