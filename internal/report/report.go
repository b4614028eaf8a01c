// Package report renders plain-text maintenance status reports for single
// aircraft, suitable for terminal output.
package report

import (
	"fmt"
	"strings"

	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/models"
	"fleetmaint/internal/tasks"
)

const separator = "================================================================"

// Generate renders the status report for one evaluated aircraft: identity,
// the most urgent check, per-tier progress and any non-routine findings.
func Generate(result tasks.EvaluationResult) string {
	var b strings.Builder

	ac := result.Aircraft
	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "AIRCRAFT MAINTENANCE STATUS REPORT")
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "Registration   : %s\n", ac.TailNumber)
	fmt.Fprintf(&b, "Aircraft Type  : %s\n", ac.Model)
	fmt.Fprintf(&b, "Category       : %s\n", ac.Category)
	fmt.Fprintf(&b, "Total FH       : %.0f hours\n", ac.TotalFlightHours)
	fmt.Fprintf(&b, "Total FC       : %d cycles\n", ac.TotalFlightCycles)
	fmt.Fprintf(&b, "State          : %s\n", ac.State)

	critical := result.Critical
	fmt.Fprintln(&b, separator)
	fmt.Fprintf(&b, "MOST URGENT CHECK: %s (%s)\n", result.CriticalType, critical.Description)
	fmt.Fprintf(&b, "Status         : %s (%.1f%% utilized)\n", critical.Severity, critical.ProgressPercent)
	fmt.Fprintf(&b, "Days Until Due : %d\n", critical.RemainingDays)
	fmt.Fprintf(&b, "Due Date       : %s\n", critical.ProjectedDueDate)
	if critical.Deferred {
		fmt.Fprintf(&b, "Deferred       : %s\n", critical.DeferralReason)
	}

	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "CHECK PROGRESS")
	for _, ct := range models.CheckTypes {
		status, ok := result.Statuses[ct]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %s-check  %6.1f%%  %-8s  remaining %d days\n",
			ct, status.ProgressPercent, status.Severity, status.RemainingDays)
	}

	fmt.Fprintln(&b, separator)
	fmt.Fprintln(&b, "NON-ROUTINE FINDINGS")
	findings := maintenance.Findings(result.Statuses)
	if len(findings) == 0 {
		fmt.Fprintln(&b, "  none detected in simulation")
	}
	for _, cf := range findings {
		fmt.Fprintf(&b, "  %s-check: %s (+%d days) %s\n",
			cf.CheckType, cf.Finding.Kind, cf.Finding.ExtraDays, cf.Finding.Description)
	}
	fmt.Fprintln(&b, separator)

	return b.String()
}
