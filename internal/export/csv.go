// Package export writes evaluated fleet data as CSV for spreadsheet review.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fleetmaint/internal/models"
	"fleetmaint/internal/tasks"
)

var fleetHeader = []string{
	"tail_number",
	"model",
	"category",
	"total_flight_hours",
	"total_flight_cycles",
	"last_check_type",
	"flight_hours_since_check",
	"flight_cycles_since_check",
	"last_check_date",
	"last_d_check_date",
	"daily_flight_hours",
	"state",
}

// WriteFleetCSV writes one row of raw aircraft data per evaluated aircraft.
func WriteFleetCSV(w io.Writer, results []tasks.EvaluationResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(fleetHeader); err != nil {
		return fmt.Errorf("failed to write fleet header: %w", err)
	}

	for _, res := range results {
		ac := res.Aircraft
		row := []string{
			ac.TailNumber,
			ac.Model,
			string(ac.Category),
			formatFloat(ac.TotalFlightHours),
			strconv.Itoa(ac.TotalFlightCycles),
			string(ac.LastCheckType),
			formatFloat(ac.FlightHoursSinceCheck),
			formatFloat(ac.FlightCyclesSinceCheck),
			ac.LastCheckDate,
			ac.LastDCheckDate,
			formatFloat(ac.DailyFlightHours),
			string(ac.State),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write fleet row for %s: %w", ac.TailNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func maintenanceHeader() []string {
	header := []string{"tail_number", "model"}
	for _, ct := range models.CheckTypes {
		prefix := strings.ToLower(string(ct))
		header = append(header,
			prefix+"_check_percent",
			prefix+"_check_severity",
			prefix+"_check_remaining_days",
		)
	}
	return append(header, "critical_check", "findings")
}

// WriteMaintenanceCSV writes one row per aircraft with the progress, severity
// and remaining days of each check tier, plus the most urgent check and any
// non-routine findings.
func WriteMaintenanceCSV(w io.Writer, results []tasks.EvaluationResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(maintenanceHeader()); err != nil {
		return fmt.Errorf("failed to write maintenance header: %w", err)
	}

	for _, res := range results {
		row := []string{res.Aircraft.TailNumber, res.Aircraft.Model}
		for _, ct := range models.CheckTypes {
			status := res.Statuses[ct]
			row = append(row,
				formatFloat(status.ProgressPercent),
				string(status.Severity),
				strconv.Itoa(status.RemainingDays),
			)
		}
		row = append(row, string(res.CriticalType), findingsCell(res.Statuses))

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write maintenance row for %s: %w", res.Aircraft.TailNumber, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// findingsCell joins present findings as "C:CORROSION(+2d)" entries separated
// by semicolons, or returns empty when no check has a finding.
func findingsCell(statuses map[models.CheckType]models.MaintenanceStatus) string {
	var out string
	for _, ct := range models.CheckTypes {
		finding := statuses[ct].Finding
		if !finding.Present {
			continue
		}
		if out != "" {
			out += ";"
		}
		out += fmt.Sprintf("%s:%s(+%dd)", ct, finding.Kind, finding.ExtraDays)
	}
	return out
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
