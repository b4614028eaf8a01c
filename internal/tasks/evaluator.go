package tasks

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"fleetmaint/internal/database"
	"fleetmaint/internal/fleet"
	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/metrics"
	"fleetmaint/internal/models"
)

// Evaluator periodically recomputes the maintenance picture for the whole
// fleet: it loads the stored snapshots, aggregates hangar occupancy, runs
// the calculator per aircraft and publishes the result to the cache and the
// metrics collector.
type Evaluator struct {
	repo      database.FleetRepository
	calc      *maintenance.Calculator
	capacity  maintenance.HangarCapacity
	cache     *ResultCache
	collector *metrics.Collector
	interval  time.Duration
	now       func() time.Time
}

// NewEvaluator creates the fleet evaluation task.
func NewEvaluator(
	repo database.FleetRepository,
	calc *maintenance.Calculator,
	capacity maintenance.HangarCapacity,
	cache *ResultCache,
	collector *metrics.Collector,
	interval time.Duration,
) *Evaluator {
	return &Evaluator{
		repo:      repo,
		calc:      calc,
		capacity:  capacity,
		cache:     cache,
		collector: collector,
		interval:  interval,
		now:       time.Now,
	}
}

// Name implements scheduler.Task.
func (e *Evaluator) Name() string { return "fleet-evaluator" }

// Interval implements scheduler.Task.
func (e *Evaluator) Interval() time.Duration { return e.interval }

// Run performs one full-fleet evaluation pass. An evaluation failure for one
// aircraft skips that aircraft (logged and counted) without aborting the
// pass; the aircraft is omitted entirely rather than published with a
// partial check map.
func (e *Evaluator) Run(ctx context.Context) error {
	start := e.now()
	referenceDate := start.UTC().Truncate(24 * time.Hour)

	fleetSnapshots, err := e.repo.List()
	if err != nil {
		return fmt.Errorf("failed to load fleet: %w", err)
	}

	hangar := maintenance.ComputeHangarState(fleetSnapshots, e.capacity)
	summary := fleet.Summarize(fleetSnapshots)

	results := make([]EvaluationResult, 0, len(fleetSnapshots))
	severityCounts := make(map[models.Severity]int)

	for _, ac := range fleetSnapshots {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		statuses, err := e.calc.Evaluate(ac, &hangar, true, referenceDate)
		if err != nil {
			e.collector.IncEvaluationError()
			slog.Error("Failed to evaluate aircraft", "tail_number", ac.TailNumber, "error", err)
			continue
		}
		e.collector.IncEvaluation()

		criticalType, critical, ok := maintenance.MostCritical(statuses)
		if !ok {
			continue
		}
		severityCounts[critical.Severity]++

		for _, cf := range maintenance.Findings(statuses) {
			e.collector.IncFinding(cf.Finding.Kind)
		}

		results = append(results, EvaluationResult{
			Aircraft:     ac,
			Statuses:     statuses,
			CriticalType: criticalType,
			Critical:     critical,
		})
	}

	e.cache.Update(results, hangar, summary, start)

	e.collector.SetSeverityCounts(severityCounts)
	e.collector.SetFleetSummary(summary)
	e.collector.SetHangarState(hangar)
	e.collector.ObservePass(e.now().Sub(start).Seconds())

	slog.Info("Fleet evaluation pass complete",
		"aircraft", len(results),
		"critical", severityCounts[models.SeverityCritical],
		"warning", severityCounts[models.SeverityWarning],
		"deferred", severityCounts[models.SeverityDeferred],
		"hangar_utilization", hangar.UtilizationPercent,
	)

	return nil
}
