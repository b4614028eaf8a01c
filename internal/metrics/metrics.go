// Package metrics exports Prometheus metrics for the evaluation pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"fleetmaint/internal/fleet"
	"fleetmaint/internal/models"
)

// Collector holds the Prometheus instruments for fleet evaluation passes.
type Collector struct {
	evaluationsTotal      prometheus.Counter
	evaluationErrorsTotal prometheus.Counter
	evaluationDuration    prometheus.Histogram
	findingsTotal         *prometheus.CounterVec
	fleetSeverity         *prometheus.GaugeVec
	fleetState            *prometheus.GaugeVec
	hangarOccupied        *prometheus.GaugeVec
	hangarUtilization     prometheus.Gauge
}

// New registers the collectors with the given registerer and returns the
// collector handle.
func New(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)
	return &Collector{
		evaluationsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleetmaint_evaluations_total",
			Help: "Number of per-aircraft maintenance evaluations performed.",
		}),
		evaluationErrorsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fleetmaint_evaluation_errors_total",
			Help: "Number of aircraft evaluations that failed.",
		}),
		evaluationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fleetmaint_evaluation_pass_duration_seconds",
			Help:    "Duration of full-fleet evaluation passes.",
			Buckets: prometheus.DefBuckets,
		}),
		findingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fleetmaint_findings_total",
			Help: "Non-routine findings surfaced during evaluations, by kind.",
		}, []string{"kind"}),
		fleetSeverity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetmaint_fleet_severity",
			Help: "Aircraft counted by most-critical check severity.",
		}, []string{"severity"}),
		fleetState: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetmaint_fleet_state",
			Help: "Aircraft counted by operational state.",
		}, []string{"state"}),
		hangarOccupied: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name: "fleetmaint_hangar_occupied",
			Help: "Hangar bays occupied, by body category.",
		}, []string{"category"}),
		hangarUtilization: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fleetmaint_hangar_utilization_percent",
			Help: "Total hangar utilization percentage.",
		}),
	}
}

// ObservePass records the duration of one full-fleet evaluation pass.
func (c *Collector) ObservePass(seconds float64) {
	c.evaluationDuration.Observe(seconds)
}

// IncEvaluation counts one per-aircraft evaluation.
func (c *Collector) IncEvaluation() {
	c.evaluationsTotal.Inc()
}

// IncEvaluationError counts one failed per-aircraft evaluation.
func (c *Collector) IncEvaluationError() {
	c.evaluationErrorsTotal.Inc()
}

// IncFinding counts one surfaced non-routine finding.
func (c *Collector) IncFinding(kind models.FindingKind) {
	c.findingsTotal.WithLabelValues(string(kind)).Inc()
}

// SetSeverityCounts publishes the per-severity aircraft counts.
func (c *Collector) SetSeverityCounts(counts map[models.Severity]int) {
	for _, severity := range []models.Severity{
		models.SeverityOK, models.SeverityWarning, models.SeverityCritical, models.SeverityDeferred,
	} {
		c.fleetSeverity.WithLabelValues(string(severity)).Set(float64(counts[severity]))
	}
}

// SetFleetSummary publishes fleet-wide state counts.
func (c *Collector) SetFleetSummary(summary fleet.Summary) {
	c.fleetState.WithLabelValues(string(models.StateActive)).Set(float64(summary.Active))
	c.fleetState.WithLabelValues(string(models.StateInMaintenance)).Set(float64(summary.InMaintenance))
}

// SetHangarState publishes hangar occupancy gauges.
func (c *Collector) SetHangarState(state models.HangarState) {
	c.hangarOccupied.WithLabelValues("wide_body").Set(float64(state.WideBodyCount))
	c.hangarOccupied.WithLabelValues("narrow_body").Set(float64(state.NarrowBodyCount))
	c.hangarUtilization.Set(state.UtilizationPercent)
}
