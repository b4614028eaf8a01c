package tasks

import (
	"sync"
	"time"

	"fleetmaint/internal/fleet"
	"fleetmaint/internal/models"
)

// EvaluationResult is the computed maintenance picture for one aircraft.
type EvaluationResult struct {
	Aircraft     models.AircraftSnapshot                       `json:"aircraft"`
	Statuses     map[models.CheckType]models.MaintenanceStatus `json:"statuses"`
	CriticalType models.CheckType                              `json:"critical_type"`
	Critical     models.MaintenanceStatus                      `json:"critical"`
}

// ResultCache holds the latest full-fleet evaluation for the HTTP layer.
// The evaluator replaces the whole snapshot atomically; readers never see a
// partially updated fleet.
type ResultCache struct {
	mu        sync.RWMutex
	results   map[string]EvaluationResult
	order     []string
	hangar    models.HangarState
	summary   fleet.Summary
	updatedAt time.Time
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{results: make(map[string]EvaluationResult)}
}

// Update replaces the cached evaluation snapshot.
func (c *ResultCache) Update(results []EvaluationResult, hangar models.HangarState, summary fleet.Summary, at time.Time) {
	byTail := make(map[string]EvaluationResult, len(results))
	order := make([]string, 0, len(results))
	for _, r := range results {
		byTail[r.Aircraft.TailNumber] = r
		order = append(order, r.Aircraft.TailNumber)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.results = byTail
	c.order = order
	c.hangar = hangar
	c.summary = summary
	c.updatedAt = at
}

// List returns all cached results in fleet order.
func (c *ResultCache) List() []EvaluationResult {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]EvaluationResult, 0, len(c.order))
	for _, tail := range c.order {
		out = append(out, c.results[tail])
	}
	return out
}

// Get returns the cached result for one tail number.
func (c *ResultCache) Get(tailNumber string) (EvaluationResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.results[tailNumber]
	return r, ok
}

// Hangar returns the cached hangar state.
func (c *ResultCache) Hangar() models.HangarState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.hangar
}

// Summary returns the cached fleet summary.
func (c *ResultCache) Summary() fleet.Summary {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.summary
}

// UpdatedAt returns the time of the last completed evaluation pass, zero if
// none has completed yet.
func (c *ResultCache) UpdatedAt() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.updatedAt
}

// Ready reports whether at least one evaluation pass has completed.
func (c *ResultCache) Ready() bool {
	return !c.UpdatedAt().IsZero()
}
