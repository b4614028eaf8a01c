package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fleetmaint/internal/tasks"
)

// Handler serves the fleet maintenance HTTP API. All fleet data is read from
// the evaluation result cache, so requests never block on the database or on
// an evaluation pass.
type Handler struct {
	cache    *tasks.ResultCache
	registry *prometheus.Registry
}

// NewHandler creates a new HTTP handler backed by the given result cache.
func NewHandler(cache *tasks.ResultCache, registry *prometheus.Registry) *Handler {
	return &Handler{
		cache:    cache,
		registry: registry,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		fleet := api.Group("/fleet")
		{
			fleet.GET("", h.GetFleet)
			fleet.GET("/summary", h.GetFleetSummary)
		}

		api.GET("/hangar", h.GetHangar)

		aircraft := api.Group("/aircraft")
		{
			aircraft.GET("/:tail/status", h.GetAircraftStatus)
			aircraft.GET("/:tail/critical", h.GetAircraftCritical)
		}
	}

	router.GET("/healthz", h.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})))
}

// GetFleet returns the evaluated maintenance state of every aircraft.
func (h *Handler) GetFleet(c *gin.Context) {
	if !h.ensureReady(c) {
		return
	}

	results := h.cache.List()
	c.JSON(http.StatusOK, gin.H{
		"aircraft":   results,
		"count":      len(results),
		"updated_at": h.cache.UpdatedAt(),
	})
}

// GetFleetSummary returns fleet-wide aggregate counts.
func (h *Handler) GetFleetSummary(c *gin.Context) {
	if !h.ensureReady(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":    h.cache.Summary(),
		"updated_at": h.cache.UpdatedAt(),
	})
}

// GetHangar returns current hangar occupancy and capacity.
func (h *Handler) GetHangar(c *gin.Context) {
	if !h.ensureReady(c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"hangar":     h.cache.Hangar(),
		"updated_at": h.cache.UpdatedAt(),
	})
}

// GetAircraftStatus returns the full per-check status map for one aircraft.
func (h *Handler) GetAircraftStatus(c *gin.Context) {
	if !h.ensureReady(c) {
		return
	}

	result, ok := h.cache.Get(c.Param("tail"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aircraft not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"aircraft": result.Aircraft,
		"statuses": result.Statuses,
	})
}

// GetAircraftCritical returns only the most urgent check for one aircraft.
func (h *Handler) GetAircraftCritical(c *gin.Context) {
	if !h.ensureReady(c) {
		return
	}

	result, ok := h.cache.Get(c.Param("tail"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Aircraft not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tail_number": result.Aircraft.TailNumber,
		"check_type":  result.CriticalType,
		"status":      result.Critical,
	})
}

// HealthCheck reports whether the service has completed at least one
// evaluation pass.
func (h *Handler) HealthCheck(c *gin.Context) {
	if !h.cache.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"updated_at": h.cache.UpdatedAt(),
	})
}

// ensureReady rejects data requests with 503 until the first evaluation pass
// has published results.
func (h *Handler) ensureReady(c *gin.Context) bool {
	if !h.cache.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Fleet evaluation not yet complete"})
		return false
	}
	return true
}
