package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"fleetmaint/internal/config"
	"fleetmaint/internal/database"
	"fleetmaint/internal/fleet"
	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/metrics"
	"fleetmaint/internal/scheduler"
	"fleetmaint/internal/server"
	"fleetmaint/internal/tasks"
)

// Daemon wires the database, the periodic fleet evaluator and the HTTP API
// together and manages their lifecycle.
type Daemon struct {
	ctx        context.Context
	cancel     context.CancelFunc
	scheduler  *scheduler.Scheduler
	database   *database.DB
	httpServer *http.Server
	done       chan struct{}
}

// New creates a daemon instance from loaded configuration. The aircraft table
// is seeded with a generated fleet when empty, so a fresh database serves
// data on first start.
func New(cfg *config.Config) (*Daemon, error) {
	ctx, cancel := context.WithCancel(context.Background())

	db, err := database.New(cfg.DBPath)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	repo := db.Fleet()
	if err := seedFleetIfEmpty(repo, cfg.FleetSeed); err != nil {
		db.Close()
		cancel()
		return nil, err
	}

	calc := maintenance.NewCalculator(
		maintenance.NewLimitRegistryWith(cfg.LimitOverrides),
		maintenance.NewFindingGenerator(cfg.Stochastic),
	)

	registry := prometheus.NewRegistry()
	collector := metrics.New(registry)

	cache := tasks.NewResultCache()
	evaluator := tasks.NewEvaluator(repo, calc, cfg.Hangar, cache, collector, cfg.EvaluationInterval)

	sched := scheduler.New(ctx)
	sched.AddTask(evaluator)

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	server.NewHandler(cache, registry).RegisterRoutes(router)

	return &Daemon{
		ctx:       ctx,
		cancel:    cancel,
		scheduler: sched,
		database:  db,
		httpServer: &http.Server{
			Addr:    cfg.HTTPAddr,
			Handler: router,
		},
		done: make(chan struct{}),
	}, nil
}

// seedFleetIfEmpty generates and stores a deterministic fleet when the
// aircraft table holds no rows.
func seedFleetIfEmpty(repo database.FleetRepository, seed int64) error {
	count, err := repo.Count()
	if err != nil {
		return fmt.Errorf("failed to check aircraft table: %w", err)
	}
	if count > 0 {
		slog.Info("Aircraft table is already populated", "count", count)
		return nil
	}

	referenceDate := time.Now().UTC().Truncate(24 * time.Hour)
	generated := fleet.New(seed).Generate(referenceDate)
	if err := repo.Replace(generated); err != nil {
		return fmt.Errorf("failed to seed fleet: %w", err)
	}

	slog.Info("Seeded aircraft table with generated fleet", "count", len(generated), "seed", seed)
	return nil
}

// Start launches the evaluation scheduler and the HTTP server.
func (d *Daemon) Start() error {
	slog.Info("Starting daemon")

	d.scheduler.Start()

	go func() {
		slog.Info("HTTP server listening", "addr", d.httpServer.Addr)
		if err := d.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("HTTP server stopped", "error", err)
			d.cancel()
		}
	}()

	go func() {
		<-d.ctx.Done()
		close(d.done)
	}()

	slog.Info("Daemon started successfully")
	return nil
}

// Done is closed when the daemon's context is cancelled, either by Stop or
// by an internal failure.
func (d *Daemon) Done() <-chan struct{} {
	return d.done
}

// Stop gracefully stops the daemon.
func (d *Daemon) Stop() error {
	slog.Info("Stopping daemon")
	d.cancel()
	<-d.done

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := d.httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
	}

	d.scheduler.Stop()

	if err := d.database.Close(); err != nil {
		slog.Error("Error closing database", "error", err)
	}

	slog.Info("Daemon stopped")
	return nil
}
