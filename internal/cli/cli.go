// Package cli provides the fleetmaint command line interface.
//
// Command structure:
//
//	fleetmaint                      # Root command
//	├── serve                       # Run the evaluation daemon with HTTP API
//	├── generate                    # Seed the database with a generated fleet
//	│   └── --seed                  # RNG seed for the generated fleet
//	├── export                      # Write fleet and maintenance CSV files
//	│   └── --out, -o               # Output directory
//	├── report                      # Print the status report for one aircraft
//	└── --config, -c                # Config file path (all commands)
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"fleetmaint/internal/config"
	"fleetmaint/internal/daemon"
	"fleetmaint/internal/database"
	"fleetmaint/internal/export"
	"fleetmaint/internal/fleet"
	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/models"
	"fleetmaint/internal/report"
	"fleetmaint/internal/tasks"
)

var configFile string

// BuildCLI assembles the root command and its subcommands.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fleetmaint",
		Short: "Fleetmaint: aircraft maintenance planning and tracking",
		Long: `Fleetmaint evaluates A/B/C/D check status for a whole fleet:
- flight-hour, flight-cycle and calendar based check thresholds
- stochastic non-routine finding simulation
- hangar capacity aware maintenance deferral
- HTTP API with Prometheus metrics`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path")

	rootCmd.AddCommand(buildServeCommand())
	rootCmd.AddCommand(buildGenerateCommand())
	rootCmd.AddCommand(buildExportCommand())
	rootCmd.AddCommand(buildReportCommand())

	return rootCmd
}

// loadConfig loads configuration, honoring the persistent --config flag.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		os.Setenv("FLEETMAINT_CONFIG_PATH", configFile)
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func initLogger(cfg *config.Config) {
	var logLevel slog.Level
	switch cfg.Log.Level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: logLevel,
	}

	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(handler))
}

func buildServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the fleet evaluation daemon",
		Long:  "Start the periodic fleet evaluator and serve the HTTP API until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initLogger(cfg)

	d, err := daemon.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create daemon: %w", err)
	}

	if err := d.Start(); err != nil {
		return fmt.Errorf("failed to start daemon: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-sigChan:
		slog.Info("Received interrupt signal, shutting down...")
	case <-d.Done():
		slog.Info("Daemon stopped on its own, shutting down...")
	}

	return d.Stop()
}

func buildGenerateCommand() *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Seed the database with a generated fleet",
		Long:  "Generate a deterministic fleet from the given seed and replace the aircraft table with it",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.Flags().Changed("seed"), seed)
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "RNG seed for the generated fleet (defaults to fleet.seed from config)")

	return cmd
}

func runGenerate(seedSet bool, seed int64) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initLogger(cfg)

	if !seedSet {
		seed = cfg.FleetSeed
	}

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	referenceDate := time.Now().UTC().Truncate(24 * time.Hour)
	generated := fleet.New(seed).Generate(referenceDate)
	if err := db.Fleet().Replace(generated); err != nil {
		return fmt.Errorf("failed to store fleet: %w", err)
	}

	slog.Info("Fleet generated", "count", len(generated), "seed", seed, "db_path", cfg.DBPath)
	return nil
}

func buildExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export fleet and maintenance data as CSV",
		Long:  "Evaluate the stored fleet and write fleet.csv and maintenance.csv to the output directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(outDir)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for CSV files")

	return cmd
}

func runExport(outDir string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initLogger(cfg)

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	snapshots, err := db.Fleet().List()
	if err != nil {
		return fmt.Errorf("failed to load fleet: %w", err)
	}
	if len(snapshots) == 0 {
		return fmt.Errorf("aircraft table is empty, run 'fleetmaint generate' first")
	}

	results, err := evaluateAll(cfg, snapshots)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fleetPath := filepath.Join(outDir, "fleet.csv")
	if err := writeCSV(fleetPath, results, export.WriteFleetCSV); err != nil {
		return err
	}

	maintPath := filepath.Join(outDir, "maintenance.csv")
	if err := writeCSV(maintPath, results, export.WriteMaintenanceCSV); err != nil {
		return err
	}

	slog.Info("Export complete", "aircraft", len(results), "fleet_csv", fleetPath, "maintenance_csv", maintPath)
	return nil
}

func writeCSV(path string, results []tasks.EvaluationResult, write func(w io.Writer, results []tasks.EvaluationResult) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f, results); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func buildReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report <tail-number>",
		Short: "Print the maintenance status report for one aircraft",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0])
		},
	}
}

func runReport(tailNumber string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	initLogger(cfg)

	db, err := database.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	snapshots, err := db.Fleet().List()
	if err != nil {
		return fmt.Errorf("failed to load fleet: %w", err)
	}

	results, err := evaluateAll(cfg, snapshots)
	if err != nil {
		return err
	}

	for _, res := range results {
		if res.Aircraft.TailNumber == tailNumber {
			fmt.Print(report.Generate(res))
			return nil
		}
	}

	return fmt.Errorf("aircraft %q not found", tailNumber)
}

// evaluateAll runs one full-fleet evaluation for the one-shot commands,
// mirroring what the daemon's periodic task does.
func evaluateAll(cfg *config.Config, snapshots []models.AircraftSnapshot) ([]tasks.EvaluationResult, error) {
	calc := maintenance.NewCalculator(
		maintenance.NewLimitRegistryWith(cfg.LimitOverrides),
		maintenance.NewFindingGenerator(cfg.Stochastic),
	)
	hangar := maintenance.ComputeHangarState(snapshots, cfg.Hangar)
	referenceDate := time.Now().UTC().Truncate(24 * time.Hour)

	results := make([]tasks.EvaluationResult, 0, len(snapshots))
	for _, ac := range snapshots {
		statuses, err := calc.Evaluate(ac, &hangar, true, referenceDate)
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate %s: %w", ac.TailNumber, err)
		}
		criticalType, critical, ok := maintenance.MostCritical(statuses)
		if !ok {
			continue
		}
		results = append(results, tasks.EvaluationResult{
			Aircraft:     ac,
			Statuses:     statuses,
			CriticalType: criticalType,
			Critical:     critical,
		})
	}
	return results, nil
}
