package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"fleetmaint/internal/maintenance"
	"fleetmaint/internal/models"
)

// Config holds all configuration for the service.
type Config struct {
	DBPath             string
	HTTPAddr           string
	EvaluationInterval time.Duration
	FleetSeed          int64
	Log                LogConfig
	Hangar             maintenance.HangarCapacity
	Stochastic         maintenance.StochasticParams
	LimitOverrides     map[models.CheckType]models.CheckLimit
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// Load loads configuration from the config file and environment variables.
// All maintenance constants (check limits, hangar capacities, stochastic
// parameters) are overridable here without code changes to the calculator.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/fleetmaint")
	v.AddConfigPath(".")

	if configPath := os.Getenv("FLEETMAINT_CONFIG_PATH"); configPath != "" {
		v.SetConfigFile(configPath)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is fine - defaults plus env vars apply.
	}

	v.SetEnvPrefix("FLEETMAINT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		DBPath:             v.GetString("db_path"),
		HTTPAddr:           v.GetString("http_addr"),
		EvaluationInterval: time.Duration(v.GetInt("evaluation_interval_minutes")) * time.Minute,
		FleetSeed:          v.GetInt64("fleet.seed"),
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Hangar: maintenance.HangarCapacity{
			WideBody:   v.GetInt("hangar.wide_body"),
			NarrowBody: v.GetInt("hangar.narrow_body"),
			Total:      v.GetInt("hangar.total"),
		},
		Stochastic: maintenance.StochasticParams{
			Probability:              v.GetFloat64("stochastic.probability"),
			MinExtraDays:             v.GetInt("stochastic.min_extra_days"),
			MaxExtraDays:             v.GetInt("stochastic.max_extra_days"),
			Weighted:                 v.GetBool("stochastic.weighted"),
			CorrosionProbability:     v.GetFloat64("stochastic.corrosion_probability"),
			FatigueCrackProbability:  v.GetFloat64("stochastic.fatigue_crack_probability"),
			SystemFailureProbability: v.GetFloat64("stochastic.system_failure_probability"),
		},
		LimitOverrides: limitOverrides(v),
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db_path", "fleetmaint.db")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("evaluation_interval_minutes", 15)
	v.SetDefault("fleet.seed", 42)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	capacity := maintenance.DefaultHangarCapacity()
	v.SetDefault("hangar.wide_body", capacity.WideBody)
	v.SetDefault("hangar.narrow_body", capacity.NarrowBody)
	v.SetDefault("hangar.total", capacity.Total)

	stochastic := maintenance.DefaultStochasticParams()
	v.SetDefault("stochastic.probability", stochastic.Probability)
	v.SetDefault("stochastic.min_extra_days", stochastic.MinExtraDays)
	v.SetDefault("stochastic.max_extra_days", stochastic.MaxExtraDays)
	v.SetDefault("stochastic.weighted", stochastic.Weighted)
	v.SetDefault("stochastic.corrosion_probability", stochastic.CorrosionProbability)
	v.SetDefault("stochastic.fatigue_crack_probability", stochastic.FatigueCrackProbability)
	v.SetDefault("stochastic.system_failure_probability", stochastic.SystemFailureProbability)
}

// limitOverrides reads per-check threshold overrides of the form
// limits.<check>.flight_hour_limit etc. Only keys explicitly present in the
// config override the registry defaults.
func limitOverrides(v *viper.Viper) map[models.CheckType]models.CheckLimit {
	overrides := make(map[models.CheckType]models.CheckLimit)
	for _, ct := range models.CheckTypes {
		prefix := "limits." + strings.ToLower(string(ct))
		if !v.IsSet(prefix) {
			continue
		}
		lim := models.CheckLimit{
			BaseDurationDays: v.GetInt(prefix + ".base_duration_days"),
			Description:      v.GetString(prefix + ".description"),
		}
		if v.IsSet(prefix + ".flight_hour_limit") {
			fh := v.GetFloat64(prefix + ".flight_hour_limit")
			lim.FlightHourLimit = &fh
		}
		if v.IsSet(prefix + ".flight_cycle_limit") {
			fc := v.GetFloat64(prefix + ".flight_cycle_limit")
			lim.FlightCycleLimit = &fc
		}
		if v.IsSet(prefix + ".elapsed_day_limit") {
			days := v.GetInt(prefix + ".elapsed_day_limit")
			lim.ElapsedDayLimit = &days
		}
		overrides[ct] = lim
	}
	return overrides
}

// validate validates the configuration values.
func validate(cfg *Config) error {
	if cfg.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}

	if cfg.HTTPAddr == "" {
		return fmt.Errorf("http_addr is required")
	}

	if cfg.EvaluationInterval <= 0 {
		return fmt.Errorf("evaluation_interval_minutes must be greater than 0")
	}

	if cfg.Stochastic.Probability < 0 || cfg.Stochastic.Probability > 1 {
		return fmt.Errorf("stochastic.probability must be between 0 and 1")
	}

	if cfg.Stochastic.MinExtraDays < 0 || cfg.Stochastic.MaxExtraDays < cfg.Stochastic.MinExtraDays {
		return fmt.Errorf("stochastic extra day bounds are invalid: min=%d max=%d",
			cfg.Stochastic.MinExtraDays, cfg.Stochastic.MaxExtraDays)
	}

	if cfg.Hangar.WideBody <= 0 || cfg.Hangar.NarrowBody <= 0 || cfg.Hangar.Total <= 0 {
		return fmt.Errorf("hangar capacities must be greater than 0")
	}

	if cfg.Hangar.Total < cfg.Hangar.WideBody {
		return fmt.Errorf("hangar.total must be at least hangar.wide_body")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(cfg.Log.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", cfg.Log.Level)
	}

	validLogFormats := map[string]bool{"text": true, "json": true}
	if !validLogFormats[strings.ToLower(cfg.Log.Format)] {
		return fmt.Errorf("invalid log format: %s (must be text or json)", cfg.Log.Format)
	}

	return nil
}
