// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from configs/personas.yaml (if present) with
// CRM_-prefixed environment variable overrides on top of the built-in
// defaults. A missing config file is not an error.
func Load() (*Config, error) {
	// Load .env if it exists (for local development).
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("personas")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../../configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CRM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	cfg := Default()
	setDefaults(v, cfg)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyFallbacks(cfg)

	return cfg, nil
}

// setDefaults registers the built-in defaults so env overrides work even
// without a config file.
func setDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("environment", cfg.Environment)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("engine.high_quality_sources", cfg.Engine.HighQualitySources)
	v.SetDefault("engine.stagnation_days", cfg.Engine.StagnationDays)
	v.SetDefault("engine.similarity_threshold", cfg.Engine.SimilarityThreshold)
	v.SetDefault("engine.fit_score_margin", cfg.Engine.FitScoreMargin)
	v.SetDefault("engine.max_similar_leads", cfg.Engine.MaxSimilarLeads)
	v.SetDefault("engine.default_close_days", cfg.Engine.DefaultCloseDays)
	v.SetDefault("engine.default_win_rate", cfg.Engine.DefaultWinRate)
	v.SetDefault("batch.workers", cfg.Batch.Workers)
}

// applyFallbacks restores defaults for values a config file set to
// something unusable.
func applyFallbacks(cfg *Config) {
	defaults := Default()

	if len(cfg.Engine.Personas) == 0 {
		cfg.Engine.Personas = defaults.Engine.Personas
	}
	if cfg.Engine.StagnationDays <= 0 {
		cfg.Engine.StagnationDays = defaults.Engine.StagnationDays
	}
	if cfg.Engine.SimilarityThreshold <= 0 || cfg.Engine.SimilarityThreshold >= 1 {
		cfg.Engine.SimilarityThreshold = defaults.Engine.SimilarityThreshold
	}
	if cfg.Engine.MaxSimilarLeads <= 0 {
		cfg.Engine.MaxSimilarLeads = defaults.Engine.MaxSimilarLeads
	}
	if cfg.Engine.DefaultCloseDays <= 0 {
		cfg.Engine.DefaultCloseDays = defaults.Engine.DefaultCloseDays
	}
	if cfg.Engine.DefaultWinRate <= 0 || cfg.Engine.DefaultWinRate > 1 {
		cfg.Engine.DefaultWinRate = defaults.Engine.DefaultWinRate
	}
	if cfg.Batch.Workers <= 0 {
		cfg.Batch.Workers = defaults.Batch.Workers
	}
}
