// Package engine implements the lead scoring, similarity ranking,
// recommendation, and deal outcome prediction heuristics.
//
// Every operation is a pure function over caller-owned records: no shared
// mutable state, no I/O, no panics. Identical inputs always yield identical
// outputs, and all produced scores are clamped to their documented ranges
// regardless of input magnitude.
package engine

import (
	"time"

	"crm-insights-engine/internal/config"
)

// Engine evaluates CRM records against a persona catalog and a set of
// configured thresholds. It holds no mutable state and is safe for
// concurrent use.
type Engine struct {
	catalog             *Catalog
	highQualitySources  []string
	stagnationDays      float64
	similarityThreshold float64
	fitScoreMargin      int
	maxSimilarLeads     int
	defaultCloseDays    float64
	defaultWinRate      float64

	// now is injectable so age-based heuristics are testable.
	now func() time.Time
}

// New creates an engine from the given configuration.
func New(cfg config.EngineConfig) *Engine {
	return &Engine{
		catalog:             NewCatalog(cfg.Personas),
		highQualitySources:  cfg.HighQualitySources,
		stagnationDays:      cfg.StagnationDays,
		similarityThreshold: cfg.SimilarityThreshold,
		fitScoreMargin:      cfg.FitScoreMargin,
		maxSimilarLeads:     cfg.MaxSimilarLeads,
		defaultCloseDays:    cfg.DefaultCloseDays,
		defaultWinRate:      cfg.DefaultWinRate,
		now:                 time.Now,
	}
}

// WithClock returns a copy of the engine using the given time source.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	clone := *e
	clone.now = now
	return &clone
}

// Catalog returns the engine's persona catalog.
func (e *Engine) Catalog() *Catalog {
	return e.catalog
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
