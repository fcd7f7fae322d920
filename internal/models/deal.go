// Package models defines the data structures for the CRM insights engine.
package models

import (
	"time"
)

// DealStage represents the pipeline stage of a deal.
type DealStage string

const (
	DealStageProspecting   DealStage = "prospecting"
	DealStageQualification DealStage = "qualification"
	DealStageProposal      DealStage = "proposal"
	DealStageNegotiation   DealStage = "negotiation"
	DealStageClosedWon     DealStage = "closed-won"
	DealStageClosedLost    DealStage = "closed-lost"
)

// IsClosed reports whether the deal stage is a terminal one.
func (s DealStage) IsClosed() bool {
	return s == DealStageClosedWon || s == DealStageClosedLost
}

// IsWon reports whether the deal closed successfully.
func (s DealStage) IsWon() bool {
	return s == DealStageClosedWon
}

// IsLost reports whether the deal closed unsuccessfully.
func (s DealStage) IsLost() bool {
	return s == DealStageClosedLost
}

// Deal represents an in-progress or closed opportunity. The engine only
// reads deals, never mutates them.
type Deal struct {
	ID                string     `json:"id"`
	Title             string     `json:"title,omitempty"`
	Value             float64    `json:"value,omitempty"`
	Probability       int        `json:"probability,omitempty"`
	Stage             DealStage  `json:"stage,omitempty"`
	CreatedAt         time.Time  `json:"created_at,omitempty"`
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
}

// Age returns how long the deal has been open, in fractional days.
func (d *Deal) Age(now time.Time) float64 {
	if d.CreatedAt.IsZero() {
		return 0
	}
	return now.Sub(d.CreatedAt).Hours() / 24
}

// DealPrediction is the outcome estimate for a single deal.
//
// WinRate is the historical win rate observed while computing the
// prediction. It is reported for context only and is not folded into
// Probability; Probability derives solely from the deal's stated
// probability and the stagnation penalty.
type DealPrediction struct {
	Probability     int      `json:"probability"`
	TimeToCloseDays float64  `json:"time_to_close_days"`
	WinRate         float64  `json:"win_rate"`
	Recommendations []string `json:"recommendations"`
}
