// Package models defines the data structures for the CRM insights engine.
package models

import (
	"time"
)

// LeadStage represents the pipeline stage of a lead.
type LeadStage string

const (
	LeadStageNew         LeadStage = "new"
	LeadStageContacted   LeadStage = "contacted"
	LeadStageQualified   LeadStage = "qualified"
	LeadStageProposal    LeadStage = "proposal"
	LeadStageNegotiation LeadStage = "negotiation"
	LeadStageClosedWon   LeadStage = "closed-won"
	LeadStageClosedLost  LeadStage = "closed-lost"
)

// ValidLeadStages returns all valid lead stage values.
func ValidLeadStages() []LeadStage {
	return []LeadStage{
		LeadStageNew,
		LeadStageContacted,
		LeadStageQualified,
		LeadStageProposal,
		LeadStageNegotiation,
		LeadStageClosedWon,
		LeadStageClosedLost,
	}
}

// IsValid checks if the lead stage is a known value.
func (s LeadStage) IsValid() bool {
	for _, valid := range ValidLeadStages() {
		if s == valid {
			return true
		}
	}
	return false
}

// Lead represents a prospective customer record. Fields may be absent in
// caller-supplied data; the engine treats zero values as "unknown" and
// degrades instead of failing.
type Lead struct {
	ID          string     `json:"id"`
	FirstName   string     `json:"first_name,omitempty"`
	LastName    string     `json:"last_name,omitempty"`
	Company     string     `json:"company,omitempty"`
	Position    string     `json:"position,omitempty"`
	Industry    string     `json:"industry,omitempty"`
	Value       float64    `json:"value,omitempty"`
	Stage       LeadStage  `json:"stage,omitempty"`
	Source      string     `json:"source,omitempty"`
	Score       int        `json:"score,omitempty"`
	LastContact *time.Time `json:"last_contact,omitempty"`
	CreatedAt   time.Time  `json:"created_at,omitempty"`

	// Engagement and enrichment fields consumed by the detailed
	// score breakdown and intent detection.
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Website        string     `json:"website,omitempty"`
	LinkedInURL    string     `json:"linkedin_url,omitempty"`
	Country        string     `json:"country,omitempty"`
	CompanySize    string     `json:"company_size,omitempty"`
	EmailSentCount int        `json:"email_sent_count,omitempty"`
	EmailOpens     int        `json:"email_opens_count,omitempty"`
	EmailClicks    int        `json:"email_clicks_count,omitempty"`
	MeetingCount   int        `json:"meeting_count,omitempty"`
	CallCount      int        `json:"call_count,omitempty"`
	PageViews      int        `json:"page_views_count,omitempty"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
	Qualified      bool       `json:"is_qualified,omitempty"`
}

// FullName returns the lead's display name.
func (l *Lead) FullName() string {
	switch {
	case l.FirstName == "":
		return l.LastName
	case l.LastName == "":
		return l.FirstName
	default:
		return l.FirstName + " " + l.LastName
	}
}

// ScoredLead is a Lead annotated with similarity and fit metadata. It is
// produced by the similarity ranking and owned by the caller.
type ScoredLead struct {
	Lead
	SimilarityScore float64 `json:"similarity_score"`
	FitScore        int     `json:"fit_score"`
}
