// Package scoring implements the detailed lead grading heuristics: a
// per-factor score breakdown with recommendations, plus intent detection
// over engagement signals. Like the engine package, everything here is
// pure computation over caller-owned records.
package scoring

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"crm-insights-engine/internal/models"
)

// FactorCategory groups score factors for display.
type FactorCategory string

const (
	CategoryEngagement    FactorCategory = "engagement"
	CategoryDemographics  FactorCategory = "demographics"
	CategoryFirmographics FactorCategory = "firmographics"
	CategoryBehavior      FactorCategory = "behavior"
	CategoryTiming        FactorCategory = "timing"
)

// ScoreFactor is one contribution to the total lead score.
type ScoreFactor struct {
	Name        string         `json:"name"`
	Points      int            `json:"points"`
	MaxPoints   int            `json:"max_points"`
	Description string         `json:"description"`
	Category    FactorCategory `json:"category"`
}

// ScoreBreakdown is the full grading result for one lead.
type ScoreBreakdown struct {
	TotalScore      int           `json:"total_score"`
	Factors         []ScoreFactor `json:"factors"`
	Recommendations []string      `json:"recommendations"`
	NextBestActions []string      `json:"next_best_actions"`
}

// Temperature classifies a score into engagement bands.
type Temperature string

const (
	TemperatureHot    Temperature = "hot"
	TemperatureWarm   Temperature = "warm"
	TemperatureCold   Temperature = "cold"
	TemperatureFrozen Temperature = "frozen"
)

// Scorer grades leads. The time source is injectable for deterministic
// recency scoring in tests.
type Scorer struct {
	now func() time.Time
}

// NewScorer creates a scorer using the wall clock.
func NewScorer() *Scorer {
	return &Scorer{now: time.Now}
}

// WithClock returns a copy of the scorer using the given time source.
func (s *Scorer) WithClock(now func() time.Time) *Scorer {
	return &Scorer{now: now}
}

var (
	executiveTitle  = regexp.MustCompile(`\b(ceo|chief executive|founder|president|owner)\b`)
	cLevelTitle     = regexp.MustCompile(`\b(cto|cfo|coo|cmo|chief|vp|vice president)\b`)
	directorTitle   = regexp.MustCompile(`\b(director|head of)\b`)
	managerTitle    = regexp.MustCompile(`\b(manager|lead|senior)\b`)
	specialistTitle = regexp.MustCompile(`\b(coordinator|specialist|analyst)\b`)
)

var personalEmailDomains = map[string]bool{
	"gmail.com":   true,
	"yahoo.com":   true,
	"hotmail.com": true,
	"outlook.com": true,
	"aol.com":     true,
	"icloud.com":  true,
}

var companySizePoints = map[string]int{
	"1000+":    15,
	"501-1000": 13,
	"201-500":  11,
	"51-200":   9,
	"11-50":    6,
	"1-10":     3,
}

// CalculateBreakdown grades a lead across seven factors and derives
// recommendations and next-best actions. A nil lead yields an all-zero
// breakdown with the baseline recommendations.
func (s *Scorer) CalculateBreakdown(lead *models.Lead) ScoreBreakdown {
	if lead == nil {
		lead = &models.Lead{}
	}

	factors := []ScoreFactor{
		s.scoreEmailEngagement(lead),
		s.scoreActivityRecency(lead),
		s.scoreCompanySize(lead),
		s.scoreJobTitle(lead),
		s.scoreEngagementDepth(lead),
		s.scoreDataCompleteness(lead),
		s.scoreDemographics(lead),
	}

	total := 0
	for _, f := range factors {
		total += f.Points
	}
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}

	return ScoreBreakdown{
		TotalScore:      total,
		Factors:         factors,
		Recommendations: s.recommendations(total, factors),
		NextBestActions: s.nextBestActions(lead),
	}
}

func (s *Scorer) scoreEmailEngagement(lead *models.Lead) ScoreFactor {
	points := 0
	if lead.EmailOpens > 0 {
		points += min(lead.EmailOpens*2, 10)
	}
	if lead.EmailClicks > 0 {
		points += min(lead.EmailClicks*5, 10)
	}

	return ScoreFactor{
		Name:        "Email Engagement",
		Points:      min(points, 20),
		MaxPoints:   20,
		Description: fmt.Sprintf("%d opens, %d clicks", lead.EmailOpens, lead.EmailClicks),
		Category:    CategoryEngagement,
	}
}

func (s *Scorer) scoreActivityRecency(lead *models.Lead) ScoreFactor {
	points := 0
	description := "No recent activity"

	if lead.LastActivityAt != nil {
		daysSince := s.daysSince(*lead.LastActivityAt)
		switch {
		case daysSince <= 1:
			points = 15
		case daysSince <= 3:
			points = 12
		case daysSince <= 7:
			points = 10
		case daysSince <= 14:
			points = 7
		case daysSince <= 30:
			points = 5
		case daysSince <= 60:
			points = 2
		}
		description = "Last activity: " + timeAgo(*lead.LastActivityAt, s.now())
	}

	return ScoreFactor{
		Name:        "Activity Recency",
		Points:      points,
		MaxPoints:   15,
		Description: description,
		Category:    CategoryTiming,
	}
}

func (s *Scorer) scoreCompanySize(lead *models.Lead) ScoreFactor {
	points := companySizePoints[lead.CompanySize]
	description := lead.CompanySize
	if description == "" {
		description = "Unknown"
	}

	return ScoreFactor{
		Name:        "Company Size",
		Points:      points,
		MaxPoints:   15,
		Description: description,
		Category:    CategoryFirmographics,
	}
}

func (s *Scorer) scoreJobTitle(lead *models.Lead) ScoreFactor {
	if lead.Position == "" {
		return ScoreFactor{
			Name:        "Job Title",
			Points:      0,
			MaxPoints:   20,
			Description: "Not provided",
			Category:    CategoryDemographics,
		}
	}

	title := strings.ToLower(lead.Position)
	var points int
	switch {
	case executiveTitle.MatchString(title):
		points = 20
	case cLevelTitle.MatchString(title):
		points = 18
	case directorTitle.MatchString(title):
		points = 15
	case managerTitle.MatchString(title):
		points = 12
	case specialistTitle.MatchString(title):
		points = 8
	default:
		points = 5
	}

	return ScoreFactor{
		Name:        "Job Title",
		Points:      points,
		MaxPoints:   20,
		Description: lead.Position,
		Category:    CategoryDemographics,
	}
}

func (s *Scorer) scoreEngagementDepth(lead *models.Lead) ScoreFactor {
	points := 0
	if lead.MeetingCount > 0 {
		points += min(lead.MeetingCount*5, 8)
	}
	if lead.CallCount > 0 {
		points += min(lead.CallCount*3, 5)
	}
	if lead.PageViews > 3 {
		points += 2
	}

	return ScoreFactor{
		Name:      "Engagement Depth",
		Points:    min(points, 15),
		MaxPoints: 15,
		Description: fmt.Sprintf("%d meetings, %d calls, %d page views",
			lead.MeetingCount, lead.CallCount, lead.PageViews),
		Category: CategoryBehavior,
	}
}

func (s *Scorer) scoreDataCompleteness(lead *models.Lead) ScoreFactor {
	completed := 0
	const totalFields = 8

	for _, present := range []bool{
		lead.Email != "",
		lead.Phone != "",
		lead.Company != "",
		lead.Position != "",
		lead.Industry != "",
		lead.CompanySize != "",
		lead.Website != "",
		lead.LinkedInURL != "",
	} {
		if present {
			completed++
		}
	}

	points := int(math.Round(float64(completed) / totalFields * 10))

	return ScoreFactor{
		Name:        "Data Completeness",
		Points:      points,
		MaxPoints:   10,
		Description: fmt.Sprintf("%d/%d fields completed", completed, totalFields),
		Category:    CategoryDemographics,
	}
}

func (s *Scorer) scoreDemographics(lead *models.Lead) ScoreFactor {
	points := 0

	if lead.Email != "" && !isPersonalEmail(lead.Email) {
		points += 2
	}

	switch lead.Country {
	case "United States", "Canada", "United Kingdom":
		points++
	}

	switch lead.Industry {
	case "Technology", "Finance", "Healthcare", "Manufacturing":
		points += 2
	}

	return ScoreFactor{
		Name:        "Demographics",
		Points:      min(points, 5),
		MaxPoints:   5,
		Description: "Location and industry alignment",
		Category:    CategoryDemographics,
	}
}

func (s *Scorer) recommendations(total int, factors []ScoreFactor) []string {
	var recommendations []string

	switch {
	case total >= 80:
		recommendations = append(recommendations,
			"Hot lead! Schedule a call immediately",
			"Consider fast-tracking to qualified stage")
	case total >= 60:
		recommendations = append(recommendations,
			"Warm lead - continue nurturing with value content",
			"Schedule a discovery call this week")
	case total >= 40:
		recommendations = append(recommendations,
			"Enroll in email nurture sequence",
			"Research company and personalize outreach")
	default:
		recommendations = append(recommendations,
			"Needs more qualification data",
			"Consider re-engaging with targeted content")
	}

	for _, f := range factors {
		switch f.Name {
		case "Email Engagement":
			if f.Points < 5 {
				recommendations = append(recommendations, "Low email engagement - try different messaging")
			}
		case "Activity Recency":
			if f.Points == 0 {
				recommendations = append(recommendations, "No recent activity - this lead may be cold")
			}
		case "Data Completeness":
			if f.Points < 5 {
				recommendations = append(recommendations, "Incomplete data - enrich lead information")
			}
		}
	}

	return recommendations
}

func (s *Scorer) nextBestActions(lead *models.Lead) []string {
	var actions []string

	if lead.EmailOpens > 2 && lead.EmailClicks > 0 && lead.MeetingCount == 0 {
		actions = append(actions, "Schedule demo or discovery call")
	}
	if lead.MeetingCount > 0 && !lead.Qualified {
		actions = append(actions, "Qualify lead based on BANT criteria")
	}
	if lead.LastActivityAt != nil && s.daysSince(*lead.LastActivityAt) > 14 {
		actions = append(actions, "Re-engage with personalized email")
	}
	if lead.LinkedInURL == "" {
		actions = append(actions, "Research and connect on LinkedIn")
	}
	if lead.EmailOpens == 0 && lead.EmailSentCount > 0 {
		actions = append(actions, "Try different email subject lines")
	}

	if len(actions) == 0 {
		actions = append(actions,
			"Send personalized introduction email",
			"Research company and decision makers")
	}

	if len(actions) > 3 {
		actions = actions[:3]
	}
	return actions
}

func (s *Scorer) daysSince(t time.Time) int {
	return int(s.now().Sub(t).Hours() / 24)
}

func isPersonalEmail(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	return personalEmailDomains[strings.ToLower(email[at+1:])]
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
