package scoring

import (
	"fmt"
	"time"

	"crm-insights-engine/internal/models"
)

// Priority classifies how urgently a lead should be worked.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TemperatureFor maps a 0-100 score to an engagement temperature.
func TemperatureFor(score int) Temperature {
	switch {
	case score >= 80:
		return TemperatureHot
	case score >= 60:
		return TemperatureWarm
	case score >= 40:
		return TemperatureCold
	default:
		return TemperatureFrozen
	}
}

// GradeFor maps a 0-100 score to a letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// PriorityFor derives a working priority from score and temperature.
func PriorityFor(score int, temperature Temperature) Priority {
	switch {
	case score >= 85 && temperature == TemperatureHot:
		return PriorityUrgent
	case score >= 70:
		return PriorityHigh
	case score >= 50:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ShouldAutoQualify reports whether a lead has enough signal to skip
// manual qualification.
func ShouldAutoQualify(lead *models.Lead, score int) bool {
	if lead == nil {
		return false
	}
	return score >= 75 &&
		lead.MeetingCount > 0 &&
		lead.EmailClicks > 2 &&
		lead.Company != "" &&
		lead.Position != ""
}

// FollowUpTiming suggests when to next touch the lead.
func (s *Scorer) FollowUpTiming(lead *models.Lead, score int) string {
	lastActivityDays := 999
	if lead != nil && lead.LastActivityAt != nil {
		lastActivityDays = s.daysSince(*lead.LastActivityAt)
	}

	switch {
	case score >= 80:
		return "Within 24 hours"
	case score >= 60:
		if lastActivityDays > 7 {
			return "Within 2-3 days"
		}
		return "Within 3-5 days"
	case score >= 40:
		return "Within 1-2 weeks"
	default:
		return "Monthly check-in"
	}
}

// timeAgo renders a timestamp as a coarse human-readable age.
func timeAgo(t, now time.Time) string {
	seconds := int(now.Sub(t).Seconds())

	for _, unit := range []struct {
		seconds int
		name    string
	}{
		{31536000, "year"},
		{2592000, "month"},
		{86400, "day"},
		{3600, "hour"},
		{60, "minute"},
	} {
		if interval := seconds / unit.seconds; interval >= 1 {
			if interval > 1 {
				return fmt.Sprintf("%d %ss ago", interval, unit.name)
			}
			return fmt.Sprintf("1 %s ago", unit.name)
		}
	}
	return "Just now"
}
