package scoring

import (
	"crm-insights-engine/internal/models"
)

// IntentSignal is the result of scanning a lead's engagement history for
// buying intent.
type IntentSignal struct {
	HasIntent  bool     `json:"has_intent"`
	Signals    []string `json:"signals"`
	Confidence float64  `json:"confidence"`
}

// DetectIntent accumulates confidence from engagement signals. Intent is
// declared at confidence >= 0.5; confidence is clamped to 1.
func (s *Scorer) DetectIntent(lead *models.Lead) IntentSignal {
	if lead == nil {
		return IntentSignal{Signals: []string{}}
	}

	signals := make([]string, 0, 4)
	confidence := 0.0

	if lead.PageViews > 5 {
		signals = append(signals, "High page view count")
		confidence += 0.2
	}
	if lead.EmailClicks > 3 {
		signals = append(signals, "Multiple email clicks")
		confidence += 0.25
	}
	if lead.MeetingCount > 0 {
		signals = append(signals, "Attended meetings")
		confidence += 0.3
	}
	if lead.LastActivityAt != nil && s.daysSince(*lead.LastActivityAt) <= 3 {
		signals = append(signals, "Recent engagement")
		confidence += 0.25
	}

	if confidence > 1 {
		confidence = 1
	}

	return IntentSignal{
		HasIntent:  confidence >= 0.5,
		Signals:    signals,
		Confidence: confidence,
	}
}

// BuyingSignals lists the concrete behaviors that indicate purchase
// interest.
func BuyingSignals(lead *models.Lead) []string {
	signals := make([]string, 0, 4)
	if lead == nil {
		return signals
	}

	if lead.EmailClicks > 2 {
		signals = append(signals, "Clicked pricing page")
	}
	if lead.PageViews > 5 {
		signals = append(signals, "Visited website multiple times")
	}
	if lead.MeetingCount > 0 {
		signals = append(signals, "Attended product demo")
	}
	if lead.CallCount > 1 {
		signals = append(signals, "Multiple conversations")
	}
	return signals
}
