package aggregator

import (
	"fmt"

	"priofeed/pkg/domain"
)

// Greeting formats a time-of-day salutation with a tone matching the current
// workload capacity. Pure presentation, carries no business logic.
func (a *Aggregator) Greeting(scope domain.Scope, summary domain.Summary) string {
	var salutation string
	switch hour := a.nowFn().Hour(); {
	case hour < 12:
		salutation = "Good morning"
	case hour < 17:
		salutation = "Good afternoon"
	default:
		salutation = "Good evening"
	}
	if scope.User != "" {
		salutation = fmt.Sprintf("%s, %s", salutation, scope.User)
	}

	var tone string
	switch summary.WorkloadCapacity {
	case domain.CapacityOverloaded:
		tone = "Your plate is full - let's prioritize what matters most."
	case domain.CapacityHigh:
		tone = "Busy day ahead - tackle the urgent items first."
	case domain.CapacityModerate:
		tone = "A steady workload today."
	default:
		tone = "You're in great shape - nice work staying on top of things."
	}

	return salutation + ". " + tone
}

// Recommendations derives actionable suggestions from a report summary. Rules
// are independent and may co-occur, no rule suppresses another.
func (a *Aggregator) Recommendations(summary domain.Summary) []domain.Recommendation {
	var recs []domain.Recommendation

	if urgent := summary.ByUrgency[domain.UrgencyUrgent]; urgent > 5 {
		recs = append(recs, domain.Recommendation{
			Severity: domain.SeverityCritical,
			Message:  fmt.Sprintf("You have %d urgent items - consider delegating some of them.", urgent),
		})
	}
	if summary.OverdueCount > 3 {
		recs = append(recs, domain.Recommendation{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("%d items are overdue - address those before taking on new work.", summary.OverdueCount),
		})
	}
	if summary.WorkloadCapacity == domain.CapacityOverloaded {
		recs = append(recs, domain.Recommendation{
			Severity: domain.SeveritySuggestion,
			Message:  "Workload is over capacity - block focus time and defer what can wait.",
		})
	}
	if summary.Total == 0 {
		recs = append(recs, domain.Recommendation{
			Severity: domain.SeverityInfo,
			Message:  "All clear - nothing needs your attention right now.",
		})
	}

	return recs
}
