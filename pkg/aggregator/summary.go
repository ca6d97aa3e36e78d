package aggregator

import (
	"fmt"

	"priofeed/pkg/domain"
)

// summarize computes statistics over the final item set
func (a *Aggregator) summarize(items []domain.ScoredItem) domain.Summary {
	summary := domain.Summary{
		Total:       len(items),
		ByUrgency:   make(map[domain.UrgencyLevel]int),
		BySource:    make(map[domain.Source]int),
		GeneratedAt: a.nowFn(),
	}

	total := 0
	for _, item := range items {
		summary.ByUrgency[item.UrgencyLevel]++
		summary.BySource[item.Source]++
		if item.DaysOverdue > 0 {
			summary.OverdueCount++
		}
		total += item.PriorityScore
	}
	if len(items) > 0 {
		summary.AverageScore = float64(total) / float64(len(items))
	}

	for _, item := range topSlice(items, a.topPreview) {
		summary.TopItems = append(summary.TopItems, fmt.Sprintf("%s (%d)", item.Title, item.PriorityScore))
	}

	summary.WorkloadCapacity = classifyCapacity(summary.ByUrgency[domain.UrgencyUrgent], summary.AverageScore)
	return summary
}

// classifyCapacity turns urgent-item pressure and average score into a coarse
// workload classification
func classifyCapacity(urgentCount int, averageScore float64) domain.WorkloadCapacity {
	switch {
	case urgentCount > 5 || averageScore > 70:
		return domain.CapacityOverloaded
	case urgentCount > 2 || averageScore > 50:
		return domain.CapacityHigh
	case urgentCount > 0 || averageScore > 30:
		return domain.CapacityModerate
	default:
		return domain.CapacityOptimal
	}
}
