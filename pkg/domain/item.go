package domain

import "time"

// Source identifies which upstream system an item came from
type Source string

const (
	SourceTask     Source = "task"
	SourceDocument Source = "document"
	SourceMessage  Source = "message"
)

// UrgencyLevel buckets a priority score into a coarse urgency class
type UrgencyLevel string

const (
	UrgencyUrgent UrgencyLevel = "urgent"
	UrgencyHigh   UrgencyLevel = "high"
	UrgencyMedium UrgencyLevel = "medium"
	UrgencyLow    UrgencyLevel = "low"
)

// rank returns the ordering position of the urgency level, low to urgent
func (u UrgencyLevel) rank() int {
	switch u {
	case UrgencyUrgent:
		return 3
	case UrgencyHigh:
		return 2
	case UrgencyMedium:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether u is the same or more urgent than other
func (u UrgencyLevel) AtLeast(other UrgencyLevel) bool {
	return u.rank() >= other.rank()
}

// ScoredItem is the normalized, scored unit produced by the aggregation pipeline
type ScoredItem struct {
	ID            string            `json:"id"`
	Source        Source            `json:"source"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	PriorityScore int               `json:"priority_score"`
	UrgencyLevel  UrgencyLevel      `json:"urgency_level"`
	DueDate       *time.Time        `json:"due_date,omitempty"`
	DaysOverdue   int               `json:"days_overdue"`
	URL           string            `json:"url"`
	Metadata      map[string]string `json:"metadata"`
}
