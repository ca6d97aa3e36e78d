package domain

import "time"

// Scope narrows which upstream items are fetched, also serves as the cache key
type Scope struct {
	User       string `json:"user"`
	AllSources bool   `json:"all_sources"`
}

// WorkloadCapacity classifies overall item-set pressure
type WorkloadCapacity string

const (
	CapacityOptimal    WorkloadCapacity = "optimal"
	CapacityModerate   WorkloadCapacity = "moderate"
	CapacityHigh       WorkloadCapacity = "high"
	CapacityOverloaded WorkloadCapacity = "overloaded"
)

// SourceCounts holds lightweight per-source fetch counters, informational only,
// the aggregator recomputes real statistics from the items themselves
type SourceCounts struct {
	Total      int `json:"total"`
	Recent     int `json:"recent"`
	Overdue    int `json:"overdue,omitempty"`
	Unanswered int `json:"unanswered,omitempty"`
}

// TaskData is the tracker slice of a fetch result
type TaskData struct {
	Items   []RawTask    `json:"items"`
	Counts  SourceCounts `json:"counts"`
	Error   string       `json:"error,omitempty"`
	Skipped string       `json:"skipped,omitempty"`
}

// DocumentData is the knowledge-base slice of a fetch result
type DocumentData struct {
	Items  []RawPage    `json:"items"`
	Counts SourceCounts `json:"counts"`
	Error  string       `json:"error,omitempty"`
}

// MessageData is the inbox slice of a fetch result
type MessageData struct {
	Items  []RawMessage `json:"items"`
	Counts SourceCounts `json:"counts"`
	Error  string       `json:"error,omitempty"`
}

// AllData bundles the three per-source payloads of one fetch
type AllData struct {
	Tasks     TaskData     `json:"tasks"`
	Documents DocumentData `json:"documents"`
	Messages  MessageData  `json:"messages"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// Summary holds cross-item statistics computed over the final report item set
type Summary struct {
	Total            int                  `json:"total"`
	ByUrgency        map[UrgencyLevel]int `json:"by_urgency"`
	BySource         map[Source]int       `json:"by_source"`
	OverdueCount     int                  `json:"overdue_count"`
	AverageScore     float64              `json:"average_score"`
	WorkloadCapacity WorkloadCapacity     `json:"workload_capacity"`
	TopItems         []string             `json:"top_items"`
	GeneratedAt      time.Time            `json:"generated_at"`
}

// Report is the ranked, summarized output of the aggregation pipeline
type Report struct {
	Items    []ScoredItem      `json:"items"`
	Summary  Summary           `json:"summary"`
	Metadata map[string]string `json:"metadata"`
}

// RecommendationSeverity orders recommendations by importance
type RecommendationSeverity string

const (
	SeverityCritical   RecommendationSeverity = "critical"
	SeverityWarning    RecommendationSeverity = "warning"
	SeveritySuggestion RecommendationSeverity = "suggestion"
	SeverityInfo       RecommendationSeverity = "info"
)

// Recommendation is an actionable suggestion derived from a report summary
type Recommendation struct {
	Severity RecommendationSeverity `json:"severity"`
	Message  string                 `json:"message"`
}

// ReportSnapshot is a compact record of a generated report kept for trend history
type ReportSnapshot struct {
	ID           int64            `json:"id" db:"id"`
	GeneratedAt  time.Time        `json:"generated_at" db:"generated_at"`
	Scope        string           `json:"scope" db:"scope"`
	TotalItems   int              `json:"total_items" db:"total_items"`
	UrgentCount  int              `json:"urgent_count" db:"urgent_count"`
	OverdueCount int              `json:"overdue_count" db:"overdue_count"`
	AverageScore float64          `json:"average_score" db:"average_score"`
	Capacity     WorkloadCapacity `json:"capacity" db:"capacity"`
}
