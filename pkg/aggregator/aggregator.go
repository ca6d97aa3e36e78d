// Package aggregator turns per-source raw items into a single ranked,
// summarized priority report. It orchestrates the fetcher and the scoring
// engine, suppresses low-signal noise, and derives workload classification
// and actionable recommendations.
package aggregator

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"priofeed/pkg/domain"
	"priofeed/pkg/scoring"
)

// DataFetcher provides cached multi-source fetches
type DataFetcher interface {
	FetchAll(ctx context.Context, scope domain.Scope) *domain.AllData
	ClearCache()
}

// Scorer maps raw items to priority scores with reasoning
type Scorer interface {
	ScoreTask(t domain.RawTask) (score int, reasoning string)
	ScoreDocument(p domain.RawPage) (score int, reasoning string)
	ScoreMessage(m domain.RawMessage) (score int, reasoning string)
	UpdateWeights(partial scoring.Weights)
	DaysOverdue(due *time.Time) int
}

// HistoryStore persists compact report snapshots for trend views
type HistoryStore interface {
	Save(ctx context.Context, snapshot domain.ReportSnapshot) error
}

// DigestGenerator produces a natural-language briefing over top items
type DigestGenerator interface {
	Briefing(ctx context.Context, items []domain.ScoredItem) (string, error)
}

// noise suppression thresholds: low-scoring documents and messages are
// dropped before inclusion, tasks always survive
const (
	documentNoiseThreshold = 20
	messageNoiseThreshold  = 15
)

const (
	descriptionLimit  = 200
	defaultMinScore   = 20
	defaultMaxItems   = 50
	defaultTopPreview = 3
)

// ErrNotInitialized is returned by administrative operations invoked before
// the aggregator has its scoring engine wired
var ErrNotInitialized = errors.New("scoring engine not initialized")

// Options tune the final filter and slice over the sorted item list. These
// are separate from the per-source noise thresholds: a zero MinScore means
// no final score filter at all.
type Options struct {
	MinScore int
	MaxItems int
}

// DefaultOptions returns the standard report options
func DefaultOptions() Options {
	return Options{MinScore: defaultMinScore, MaxItems: defaultMaxItems}
}

// Aggregator owns the fetcher's cache and the scoring weights for its
// lifetime. History and digest are optional, a nil value disables the feature.
type Aggregator struct {
	fetcher    DataFetcher
	scorer     Scorer
	history    HistoryStore
	digest     DigestGenerator
	sanitizer  *bluemonday.Policy
	topPreview int
	nowFn      func() time.Time
}

// Config holds aggregator construction parameters
type Config struct {
	Fetcher    DataFetcher
	Scorer     Scorer
	History    HistoryStore
	Digest     DigestGenerator
	TopPreview int
	Now        func() time.Time
}

// New creates an aggregator
func New(cfg Config) *Aggregator {
	topPreview := cfg.TopPreview
	if topPreview == 0 {
		topPreview = defaultTopPreview
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Aggregator{
		fetcher:    cfg.Fetcher,
		scorer:     cfg.Scorer,
		history:    cfg.History,
		digest:     cfg.Digest,
		sanitizer:  bluemonday.StrictPolicy(),
		topPreview: topPreview,
		nowFn:      nowFn,
	}
}

// GenerateReport produces the ranked priority report for a scope. Provider
// failures degrade to per-source error annotations in the report metadata,
// the report itself always succeeds.
func (a *Aggregator) GenerateReport(ctx context.Context, scope domain.Scope, opts Options) (*domain.Report, error) {
	if a.scorer == nil {
		return nil, ErrNotInitialized
	}

	data := a.fetcher.FetchAll(ctx, scope)
	items := a.scoreAll(data)

	// stable sort keeps original fetch order among equal scores
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PriorityScore > items[j].PriorityScore
	})

	if opts.MinScore > 0 {
		filtered := items[:0]
		for _, item := range items {
			if item.PriorityScore >= opts.MinScore {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	summary := a.summarize(items)

	if opts.MaxItems > 0 && len(items) > opts.MaxItems {
		items = items[:opts.MaxItems]
	}

	report := &domain.Report{
		Items:    items,
		Summary:  summary,
		Metadata: a.reportMetadata(scope, data),
	}

	if a.digest != nil && len(items) > 0 {
		briefing, err := a.digest.Briefing(ctx, topSlice(items, a.topPreview))
		if err != nil {
			log.Printf("[WARN] briefing generation failed: %v", err)
		} else {
			report.Metadata["digest"] = briefing
		}
	}

	a.saveSnapshot(ctx, scope, summary)

	return report, nil
}

// GetUrgentOnly runs the same pipeline filtered to the requested urgency
// buckets, urgent and high by default
func (a *Aggregator) GetUrgentOnly(ctx context.Context, scope domain.Scope, levels []domain.UrgencyLevel) (*domain.Report, error) {
	if len(levels) == 0 {
		levels = []domain.UrgencyLevel{domain.UrgencyUrgent, domain.UrgencyHigh}
	}

	report, err := a.GenerateReport(ctx, scope, Options{})
	if err != nil {
		return nil, err
	}

	wanted := make(map[domain.UrgencyLevel]bool, len(levels))
	for _, l := range levels {
		wanted[l] = true
	}

	filtered := make([]domain.ScoredItem, 0, len(report.Items))
	for _, item := range report.Items {
		if wanted[item.UrgencyLevel] {
			filtered = append(filtered, item)
		}
	}

	report.Items = filtered
	report.Summary = a.summarize(filtered)
	return report, nil
}

// UpdateScoringConfig shallow-merges partial weights into the live scoring
// configuration
func (a *Aggregator) UpdateScoringConfig(partial scoring.Weights) error {
	if a.scorer == nil {
		return ErrNotInitialized
	}
	if len(partial) == 0 {
		return fmt.Errorf("no weights provided")
	}
	a.scorer.UpdateWeights(partial)
	return nil
}

// ClearCache empties the fetcher's cache
func (a *Aggregator) ClearCache() {
	a.fetcher.ClearCache()
}

// scoreAll normalizes and scores every raw item across the three sources,
// applying per-source noise suppression
func (a *Aggregator) scoreAll(data *domain.AllData) []domain.ScoredItem {
	items := make([]domain.ScoredItem, 0,
		len(data.Tasks.Items)+len(data.Documents.Items)+len(data.Messages.Items))

	for _, t := range data.Tasks.Items {
		items = append(items, a.taskItem(t))
	}
	for _, p := range data.Documents.Items {
		item := a.documentItem(p)
		if item.PriorityScore <= documentNoiseThreshold {
			continue
		}
		items = append(items, item)
	}
	for _, m := range data.Messages.Items {
		item := a.messageItem(m)
		if item.PriorityScore <= messageNoiseThreshold {
			continue
		}
		items = append(items, item)
	}

	return items
}

func (a *Aggregator) taskItem(t domain.RawTask) domain.ScoredItem {
	score, reasoning := a.scorer.ScoreTask(t)
	return domain.ScoredItem{
		ID:            t.ID,
		Source:        domain.SourceTask,
		Title:         t.Title,
		Description:   truncate(t.Description, descriptionLimit),
		PriorityScore: score,
		UrgencyLevel:  scoring.UrgencyFromScore(score),
		DueDate:       t.DueDate,
		DaysOverdue:   a.scorer.DaysOverdue(t.DueDate),
		URL:           t.URL,
		Metadata: map[string]string{
			"reasoning": reasoning,
			"status":    t.Status,
			"priority":  t.Priority,
			"assignee":  t.Assignee,
		},
	}
}

func (a *Aggregator) documentItem(p domain.RawPage) domain.ScoredItem {
	score, reasoning := a.scorer.ScoreDocument(p)
	return domain.ScoredItem{
		ID:            p.ID,
		Source:        domain.SourceDocument,
		Title:         p.Title,
		Description:   truncate(a.stripHTML(p.Body), descriptionLimit),
		PriorityScore: score,
		UrgencyLevel:  scoring.UrgencyFromScore(score),
		URL:           p.URL,
		Metadata: map[string]string{
			"reasoning": reasoning,
			"author":    p.Author,
			"version":   fmt.Sprintf("%d", p.Version),
		},
	}
}

func (a *Aggregator) messageItem(m domain.RawMessage) domain.ScoredItem {
	score, reasoning := a.scorer.ScoreMessage(m)
	return domain.ScoredItem{
		ID:            m.ID,
		Source:        domain.SourceMessage,
		Title:         m.Subject,
		Description:   truncate(m.Preview, descriptionLimit),
		PriorityScore: score,
		UrgencyLevel:  scoring.UrgencyFromScore(score),
		URL:           m.URL,
		Metadata: map[string]string{
			"reasoning":  reasoning,
			"sender":     m.Sender,
			"importance": m.Importance,
		},
	}
}

// stripHTML removes markup from document bodies and collapses whitespace
func (a *Aggregator) stripHTML(s string) string {
	stripped := html.UnescapeString(a.sanitizer.Sanitize(s))
	return strings.Join(strings.Fields(stripped), " ")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func topSlice(items []domain.ScoredItem, n int) []domain.ScoredItem {
	if len(items) <= n {
		return items
	}
	return items[:n]
}

func (a *Aggregator) reportMetadata(scope domain.Scope, data *domain.AllData) map[string]string {
	meta := map[string]string{
		"scope":      scope.User,
		"fetched_at": data.FetchedAt.UTC().Format(time.RFC3339),
	}
	if data.Tasks.Error != "" {
		meta["task_error"] = data.Tasks.Error
	}
	if data.Tasks.Skipped != "" {
		meta["task_skipped"] = data.Tasks.Skipped
	}
	if data.Documents.Error != "" {
		meta["document_error"] = data.Documents.Error
	}
	if data.Messages.Error != "" {
		meta["message_error"] = data.Messages.Error
	}
	return meta
}

func (a *Aggregator) saveSnapshot(ctx context.Context, scope domain.Scope, summary domain.Summary) {
	if a.history == nil {
		return
	}
	snapshot := domain.ReportSnapshot{
		GeneratedAt:  summary.GeneratedAt,
		Scope:        scope.User,
		TotalItems:   summary.Total,
		UrgentCount:  summary.ByUrgency[domain.UrgencyUrgent],
		OverdueCount: summary.OverdueCount,
		AverageScore: summary.AverageScore,
		Capacity:     summary.WorkloadCapacity,
	}
	if err := a.history.Save(ctx, snapshot); err != nil {
		log.Printf("[WARN] failed to save report snapshot: %v", err)
	}
}
