package fetcher

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"priofeed/pkg/domain"
)

// TaskProvider fetches tracker tasks for a user
type TaskProvider interface {
	FetchTasks(ctx context.Context, user string) ([]domain.RawTask, error)
}

// DocumentProvider fetches recently changed knowledge-base pages
type DocumentProvider interface {
	FetchPages(ctx context.Context) ([]domain.RawPage, error)
}

// MessageProvider fetches inbox messages
type MessageProvider interface {
	FetchMessages(ctx context.Context) ([]domain.RawMessage, error)
}

// DefaultTTL is how long a cached fetch result stays valid
const DefaultTTL = 15 * time.Minute

// recentTaskWindow and recentMessageWindow bound the "recently active" subsets
const (
	recentTaskWindow    = 7 * 24 * time.Hour
	recentMessageWindow = 48 * time.Hour
)

// Fetcher retrieves raw item lists from the three upstream providers with a
// time-boxed in-memory cache keyed by report scope
type Fetcher struct {
	tasks     TaskProvider
	documents DocumentProvider
	messages  MessageProvider
	ttl       time.Duration
	nowFn     func() time.Time

	mu    sync.RWMutex
	cache map[domain.Scope]cacheEntry
}

type cacheEntry struct {
	data      *domain.AllData
	fetchedAt time.Time
}

// Config holds fetcher construction parameters
type Config struct {
	Tasks     TaskProvider
	Documents DocumentProvider
	Messages  MessageProvider
	TTL       time.Duration
	Now       func() time.Time
}

// New creates a fetcher
func New(cfg Config) *Fetcher {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}
	nowFn := cfg.Now
	if nowFn == nil {
		nowFn = time.Now
	}
	return &Fetcher{
		tasks:     cfg.Tasks,
		documents: cfg.Documents,
		messages:  cfg.Messages,
		ttl:       ttl,
		nowFn:     nowFn,
		cache:     make(map[domain.Scope]cacheEntry),
	}
}

// FetchAll retrieves all three sources concurrently. Each source is isolated:
// a failing or malformed provider degrades to an empty payload with an error
// annotation and never aborts its siblings. A live cache entry for the scope
// is returned without touching the providers.
func (f *Fetcher) FetchAll(ctx context.Context, scope domain.Scope) *domain.AllData {
	if cached := f.cached(scope); cached != nil {
		log.Printf("[DEBUG] serving fetch for scope %+v from cache", scope)
		return cached
	}

	data := &domain.AllData{FetchedAt: f.nowFn()}

	// fan-out over the sources, each branch swallows its own failure so the
	// group never cancels a sibling
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		data.Tasks = f.FetchTasks(gctx, scope)
		return nil
	})
	g.Go(func() error {
		data.Documents = f.FetchDocuments(gctx)
		return nil
	})
	g.Go(func() error {
		data.Messages = f.FetchMessages(gctx)
		return nil
	})
	_ = g.Wait() // branches never return errors

	f.mu.Lock()
	f.cache[scope] = cacheEntry{data: data, fetchedAt: data.FetchedAt}
	f.mu.Unlock()

	return data
}

// cached returns the live entry for the scope, nil when absent or expired
func (f *Fetcher) cached(scope domain.Scope) *domain.AllData {
	f.mu.RLock()
	entry, ok := f.cache[scope]
	f.mu.RUnlock()
	if !ok || f.nowFn().Sub(entry.fetchedAt) > f.ttl {
		return nil
	}
	return entry.data
}

// ClearCache empties the cache, idempotent
func (f *Fetcher) ClearCache() {
	f.mu.Lock()
	f.cache = make(map[domain.Scope]cacheEntry)
	f.mu.Unlock()
}

// FetchTasks retrieves tracker tasks for the scope. A scope without a user
// and without the all-sources flag is skipped explicitly instead of pulling
// the entire tracker. Items appearing in both the recent and overdue windows
// are deduplicated by id.
func (f *Fetcher) FetchTasks(ctx context.Context, scope domain.Scope) domain.TaskData {
	if scope.User == "" && !scope.AllSources {
		return domain.TaskData{Items: []domain.RawTask{}, Skipped: "skipped - no user in scope"}
	}

	tasks, err := f.tasks.FetchTasks(ctx, scope.User)
	if err != nil {
		log.Printf("[WARN] task provider failed for user %q: %v", scope.User, err)
		return domain.TaskData{Items: []domain.RawTask{}, Error: err.Error()}
	}

	now := f.nowFn()
	seen := make(map[string]bool, len(tasks))
	items := make([]domain.RawTask, 0, len(tasks))
	counts := domain.SourceCounts{}
	for _, t := range tasks {
		overdue := t.DueDate != nil && t.DueDate.Before(now)
		recent := now.Sub(t.UpdatedAt) <= recentTaskWindow
		if !overdue && !recent {
			continue
		}
		if overdue {
			counts.Overdue++
		}
		if recent {
			counts.Recent++
		}
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		items = append(items, t)
	}
	counts.Total = len(items)

	return domain.TaskData{Items: items, Counts: counts}
}

// FetchDocuments retrieves recently changed knowledge-base pages
func (f *Fetcher) FetchDocuments(ctx context.Context) domain.DocumentData {
	pages, err := f.documents.FetchPages(ctx)
	if err != nil {
		log.Printf("[WARN] document provider failed: %v", err)
		return domain.DocumentData{Items: []domain.RawPage{}, Error: err.Error()}
	}

	now := f.nowFn()
	counts := domain.SourceCounts{Total: len(pages)}
	for _, p := range pages {
		if now.Sub(p.UpdatedAt) <= recentMessageWindow {
			counts.Recent++
		}
	}
	if pages == nil {
		pages = []domain.RawPage{}
	}
	return domain.DocumentData{Items: pages, Counts: counts}
}

// FetchMessages retrieves inbox messages split into recent and unanswered
// subsets. Unanswered means unread, flagged or high-importance. The subsets
// are merged with deduplication by message id.
func (f *Fetcher) FetchMessages(ctx context.Context) domain.MessageData {
	msgs, err := f.messages.FetchMessages(ctx)
	if err != nil {
		log.Printf("[WARN] message provider failed: %v", err)
		return domain.MessageData{Items: []domain.RawMessage{}, Error: err.Error()}
	}

	now := f.nowFn()
	seen := make(map[string]bool, len(msgs))
	items := make([]domain.RawMessage, 0, len(msgs))
	counts := domain.SourceCounts{}
	for _, m := range msgs {
		recent := now.Sub(m.ReceivedAt) <= recentMessageWindow
		unanswered := m.Unread || m.Flagged || isHighImportance(m.Importance)
		if !recent && !unanswered {
			continue
		}
		if recent {
			counts.Recent++
		}
		if unanswered {
			counts.Unanswered++
		}
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		items = append(items, m)
	}
	counts.Total = len(items)

	return domain.MessageData{Items: items, Counts: counts}
}

func isHighImportance(importance string) bool {
	return importance == "high" || importance == "High" || importance == "HIGH"
}
