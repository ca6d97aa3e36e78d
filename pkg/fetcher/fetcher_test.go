package fetcher

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"priofeed/pkg/domain"
)

type taskProviderFunc func(ctx context.Context, user string) ([]domain.RawTask, error)

func (f taskProviderFunc) FetchTasks(ctx context.Context, user string) ([]domain.RawTask, error) {
	return f(ctx, user)
}

type documentProviderFunc func(ctx context.Context) ([]domain.RawPage, error)

func (f documentProviderFunc) FetchPages(ctx context.Context) ([]domain.RawPage, error) {
	return f(ctx)
}

type messageProviderFunc func(ctx context.Context) ([]domain.RawMessage, error)

func (f messageProviderFunc) FetchMessages(ctx context.Context) ([]domain.RawMessage, error) {
	return f(ctx)
}

var fetchNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

func emptyProviders() (TaskProvider, DocumentProvider, MessageProvider) {
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		return nil, nil
	})
	docs := documentProviderFunc(func(ctx context.Context) ([]domain.RawPage, error) {
		return nil, nil
	})
	msgs := messageProviderFunc(func(ctx context.Context) ([]domain.RawMessage, error) {
		return nil, nil
	})
	return tasks, docs, msgs
}

func TestFetcher_FetchAll_CachesResult(t *testing.T) {
	var calls int32
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		atomic.AddInt32(&calls, 1)
		return []domain.RawTask{{ID: "T-1", Title: "task", UpdatedAt: fetchNow}}, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	scope := domain.Scope{User: "alice"}
	first := f.FetchAll(context.Background(), scope)
	second := f.FetchAll(context.Background(), scope)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "second call must be served from cache")
	assert.Equal(t, first.FetchedAt, second.FetchedAt)
	require.Len(t, second.Tasks.Items, 1)
	assert.Equal(t, "T-1", second.Tasks.Items[0].ID)
}

func TestFetcher_FetchAll_CacheKeyedByScope(t *testing.T) {
	var calls int32
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	f.FetchAll(context.Background(), domain.Scope{User: "alice"})
	f.FetchAll(context.Background(), domain.Scope{User: "bob"})
	f.FetchAll(context.Background(), domain.Scope{User: "alice"})

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "each scope gets its own cache entry")
}

func TestFetcher_FetchAll_CacheExpires(t *testing.T) {
	var calls int32
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	_, docs, msgs := emptyProviders()

	now := fetchNow
	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		TTL: 15 * time.Minute, Now: func() time.Time { return now }})

	scope := domain.Scope{User: "alice"}
	f.FetchAll(context.Background(), scope)

	now = now.Add(10 * time.Minute)
	f.FetchAll(context.Background(), scope)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "entry still live inside the ttl")

	now = now.Add(6 * time.Minute)
	f.FetchAll(context.Background(), scope)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "expired entry must be refetched")
}

func TestFetcher_ClearCache(t *testing.T) {
	var calls int32
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	scope := domain.Scope{User: "alice"}
	f.FetchAll(context.Background(), scope)
	f.ClearCache()
	f.ClearCache() // idempotent
	f.FetchAll(context.Background(), scope)

	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetcher_FetchAll_FailingSourceDoesNotAbortSiblings(t *testing.T) {
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		return []domain.RawTask{{ID: "T-1", Title: "task", UpdatedAt: fetchNow}}, nil
	})
	docs := documentProviderFunc(func(ctx context.Context) ([]domain.RawPage, error) {
		return nil, errors.New("wiki is down")
	})
	msgs := messageProviderFunc(func(ctx context.Context) ([]domain.RawMessage, error) {
		return []domain.RawMessage{{ID: "M-1", Subject: "hello", ReceivedAt: fetchNow, Unread: true}}, nil
	})

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	data := f.FetchAll(context.Background(), domain.Scope{User: "alice"})

	assert.Len(t, data.Tasks.Items, 1)
	assert.Len(t, data.Messages.Items, 1)
	require.NotNil(t, data.Documents.Items, "failed source degrades to an empty list, not nil")
	assert.Empty(t, data.Documents.Items)
	assert.Equal(t, "wiki is down", data.Documents.Error)
	assert.Empty(t, data.Tasks.Error)
	assert.Empty(t, data.Messages.Error)
}

func TestFetcher_FetchTasks_SkipsEmptyScope(t *testing.T) {
	var calls int32
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchTasks(context.Background(), domain.Scope{})
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls), "provider must not be called without a user")
	assert.Equal(t, "skipped - no user in scope", got.Skipped)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}

func TestFetcher_FetchTasks_AllSourcesOverridesEmptyUser(t *testing.T) {
	var gotUser string
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		gotUser = user
		return []domain.RawTask{{ID: "T-1", Title: "task", UpdatedAt: fetchNow}}, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchTasks(context.Background(), domain.Scope{AllSources: true})
	assert.Empty(t, got.Skipped)
	assert.Equal(t, "", gotUser)
	assert.Len(t, got.Items, 1)
}

func TestFetcher_FetchTasks_WindowsAndDedup(t *testing.T) {
	overdueDate := fetchNow.Add(-2 * 24 * time.Hour)
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		return []domain.RawTask{
			// recent only
			{ID: "T-recent", UpdatedAt: fetchNow.Add(-24 * time.Hour)},
			// overdue only, last touched a month ago
			{ID: "T-overdue", UpdatedAt: fetchNow.Add(-30 * 24 * time.Hour), DueDate: &overdueDate},
			// both recent and overdue, must appear once
			{ID: "T-both", UpdatedAt: fetchNow.Add(-1 * time.Hour), DueDate: &overdueDate},
			// neither, dropped
			{ID: "T-stale", UpdatedAt: fetchNow.Add(-30 * 24 * time.Hour)},
		}, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchTasks(context.Background(), domain.Scope{User: "alice"})
	require.Len(t, got.Items, 3)

	ids := make([]string, 0, len(got.Items))
	for _, task := range got.Items {
		ids = append(ids, task.ID)
	}
	assert.ElementsMatch(t, []string{"T-recent", "T-overdue", "T-both"}, ids)
	assert.Equal(t, 3, got.Counts.Total)
	assert.Equal(t, 2, got.Counts.Recent)
	assert.Equal(t, 2, got.Counts.Overdue)
}

func TestFetcher_FetchTasks_DuplicateIDs(t *testing.T) {
	tasks := taskProviderFunc(func(ctx context.Context, user string) ([]domain.RawTask, error) {
		return []domain.RawTask{
			{ID: "T-dup", Title: "first copy", UpdatedAt: fetchNow.Add(-1 * time.Hour)},
			{ID: "T-dup", Title: "second copy", UpdatedAt: fetchNow.Add(-2 * time.Hour)},
			{ID: "T-2", UpdatedAt: fetchNow.Add(-1 * time.Hour)},
		}, nil
	})
	_, docs, msgs := emptyProviders()

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchTasks(context.Background(), domain.Scope{User: "alice"})
	require.Len(t, got.Items, 2, "repeated id must yield exactly one item")
	assert.Equal(t, "T-dup", got.Items[0].ID)
	assert.Equal(t, "first copy", got.Items[0].Title, "first occurrence wins")
	assert.Equal(t, "T-2", got.Items[1].ID)
}

func TestFetcher_FetchDocuments_CountsRecent(t *testing.T) {
	tasks, _, msgs := emptyProviders()
	docs := documentProviderFunc(func(ctx context.Context) ([]domain.RawPage, error) {
		return []domain.RawPage{
			{ID: "P-1", UpdatedAt: fetchNow.Add(-1 * time.Hour)},
			{ID: "P-2", UpdatedAt: fetchNow.Add(-10 * 24 * time.Hour)},
		}, nil
	})

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchDocuments(context.Background())
	assert.Len(t, got.Items, 2)
	assert.Equal(t, 2, got.Counts.Total)
	assert.Equal(t, 1, got.Counts.Recent)
}

func TestFetcher_FetchMessages_WindowsAndDedup(t *testing.T) {
	tasks, docs, _ := emptyProviders()
	msgs := messageProviderFunc(func(ctx context.Context) ([]domain.RawMessage, error) {
		return []domain.RawMessage{
			// recent and unread, counted in both subsets but listed once
			{ID: "M-both", ReceivedAt: fetchNow.Add(-1 * time.Hour), Unread: true},
			// old but flagged
			{ID: "M-flagged", ReceivedAt: fetchNow.Add(-10 * 24 * time.Hour), Flagged: true},
			// old but high importance
			{ID: "M-important", ReceivedAt: fetchNow.Add(-10 * 24 * time.Hour), Importance: "high"},
			// old, read, unflagged, dropped
			{ID: "M-stale", ReceivedAt: fetchNow.Add(-10 * 24 * time.Hour)},
		}, nil
	})

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchMessages(context.Background())
	require.Len(t, got.Items, 3)

	ids := make([]string, 0, len(got.Items))
	for _, m := range got.Items {
		ids = append(ids, m.ID)
	}
	assert.ElementsMatch(t, []string{"M-both", "M-flagged", "M-important"}, ids)
	assert.Equal(t, 3, got.Counts.Total)
	assert.Equal(t, 1, got.Counts.Recent)
	assert.Equal(t, 3, got.Counts.Unanswered)
}

func TestFetcher_FetchMessages_DuplicateIDs(t *testing.T) {
	tasks, docs, _ := emptyProviders()
	msgs := messageProviderFunc(func(ctx context.Context) ([]domain.RawMessage, error) {
		return []domain.RawMessage{
			{ID: "M-dup", Subject: "first copy", ReceivedAt: fetchNow.Add(-1 * time.Hour), Unread: true},
			{ID: "M-dup", Subject: "second copy", ReceivedAt: fetchNow.Add(-1 * time.Hour), Flagged: true},
		}, nil
	})

	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	got := f.FetchMessages(context.Background())
	require.Len(t, got.Items, 1, "repeated id must yield exactly one item")
	assert.Equal(t, "M-dup", got.Items[0].ID)
	assert.Equal(t, "first copy", got.Items[0].Subject, "first occurrence wins")
}

func TestFetcher_FetchAll_SetsFetchedAt(t *testing.T) {
	tasks, docs, msgs := emptyProviders()
	f := New(Config{Tasks: tasks, Documents: docs, Messages: msgs,
		Now: func() time.Time { return fetchNow }})

	data := f.FetchAll(context.Background(), domain.Scope{User: "alice"})
	assert.Equal(t, fetchNow, data.FetchedAt)
}
