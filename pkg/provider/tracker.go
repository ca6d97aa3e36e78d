package provider

import (
	"context"
	"net/url"
	"time"

	"priofeed/pkg/domain"
)

// Tracker is the task-tracking provider client
type Tracker struct {
	client
}

// NewTracker creates a tracker client
func NewTracker(baseURL, token string, timeout time.Duration) *Tracker {
	return &Tracker{client: newClient(baseURL, token, timeout)}
}

// FetchTasks retrieves tasks assigned to the user, or all open tasks when
// user is empty. The endpoint may return either {"issues": [...]} or a bare
// array.
func (t *Tracker) FetchTasks(ctx context.Context, user string) ([]domain.RawTask, error) {
	path := "/issues"
	if user != "" {
		path += "?assignee=" + url.QueryEscape(user)
	}
	body, err := t.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return decodeList[domain.RawTask](body, "issues"), nil
}
