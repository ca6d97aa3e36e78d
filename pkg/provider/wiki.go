package provider

import (
	"context"
	"time"

	"priofeed/pkg/domain"
)

// Wiki is the knowledge-base provider client
type Wiki struct {
	client
}

// NewWiki creates a wiki client
func NewWiki(baseURL, token string, timeout time.Duration) *Wiki {
	return &Wiki{client: newClient(baseURL, token, timeout)}
}

// FetchPages retrieves recently changed pages. The endpoint may return either
// {"pages": [...]} or a bare array. Page bodies may contain HTML.
func (w *Wiki) FetchPages(ctx context.Context) ([]domain.RawPage, error) {
	body, err := w.get(ctx, "/pages/recent")
	if err != nil {
		return nil, err
	}
	return decodeList[domain.RawPage](body, "pages"), nil
}
