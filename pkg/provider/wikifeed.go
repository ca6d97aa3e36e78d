package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"

	"priofeed/pkg/domain"
)

// WikiFeed is an alternative knowledge-base provider that reads the wiki's
// recent-changes RSS/Atom feed instead of a JSON API. Useful for wikis that
// only expose their activity stream as a feed.
type WikiFeed struct {
	parser  *gofeed.Parser
	feedURL string
	timeout time.Duration
}

// NewWikiFeed creates a feed-backed wiki provider
func NewWikiFeed(feedURL string, timeout time.Duration) *WikiFeed {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &WikiFeed{
		parser:  gofeed.NewParser(),
		feedURL: feedURL,
		timeout: timeout,
	}
}

// FetchPages retrieves recently changed pages from the recent-changes feed
func (w *WikiFeed) FetchPages(ctx context.Context) ([]domain.RawPage, error) {
	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	feed, err := w.parser.ParseURLWithContext(w.feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse recent-changes feed %s: %w", w.feedURL, err)
	}

	pages := make([]domain.RawPage, 0, len(feed.Items))
	for i, item := range feed.Items {
		page := domain.RawPage{
			Title: item.Title,
			Body:  item.Content,
			URL:   item.Link,
		}
		if page.Body == "" {
			page.Body = item.Description
		}

		// feeds don't always carry a GUID, fall back to the link
		switch {
		case item.GUID != "":
			page.ID = item.GUID
		case item.Link != "":
			page.ID = item.Link
		default:
			page.ID = "feed-item-" + strconv.Itoa(i)
		}

		if item.Author != nil {
			page.Author = item.Author.Name
		}
		if item.UpdatedParsed != nil {
			page.UpdatedAt = *item.UpdatedParsed
		} else if item.PublishedParsed != nil {
			page.UpdatedAt = *item.PublishedParsed
		}
		page.Labels = item.Categories

		pages = append(pages, page)
	}

	return pages, nil
}
