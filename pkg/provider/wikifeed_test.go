package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Recent Changes</title>
    <item>
      <guid>page-42</guid>
      <title>Deployment runbook</title>
      <link>https://wiki.example.com/pages/42</link>
      <description>restart the service and verify</description>
      <category>ops</category>
      <category>urgent</category>
      <pubDate>Fri, 15 Mar 2024 09:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Untitled scratchpad</title>
      <description>draft</description>
    </item>
  </channel>
</rss>`

func TestWikiFeed_FetchPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testRSS)) //nolint:errcheck
	}))
	defer srv.Close()

	feed := NewWikiFeed(srv.URL, time.Second)
	pages, err := feed.FetchPages(context.Background())
	require.NoError(t, err)
	require.Len(t, pages, 2)

	first := pages[0]
	assert.Equal(t, "page-42", first.ID)
	assert.Equal(t, "Deployment runbook", first.Title)
	assert.Equal(t, "restart the service and verify", first.Body)
	assert.Equal(t, "https://wiki.example.com/pages/42", first.URL)
	assert.Equal(t, []string{"ops", "urgent"}, first.Labels)
	assert.Equal(t, time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC).Unix(), first.UpdatedAt.Unix())

	// item without guid or link falls back to a positional id
	assert.Equal(t, "feed-item-1", pages[1].ID)
	assert.Equal(t, "draft", pages[1].Body)
	assert.True(t, pages[1].UpdatedAt.IsZero())
}

func TestWikiFeed_FetchPages_BadFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("this is not a feed")) //nolint:errcheck
	}))
	defer srv.Close()

	feed := NewWikiFeed(srv.URL, time.Second)
	_, err := feed.FetchPages(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse recent-changes feed")
}
