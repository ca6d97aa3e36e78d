// Package provider implements HTTP clients for the three upstream systems
// feeding the priority pipeline: a task tracker, a knowledge-base wiki and a
// mail inbox. Clients tolerate both enveloped and bare-array payloads and
// never fail on malformed bodies, a parse problem degrades to an empty list.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// maxResponseBody bounds how much of a provider response is read
const maxResponseBody = 10 * 1024 * 1024 // 10MB

// client is the shared HTTP plumbing of the concrete providers
type client struct {
	http    *http.Client
	baseURL string
	token   string
}

func newClient(baseURL, token string, timeout time.Duration) client {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: baseURL,
		token:   token,
	}
}

// get issues an authenticated GET and returns the response body
func (c client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-only body

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d from %s", resp.StatusCode, path)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", path, err)
	}
	return body, nil
}

// decodeList parses a provider payload that is either a bare JSON array or an
// object wrapping the array under envelopeKey. Malformed payloads are logged
// and yield an empty list, never an error.
func decodeList[T any](data []byte, envelopeKey string) []T {
	var items []T
	if err := json.Unmarshal(data, &items); err == nil {
		return items
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		log.Printf("[WARN] unparseable provider payload, treating as empty: %v", err)
		return []T{}
	}
	raw, ok := envelope[envelopeKey]
	if !ok {
		log.Printf("[WARN] provider payload has no %q field, treating as empty", envelopeKey)
		return []T{}
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Printf("[WARN] unparseable %q list in provider payload, treating as empty: %v", envelopeKey, err)
		return []T{}
	}
	return items
}
