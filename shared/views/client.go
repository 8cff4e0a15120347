// Package views talks to the external view-counter service. The total is
// display-only and participates in no gallery invariant; a failed or
// missing fetch leaves the total unknown, which stays distinguishable from
// a counter that genuinely reports zero.
package views

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Client issues the single report-and-read call against the counter service.
type Client struct {
	httpClient *http.Client
	url        string
}

func NewClient(url string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		url:        url,
	}
}

// Report registers one view and returns the running total.
func (c *Client) Report(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build view counter request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to reach view counter: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("view counter returned status %d", resp.StatusCode)
	}

	var body struct {
		Total int64 `json:"total"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("failed to decode view counter response: %w", err)
	}
	return body.Total, nil
}

// Tracker holds the last total reported by the counter, if any.
type Tracker struct {
	mu    sync.Mutex
	total *int64
}

// Set records a known total.
func (t *Tracker) Set(total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.total = &total
}

// Total returns the last known total and whether one is known at all.
func (t *Tracker) Total() (int64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.total == nil {
		return 0, false
	}
	return *t.total, true
}
