package record

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Sentiment is the response of POST /sentiment-analysis/.
type Sentiment struct {
	Score   float64 `json:"sentiment_score"`
	Message string  `json:"ai_encouraging_message"`
}

// Client calls the record backend. Requests are not retried.
type Client struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}
}

// Get fetches the record for date (YYYY-MM-DD). The backend returns an empty
// record for days it has not seen.
func (c *Client) Get(ctx context.Context, date string) (Record, error) {
	var rec Record
	if err := c.do(ctx, http.MethodGet, "/records/"+url.PathEscape(date), nil, &rec); err != nil {
		return Record{}, fmt.Errorf("get record %s: %w", date, err)
	}
	return rec, nil
}

// Update sends a single-field change for date and returns the stored record.
func (c *Client) Update(ctx context.Context, date, field string, value any) (Record, error) {
	body, err := json.Marshal(map[string]any{field: value})
	if err != nil {
		return Record{}, fmt.Errorf("encode update: %w", err)
	}
	var rec Record
	if err := c.do(ctx, http.MethodPut, "/records/"+url.PathEscape(date), body, &rec); err != nil {
		return Record{}, fmt.Errorf("update %s on %s: %w", field, date, err)
	}
	return rec, nil
}

// List returns stored records, most recent first.
func (c *Client) List(ctx context.Context, skip, limit int) ([]Record, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))
	var recs []Record
	if err := c.do(ctx, http.MethodGet, "/records/?"+q.Encode(), nil, &recs); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return recs, nil
}

// AnalyzeSentiment asks the backend for feedback on a journal entry.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (Sentiment, error) {
	var s Sentiment
	path := "/sentiment-analysis/?text=" + url.QueryEscape(text)
	if err := c.do(ctx, http.MethodPost, path, nil, &s); err != nil {
		return Sentiment{}, fmt.Errorf("sentiment analysis: %w", err)
	}
	return s, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, out any) error {
	var r io.Reader
	if body != nil {
		r = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, r)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("backend request", "method", method, "path", path, "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
