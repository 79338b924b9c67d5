package statsclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// ErrRejected is returned when the server answers with success:false.
var ErrRejected = errors.New("request rejected by server")

// Client queries the read-only endpoints of a running server.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Stats fetches GET /api/stats.
func (c *Client) Stats(ctx context.Context) (gjson.Result, error) {
	return c.fetch(ctx, "/api/stats")
}

// Health fetches GET /api/health.
func (c *Client) Health(ctx context.Context) (gjson.Result, error) {
	return c.fetch(ctx, "/api/health")
}

// Events fetches GET /api/events with the given limit; limit <= 0 uses the server default.
func (c *Client) Events(ctx context.Context, limit int) (gjson.Result, error) {
	path := "/api/events"
	if limit > 0 {
		path = fmt.Sprintf("%s?limit=%d", path, limit)
	}
	return c.fetch(ctx, path)
}

func (c *Client) fetch(ctx context.Context, path string) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read %s: %w", path, err)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("GET %s: %s: response is not JSON", path, resp.Status)
	}

	result := gjson.ParseBytes(body)
	if resp.StatusCode < 200 || resp.StatusCode > 299 || !result.Get("success").Bool() {
		msg := result.Get("error").String()
		if msg == "" {
			msg = resp.Status
		}
		return result, fmt.Errorf("GET %s: %s: %w", path, msg, ErrRejected)
	}
	return result, nil
}
