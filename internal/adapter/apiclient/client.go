package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"campaign-tracker/internal/core/domain"
	"campaign-tracker/internal/metrics"
)

// StatusError is returned when the campaign API answers with a non-2xx
// status. The response body is not inspected.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
}

// Client implements port.CampaignAPI over plain JSON REST. Every call is a
// single attempt: no retries, no backoff and no client-side timeout.
// Cancellation is left to the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New returns a client for the API rooted at baseURL, for example
// "http://localhost:8000/api".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns all campaigns in server order.
func (c *Client) List(ctx context.Context) ([]domain.Campaign, error) {
	var out []domain.Campaign
	if err := c.do(ctx, "list", http.MethodGet, "/campaigns/", nil, &out); err != nil {
		return nil, err
	}
	if out == nil {
		out = []domain.Campaign{}
	}
	return out, nil
}

// Get returns a campaign by id.
func (c *Client) Get(ctx context.Context, id int64) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, "get", http.MethodGet, campaignPath(id), nil, &out)
	return out, err
}

// Create posts a new campaign. The returned campaign carries the id and
// status assigned by the server.
func (c *Client) Create(ctx context.Context, data domain.CreateCampaignData) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, "create", http.MethodPost, "/campaigns/", data, &out)
	return out, err
}

// Update sends a PATCH with only the fields set in patch.
func (c *Client) Update(ctx context.Context, id int64, patch domain.CampaignPatch) (domain.Campaign, error) {
	var out domain.Campaign
	err := c.do(ctx, "update", http.MethodPatch, campaignPath(id), patch, &out)
	return out, err
}

// Delete removes a campaign. The response body is ignored.
func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, "delete", http.MethodDelete, campaignPath(id), nil, nil)
}

func campaignPath(id int64) string {
	return fmt.Sprintf("/campaigns/%d/", id)
}

// do performs one request. body is JSON-encoded when non-nil; out is
// decoded from the response when non-nil.
func (c *Client) do(ctx context.Context, op, method, path string, body, out any) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordAPIRequest(op, err, time.Since(start).Seconds())
	}()

	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("campaign api: encoding %s request: %w", op, err)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("campaign api: creating %s request: %w", op, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("campaign api: %s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{StatusCode: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("campaign api: decoding %s response: %w", op, err)
	}
	return nil
}
