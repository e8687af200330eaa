// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/danielhkuo/imbtrack/auth"
	"github.com/danielhkuo/imbtrack/models"
)

// APIError is returned for any non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// Client talks to the tracking API rooted at BaseURL.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewHTTPClient returns an http.Client with pooled keep-alive connections.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
			ForceAttemptHTTP2:   true,
		},
	}
}

// New creates a client. An empty baseURL means same-origin relative paths,
// which only makes sense with a custom transport; hc nil uses a 30s client.
func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = NewHTTPClient(30 * time.Second)
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// CreateBatch handles POST /api/batches
func (c *Client) CreateBatch(ctx context.Context, req models.CreateBatchRequest) (models.CreateBatchResponse, error) {
	var resp models.CreateBatchResponse
	err := c.do(ctx, http.MethodPost, "/api/batches", req, nil, &resp)
	return resp, err
}

// GetBatch handles GET /api/batches/{batchId}
func (c *Client) GetBatch(ctx context.Context, batchID string) (models.GetBatchResponse, error) {
	var resp models.GetBatchResponse
	err := c.do(ctx, http.MethodGet, "/api/batches/"+url.PathEscape(batchID), nil, nil, &resp)
	return resp, err
}

// RefreshBatch handles POST /api/batches/{batchId}/refresh
func (c *Client) RefreshBatch(ctx context.Context, batchID string) (models.RefreshBatchResponse, error) {
	var resp models.RefreshBatchResponse
	err := c.do(ctx, http.MethodPost, "/api/batches/"+url.PathEscape(batchID)+"/refresh", nil, nil, &resp)
	return resp, err
}

// UpdateItemStatus handles POST /api/batches/{batchId}/items/{itemId}/status.
// The admin key header is only sent when adminKey is non-empty.
func (c *Client) UpdateItemStatus(ctx context.Context, batchID, itemID string, status models.Status, adminKey string) (models.UpdateStatusResponse, error) {
	var headers map[string]string
	if adminKey != "" {
		headers = map[string]string{auth.HeaderAdminKey: adminKey}
	}

	path := fmt.Sprintf("/api/batches/%s/items/%s/status", url.PathEscape(batchID), url.PathEscape(itemID))

	var resp models.UpdateStatusResponse
	err := c.do(ctx, http.MethodPost, path, models.UpdateStatusRequest{Status: status}, headers, &resp)
	return resp, err
}

func (c *Client) do(ctx context.Context, method, path string, body any, headers map[string]string, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		slog.Error("api request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer res.Body.Close()

	slog.Debug("api request completed",
		"method", method,
		"path", path,
		"status", res.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return decodeError(res)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s %s response: %w", method, path, err)
	}
	return nil
}

// decodeError prefers the body's error field and falls back to a generic
// message when the body is missing or not JSON.
func decodeError(res *http.Response) error {
	var body models.ErrorResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err == nil && body.Error != "" {
		return &APIError{StatusCode: res.StatusCode, Message: body.Error}
	}
	return &APIError{
		StatusCode: res.StatusCode,
		Message:    fmt.Sprintf("Request failed (%d)", res.StatusCode),
	}
}
