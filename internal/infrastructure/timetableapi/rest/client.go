// Package rest provides a TimetableAPI implementation over the backend's REST API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ersonp/timetable-sync/internal/domain/ports"
	"github.com/ersonp/timetable-sync/internal/infrastructure/config"
)

// RequestIDHeader carries a per-call correlation id.
const RequestIDHeader = "X-Request-ID"

// maxErrorBody bounds how much of a failed response is read for its detail.
const maxErrorBody = 1 << 20

// Client implements ports.TimetableAPI over HTTP.
// It holds no state between calls.
type Client struct {
	baseURL     string
	http        *http.Client
	credentials ports.CredentialProvider
	logger      *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLogger sets the logger used for per-call debug and failure logs.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// NewClient creates a new REST client for the backend at cfg.BaseURL.
// No timeout is applied beyond what the http.Client and ctx impose.
func NewClient(cfg config.APIConfig, credentials ports.CredentialProvider, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("api base url is required")
	}
	if credentials == nil {
		return nil, errors.New("credential provider is required")
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("parsing api base url: %w", err)
	}

	c := &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		http:        http.DefaultClient,
		credentials: credentials,
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.http == nil {
		c.http = http.DefaultClient
	}
	return c, nil
}

// request describes one REST call.
type request struct {
	method string
	path   string
	query  url.Values
	body   any

	// fallback is the failure message when the backend supplies no detail.
	fallback string
	// mutating calls fail without a credential; read-only calls return empty.
	mutating bool
	// notFoundEmpty treats 404 as "nothing there yet".
	notFoundEmpty bool
}

// errorBody is the optional JSON shape of a failed response.
type errorBody struct {
	Detail any `json:"detail"`
}

// do performs req and decodes a successful body into out.
// It reports false when the call short-circuited to an empty result.
func (c *Client) do(ctx context.Context, req request, out any) (bool, error) {
	token, err := c.credentials.Token(ctx)
	if err != nil {
		return false, fmt.Errorf("reading credential: %w", err)
	}
	if token == "" {
		if req.mutating {
			return false, ports.ErrUnauthenticated
		}
		c.logger.Debug("no credential, skipping read", zap.String("path", req.path))
		return false, nil
	}

	target := c.baseURL + req.path
	if len(req.query) > 0 {
		target += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		data, err := json.Marshal(req.body)
		if err != nil {
			return false, fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, target, body)
	if err != nil {
		return false, fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)
	httpReq.Header.Set(RequestIDHeader, requestID)
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.String("request_id", requestID),
			zap.Error(err),
		)
		return false, fmt.Errorf("%s: %w", req.fallback, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("api call",
		zap.String("method", req.method),
		zap.String("path", req.path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", requestID),
		zap.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode == http.StatusNotFound && req.notFoundEmpty {
		return false, nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &ports.APIError{
			StatusCode: resp.StatusCode,
			Message:    detailOr(resp.Body, req.fallback),
		}
		c.logger.Warn("api call failed",
			zap.String("method", req.method),
			zap.String("path", req.path),
			zap.Int("status", resp.StatusCode),
			zap.String("request_id", requestID),
			zap.String("detail", apiErr.Message),
		)
		return false, apiErr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("%s: reading response: %w", req.fallback, err)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return true, nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("%s: decoding response: %w", req.fallback, err)
	}
	return true, nil
}

// detailOr extracts a non-empty string "detail" field from body, else fallback.
func detailOr(body io.Reader, fallback string) string {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return fallback
	}

	var parsed errorBody
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fallback
	}

	detail, ok := parsed.Detail.(string)
	if !ok || strings.TrimSpace(detail) == "" {
		return fallback
	}
	return detail
}
