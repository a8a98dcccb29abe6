// Package sse holds the upstream HTTP plumbing shared by the raw-HTTP adapters:
// a JSON POST client that leaves the body open for streaming, an SSE event
// scanner, and the context-aware send used by every delta producer.
package sse

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/davidbz/multimind/internal/domain"
)

// maxErrorBodySize caps how much of a non-2xx body is read into the error.
const maxErrorBodySize int64 = 4 * 1024

// Client wraps the HTTP client for upstream streaming calls.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a streaming client on top of NewHTTPClient.
func NewClient(headerTimeout time.Duration) *Client {
	return &Client{
		httpClient: NewHTTPClient(headerTimeout),
	}
}

// NewHTTPClient returns an http.Client for long-lived streams. headerTimeout
// bounds the wait for response headers only; an open stream is never cut by
// a client-side timeout.
func NewHTTPClient(headerTimeout time.Duration) *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone() //nolint:forcetypeassert // stdlib default
	if headerTimeout > 0 {
		transport.ResponseHeaderTimeout = headerTimeout
	}
	return &http.Client{Transport: transport}
}

// Post sends body as JSON and returns the response with its body open.
// The caller must close the body. Upstream 401/403 map to ErrProviderAuth,
// every other failure to ErrProviderUnavailable.
func (c *Client) Post(
	ctx context.Context,
	url string,
	headers map[string]string,
	body any,
) (*http.Response, error) {
	reqBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: request failed: %v", domain.ErrProviderUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, StatusError(resp.StatusCode, errBody)
	}

	return resp, nil
}

// StatusError maps an upstream HTTP status to the domain error taxonomy.
func StatusError(status int, body []byte) error {
	sentinel := domain.ErrProviderUnavailable
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		sentinel = domain.ErrProviderAuth
	}
	return fmt.Errorf("%w: upstream returned status %d: %s", sentinel, status, bytes.TrimSpace(body))
}

// Send delivers a chunk unless ctx is done first. It reports whether the
// chunk was delivered.
func Send(ctx context.Context, out chan<- domain.DeltaChunk, chunk domain.DeltaChunk) bool {
	select {
	case <-ctx.Done():
		return false
	case out <- chunk:
		return true
	}
}

// ReadError converts a failed upstream read into a delta error, or nil when the
// read failed because the stream was cancelled.
func ReadError(ctx context.Context, err error) error {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return fmt.Errorf("%w: stream read failed: %v", domain.ErrProviderUnavailable, err)
}
