// Copyright 2025 John Wang. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package fetchkit wraps the single upstream HTTP GET every tool performs,
// mapping transport failures to the shared error taxonomy. Callers receive
// either the response payload or a tagged *apierr.Error, never both.
package fetchkit

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/tae0y/real-estate-mcp/apierr"
)

// RequestTimeout bounds every upstream call. It is the only bound on call
// duration; no retries are performed here — failed fetches surface
// immediately and callers decide whether to retry.
const RequestTimeout = 15 * time.Second

const timeoutMessage = "API server timed out (15s)"

// Client performs upstream GETs under the environment-selected TLS policy.
type Client struct {
	http *retryablehttp.Client
}

// NewClient builds a client honoring ResolveTLSConfig. Construction fails if
// the configured CA bundle cannot be loaded.
func NewClient() (*Client, error) {
	tlsConfig, err := ResolveTLSConfig()
	if err != nil {
		return nil, err
	}

	rc := retryablehttp.NewClient()
	rc.Logger = nil
	rc.RetryMax = 0
	// Never retry, even on 5xx: surface the status to the caller instead.
	rc.CheckRetry = func(context.Context, *http.Response, error) (bool, error) {
		return false, nil
	}
	rc.HTTPClient.Timeout = RequestTimeout
	if tlsConfig != nil {
		rc.HTTPClient.Transport = &http.Transport{TLSClientConfig: tlsConfig}
	}

	return &Client{http: rc}, nil
}

// Fetch performs one GET and returns the response body as text.
func (c *Client) Fetch(ctx context.Context, url string, headers map[string]string) (string, *apierr.Error) {
	body, ferr := c.get(ctx, url, headers)
	if ferr != nil {
		return "", ferr
	}
	return string(body), nil
}

// FetchJSON performs one GET and decodes the response body as JSON. A body
// that is not valid JSON is a parse_error, distinct from transport faults.
func (c *Client) FetchJSON(ctx context.Context, url string, headers map[string]string) (any, *apierr.Error) {
	body, ferr := c.get(ctx, url, headers)
	if ferr != nil {
		return nil, ferr
	}
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, apierr.Parse(fmt.Sprintf("JSON parse failed: %v", err))
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, url string, headers map[string]string) ([]byte, *apierr.Error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apierr.Network(fmt.Sprintf("Network error: %v", err))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apierr.Network(timeoutMessage)
		}
		return nil, apierr.Network(fmt.Sprintf("Network error: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apierr.Network(fmt.Sprintf("HTTP error: %d", resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, apierr.Network(timeoutMessage)
		}
		return nil, apierr.Network(fmt.Sprintf("Network error: %v", err))
	}
	return body, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
