// Copyright 2024 The nthscraper Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package transport implements the throttled HTTP layer used by the scraper.
// It owns the identifying header set, the per-request throttle delay, the
// overall rate limit and the per-client hit counter. Any non-2xx response is
// surfaced as a *StatusError, never swallowed.
package transport

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	cfg "github.com/nthlab/nthscraper/pkg/config"
)

// Client is a reusable HTTP session with default headers, throttling and
// instance-scoped request accounting. A single Client may be shared between
// scraping sessions; the hit counter is atomic.
type Client struct {
	httpClient  *http.Client
	headers     map[string]string
	limiter     *rate.Limiter
	maxBodySize int64

	hitCount atomic.Uint64

	registry *prometheus.Registry
	requests *prometheus.CounterVec
}

// NewClient creates a Client from the given network configuration.
func NewClient(netCfg cfg.Network) *Client {
	httpClient := &http.Client{
		Timeout: time.Duration(netCfg.Timeout) * time.Second,
	}
	if !netCfg.FollowRedirects {
		httpClient.CheckRedirect = func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	userAgent := netCfg.UserAgent
	if userAgent == "" {
		userAgent = cfg.DefaultUserAgent
	}

	maxBodySize := netCfg.MaxBodySize
	if maxBodySize <= 0 {
		maxBodySize = 16 << 20
	}

	var limiter *rate.Limiter
	if netCfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(netCfg.RateLimit), 1)
	}

	registry := prometheus.NewRegistry()
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "nthscraper_http_requests_total",
		Help: "Total number of HTTP requests issued by the client, by method and status code.",
	}, []string{"method", "status"})
	registry.MustRegister(requests)

	return &Client{
		httpClient:  httpClient,
		headers:     map[string]string{"User-Agent": userAgent},
		limiter:     limiter,
		maxBodySize: maxBodySize,
		registry:    registry,
		requests:    requests,
	}
}

// Request performs an HTTP request with the configured defaults. The throttle
// delay is applied before the request is issued; caller headers are merged
// over (and override) the client defaults. Non-2xx responses return the
// Response together with a *StatusError.
func (c *Client) Request(ctx context.Context, method, url string, opts RequestOpts) (*Response, error) {
	if err := c.throttle(ctx, opts.Throttle); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, method, url, opts.Body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}
	if opts.ContentType != "" {
		req.Header.Set("Content-Type", opts.ContentType)
	}

	c.hitCount.Add(1)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.requests.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.requests.WithLabelValues(method, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	body, err := c.readBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return response, &StatusError{StatusCode: resp.StatusCode, URL: url}
	}

	return response, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, url string, opts RequestOpts) (*Response, error) {
	return c.Request(ctx, http.MethodGet, url, opts)
}

// Post sends a POST request.
func (c *Client) Post(ctx context.Context, url string, opts RequestOpts) (*Response, error) {
	return c.Request(ctx, http.MethodPost, url, opts)
}

// ReadLocal loads a document from the local filesystem, bypassing throttling
// and the default header set entirely. The file handle is closed once the
// body has been consumed, regardless of success or failure.
func (c *Client) ReadLocal(path string) (*Response, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	body, err := c.readBody(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return &Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"text/html"}},
		Body:       body,
	}, nil
}

// HitCount returns the number of requests issued by this client so far.
func (c *Client) HitCount() uint64 {
	return c.hitCount.Load()
}

// Registry returns the client's metrics registry, so callers can expose it.
func (c *Client) Registry() *prometheus.Registry {
	return c.registry
}

// throttle applies the pre-request delay and the rate limit.
func (c *Client) throttle(ctx context.Context, delay time.Duration) error {
	if delay > 0 {
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	return nil
}

// readBody drains the reader enforcing the configured body size cap.
func (c *Client) readBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, c.maxBodySize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(body)) > c.maxBodySize {
		return nil, fmt.Errorf("response exceeded limit (%d bytes)", c.maxBodySize)
	}
	return body, nil
}
