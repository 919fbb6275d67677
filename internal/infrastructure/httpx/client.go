// Package httpx provides the HTTP fetcher used for driver archive downloads
// and small version-resolution endpoints.
package httpx

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultDownloadTimeout is generous because driver archives run to several
// megabytes on slow links.
const DefaultDownloadTimeout = 5 * time.Minute

const userAgent = "getdriver-cli/1.0"

// Client implements ports.Fetcher on top of net/http.
type Client struct {
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps in a custom underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewClient creates a fetcher with the default download timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: DefaultDownloadTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch issues a GET and returns the body stream and announced content
// length (-1 when unknown). Any non-2xx status is an error; the body is
// closed before returning in that case.
func (c *Client) Fetch(ctx context.Context, url string) (io.ReadCloser, int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, 0, fmt.Errorf("fetch %s: unexpected status %d", url, resp.StatusCode)
	}

	return resp.Body, resp.ContentLength, nil
}
