// Package github resolves the latest release tag of a GitHub repository.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"getdriver.dev/cli/internal/core/domain"
)

const defaultAPIBase = "https://api.github.com"

// release is the subset of the releases/latest payload the resolver needs.
type release struct {
	TagName string `json:"tag_name"`
}

// Client queries the GitHub releases API. It implements ports.TagResolver.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps in a custom http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at an alternate API host.
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = base
		}
	}
}

// WithToken attaches a bearer token, lifting the unauthenticated rate limit.
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// NewClient creates a release-tag client for api.github.com.
func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultAPIBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestTag returns the most recent release tag of repo ("owner/name"),
// including any vendor prefix on the tag.
func (c *Client) LatestTag(ctx context.Context, repo string) (string, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, repo)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", repo, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("latest tag for %s: %w", repo, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("latest tag for %s: unexpected status %d", repo, resp.StatusCode)
	}

	var rel release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", fmt.Errorf("latest tag for %s: decode response: %w", repo, err)
	}
	if rel.TagName == "" {
		return "", fmt.Errorf("latest tag for %s: %w", repo, domain.ErrEmptyTag)
	}

	return rel.TagName, nil
}
