// Package github is a lightweight GitHub REST API client for the forks
// endpoint, using stdlib only.
package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// PerPage is the page size requested from the forks endpoint. A page
	// with fewer elements is the last one.
	PerPage = 100

	// DefaultTimeout bounds each request when ClientConfig.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	userAgent = "forkcomp"
)

// ClientConfig holds the connection parameters for a GitHub API client.
type ClientConfig struct {
	BaseURL string        // API root, e.g. https://api.github.com
	Token   string        // optional bearer token; empty means unauthenticated
	Timeout time.Duration // per-request timeout, DefaultTimeout when zero
}

// Client talks to the GitHub REST API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a GitHub API client from the given config.
func NewClient(cfg ClientConfig) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

// get performs a GET request and returns the response body.
// Status codes >= 400 map to *APIError carrying the body.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
}

// ListForks fetches one page of forks for owner/repo. Elements are returned
// verbatim so callers can persist the API objects unchanged. A 2xx body that
// is valid JSON but not an array ends the listing like an empty page.
func (c *Client) ListForks(ctx context.Context, owner, repo string, page int) ([]json.RawMessage, error) {
	path := fmt.Sprintf("/repos/%s/%s/forks?per_page=%d&page=%d",
		url.PathEscape(owner), url.PathEscape(repo), PerPage, page)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var forks []json.RawMessage
	if err := json.Unmarshal(body, &forks); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing forks page %d: %w", page, err)
	}
	return forks, nil
}

// ForkPage reports one fetched page to a progress callback.
type ForkPage struct {
	Page  int // page number, starting at 1
	Count int // forks on this page
	Total int // running total including this page
}

// ListAllForks pages through every fork of owner/repo starting at page 1.
// onPage, when non-nil, runs after each non-empty page. On any error the
// forks accumulated so far are returned alongside it, so callers can keep
// partial results.
func (c *Client) ListAllForks(ctx context.Context, owner, repo string, onPage func(ForkPage)) ([]json.RawMessage, error) {
	var all []json.RawMessage
	for page := 1; ; page++ {
		forks, err := c.ListForks(ctx, owner, repo, page)
		if err != nil {
			return all, err
		}
		if len(forks) == 0 {
			return all, nil
		}

		all = append(all, forks...)
		if onPage != nil {
			onPage(ForkPage{Page: page, Count: len(forks), Total: len(all)})
		}

		if len(forks) < PerPage {
			return all, nil
		}
	}
}
