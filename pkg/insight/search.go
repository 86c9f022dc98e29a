// Package insight surfaces audience pain points by combining web search
// with a text-generation summarization pass.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"
)

// ResultType selects which result list a search returns.
type ResultType string

const (
	Organic ResultType = "organic"
	News    ResultType = "news"
)

// Result is one search hit with its snippet text.
type Result struct {
	Title   string
	Link    string
	Snippet string
}

// SearchResponse holds the organic and news result lists of one query.
type SearchResponse struct {
	Organic []Result
	News    []Result
}

// Searcher is the web-search boundary.
type Searcher interface {
	Search(ctx context.Context, query string, resultType ResultType, limit int) (*SearchResponse, error)
}

// SerperClient provides web search via the Serper API.
type SerperClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// SerperOption configures a SerperClient.
type SerperOption func(*SerperClient)

// WithAPIKey sets the API key (alternative to env var).
func WithAPIKey(key string) SerperOption {
	return func(c *SerperClient) {
		c.apiKey = key
	}
}

// WithBaseURL overrides the API endpoint, used by tests.
func WithBaseURL(url string) SerperOption {
	return func(c *SerperClient) {
		c.baseURL = url
	}
}

// NewSerperClient creates a Serper-backed search client.
func NewSerperClient(opts ...SerperOption) *SerperClient {
	c := &SerperClient{
		apiKey:  os.Getenv("SERPER_API_KEY"),
		baseURL: "https://google.serper.dev",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Available returns true if the API key is configured.
func (c *SerperClient) Available() bool {
	return c.apiKey != ""
}

type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num,omitempty"`
}

type serperResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type serperResponse struct {
	Organic []serperResult `json:"organic"`
	News    []serperResult `json:"news"`
}

// Search runs one query and returns its organic and news results.
func (c *SerperClient) Search(ctx context.Context, query string, resultType ResultType, limit int) (*SearchResponse, error) {
	if !c.Available() {
		return nil, fmt.Errorf("serper API key not configured")
	}
	if limit <= 0 {
		limit = 10
	}

	endpoint := c.baseURL + "/search"
	if resultType == News {
		endpoint = c.baseURL + "/news"
	}

	body, err := json.Marshal(serperRequest{Q: query, Num: limit})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper API error: status %d", resp.StatusCode)
	}

	var raw serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	out := &SearchResponse{}
	for _, r := range raw.Organic {
		out.Organic = append(out.Organic, Result{Title: r.Title, Link: r.Link, Snippet: r.Snippet})
	}
	for _, r := range raw.News {
		out.News = append(out.News, Result{Title: r.Title, Link: r.Link, Snippet: r.Snippet})
	}
	return out, nil
}
