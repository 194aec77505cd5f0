package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-resty/resty/v2"

	"pricewatch/internal/domain"
)

// Client talks to the price-monitor backend over its three REST endpoints.
type Client struct {
	client    *resty.Client
	targetURL string
}

// startScraperRequest is the body of POST /start-scraper
type startScraperRequest struct {
	SearchText string `json:"search_text"`
	URL        string `json:"url"`
}

// NewClient creates a backend client for the given base origin.
// Scraper jobs are pointed at targetURL.
func NewClient(baseURL, targetURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)

	return &Client{
		client:    client,
		targetURL: targetURL,
	}
}

// ListSearchTexts fetches the canonical list of known search terms.
func (c *Client) ListSearchTexts(ctx context.Context) ([]string, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/unique_search_texts")
	if err != nil {
		return nil, fmt.Errorf("list search texts: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("list search texts: backend returned %s", resp.Status())
	}

	var terms []string
	if err := json.Unmarshal(resp.Body(), &terms); err != nil {
		return nil, fmt.Errorf("list search texts: decode response: %w", err)
	}
	return terms, nil
}

// FetchResults fetches the recorded price history for a search term.
// The entry shape is owned by the backend and passed through untouched.
func (c *Client) FetchResults(ctx context.Context, term string) ([]domain.PriceEntry, error) {
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("search_text", term).
		Get("/results")
	if err != nil {
		return nil, fmt.Errorf("fetch results for %q: %w", term, err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("fetch results for %q: backend returned %s", term, resp.Status())
	}

	var entries []domain.PriceEntry
	if err := json.Unmarshal(resp.Body(), &entries); err != nil {
		return nil, fmt.Errorf("fetch results for %q: decode response: %w", term, err)
	}
	return entries, nil
}

// StartScraper asks the backend to begin collecting prices for a term.
// Any 2xx response is success; the body is unused.
func (c *Client) StartScraper(ctx context.Context, term string) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(startScraperRequest{SearchText: term, URL: c.targetURL}).
		Post("/start-scraper")
	if err != nil {
		return fmt.Errorf("start scraper for %q: %w", term, err)
	}
	if resp.IsError() {
		return fmt.Errorf("start scraper for %q: backend returned %s", term, resp.Status())
	}
	return nil
}
