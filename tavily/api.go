package tavily

import (
	"context"
	"encoding/json"
	"fmt"
)

// Typed entry points for embedders using the Client directly, without
// the agent-facing tool layer. Each resolves opts as the only
// configuration layer, performs the call, and decodes the response.

// Search runs one search for query.
func (c *Client) Search(ctx context.Context, query string, opts *SearchOptions) (*SearchResponse, error) {
	raw, err := c.call(ctx, KindSearch, Params{"query": query}, opts.Params())
	if err != nil {
		return nil, err
	}
	var out SearchResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	return &out, nil
}

// Extract retrieves the content of each URL.
func (c *Client) Extract(ctx context.Context, urls []string, opts *ExtractOptions) (*ExtractResponse, error) {
	raw, err := c.call(ctx, KindExtract, Params{"urls": urls}, opts.Params())
	if err != nil {
		return nil, err
	}
	var out ExtractResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding extract response: %w", err)
	}
	return &out, nil
}

// Crawl walks the site under rootURL and returns page contents.
func (c *Client) Crawl(ctx context.Context, rootURL string, opts *CrawlOptions) (*CrawlResponse, error) {
	raw, err := c.call(ctx, KindCrawl, Params{"url": rootURL}, opts.Params())
	if err != nil {
		return nil, err
	}
	var out CrawlResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding crawl response: %w", err)
	}
	return &out, nil
}

// Map walks the site under rootURL and returns the discovered URLs.
func (c *Client) Map(ctx context.Context, rootURL string, opts *MapOptions) (*MapResponse, error) {
	raw, err := c.call(ctx, KindMap, Params{"url": rootURL}, opts.Params())
	if err != nil {
		return nil, err
	}
	var out MapResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decoding map response: %w", err)
	}
	return &out, nil
}

func (c *Client) call(ctx context.Context, kind Kind, call, cfg Params) (json.RawMessage, error) {
	effective, err := Resolve(kind, call, cfg)
	if err != nil {
		return nil, err
	}
	return c.Do(ctx, kind, effective)
}
