package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultBaseURL is the production API origin.
const DefaultBaseURL = "https://api.tavily.com"

// EnvAPIKey is the well-known environment variable holding the API
// credential. The library never reads it itself; application
// boundaries look it up once and pass the value into ClientConfig.
const EnvAPIKey = "TAVILY_API_KEY"

// ClientConfig configures a Client.
type ClientConfig struct {
	// APIKey is the bearer credential. Leaving it empty defers the
	// failure to call time, so tools can be constructed before
	// configuration is complete.
	APIKey string

	// BaseURL overrides the API origin, mainly for tests and
	// self-hosted gateways. Defaults to DefaultBaseURL.
	BaseURL string

	// ProxyURL routes requests through an outbound HTTP(S) proxy.
	// Mutually exclusive with HTTPClient.
	ProxyURL string

	// HTTPClient supplies a custom client, including whatever deadline
	// the embedder wants. The default client imposes none; the service
	// enforces its own timeout, adjustable through the timeout field
	// in each kind's options.
	HTTPClient *http.Client

	// Logger receives debug-level stage logs. Nil discards them.
	Logger *slog.Logger
}

// Client issues requests against the Tavily API. It is immutable
// after construction and safe for concurrent use; every invocation is
// independent, with no shared state beyond the configuration itself.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	log     *slog.Logger
}

// NewClient builds a Client from cfg.
func NewClient(cfg ClientConfig) (*Client, error) {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	base = strings.TrimRight(base, "/")
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	httpc := cfg.HTTPClient
	if cfg.ProxyURL != "" {
		if httpc != nil {
			return nil, fmt.Errorf("ProxyURL and HTTPClient are mutually exclusive: configure the proxy on the custom client")
		}
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("parsing proxy URL: %w", err)
		}
		httpc = &http.Client{Transport: &http.Transport{Proxy: http.ProxyURL(proxy)}}
	}
	if httpc == nil {
		httpc = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Client{apiKey: cfg.APIKey, baseURL: base, httpc: httpc, log: logger}, nil
}

// BaseURL returns the resolved API origin.
func (c *Client) BaseURL() string { return c.baseURL }

// Do performs exactly one POST for kind: the credential is checked,
// the effective parameters are rendered into the wire payload, the
// request is sent, and the response body is returned verbatim on
// success. There are no retries and no client-side deadline beyond
// ctx and whatever the configured HTTP client imposes; cancelling ctx
// aborts the in-flight request and surfaces a transport failure.
func (c *Client) Do(ctx context.Context, kind Kind, effective Params) (json.RawMessage, error) {
	verb := kind.Verb()

	if c.apiKey == "" {
		return nil, &Error{
			Verb:     verb,
			Category: CategoryConfiguration,
			Detail:   fmt.Sprintf("no API key configured: set %s or pass APIKey in ClientConfig", EnvAPIKey),
		}
	}
	c.log.Debug("credential resolved", "kind", verb)

	payload, err := BuildPayload(kind, effective)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding %s payload: %w", verb, err)
	}
	c.log.Debug("payload built", "kind", verb, "fields", len(payload))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+kind.Path(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building %s request: %w", verb, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &Error{Verb: verb, Category: CategoryTransport, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Verb: verb, Category: CategoryTransport, Err: fmt.Errorf("reading response: %w", err)}
	}
	c.log.Debug("request sent", "kind", verb, "status", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiError(verb, resp.StatusCode, respBody)
	}
	if !json.Valid(respBody) {
		return nil, &Error{
			Verb:     verb,
			Category: CategoryAPI,
			Status:   resp.StatusCode,
			Detail:   "response body is not valid JSON",
		}
	}
	return json.RawMessage(respBody), nil
}
