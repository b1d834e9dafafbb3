package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/initializ/webtools/tavily"
)

// testServer records requests and replies with a canned body.
type testServer struct {
	srv      *httptest.Server
	requests atomic.Int32
	lastBody atomic.Value // []byte
}

func newTestServer(t *testing.T, response string) *testServer {
	t.Helper()
	ts := &testServer{}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ts.requests.Add(1)
		body, _ := io.ReadAll(r.Body)
		ts.lastBody.Store(body)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, response)
	}))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) client(t *testing.T) *tavily.Client {
	t.Helper()
	client, err := tavily.NewClient(tavily.ClientConfig{APIKey: "tvly-test", BaseURL: ts.srv.URL})
	if err != nil {
		t.Fatalf("NewClient error: %v", err)
	}
	return client
}

func (ts *testServer) sent(t *testing.T) map[string]any {
	t.Helper()
	body, _ := ts.lastBody.Load().([]byte)
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	return m
}

func TestWebSearch_Execute(t *testing.T) {
	const response = `{"results": [{"title": "Quantum computing", "url": "https://example.com"}]}`
	ts := newTestServer(t, response)

	tool := NewSearch(ts.client(t), &tavily.SearchOptions{
		SearchDepth: "basic",
		MaxResults:  5,
	})

	result, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": "quantum computing", "searchDepth": "advanced"}`))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if result != response {
		t.Errorf("result = %s, want the response body verbatim", result)
	}

	sent := ts.sent(t)
	if sent["query"] != "quantum computing" {
		t.Errorf("query = %v", sent["query"])
	}
	// The per-call value wins over the construction default.
	if sent["search_depth"] != "advanced" {
		t.Errorf("search_depth = %v, want advanced", sent["search_depth"])
	}
	if sent["max_results"] != float64(5) {
		t.Errorf("max_results = %v, want 5", sent["max_results"])
	}
	if sent["topic"] != "general" {
		t.Errorf("topic = %v, want hardcoded default general", sent["topic"])
	}
	if _, ok := sent["searchDepth"]; ok {
		t.Error("internal field name leaked onto the wire")
	}
	if _, ok := sent["include_domains"]; ok {
		t.Error("include_domains sent although no layer set it")
	}
}

func TestWebSearch_EmptyListFallsThroughToConfig(t *testing.T) {
	ts := newTestServer(t, `{}`)
	tool := NewSearch(ts.client(t), &tavily.SearchOptions{
		ExcludeDomains: []string{"pinterest.com"},
	})

	_, err := tool.Execute(context.Background(),
		json.RawMessage(`{"query": "recipes", "excludeDomains": []}`))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	sent := ts.sent(t)
	got, ok := sent["exclude_domains"].([]any)
	if !ok || len(got) != 1 || got[0] != "pinterest.com" {
		t.Errorf("exclude_domains = %v, want the construction-time filter", sent["exclude_domains"])
	}
}

func TestWebSearch_ValidationFailures(t *testing.T) {
	ts := newTestServer(t, `{}`)
	tool := NewSearch(ts.client(t), nil)

	tests := []struct {
		name string
		args string
		want string
	}{
		{"missing query", `{}`, "query"},
		{"unknown field", `{"query": "x", "bogus": 1}`, "bogus"},
		{"developer-only field", `{"query": "x", "autoParameters": true}`, "autoParameters"},
		{"bad enum", `{"query": "x", "searchDepth": "turbo"}`, "searchDepth"},
		{"max results over bound", `{"query": "x", "maxResults": 50}`, "maxResults"},
		{"wrong type", `{"query": 7}`, "query"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Execute(context.Background(), json.RawMessage(tt.args))
			if err == nil {
				t.Fatal("expected validation error")
			}
			var terr *tavily.Error
			if !errors.As(err, &terr) {
				t.Fatalf("error type = %T, want *tavily.Error", err)
			}
			if terr.Category != tavily.CategoryValidation {
				t.Errorf("category = %q, want validation", terr.Category)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("message %q missing %q", err, tt.want)
			}
		})
	}
	if n := ts.requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want none for invalid input", n)
	}
}

func TestWebCrawl_DepthBoundsEnforcedBeforeRequest(t *testing.T) {
	ts := newTestServer(t, `{}`)
	tool := NewCrawl(ts.client(t), nil)

	_, err := tool.Execute(context.Background(),
		json.RawMessage(`{"url": "https://example.com", "maxDepth": 6}`))
	if err == nil {
		t.Fatal("expected validation error for maxDepth outside 1-5")
	}
	var terr *tavily.Error
	if !errors.As(err, &terr) || terr.Category != tavily.CategoryValidation {
		t.Fatalf("error = %v, want validation failure", err)
	}
	if !strings.Contains(err.Error(), "maxDepth") {
		t.Errorf("message %q missing field name", err)
	}
	if n := ts.requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want none", n)
	}
}

func TestWebCrawl_ConfigFencesReachTheWire(t *testing.T) {
	ts := newTestServer(t, `{}`)
	off := false
	tool := NewCrawl(ts.client(t), &tavily.CrawlOptions{
		SelectDomains: []string{"^docs\\."},
		AllowExternal: &off,
	})

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"url": "https://docs.example.com"}`))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	sent := ts.sent(t)
	if _, ok := sent["select_domains"]; !ok {
		t.Error("select_domains missing from payload")
	}
	// An explicit construction-time false is transmitted.
	if sent["allow_external"] != false {
		t.Errorf("allow_external = %v, want false", sent["allow_external"])
	}
	if sent["max_depth"] != float64(1) {
		t.Errorf("max_depth = %v, want default 1", sent["max_depth"])
	}
}

func TestWebExtract_RequiresURLs(t *testing.T) {
	ts := newTestServer(t, `{}`)
	tool := NewExtract(ts.client(t), nil)

	for _, args := range []string{`{}`, `{"urls": []}`} {
		_, err := tool.Execute(context.Background(), json.RawMessage(args))
		if err == nil {
			t.Errorf("args %s: expected validation error", args)
		}
	}
	if n := ts.requests.Load(); n != 0 {
		t.Errorf("server saw %d requests, want none", n)
	}
}

func TestWebTool_MalformedArguments(t *testing.T) {
	ts := newTestServer(t, `{}`)
	tool := NewSearch(ts.client(t), nil)

	_, err := tool.Execute(context.Background(), json.RawMessage(`{"query": `))
	if err == nil {
		t.Fatal("expected error for malformed JSON arguments")
	}
	var terr *tavily.Error
	if !errors.As(err, &terr) || terr.Category != tavily.CategoryValidation {
		t.Fatalf("error = %v, want validation failure", err)
	}
}

func TestWebMap_Execute(t *testing.T) {
	ts := newTestServer(t, `{"base_url": "https://example.com", "results": ["https://example.com/a"]}`)
	tool := NewMap(ts.client(t), &tavily.MapOptions{MaxDepth: 3})

	result, err := tool.Execute(context.Background(), json.RawMessage(`{"url": "https://example.com"}`))
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if !strings.Contains(result, "https://example.com/a") {
		t.Errorf("result = %s", result)
	}

	sent := ts.sent(t)
	if sent["max_depth"] != float64(3) {
		t.Errorf("max_depth = %v, want config value 3", sent["max_depth"])
	}
}

func TestAll_NamesAndCategories(t *testing.T) {
	ts := newTestServer(t, `{}`)
	all := All(ts.client(t), Defaults{})

	want := map[string]Category{
		"web_search":  CategorySearch,
		"web_extract": CategoryRetrieval,
		"web_crawl":   CategoryRetrieval,
		"web_map":     CategoryRetrieval,
	}
	if len(all) != len(want) {
		t.Fatalf("All() returned %d tools, want %d", len(all), len(want))
	}
	for _, tool := range all {
		cat, ok := want[tool.Name()]
		if !ok {
			t.Errorf("unexpected tool %q", tool.Name())
			continue
		}
		if tool.Category() != cat {
			t.Errorf("%s category = %q, want %q", tool.Name(), tool.Category(), cat)
		}
		if tool.Description() == "" {
			t.Errorf("%s has no description", tool.Name())
		}
		if !json.Valid(tool.InputSchema()) {
			t.Errorf("%s schema is not valid JSON", tool.Name())
		}
	}
}

func TestRegisterAll(t *testing.T) {
	ts := newTestServer(t, `{}`)
	reg := NewRegistry()
	if err := RegisterAll(reg, ts.client(t), Defaults{}); err != nil {
		t.Fatalf("RegisterAll error: %v", err)
	}

	want := []string{"web_crawl", "web_extract", "web_map", "web_search"}
	got := reg.List()
	if len(got) != len(want) {
		t.Fatalf("List() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("List()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	// Registering twice collides on every name.
	if err := RegisterAll(reg, ts.client(t), Defaults{}); err == nil {
		t.Error("expected duplicate registration to fail")
	}
}
