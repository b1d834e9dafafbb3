// Package tools exposes web search and retrieval capabilities as
// agent-invocable tools. Each tool declares a JSON input schema,
// validates arguments against it, merges them with construction-time
// defaults, and performs one call against the Tavily API.
package tools

import (
	"context"
	"encoding/json"
)

// Category classifies tools by what they do with the web.
type Category string

const (
	// CategorySearch covers tools that rank results for a query.
	CategorySearch Category = "search"
	// CategoryRetrieval covers tools that fetch or discover pages.
	CategoryRetrieval Category = "retrieval"
)

// Tool is the interface that all tools must implement.
type Tool interface {
	// Name returns the unique tool name.
	Name() string
	// Description returns a human-readable description of the tool.
	Description() string
	// Category returns the tool's category.
	Category() Category
	// InputSchema returns the JSON Schema for the tool's input parameters.
	InputSchema() json.RawMessage
	// Execute runs the tool with the given JSON arguments. On success
	// the result is the API's JSON response, verbatim; on failure the
	// error is a *tavily.Error carrying the category taxonomy.
	Execute(ctx context.Context, args json.RawMessage) (string, error)
}

// Definition is the framework-facing description of one tool, in the
// shape tool-calling APIs expect.
type Definition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// Define builds the Definition for a tool.
func Define(t Tool) Definition {
	return Definition{
		Name:        t.Name(),
		Description: t.Description(),
		InputSchema: t.InputSchema(),
	}
}
