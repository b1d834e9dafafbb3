package tools

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

// Call is one tool invocation within a batch.
type Call struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// Result is the outcome of one Call. ID and Name mirror the call so
// outcomes can be matched up by frameworks that reorder them.
type Result struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Content string `json:"content,omitempty"`
	Error   string `json:"error,omitempty"`
	IsError bool   `json:"is_error"`
}

// ExecuteBatch runs every call concurrently and returns results in
// the order the calls were given. Calls arriving without an ID get
// one assigned. Failures are isolated: one failing call never affects
// its siblings, and a failed result carries the error message instead
// of content.
func (r *Registry) ExecuteBatch(ctx context.Context, calls []Call) []Result {
	results := make([]Result, len(calls))

	var wg sync.WaitGroup
	for i, call := range calls {
		if call.ID == "" {
			call.ID = uuid.NewString()
		}
		wg.Add(1)
		go func(i int, call Call) {
			defer wg.Done()
			content, err := r.Execute(ctx, call.Name, call.Args)
			if err != nil {
				results[i] = Result{ID: call.ID, Name: call.Name, Error: err.Error(), IsError: true}
				return
			}
			results[i] = Result{ID: call.ID, Name: call.Name, Content: content}
		}(i, call)
	}
	wg.Wait()

	return results
}
