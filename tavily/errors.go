package tavily

import (
	"encoding/json"
	"fmt"
)

// Category classifies a failed invocation.
type Category string

const (
	// CategoryConfiguration covers failures raised before any network
	// attempt, such as a missing credential.
	CategoryConfiguration Category = "configuration"
	// CategoryValidation covers agent input that does not conform to
	// the declared schema.
	CategoryValidation Category = "validation"
	// CategoryTransport covers network-level failures where no HTTP
	// response was produced.
	CategoryTransport Category = "transport"
	// CategoryAPI covers non-success responses from the remote service.
	CategoryAPI Category = "api"
)

// Error is the single failure contract for every tool invocation.
// The message always names the tool's action verb and the failure
// category; API failures add the HTTP status and any diagnostic
// detail parsed from the response body.
type Error struct {
	Verb     string
	Category Category
	Status   int    // set for API failures
	Detail   string // best-effort diagnostic
	Err      error  // underlying cause, when one exists
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s error", e.Verb, e.Category)
	if e.Status != 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.Status)
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// apiError builds the failure for a non-success response.
func apiError(verb string, status int, body []byte) *Error {
	return &Error{
		Verb:     verb,
		Category: CategoryAPI,
		Status:   status,
		Detail:   parseErrorDetail(body),
	}
}

// parseErrorDetail pulls a human-readable message out of an error
// body. The service reports errors under "error", "message", or
// "detail" keys depending on the failure; bodies that do not parse as
// JSON degrade to an empty detail.
func parseErrorDetail(body []byte) string {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err != nil {
		return ""
	}
	for _, key := range []string{"error", "message", "detail"} {
		switch v := m[key].(type) {
		case string:
			return v
		case map[string]any:
			if s, ok := v["error"].(string); ok {
				return s
			}
		}
	}
	return ""
}
