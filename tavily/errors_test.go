package tavily

import (
	"errors"
	"strings"
	"testing"
)

func TestParseErrorDetail(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"error key", `{"error": "rate limited"}`, "rate limited"},
		{"message key", `{"message": "bad request"}`, "bad request"},
		{"nested detail", `{"detail": {"error": "invalid URL"}}`, "invalid URL"},
		{"error wins over message", `{"error": "a", "message": "b"}`, "a"},
		{"not json", "<html>oops</html>", ""},
		{"json array", `[1, 2]`, ""},
		{"empty object", `{}`, ""},
		{"empty body", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseErrorDetail([]byte(tt.body)); got != tt.want {
				t.Errorf("parseErrorDetail(%q) = %q, want %q", tt.body, got, tt.want)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want []string
	}{
		{
			name: "api failure carries verb, category, status, detail",
			err:  &Error{Verb: "crawl", Category: CategoryAPI, Status: 403, Detail: "forbidden"},
			want: []string{"crawl", "api", "403", "forbidden"},
		},
		{
			name: "transport failure carries the cause",
			err:  &Error{Verb: "map", Category: CategoryTransport, Err: errors.New("dial tcp: connection refused")},
			want: []string{"map", "transport", "connection refused"},
		},
		{
			name: "configuration failure names both credential sources",
			err:  &Error{Verb: "search", Category: CategoryConfiguration, Detail: "no API key configured: set TAVILY_API_KEY or pass APIKey in ClientConfig"},
			want: []string{"search", "configuration", "TAVILY_API_KEY", "ClientConfig"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("message %q missing %q", msg, want)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("boom")
	err := &Error{Verb: "search", Category: CategoryTransport, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the wrapped cause")
	}
}
