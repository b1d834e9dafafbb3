package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/initializ/webtools/tavily"
)

// Renderers for TTY output. Each one falls back to printing the raw
// body when it does not decode into the expected response shape.

func renderSearch(w io.Writer, raw string) error {
	var resp tavily.SearchResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		fmt.Fprintln(w, raw)
		return nil
	}
	st := styles()

	if resp.Answer != "" {
		fmt.Fprintln(w, st.Answer.Render(resp.Answer))
		fmt.Fprintln(w)
	}
	for i, r := range resp.Results {
		fmt.Fprintf(w, "%s %s %s\n",
			st.Meta.Render(fmt.Sprintf("%2d.", i+1)),
			st.Title.Render(r.Title),
			st.Meta.Render(fmt.Sprintf("(%.2f)", r.Score)))
		fmt.Fprintf(w, "    %s\n", st.URL.Render(r.URL))
		if r.Content != "" {
			fmt.Fprintf(w, "    %s\n", st.Snippet.Render(truncate(r.Content, 280)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, st.Meta.Render(fmt.Sprintf("%d result(s) in %.2fs", len(resp.Results), resp.ResponseTime)))
	return nil
}

func renderExtract(w io.Writer, raw string) error {
	var resp tavily.ExtractResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		fmt.Fprintln(w, raw)
		return nil
	}
	st := styles()

	for _, r := range resp.Results {
		fmt.Fprintln(w, st.URL.Render(r.URL))
		if r.RawContent != "" {
			fmt.Fprintln(w, st.Snippet.Render(truncate(r.RawContent, 600)))
		}
		fmt.Fprintln(w)
	}
	for _, f := range resp.FailedResults {
		fmt.Fprintf(w, "%s %s\n", st.ErrTxt.Render("failed:"), st.URL.Render(f.URL))
		if f.Error != "" {
			fmt.Fprintf(w, "  %s\n", st.Snippet.Render(f.Error))
		}
	}
	fmt.Fprintln(w, st.Meta.Render(fmt.Sprintf("%d extracted, %d failed in %.2fs",
		len(resp.Results), len(resp.FailedResults), resp.ResponseTime)))
	return nil
}

func renderCrawl(w io.Writer, raw string) error {
	var resp tavily.CrawlResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		fmt.Fprintln(w, raw)
		return nil
	}
	st := styles()

	fmt.Fprintf(w, "%s %s\n\n", st.Key.Render("Base URL:"), st.Title.Render(resp.BaseURL))
	for _, r := range resp.Results {
		fmt.Fprintln(w, st.URL.Render(r.URL))
		if r.RawContent != "" {
			fmt.Fprintln(w, st.Snippet.Render(truncate(r.RawContent, 400)))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, st.Meta.Render(fmt.Sprintf("%d page(s) in %.2fs", len(resp.Results), resp.ResponseTime)))
	return nil
}

func renderMap(w io.Writer, raw string) error {
	var resp tavily.MapResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		fmt.Fprintln(w, raw)
		return nil
	}
	st := styles()

	fmt.Fprintf(w, "%s %s\n\n", st.Key.Render("Base URL:"), st.Title.Render(resp.BaseURL))
	for _, u := range resp.Results {
		fmt.Fprintf(w, "  %s\n", st.ListItem.Render(u))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, st.Meta.Render(fmt.Sprintf("%d URL(s) in %.2fs", len(resp.Results), resp.ResponseTime)))
	return nil
}

// truncate collapses whitespace and cuts s at n runes.
func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
