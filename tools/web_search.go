package tools

import "github.com/initializ/webtools/tavily"

const webSearchDescription = "Search the web for current information. " +
	"Returns ranked results with titles, URLs, and content snippets, " +
	"optionally with a short synthesized answer."

// NewSearch builds the web_search tool. opts fixes the developer
// defaults applied to every call made through the tool; nil keeps the
// hardcoded defaults.
func NewSearch(client *tavily.Client, opts *tavily.SearchOptions) Tool {
	return newWebTool("web_search", webSearchDescription, CategorySearch,
		tavily.KindSearch, client, opts.Params())
}
