package tools

import "github.com/initializ/webtools/tavily"

const webMapDescription = "Map the structure of a website starting from " +
	"a root URL. Returns the discovered URLs without their content; " +
	"cheaper than a crawl when only the site layout matters."

// NewMap builds the web_map tool. The same fences as web_crawl apply.
func NewMap(client *tavily.Client, opts *tavily.MapOptions) Tool {
	return newWebTool("web_map", webMapDescription, CategoryRetrieval,
		tavily.KindMap, client, opts.Params())
}
