package tools

import "github.com/initializ/webtools/tavily"

const webCrawlDescription = "Crawl a website starting from a root URL, " +
	"following links and returning the content of each page reached. " +
	"Suited to reading a documentation tree or section of a site in one call."

// NewCrawl builds the web_crawl tool. Path and domain fences in opts
// bound the crawl and cannot be widened per call.
func NewCrawl(client *tavily.Client, opts *tavily.CrawlOptions) Tool {
	return newWebTool("web_crawl", webCrawlDescription, CategoryRetrieval,
		tavily.KindCrawl, client, opts.Params())
}
