package tools

import "github.com/initializ/webtools/tavily"

// Defaults bundles the construction-time options for every tool kind.
// Nil entries keep the hardcoded defaults for that kind.
type Defaults struct {
	Search  *tavily.SearchOptions
	Extract *tavily.ExtractOptions
	Crawl   *tavily.CrawlOptions
	Map     *tavily.MapOptions
}

// All returns the four web tools built on client with d's defaults.
func All(client *tavily.Client, d Defaults) []Tool {
	return []Tool{
		NewSearch(client, d.Search),
		NewExtract(client, d.Extract),
		NewCrawl(client, d.Crawl),
		NewMap(client, d.Map),
	}
}

// RegisterAll registers all four web tools with the given registry.
func RegisterAll(reg *Registry, client *tavily.Client, d Defaults) error {
	for _, t := range All(client, d) {
		if err := reg.Register(t); err != nil {
			return err
		}
	}
	return nil
}
