// Package tavily implements the shared engine behind the web tools:
// parameter resolution, request construction, transport, and error
// normalization for the Tavily REST API.
//
// Every tool kind is described by a field table. The same table drives
// argument schemas, the configuration resolver, and the request
// builder, so the three cannot drift apart.
package tavily

// Kind identifies one of the four tool kinds. The kind's string value
// doubles as its action verb and its endpoint path segment.
type Kind string

const (
	KindSearch  Kind = "search"
	KindExtract Kind = "extract"
	KindCrawl   Kind = "crawl"
	KindMap     Kind = "map"
)

// Verb returns the action word used in error messages.
func (k Kind) Verb() string { return string(k) }

// Path returns the endpoint path under the API base URL.
func (k Kind) Path() string { return "/" + string(k) }

// FieldType is the JSON type of a field's value.
type FieldType string

const (
	TypeString     FieldType = "string"
	TypeInteger    FieldType = "integer"
	TypeBoolean    FieldType = "boolean"
	TypeStringList FieldType = "array"
)

// Field describes one parameter of a tool kind: its internal name, its
// wire name, how it validates, whether the agent may supply it, and
// the hardcoded default applied when no layer sets it.
type Field struct {
	Name        string
	Wire        string
	Type        FieldType
	Description string

	// Required marks the kind's primary argument. Required fields are
	// always agent-supplied and never have a default.
	Required bool

	// Overridable fields appear in the generated input schema and may
	// be supplied per call. Non-overridable fields can only be set at
	// construction time and are invisible to the agent.
	Overridable bool

	// Default is the hardcoded fallback, or nil when the field is
	// simply omitted so the remote service applies its own default.
	Default any

	// Enum lists the legal values for closed string fields.
	Enum []string

	// Min and Max are inclusive integer bounds. Zero means unbounded
	// on that side; no field in these tables has a legal zero bound.
	Min, Max int
}

var searchFields = []Field{
	{Name: "query", Wire: "query", Type: TypeString, Required: true, Overridable: true,
		Description: "The search query to execute."},
	{Name: "searchDepth", Wire: "search_depth", Type: TypeString, Overridable: true,
		Default: "basic", Enum: []string{"basic", "advanced"},
		Description: "Search depth: basic is faster, advanced returns higher-relevance results."},
	{Name: "topic", Wire: "topic", Type: TypeString, Overridable: true,
		Default: "general", Enum: []string{"general", "news", "finance"},
		Description: "Category of the search."},
	{Name: "maxResults", Wire: "max_results", Type: TypeInteger, Overridable: true,
		Default: 5, Min: 1, Max: 20,
		Description: "Maximum number of results to return."},
	{Name: "timeRange", Wire: "time_range", Type: TypeString, Overridable: true,
		Enum:        []string{"day", "week", "month", "year"},
		Description: "Restrict results to a recent time window."},
	{Name: "days", Wire: "days", Type: TypeInteger, Overridable: true, Min: 1,
		Description: "Number of days back to search. Only used with the news topic."},
	{Name: "includeAnswer", Wire: "include_answer", Type: TypeBoolean, Overridable: true,
		Default:     false,
		Description: "Include a short LLM-generated answer synthesized from the results."},
	{Name: "includeRawContent", Wire: "include_raw_content", Type: TypeBoolean, Overridable: true,
		Default:     false,
		Description: "Include the cleaned page content of each result."},
	{Name: "includeImages", Wire: "include_images", Type: TypeBoolean, Overridable: true,
		Default:     false,
		Description: "Include related images in the response."},
	{Name: "includeImageDescriptions", Wire: "include_image_descriptions", Type: TypeBoolean, Overridable: true,
		Description: "Include descriptive text for each returned image."},
	{Name: "includeFavicon", Wire: "include_favicon", Type: TypeBoolean,
		Description: "Include each result's favicon URL."},
	{Name: "includeDomains", Wire: "include_domains", Type: TypeStringList, Overridable: true,
		Description: "Only include results from these domains."},
	{Name: "excludeDomains", Wire: "exclude_domains", Type: TypeStringList, Overridable: true,
		Description: "Exclude results from these domains."},
	{Name: "country", Wire: "country", Type: TypeString, Overridable: true,
		Description: "Boost results from this country. Only used with the general topic."},
	{Name: "autoParameters", Wire: "auto_parameters", Type: TypeBoolean,
		Description: "Let the service tune search parameters from the query."},
	{Name: "chunksPerSource", Wire: "chunks_per_source", Type: TypeInteger, Min: 1, Max: 3,
		Description: "Content chunks to return per source. Only used with advanced search."},
	{Name: "includeUsage", Wire: "include_usage", Type: TypeBoolean,
		Description: "Include API usage accounting in the response."},
	{Name: "timeout", Wire: "timeout", Type: TypeInteger, Min: 1,
		Description: "Server-side timeout for the request, in seconds."},
}

var extractFields = []Field{
	{Name: "urls", Wire: "urls", Type: TypeStringList, Required: true, Overridable: true,
		Description: "The URLs to extract content from."},
	{Name: "extractDepth", Wire: "extract_depth", Type: TypeString, Overridable: true,
		Default: "basic", Enum: []string{"basic", "advanced"},
		Description: "Extraction depth: advanced retrieves more content, including tables and embedded media."},
	{Name: "includeImages", Wire: "include_images", Type: TypeBoolean, Overridable: true,
		Default:     false,
		Description: "Include images found on each page."},
	{Name: "includeFavicon", Wire: "include_favicon", Type: TypeBoolean,
		Description: "Include each page's favicon URL."},
	{Name: "format", Wire: "format", Type: TypeString,
		Enum:        []string{"markdown", "text"},
		Description: "Output format for extracted content."},
	{Name: "includeUsage", Wire: "include_usage", Type: TypeBoolean,
		Description: "Include API usage accounting in the response."},
	{Name: "timeout", Wire: "timeout", Type: TypeInteger, Min: 1,
		Description: "Server-side timeout for the request, in seconds."},
}

// crawlCore returns the fields shared by the crawl and map kinds.
// Both tables build on this one list so they cannot diverge.
func crawlCore(verb string) []Field {
	return []Field{
		{Name: "url", Wire: "url", Type: TypeString, Required: true, Overridable: true,
			Description: "The root URL to " + verb + "."},
		{Name: "maxDepth", Wire: "max_depth", Type: TypeInteger, Overridable: true,
			Default: 1, Min: 1, Max: 5,
			Description: "How many link levels to follow from the root URL."},
		{Name: "maxBreadth", Wire: "max_breadth", Type: TypeInteger, Overridable: true,
			Default: 20, Min: 1, Max: 100,
			Description: "Maximum number of links to follow per page."},
		{Name: "limit", Wire: "limit", Type: TypeInteger, Overridable: true,
			Default: 50, Min: 1,
			Description: "Total number of pages to process before stopping."},
		{Name: "instructions", Wire: "instructions", Type: TypeString, Overridable: true,
			Description: "Natural-language guidance for which pages to prioritize."},
		{Name: "selectPaths", Wire: "select_paths", Type: TypeStringList,
			Description: "Regex patterns; only URLs with matching paths are followed."},
		{Name: "selectDomains", Wire: "select_domains", Type: TypeStringList,
			Description: "Regex patterns; only URLs on matching domains are followed."},
		{Name: "excludePaths", Wire: "exclude_paths", Type: TypeStringList,
			Description: "Regex patterns; URLs with matching paths are skipped."},
		{Name: "excludeDomains", Wire: "exclude_domains", Type: TypeStringList,
			Description: "Regex patterns; URLs on matching domains are skipped."},
		{Name: "allowExternal", Wire: "allow_external", Type: TypeBoolean,
			Description: "Follow links that leave the root domain."},
		{Name: "categories", Wire: "categories", Type: TypeStringList,
			Description: "Only follow URLs under these site categories."},
		{Name: "includeUsage", Wire: "include_usage", Type: TypeBoolean,
			Description: "Include API usage accounting in the response."},
		{Name: "timeout", Wire: "timeout", Type: TypeInteger, Min: 1,
			Description: "Server-side timeout for the request, in seconds."},
	}
}

var crawlFields = append(crawlCore("crawl"),
	Field{Name: "extractDepth", Wire: "extract_depth", Type: TypeString, Overridable: true,
		Default: "basic", Enum: []string{"basic", "advanced"},
		Description: "Extraction depth applied to each crawled page."},
	Field{Name: "format", Wire: "format", Type: TypeString,
		Enum:        []string{"markdown", "text"},
		Description: "Output format for crawled content."},
	Field{Name: "includeImages", Wire: "include_images", Type: TypeBoolean,
		Description: "Include images found on each crawled page."},
	Field{Name: "includeFavicon", Wire: "include_favicon", Type: TypeBoolean,
		Description: "Include each page's favicon URL."},
)

var mapFields = crawlCore("map")

// Fields returns the field table for a kind. The returned slice is
// shared; callers must treat it as read-only.
func Fields(kind Kind) []Field {
	switch kind {
	case KindSearch:
		return searchFields
	case KindExtract:
		return extractFields
	case KindCrawl:
		return crawlFields
	case KindMap:
		return mapFields
	}
	return nil
}

// lookupField finds a field by internal name within a kind's table.
func lookupField(kind Kind, name string) (Field, bool) {
	for _, f := range Fields(kind) {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
